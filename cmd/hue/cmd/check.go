package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errMismatch makes `hue check` exit non-zero.
var errMismatch = errors.New("dp score differs from exhaustive optimum")

var checkCmd = &cobra.Command{
	Use:   "check <text> <terms> <transitions>",
	Short: "Verify the optimal score against exhaustive search",
	Long:  "Solves with variant E and by trying every colouring (at most 10 tokens), then compares the scores.",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	in, err := inputsFromArgs(args, lexiconFlag)
	if err != nil {
		return err
	}
	res, err := a.Check(in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tokens:     %d\n", len(res.Tokens))
	fmt.Fprintf(out, "dp:         %s\n", formatScore(res.DP))
	fmt.Fprintf(out, "exhaustive: %s\n", formatScore(res.Exhaustive))
	if res.Best != nil {
		fmt.Fprintf(out, "best:       %s\n", formatColours(res.Best))
	}
	if !res.Agree() {
		return errMismatch
	}
	fmt.Fprintln(out, "ok")
	return nil
}
