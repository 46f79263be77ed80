package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <text> <terms>",
	Short: "Print the token sequence of a text",
	Long:  "Prints one token per line: lexicon terms in their table spelling, other words verbatim.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	in, err := inputsFromArgs(args, lexiconFlag)
	if err != nil {
		return err
	}
	tokens, err := a.Tokens(in)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, t := range tokens {
		fmt.Fprintln(out, t)
	}
	return nil
}
