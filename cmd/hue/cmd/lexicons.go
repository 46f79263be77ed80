package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var lexiconsCmd = &cobra.Command{
	Use:   "lexicons",
	Short: "List stored lexicons",
	Args:  cobra.NoArgs,
	RunE:  runLexicons,
}

func runLexicons(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	infos, err := a.Lexicons()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(out, "no lexicons; add one with: hue import <name> <terms> [transitions]")
		return nil
	}
	for _, info := range infos {
		trans := "-"
		if info.HasTrans {
			trans = fmt.Sprintf("%d", info.Transitions)
		}
		saved := "-"
		if info.SavedAt > 0 {
			saved = time.Unix(info.SavedAt, 0).Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%-20s terms=%-6d transitions=%-6s saved=%s\n", info.Name, info.Terms, trans, saved)
	}
	return nil
}
