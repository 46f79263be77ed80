package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <name> <terms> [transitions]",
	Short: "Store tables as a named lexicon",
	Long:  "Decodes the term table (and optional transition table) and saves them in .hue/hue.db, replacing any lexicon of that name.",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var trans string
	if len(args) == 3 {
		trans = args[2]
	}
	info, err := a.Import(args[0], args[1], trans)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "imported %s: %d terms", info.Name, info.Terms)
	if info.HasTrans {
		fmt.Fprintf(out, ", %d transitions", info.Transitions)
	}
	fmt.Fprintln(out)
	return nil
}
