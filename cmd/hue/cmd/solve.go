package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/hue/internal/app"
	"github.com/corey/hue/internal/domain/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [variant] <text> <terms> [transitions]",
	Short: "Colour a text",
	Long: "Tokenizes the text file against the term table and prints one colour per token\n" +
		"(variants A, B, F) or the optimal total score (variant E). The variant letter is\n" +
		"optional and defaults to the one in .hue/config.yaml. With --lexicon the tables\n" +
		"come from the store and only the text file is given.",
	Args: cobra.RangeArgs(1, 4),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	v, rest, err := splitVariant(args, a.Settings.Variant)
	if err != nil {
		return err
	}
	in, err := inputsFromArgs(rest, lexiconFlag)
	if err != nil {
		return err
	}

	res, err := a.Solve(v, in)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), newRenderer(a.Settings).solution(res))
	return nil
}

// splitVariant takes a leading variant letter off args, falling back to def.
// A lone argument is always the text file.
func splitVariant(args []string, def string) (solver.Variant, []string, error) {
	if len(args) > 1 {
		if v, err := solver.ParseVariant(args[0]); err == nil {
			return v, args[1:], nil
		}
	}
	v, err := solver.ParseVariant(def)
	if err != nil {
		return 0, nil, fmt.Errorf("default variant: %w", err)
	}
	return v, args, nil
}

// inputsFromArgs maps <text> [terms] [transitions] to app.Inputs.
func inputsFromArgs(args []string, lexicon string) (app.Inputs, error) {
	if len(args) == 0 {
		return app.Inputs{}, fmt.Errorf("missing text file")
	}
	in := app.Inputs{TextPath: args[0], Lexicon: lexicon}
	rest := args[1:]
	if lexicon != "" {
		if len(rest) > 0 {
			return app.Inputs{}, fmt.Errorf("--lexicon replaces the table files; got %d extra arguments", len(rest))
		}
		return in, nil
	}
	switch len(rest) {
	case 0:
		return app.Inputs{}, app.ErrNoTables
	case 1:
		in.TermsPath = rest[0]
	case 2:
		in.TermsPath, in.TransitionsPath = rest[0], rest[1]
	default:
		return app.Inputs{}, fmt.Errorf("too many arguments: %d", len(args))
	}
	return in, nil
}
