package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/hue/internal/app"
	"github.com/corey/hue/internal/log"
)

var (
	verbose     bool
	colorFlag   string
	lexiconFlag string
)

var rootCmd = &cobra.Command{
	Use:   "hue",
	Short: "hue: colour-highlighting optimizer",
	Long: "Tokenizes text against a scored term table and assigns each token a highlight colour,\n" +
		"independently (A), greedily (B) or optimally over the whole sequence (E).",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Init(verbose)
		if cmd.Flags().Changed("color") {
			return app.ValidateColorMode(colorFlag)
		}
		return nil
	},
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// projectDB returns the default lexicon store path.
func projectDB() string {
	return app.NewPaths(projectRoot()).DB
}

// newApp builds the application for the current directory.
func newApp() (*app.App, error) {
	return app.New(app.Config{ProjectRoot: projectRoot()})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Highlight output: auto, always or never (default from config)")

	for _, c := range []*cobra.Command{solveCmd, tokensCmd, checkCmd, watchCmd} {
		c.Flags().StringVar(&lexiconFlag, "lexicon", "", "Use a stored lexicon instead of table files")
	}

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(lexiconsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}
