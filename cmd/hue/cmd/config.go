package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the project root, store and config paths, and the resolved settings.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	configStatus := "defaults (no file)"
	if _, err := os.Stat(a.Paths.Config); err == nil {
		configStatus = a.Paths.Config
	}
	dbStatus := "not created"
	if a.DBExists() {
		dbStatus = "present"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "hue config\n")
	fmt.Fprintf(out, "  Root:       %s\n", projectRoot())
	fmt.Fprintf(out, "  DB:         %s (%s)\n", a.DBPath, dbStatus)
	fmt.Fprintf(out, "  Config:     %s\n", configStatus)
	fmt.Fprintf(out, "  Highlight:  %v\n", newRenderer(a.Settings).highlight)

	data, err := a.Settings.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s", data)
	return nil
}
