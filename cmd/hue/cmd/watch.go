package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/hue/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch [variant] <text> <terms> [transitions]",
	Short: "Re-colour a text whenever its inputs change",
	Long: "Runs solve once, then again each time the text or a table file is saved.\n" +
		"Errors are printed and watching continues. Stop with Ctrl-C.",
	Args: cobra.RangeArgs(1, 4),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRenderer(a.Settings)
	out := cmd.OutOrStdout()
	return a.Watch(ctx, v, in, nil, func(path string, res *app.Result, err error) {
		if path != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "changed: %s\n", path)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", DescribeError(err))
			return
		}
		fmt.Fprint(out, r.solution(res))
	})
}
