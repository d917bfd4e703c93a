package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the interactive view needs a terminal; use `weeks grid` instead")

func newTUICmd(app *App, flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Explore the grid interactively and edit the birth date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			return runTUI(cmd, app, flags)
		},
	}
}

func runTUI(cmd *cobra.Command, app *App, flags *sessionFlags) error {
	ctx := context.Background()
	// The TUI carries its own date input, so the huh picker is skipped.
	sess := app.Calendar.StartSession(ctx, flags.request(cmd, app))
	return app.runProgram(newTUIModel(ctx, sess))
}
