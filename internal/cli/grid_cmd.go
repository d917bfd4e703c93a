package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weeks/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGridCmd(app *App, flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Render the 90 x 52 life grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, app, flags)
		},
	}
}

func runGrid(cmd *cobra.Command, app *App, flags *sessionFlags) error {
	ctx := context.Background()
	sess, err := startSession(ctx, cmd, app, flags)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGrid(sess.View(ctx)))
	return nil
}
