package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weeks/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMarksCmd(app *App, flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "marks",
		Short: "List the life-expectancy marks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			// Marks are fixed; never prompt just to list them.
			sess := app.Calendar.StartSession(ctx, flags.request(cmd, app))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMarks(sess.View(ctx)))
			return nil
		},
	}
}
