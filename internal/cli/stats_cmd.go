package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weeks/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App, flags *sessionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show age, weeks lived and distance to life expectancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, err := startSession(ctx, cmd, app, flags)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(sess.View(ctx)))
			return nil
		},
	}
}
