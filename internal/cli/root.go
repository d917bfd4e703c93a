package cli

import (
	"os"

	weeksapp "github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the use cases and host hooks used by CLI commands.
type App struct {
	Calendar weeksapp.CalendarUseCase
	Config   config.Config

	// IsInteractive reports whether stdin is a terminal. The picker and the
	// TUI only run when it returns true. Nil means not interactive.
	IsInteractive func() bool

	// PromptBirthDate asks for a birth date and stores the committed text in
	// value. Nil uses the huh form.
	PromptBirthDate func(value *string) error

	// RunProgram runs a bubbletea model to completion. Nil uses tea.NewProgram.
	RunProgram func(m tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) promptBirthDate(value *string) error {
	if a.PromptBirthDate != nil {
		return a.PromptBirthDate(value)
	}
	return birthDateForm(value).Run()
}

func (a *App) runProgram(m tea.Model) error {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(os.Stdin)).Run()
	return err
}

// NewRootCmd creates the top-level "weeks" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	flags := &sessionFlags{}

	root := &cobra.Command{
		Use:   "weeks",
		Short: "Your life in weeks: a 90-year calendar, one cell per week",
		Long: "weeks draws a 90 x 52 grid, one cell per week of a 90-year life, and fills\n" +
			"in the weeks already lived for a birth date. Two outlined cells mark\n" +
			"statistical life expectancy for women (81y 15w) and men (76y 10w).",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.TUI && app.interactive() {
				return runTUI(cmd, app, flags)
			}
			return runGrid(cmd, app, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.dob, "dob", "", "Birth date (YYYY-MM-DD); a valid value locks the input")
	root.PersistentFlags().Var(&flags.on, "on", "Observe the grid on this date instead of today (YYYY-MM-DD)")
	root.PersistentFlags().BoolVar(&flags.noPrompt, "no-prompt", false, "Never ask for a birth date interactively")

	root.AddCommand(
		newGridCmd(app, flags),
		newStatsCmd(app, flags),
		newMarksCmd(app, flags),
		newTUICmd(app, flags),
	)

	return root
}
