package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	weeksapp "github.com/alexanderramin/weeks/internal/app"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// sessionFlags are the persistent flags shared by every command.
type sessionFlags struct {
	dob      string
	on       dateValue
	noPrompt bool
}

// dobParam returns the dob parameter: the flag when given, else config.
func (f *sessionFlags) dobParam(cmd *cobra.Command, app *App) string {
	if cmd.Flags().Changed("dob") {
		return f.dob
	}
	return app.Config.DOB
}

func (f *sessionFlags) request(cmd *cobra.Command, app *App) weeksapp.SessionRequest {
	req := weeksapp.SessionRequest{DOBParam: f.dobParam(cmd, app)}
	if f.on.set {
		now := f.on.date.In(time.Local)
		req.Now = &now
	}
	return req
}

// startSession resolves the dob parameter once and, when no valid date was
// supplied, offers the picker on an interactive terminal.
func startSession(ctx context.Context, cmd *cobra.Command, app *App, flags *sessionFlags) (weeksapp.CalendarSession, error) {
	sess := app.Calendar.StartSession(ctx, flags.request(cmd, app))

	in := sess.Input()
	if in.Present() || !in.PickerVisible() || flags.noPrompt || !app.interactive() {
		return sess, nil
	}

	var value string
	if err := app.promptBirthDate(&value); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return sess, nil
		}
		return nil, fmt.Errorf("reading birth date: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return sess, nil
	}
	if err := sess.SetBirthDate(ctx, value); err != nil {
		return nil, fmt.Errorf("setting birth date: %w", err)
	}
	return sess, nil
}
