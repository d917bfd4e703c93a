package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/weeks/internal/cli/formatter"
	"github.com/alexanderramin/weeks/internal/datemath"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func weeksHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// birthDateInput returns a huh.Input that only accepts real calendar dates.
func birthDateInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Birth date").
		Description("YYYY-MM-DD, leave blank to skip").
		Placeholder("1990-05-17").
		CharLimit(len(datemath.DateLayout)).
		Value(value).
		Validate(validateBirthDate)
}

// birthDateForm returns a themed single-field Form for collecting a birth date.
func birthDateForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(birthDateInput(value)),
	).WithTheme(weeksHuhTheme()).WithShowHelp(false)
}

// validateBirthDate accepts empty or a date that exists on the calendar.
func validateBirthDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := datemath.ParseDate(s); err != nil {
		return errors.New(dateErrorMessage(err))
	}
	return nil
}

// dateErrorMessage turns a ParseDate error into a short user-facing hint.
func dateErrorMessage(err error) string {
	switch {
	case errors.Is(err, datemath.ErrMalformedDate):
		return "use YYYY-MM-DD format"
	case errors.Is(err, datemath.ErrInvalidDate):
		return "that date does not exist"
	default:
		return fmt.Sprintf("invalid date: %v", err)
	}
}
