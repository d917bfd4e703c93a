package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate formats a date like "Jun 15, 2005".
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Count renders n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Plural returns "1 week" / "3 weeks" with thousands separators.
func Plural(n int, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%s %s", Count(n), unit)
	}
	return fmt.Sprintf("%s %ss", Count(n), unit)
}

// Percent formats a fraction in [0,1] with one decimal place.
func Percent(frac float64) string {
	return fmt.Sprintf("%.1f%%", frac*100)
}
