package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/domain"
)

const statsProgressBarWidth = 30

// FormatStats renders the numbers behind the grid in a box.
func FormatStats(resp *app.GridResponse) string {
	g := resp.Grid
	frac := float64(g.ElapsedCount()) / float64(domain.TotalWeeks)

	birth := Dim("not set")
	if resp.Input.Present() {
		birth = Bold(resp.Input.String()) + " " + Dim("("+string(resp.Input.Source)+")")
	}

	rows := [][]string{
		{"Birth date", birth},
		{"As of", StyleFg.Render(HumanDate(resp.Now))},
		{"Age", StyleFg.Render(Plural(resp.Age, "year") + ", " + Plural(resp.WeeksThisYear, "week"))},
		{"Lived", StyleFg.Render(fmt.Sprintf("%s of %s weeks", Count(g.ElapsedCount()), Count(domain.TotalWeeks)))},
		{"Ahead", StyleFg.Render(Plural(g.RemainingCount(), "week"))},
		{"Progress", RenderProgress(frac, statsProgressBarWidth)},
	}
	if c, ok := g.Current(); ok {
		rows = append(rows, []string{"This week", StyleFg.Render(fmt.Sprintf("year %d, week %d", c.YearIndex+1, c.WeekIndex+1))})
	}
	for _, m := range resp.Marks {
		rows = append(rows, []string{
			fmt.Sprintf("Expectancy (%s)", m.Mark.Group),
			MarkDistance(resp.Input.Present(), m),
		})
	}

	return RenderBox("Your life in weeks", keyValues(rows)) + "\n"
}

// FormatMarks lists the life-expectancy marks as a table.
func FormatMarks(resp *app.GridResponse) string {
	headers := []string{"GROUP", "AGE", "CELL", "STATUS"}
	rows := make([][]string, 0, len(resp.Marks))
	for _, m := range resp.Marks {
		c := m.Mark.Coordinate()
		rows = append(rows, []string{
			MarkStyle(m.Mark.Group).Render(string(m.Mark.Group)),
			m.Mark.Label(),
			fmt.Sprintf("row %d, col %d", c.YearIndex+1, c.WeekIndex+1),
			MarkDistance(resp.Input.Present(), m),
		})
	}
	return RenderTable(headers, rows)
}

// MarkDistance describes how far the current week is from a mark.
func MarkDistance(hasBirth bool, m app.MarkView) string {
	switch {
	case !hasBirth:
		return Dim("--")
	case m.WeeksUntil > 0:
		return StyleGreen.Render("in " + Plural(m.WeeksUntil, "week"))
	case m.WeeksUntil == 0:
		return StyleYellow.Render("this week")
	default:
		return StyleRed.Render("passed " + Plural(-m.WeeksUntil, "week") + " ago")
	}
}

func keyValues(rows [][]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, Dim(fmt.Sprintf("%-*s", width, r[0]))+"  "+r[1])
	}
	return strings.Join(lines, "\n")
}
