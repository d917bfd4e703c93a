package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/alexanderramin/weeks/internal/grid"
)

const (
	livedGlyph     = filledBlock
	aheadGlyph     = emptyBlock
	markLivedGlyph = "▣"
	markAheadGlyph = "□"

	rowLabelWidth = 3
	rowLabelEvery = 5
)

var rulerWeeks = []int{1, 13, 26, 39, 52}

// FormatGrid renders the full 90x52 life grid with a caption, a week ruler,
// year labels on every fifth row, a legend and a summary line.
func FormatGrid(resp *app.GridResponse) string {
	var b strings.Builder

	b.WriteString(Header("Life in weeks"))
	b.WriteString("\n")
	b.WriteString(Caption(resp))
	b.WriteString("\n\n")
	b.WriteString(GridBody(resp.Grid))
	b.WriteString("\n")
	b.WriteString(Legend(resp.Grid.Marks))
	b.WriteString("\n")
	b.WriteString(Summary(resp))
	b.WriteString("\n")

	return b.String()
}

// GridBody renders the ruler and the 90 rows only.
func GridBody(g *grid.Grid) string {
	var b strings.Builder
	b.WriteString(weekRuler())
	b.WriteString("\n")
	for y := 0; y < domain.TotalYears; y++ {
		b.WriteString(rowLabel(y))
		b.WriteString(" ")
		b.WriteString(renderRow(g, y))
		b.WriteString("\n")
	}
	return b.String()
}

// Caption describes whose grid this is and when it was observed.
func Caption(resp *app.GridResponse) string {
	if !resp.Input.Present() {
		return Dim("No birth date set. Every week is still ahead.")
	}
	return fmt.Sprintf("%s %s %s %s %s %s",
		Dim("Born"), Bold(resp.Input.String()),
		Dim("·"), StyleFg.Render(Plural(resp.Age, "year")+", "+Plural(resp.WeeksThisYear, "week")+" old"),
		Dim("· as of"), StyleFg.Render(HumanDate(resp.Now)),
	)
}

// Legend explains the two cell states and the two life-expectancy outlines.
func Legend(marks []domain.LifeExpectancyMark) string {
	parts := []string{
		StyleLived.Render(livedGlyph) + " " + Dim("lived"),
		StyleAhead.Render(aheadGlyph) + " " + Dim("ahead"),
	}
	for _, m := range marks {
		parts = append(parts, MarkStyle(m.Group).Render(markAheadGlyph)+" "+Dim(fmt.Sprintf("%s %s", m.Group, m.Label())))
	}
	return strings.Join(parts, "   ")
}

// Summary renders "283 of 4,680 weeks lived (6.0%) · 4,397 ahead".
func Summary(resp *app.GridResponse) string {
	g := resp.Grid
	frac := float64(g.ElapsedCount()) / float64(domain.TotalWeeks)
	return fmt.Sprintf("%s %s %s %s",
		Bold(Count(g.ElapsedCount())),
		StyleFg.Render(fmt.Sprintf("of %s weeks lived (%s)", Count(domain.TotalWeeks), Percent(frac))),
		Dim("·"),
		StyleFg.Render(Count(g.RemainingCount())+" ahead"),
	)
}

func weekRuler() string {
	ruler := []byte(strings.Repeat(" ", domain.WeeksPerYear))
	for _, w := range rulerWeeks {
		label := strconv.Itoa(w)
		copy(ruler[w-len(label):], label)
	}
	return strings.Repeat(" ", rowLabelWidth+1) + Dim(string(ruler))
}

// rowLabel shows the year number on every fifth row only.
func rowLabel(yearIndex int) string {
	year := yearIndex + 1
	if year%rowLabelEvery != 0 {
		return strings.Repeat(" ", rowLabelWidth)
	}
	return Dim(fmt.Sprintf("%*d", rowLabelWidth, year))
}

// renderRow styles runs of identical cells together to keep escape codes short.
func renderRow(g *grid.Grid, yearIndex int) string {
	var b strings.Builder
	var run strings.Builder
	runLived := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runLived {
			b.WriteString(StyleLived.Render(run.String()))
		} else {
			b.WriteString(StyleAhead.Render(run.String()))
		}
		run.Reset()
	}

	for w := 0; w < domain.WeeksPerYear; w++ {
		c := domain.GridCoordinate{YearIndex: yearIndex, WeekIndex: w}
		lived := g.Elapsed(c)

		if m, ok := g.MarkAt(c); ok {
			flush()
			glyph := markAheadGlyph
			if lived {
				glyph = markLivedGlyph
			}
			b.WriteString(MarkStyle(m.Group).Render(glyph))
			continue
		}

		if lived != runLived {
			flush()
			runLived = lived
		}
		if lived {
			run.WriteString(livedGlyph)
		} else {
			run.WriteString(aheadGlyph)
		}
	}
	flush()
	return b.String()
}
