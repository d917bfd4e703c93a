package grid

import (
	"time"

	"github.com/alexanderramin/weeks/internal/domain"
)

// Grid is the fully evaluated 90x52 life grid.
type Grid struct {
	Snapshot Snapshot
	Cells    [domain.TotalYears][domain.WeeksPerYear]bool
	Marks    []domain.LifeExpectancyMark

	elapsed int
}

// Build evaluates every cell of the grid for birth observed at now.
func Build(birth *domain.CalendarDate, now time.Time) *Grid {
	g := &Grid{
		Snapshot: NewSnapshot(birth, now),
		Marks:    domain.LifeExpectancyMarks(),
	}
	for y := 0; y < domain.TotalYears; y++ {
		for w := 0; w < domain.WeeksPerYear; w++ {
			if g.Snapshot.Elapsed(domain.GridCoordinate{YearIndex: y, WeekIndex: w}) {
				g.Cells[y][w] = true
				g.elapsed++
			}
		}
	}
	return g
}

// Elapsed reports the classification of c. Coordinates outside the grid are
// never elapsed.
func (g *Grid) Elapsed(c domain.GridCoordinate) bool {
	if !c.Valid() {
		return false
	}
	return g.Cells[c.YearIndex][c.WeekIndex]
}

// ElapsedCount returns the number of elapsed cells.
func (g *Grid) ElapsedCount() int { return g.elapsed }

// RemainingCount returns the number of cells not yet elapsed.
func (g *Grid) RemainingCount() int { return domain.TotalWeeks - g.elapsed }

// Current returns the week in progress, if it lies inside the grid.
func (g *Grid) Current() (domain.GridCoordinate, bool) { return g.Snapshot.Current() }

// MarkAt returns the life-expectancy mark sitting on c, if any.
func (g *Grid) MarkAt(c domain.GridCoordinate) (domain.LifeExpectancyMark, bool) {
	for _, m := range g.Marks {
		if m.Coordinate() == c {
			return m, true
		}
	}
	return domain.LifeExpectancyMark{}, false
}

// WeeksUntil returns the number of cells between the current week and the
// mark, negative once the mark has elapsed. Without a birth date it counts
// from the first cell.
func (g *Grid) WeeksUntil(m domain.LifeExpectancyMark) int {
	return m.Coordinate().Ordinal() - 1 - g.elapsed
}
