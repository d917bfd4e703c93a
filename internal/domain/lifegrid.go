package domain

import "fmt"

const (
	// TotalYears is the number of year-rows in the life grid.
	TotalYears = 90
	// WeeksPerYear is the number of week-cells per row. No leap-week correction.
	WeeksPerYear = 52
	// TotalWeeks is the number of cells in the grid.
	TotalWeeks = TotalYears * WeeksPerYear
)

type Demographic string

const (
	DemographicWomen Demographic = "women"
	DemographicMen   Demographic = "men"
)

// GridCoordinate addresses one week-cell: row = year of life (0 = birth year),
// column = week within that year.
type GridCoordinate struct {
	YearIndex int
	WeekIndex int
}

// Valid reports whether the coordinate lies inside the 90x52 grid.
func (c GridCoordinate) Valid() bool {
	return c.YearIndex >= 0 && c.YearIndex < TotalYears &&
		c.WeekIndex >= 0 && c.WeekIndex < WeeksPerYear
}

// Ordinal returns the 1-based week number of the coordinate across the whole grid.
func (c GridCoordinate) Ordinal() int {
	return c.YearIndex*WeeksPerYear + c.WeekIndex + 1
}

// LifeExpectancyMark is a fixed annotation at the statistical life expectancy
// of a demographic group. It never affects elapsed classification.
type LifeExpectancyMark struct {
	Group     Demographic
	YearIndex int
	WeekIndex int
}

// Coordinate returns the grid cell the mark sits on.
func (m LifeExpectancyMark) Coordinate() GridCoordinate {
	return GridCoordinate{YearIndex: m.YearIndex, WeekIndex: m.WeekIndex}
}

// Label returns a short "81y 15w" description.
func (m LifeExpectancyMark) Label() string {
	return fmt.Sprintf("%dy %dw", m.YearIndex, m.WeekIndex)
}

var (
	// WomenMark is life expectancy for women: 81 years and 15 weeks.
	WomenMark = LifeExpectancyMark{Group: DemographicWomen, YearIndex: 81, WeekIndex: 15}
	// MenMark is life expectancy for men: 76 years and 10 weeks.
	MenMark = LifeExpectancyMark{Group: DemographicMen, YearIndex: 76, WeekIndex: 10}
)

// LifeExpectancyMarks returns both marks, women first.
func LifeExpectancyMarks() []LifeExpectancyMark {
	return []LifeExpectancyMark{WomenMark, MenMark}
}
