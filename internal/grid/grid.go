// Package grid classifies every week of a 90-year life grid as elapsed or
// not, for one birth date observed at one instant.
package grid

import (
	"time"

	"github.com/alexanderramin/weeks/internal/datemath"
	"github.com/alexanderramin/weeks/internal/domain"
)

// IsWeekElapsed reports whether the week at (yearIndex, weekIndex) has fully
// completed by now. A nil birth means no valid birth date: nothing is elapsed.
// A week still in progress is not elapsed.
func IsWeekElapsed(yearIndex, weekIndex int, birth *domain.CalendarDate, now time.Time) bool {
	if birth == nil {
		return false
	}
	age := datemath.AgeInYears(*birth, now)
	switch {
	case yearIndex < age:
		return true
	case yearIndex > age:
		return false
	default:
		return weekIndex < weeksThisYear(*birth, now)
	}
}

func weeksThisYear(birth domain.CalendarDate, now time.Time) int {
	return min(domain.WeeksPerYear, datemath.WeeksSinceLastBirthday(birth, now))
}

// Snapshot caches the per-(birth, now) values IsWeekElapsed derives so a
// full grid pass does the date arithmetic once. Elapsed answers exactly as
// IsWeekElapsed would.
type Snapshot struct {
	Birth         *domain.CalendarDate
	Now           time.Time
	Age           int
	WeeksThisYear int
}

// NewSnapshot captures birth and now. A nil birth yields a snapshot in which
// nothing is elapsed.
func NewSnapshot(birth *domain.CalendarDate, now time.Time) Snapshot {
	s := Snapshot{Now: now}
	if birth == nil {
		return s
	}
	b := *birth
	s.Birth = &b
	s.Age = datemath.AgeInYears(b, now)
	s.WeeksThisYear = weeksThisYear(b, now)
	return s
}

// Elapsed reports whether the cell at c has fully completed.
func (s Snapshot) Elapsed(c domain.GridCoordinate) bool {
	if s.Birth == nil {
		return false
	}
	switch {
	case c.YearIndex < s.Age:
		return true
	case c.YearIndex > s.Age:
		return false
	default:
		return c.WeekIndex < s.WeeksThisYear
	}
}

// Current returns the coordinate of the week in progress and whether it lies
// inside the grid. There is no current week without a birth date, past the
// last row, or in the one or two days a year beyond week 52.
func (s Snapshot) Current() (domain.GridCoordinate, bool) {
	if s.Birth == nil {
		return domain.GridCoordinate{}, false
	}
	c := domain.GridCoordinate{YearIndex: s.Age, WeekIndex: s.WeeksThisYear}
	return c, c.Valid()
}
