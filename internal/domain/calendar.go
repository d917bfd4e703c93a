package domain

import (
	"fmt"
	"time"
)

// CalendarDate is a year/month/day triple with no time of day and no zone.
// Arithmetic happens in the caller's local calendar via In.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns the calendar date of t in t's own location.
func NewCalendarDate(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// In returns local midnight of the date in loc. Out-of-range components
// are normalized the way time.Date normalizes them.
func (d CalendarDate) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Valid reports whether the month is in [1,12] and the day exists in that month.
func (d CalendarDate) Valid() bool {
	if d.Year <= 0 || d.Month < time.January || d.Month > time.December || d.Day <= 0 {
		return false
	}
	return NewCalendarDate(d.In(time.UTC)) == d
}

// Before reports whether d falls strictly before other on the calendar.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
