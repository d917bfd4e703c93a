// Package datemath holds the calendar arithmetic behind the life grid:
// parsing birth dates, anniversary-based age, and weeks since the last
// birthday. Everything here is pure and works in the local calendar of the
// time.Time it is given.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/alexanderramin/weeks/internal/domain"
)

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

const (
	daysPerWeek   = 7
	secondsPerDay = 24 * 60 * 60
)

var datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// ParseDate validates text as a real YYYY-MM-DD calendar date.
// A candidate is accepted only when building it and reading the components
// back reproduces the input exactly, so 2021-02-30 is rejected instead of
// rolling forward into March.
func ParseDate(text string) (domain.CalendarDate, error) {
	if !datePattern.MatchString(text) {
		return domain.CalendarDate{}, fmt.Errorf("%q: %w", text, ErrMalformedDate)
	}

	year, _ := strconv.Atoi(text[0:4])
	month, _ := strconv.Atoi(text[5:7])
	day, _ := strconv.Atoi(text[8:10])
	if year == 0 || month == 0 || day == 0 {
		return domain.CalendarDate{}, fmt.Errorf("%q: %w", text, ErrInvalidDate)
	}

	want := domain.CalendarDate{Year: year, Month: time.Month(month), Day: day}
	if domain.NewCalendarDate(want.In(time.Local)) != want {
		return domain.CalendarDate{}, fmt.Errorf("%q: %w", text, ErrInvalidDate)
	}
	return want, nil
}

// AgeInYears returns the number of completed years between birth and on.
// It is never negative, even when on precedes birth.
func AgeInYears(birth domain.CalendarDate, on time.Time) int {
	y, m, d := on.Date()
	age := y - birth.Year
	if m < birth.Month || (m == birth.Month && d < birth.Day) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// LastBirthdayOnOrBefore returns local midnight of the most recent birthday
// anniversary. A Feb 29 birthday lands on Mar 1 in non-leap years.
func LastBirthdayOnOrBefore(birth domain.CalendarDate, on time.Time) time.Time {
	age := AgeInYears(birth, on)
	return time.Date(birth.Year+age, birth.Month, birth.Day, 0, 0, 0, 0, on.Location())
}

// WeeksSinceLastBirthday returns the number of whole 7-day periods between
// the last birthday and on. It is 0 on the birthday itself and for any
// non-positive span. The result is not clamped to a 52-week year.
func WeeksSinceLastBirthday(birth domain.CalendarDate, on time.Time) int {
	days := DaysBetween(LastBirthdayOnOrBefore(birth, on), on)
	if days <= 0 {
		return 0
	}
	return days / daysPerWeek
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from from to to, ignoring time of day.
// Days are counted on the date components so a DST shift inside the span
// does not shorten it.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int((t.Unix() - f.Unix()) / secondsPerDay)
}
