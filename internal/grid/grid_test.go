package grid

import (
	"testing"
	"time"

	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func birthPtr(y int, m time.Month, d int) *domain.CalendarDate {
	return &domain.CalendarDate{Year: y, Month: m, Day: d}
}

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func countElapsed(birth *domain.CalendarDate, now time.Time) int {
	n := 0
	for y := 0; y < domain.TotalYears; y++ {
		for w := 0; w < domain.WeeksPerYear; w++ {
			if IsWeekElapsed(y, w, birth, now) {
				n++
			}
		}
	}
	return n
}

func TestIsWeekElapsed_NoBirthDateIsAllFalse(t *testing.T) {
	assert.Equal(t, 0, countElapsed(nil, at(2026, time.October, 15)))
}

func TestIsWeekElapsed_BirthDayItself(t *testing.T) {
	assert.Equal(t, 0, countElapsed(birthPtr(2000, time.January, 1), at(2000, time.January, 1)))
}

func TestIsWeekElapsed_OneFullWeek(t *testing.T) {
	birth := birthPtr(2000, time.January, 1)
	now := at(2000, time.January, 8)

	assert.True(t, IsWeekElapsed(0, 0, birth, now))
	assert.False(t, IsWeekElapsed(0, 1, birth, now))
	assert.Equal(t, 1, countElapsed(birth, now))
}

func TestIsWeekElapsed_WeekInProgressIsNotElapsed(t *testing.T) {
	birth := birthPtr(2000, time.January, 1)
	assert.False(t, IsWeekElapsed(0, 0, birth, time.Date(2000, time.January, 7, 23, 59, 0, 0, time.UTC)))
}

func TestIsWeekElapsed_MidLife(t *testing.T) {
	birth := birthPtr(2000, time.January, 1)
	now := at(2005, time.June, 15)

	// 165 days since 2005-01-01 -> 23 full weeks.
	for y := 0; y < domain.TotalYears; y++ {
		for w := 0; w < domain.WeeksPerYear; w++ {
			got := IsWeekElapsed(y, w, birth, now)
			switch {
			case y < 5:
				require.True(t, got, "(%d,%d)", y, w)
			case y == 5:
				require.Equal(t, w < 23, got, "(%d,%d)", y, w)
			default:
				require.False(t, got, "(%d,%d)", y, w)
			}
		}
	}
	assert.Equal(t, 5*52+23, countElapsed(birth, now))
}

func TestIsWeekElapsed_CurrentRowCappedAt52(t *testing.T) {
	birth := birthPtr(2000, time.January, 1)
	now := at(2000, time.December, 31)

	for w := 0; w < domain.WeeksPerYear; w++ {
		assert.True(t, IsWeekElapsed(0, w, birth, now), "week %d", w)
	}
	assert.False(t, IsWeekElapsed(1, 0, birth, now))
	assert.False(t, IsWeekElapsed(0, 52, birth, now))
}

func TestIsWeekElapsed_NowBeforeBirth(t *testing.T) {
	assert.Equal(t, 0, countElapsed(birthPtr(2030, time.May, 1), at(2026, time.October, 15)))
}

func TestIsWeekElapsed_BeyondNinetyYears(t *testing.T) {
	assert.Equal(t, domain.TotalWeeks, countElapsed(birthPtr(1920, time.March, 3), at(2026, time.October, 15)))
}

func TestSnapshot_MatchesIsWeekElapsed(t *testing.T) {
	cases := []struct {
		birth *domain.CalendarDate
		now   time.Time
	}{
		{nil, at(2026, time.October, 15)},
		{birthPtr(2000, time.January, 1), at(2000, time.January, 1)},
		{birthPtr(2000, time.January, 1), at(2000, time.January, 8)},
		{birthPtr(2000, time.January, 1), at(2005, time.June, 15)},
		{birthPtr(2000, time.February, 29), at(2023, time.March, 1)},
		{birthPtr(1950, time.July, 4), at(2026, time.October, 15)},
	}
	for _, tc := range cases {
		s := NewSnapshot(tc.birth, tc.now)
		for y := 0; y < domain.TotalYears; y++ {
			for w := 0; w < domain.WeeksPerYear; w++ {
				c := domain.GridCoordinate{YearIndex: y, WeekIndex: w}
				require.Equal(t, IsWeekElapsed(y, w, tc.birth, tc.now), s.Elapsed(c),
					"birth=%v now=%s cell=%v", tc.birth, tc.now, c)
			}
		}
	}
}

func TestSnapshot_CopiesBirth(t *testing.T) {
	birth := birthPtr(2000, time.January, 1)
	s := NewSnapshot(birth, at(2010, time.January, 1))
	birth.Year = 1900

	assert.Equal(t, 2000, s.Birth.Year)
	assert.Equal(t, 10, s.Age)
}

func TestSnapshot_Current(t *testing.T) {
	s := NewSnapshot(birthPtr(2000, time.January, 1), at(2005, time.June, 15))
	c, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, domain.GridCoordinate{YearIndex: 5, WeekIndex: 23}, c)
	assert.False(t, s.Elapsed(c))

	_, ok = NewSnapshot(nil, at(2005, time.June, 15)).Current()
	assert.False(t, ok)

	_, ok = NewSnapshot(birthPtr(2000, time.January, 1), at(2000, time.December, 31)).Current()
	assert.False(t, ok, "the day past week 52 has no cell")
}
