package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStats_MidLife(t *testing.T) {
	out := stripANSI(FormatStats(midLife()))

	assert.Contains(t, out, "YOUR LIFE IN WEEKS")
	assert.Contains(t, out, "2000-01-01 (param)")
	assert.Contains(t, out, "5 years, 23 weeks")
	assert.Contains(t, out, "283 of 4,680 weeks")
	assert.Contains(t, out, "4,397 weeks")
	assert.Contains(t, out, "year 6, week 24")
	assert.Contains(t, out, "in 3,679 weeks")
	assert.Contains(t, out, "in 3,944 weeks")
}

func TestFormatStats_NoBirthDate(t *testing.T) {
	out := stripANSI(FormatStats(gridResponse(nil, time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))))

	assert.Contains(t, out, "not set")
	assert.NotContains(t, out, "This week")
	assert.Contains(t, out, "--")
}

func TestFormatMarks(t *testing.T) {
	out := stripANSI(FormatMarks(midLife()))

	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "women")
	assert.Contains(t, out, "81y 15w")
	assert.Contains(t, out, "row 82, col 16")
	assert.Contains(t, out, "row 77, col 11")
}

func TestMarkDistance(t *testing.T) {
	mark := domain.MenMark
	assert.Equal(t, "--", stripANSI(MarkDistance(false, app.MarkView{Mark: mark, WeeksUntil: 5})))
	assert.Equal(t, "in 1 week", stripANSI(MarkDistance(true, app.MarkView{Mark: mark, WeeksUntil: 1})))
	assert.Equal(t, "this week", stripANSI(MarkDistance(true, app.MarkView{Mark: mark})))
	assert.Equal(t, "passed 1,200 weeks ago", stripANSI(MarkDistance(true, app.MarkView{Mark: mark, WeeksUntil: -1200})))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 year", Plural(1, "year"))
	assert.Equal(t, "0 weeks", Plural(0, "week"))
	assert.Equal(t, "4,680 weeks", Plural(4680, "week"))
}
