package grid

import (
	"testing"
	"time"

	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuild_Counts(t *testing.T) {
	g := Build(birthPtr(2000, time.January, 1), at(2005, time.June, 15))

	assert.Equal(t, 283, g.ElapsedCount())
	assert.Equal(t, domain.TotalWeeks-283, g.RemainingCount())
	assert.True(t, g.Elapsed(domain.GridCoordinate{YearIndex: 5, WeekIndex: 22}))
	assert.False(t, g.Elapsed(domain.GridCoordinate{YearIndex: 5, WeekIndex: 23}))
	assert.False(t, g.Elapsed(domain.GridCoordinate{YearIndex: 90, WeekIndex: 0}))
}

func TestBuild_NoBirthDate(t *testing.T) {
	g := Build(nil, at(2026, time.October, 15))

	assert.Equal(t, 0, g.ElapsedCount())
	assert.Equal(t, domain.TotalWeeks, g.RemainingCount())
	_, ok := g.Current()
	assert.False(t, ok)
	assert.Len(t, g.Marks, 2)
}

func TestBuild_MarkAt(t *testing.T) {
	g := Build(birthPtr(2000, time.January, 1), at(2005, time.June, 15))

	m, ok := g.MarkAt(domain.GridCoordinate{YearIndex: 81, WeekIndex: 15})
	assert.True(t, ok)
	assert.Equal(t, domain.DemographicWomen, m.Group)

	m, ok = g.MarkAt(domain.GridCoordinate{YearIndex: 76, WeekIndex: 10})
	assert.True(t, ok)
	assert.Equal(t, domain.DemographicMen, m.Group)

	_, ok = g.MarkAt(domain.GridCoordinate{YearIndex: 0, WeekIndex: 0})
	assert.False(t, ok)
}

func TestBuild_MarksDoNotAffectClassification(t *testing.T) {
	old := Build(birthPtr(1920, time.January, 1), at(2026, time.October, 15))
	assert.True(t, old.Elapsed(domain.WomenMark.Coordinate()))
	assert.True(t, old.Elapsed(domain.MenMark.Coordinate()))

	young := Build(birthPtr(2000, time.January, 1), at(2005, time.June, 15))
	assert.False(t, young.Elapsed(domain.WomenMark.Coordinate()))
	assert.False(t, young.Elapsed(domain.MenMark.Coordinate()))
}

func TestBuild_WeeksUntil(t *testing.T) {
	g := Build(birthPtr(2000, time.January, 1), at(2005, time.June, 15))
	assert.Equal(t, 76*52+10-283, g.WeeksUntil(domain.MenMark))
	assert.Equal(t, 81*52+15-283, g.WeeksUntil(domain.WomenMark))

	old := Build(birthPtr(1920, time.January, 1), at(2026, time.October, 15))
	assert.Less(t, old.WeeksUntil(domain.MenMark), 0)
}
