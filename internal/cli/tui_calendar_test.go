package cli

import (
	"context"
	"testing"

	weeksapp "github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/service"
	"github.com/alexanderramin/weeks/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTUIDriver(t *testing.T, dobParam string, opts ...teatest.Option) *teatest.Driver {
	t.Helper()
	svc := service.NewCalendarService(service.FixedClock(fixedNow))
	sess := svc.StartSession(context.Background(), weeksapp.SessionRequest{DOBParam: dobParam})
	d := teatest.New(t, newTUIModel(context.Background(), sess), opts...)
	d.DrainInit()
	return d
}

func tuiState(t *testing.T, d *teatest.Driver) tuiModel {
	t.Helper()
	m, ok := d.Model.(tuiModel)
	require.True(t, ok)
	return m
}

func TestTUI_StartsEmptyWithFocusedInput(t *testing.T) {
	d := newTUIDriver(t, "")

	m := tuiState(t, d)
	assert.True(t, m.input.Focused())
	view := stripANSI(d.View())
	assert.Contains(t, view, "Birth date ❯")
	assert.Contains(t, view, "No birth date set")
	assert.Contains(t, view, "0 of 4,680 weeks lived")
}

func TestTUI_CommitDateFillsGrid(t *testing.T) {
	d := newTUIDriver(t, "")
	d.Type("2000-01-01")
	d.PressEnter()

	m := tuiState(t, d)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, 283, m.resp.Grid.ElapsedCount())
	assert.Equal(t, weeksapp.SourcePicker, m.session.Input().Source)
	assert.Contains(t, stripANSI(d.View()), "283 of 4,680 weeks lived")
}

func TestTUI_ReplacingDateRecomputes(t *testing.T) {
	d := newTUIDriver(t, "")
	d.Type("2000-01-01")
	d.PressEnter()
	d.PressBackspace(10)
	d.Type("2005-01-01")
	d.PressEnter()

	m := tuiState(t, d)
	assert.Equal(t, 23, m.resp.Grid.ElapsedCount())
	assert.Contains(t, stripANSI(d.View()), "Born 2005-01-01")
}

func TestTUI_InvalidDateKeepsPreviousGrid(t *testing.T) {
	d := newTUIDriver(t, "")
	d.Type("2000-01-01")
	d.PressEnter()
	d.PressBackspace(10)
	d.Type("2023-02-30")
	d.PressEnter()

	m := tuiState(t, d)
	assert.Equal(t, "that date does not exist", m.errMsg)
	assert.Equal(t, 283, m.resp.Grid.ElapsedCount())
	assert.Contains(t, stripANSI(d.View()), "that date does not exist")
}

func TestTUI_EmptyCommitAsksForDate(t *testing.T) {
	d := newTUIDriver(t, "")
	d.PressEnter()

	assert.Equal(t, "enter a birth date", tuiState(t, d).errMsg)
}

func TestTUI_LockedInput(t *testing.T) {
	d := newTUIDriver(t, "2000-01-01")

	m := tuiState(t, d)
	assert.False(t, m.input.Focused())
	view := stripANSI(d.View())
	assert.Contains(t, view, "2000-01-01 (locked)")
	assert.NotContains(t, view, "❯")

	d.Type("1990")
	assert.Equal(t, 283, tuiState(t, d).resp.Grid.ElapsedCount())

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestTUI_QOnlyQuitsWhenInputUnfocused(t *testing.T) {
	d := newTUIDriver(t, "")
	d.PressKey('q')
	assert.False(t, d.Quitting)

	d.PressEsc()
	assert.True(t, d.Quitting)
}

func TestTUI_ScrollIndicator(t *testing.T) {
	d := newTUIDriver(t, "2000-01-01", teatest.WithSize(80, 30))
	assert.Contains(t, stripANSI(d.View()), "[TOP]")

	d.PressDown()
	view := stripANSI(d.View())
	assert.NotContains(t, view, "[TOP]")
	assert.Contains(t, view, "%]")
}
