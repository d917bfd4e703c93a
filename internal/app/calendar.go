package app

import (
	"time"

	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/alexanderramin/weeks/internal/grid"
)

type InputSource string

const (
	SourceNone   InputSource = "none"
	SourceParam  InputSource = "param"
	SourcePicker InputSource = "picker"
)

// BirthDateInput is the authoritative birth date of a session. A nil Birth
// means no valid date was supplied and the grid renders empty.
type BirthDateInput struct {
	Birth  *domain.CalendarDate
	Source InputSource
	Locked bool
}

// Present reports whether a valid birth date is set.
func (in BirthDateInput) Present() bool {
	return in.Birth != nil
}

// PickerVisible reports whether the interactive picker should be offered.
// A date supplied by parameter locks the input and hides the picker.
func (in BirthDateInput) PickerVisible() bool {
	return !in.Locked
}

// String returns the date as YYYY-MM-DD, or "" when absent.
func (in BirthDateInput) String() string {
	if in.Birth == nil {
		return ""
	}
	return in.Birth.String()
}

type SessionRequest struct {
	// DOBParam is the raw dob parameter; empty when not supplied.
	DOBParam string
	// Now pins the observation instant. When nil the service clock is read once.
	Now *time.Time
}

type MarkView struct {
	Mark       domain.LifeExpectancyMark
	Elapsed    bool
	WeeksUntil int
}

// GridResponse is one full evaluation of the life grid.
type GridResponse struct {
	SessionID     string
	Input         BirthDateInput
	Now           time.Time
	Grid          *grid.Grid
	Age           int
	WeeksThisYear int
	Marks         []MarkView
}

type SetBirthDateErrorCode string

const (
	SetBirthDateErrLocked  SetBirthDateErrorCode = "INPUT_LOCKED"
	SetBirthDateErrInvalid SetBirthDateErrorCode = "INVALID_DATE"
)

type SetBirthDateError struct {
	Code SetBirthDateErrorCode
	Err  error
}

func (e *SetBirthDateError) Error() string {
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *SetBirthDateError) Unwrap() error {
	return e.Err
}
