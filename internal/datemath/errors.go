package datemath

import "errors"

var (
	// ErrMalformedDate indicates the text is not shaped like YYYY-MM-DD.
	ErrMalformedDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrInvalidDate indicates a well-shaped date that does not exist on the
	// calendar (zero components, month 13, Feb 30, ...).
	ErrInvalidDate = errors.New("date does not exist on the calendar")
)
