package app

import (
	"context"
	"time"
)

type CalendarUseCase interface {
	StartSession(ctx context.Context, req SessionRequest) CalendarSession
}

// CalendarSession holds one birth-date input and one captured instant.
// The instant is never re-sampled; every successful SetBirthDate replaces
// the input wholesale and the next View recomputes all cells.
type CalendarSession interface {
	ID() string
	Now() time.Time
	Input() BirthDateInput
	SetBirthDate(ctx context.Context, text string) error
	View(ctx context.Context) *GridResponse
}
