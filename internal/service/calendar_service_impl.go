package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/datemath"
	"github.com/alexanderramin/weeks/internal/grid"
	"github.com/google/uuid"
)

type calendarService struct {
	clock    Clock
	observer UseCaseObserver
}

// NewCalendarService returns the calendar use case. A nil clock reads the
// system clock.
func NewCalendarService(clock Clock, observers ...UseCaseObserver) app.CalendarUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &calendarService{
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *calendarService) StartSession(ctx context.Context, req app.SessionRequest) app.CalendarSession {
	start := time.Now()

	now := s.clock.Now()
	if req.Now != nil {
		now = *req.Now
	}

	sess := &session{
		id:       uuid.NewString(),
		now:      now,
		input:    ResolveInput(req.DOBParam),
		observer: s.observer,
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "resolve_input",
		SessionID: sess.id,
		Duration:  time.Since(start),
		Fields: map[string]any{
			"param_supplied": req.DOBParam != "",
			"source":         string(sess.input.Source),
			"locked":         sess.input.Locked,
		},
	})
	return sess
}

// session is not safe for concurrent use.
type session struct {
	id       string
	now      time.Time
	input    app.BirthDateInput
	observer UseCaseObserver
}

func (s *session) ID() string                { return s.id }
func (s *session) Now() time.Time            { return s.now }
func (s *session) Input() app.BirthDateInput { return s.input }

func (s *session) SetBirthDate(ctx context.Context, text string) error {
	start := time.Now()
	err := s.setBirthDate(text)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "set_birth_date",
		SessionID: s.id,
		Duration:  time.Since(start),
		Err:       err,
		Fields:    map[string]any{"source": string(s.input.Source)},
	})
	return err
}

func (s *session) setBirthDate(text string) error {
	if s.input.Locked {
		return &app.SetBirthDateError{Code: app.SetBirthDateErrLocked, Err: ErrInputLocked}
	}
	birth, err := datemath.ParseDate(text)
	if err != nil {
		return &app.SetBirthDateError{Code: app.SetBirthDateErrInvalid, Err: err}
	}
	s.input = app.BirthDateInput{Birth: &birth, Source: app.SourcePicker}
	return nil
}

func (s *session) View(ctx context.Context) *app.GridResponse {
	start := time.Now()

	g := grid.Build(s.input.Birth, s.now)
	resp := &app.GridResponse{
		SessionID:     s.id,
		Input:         s.input,
		Now:           s.now,
		Grid:          g,
		Age:           g.Snapshot.Age,
		WeeksThisYear: g.Snapshot.WeeksThisYear,
	}
	for _, m := range g.Marks {
		resp.Marks = append(resp.Marks, app.MarkView{
			Mark:       m,
			Elapsed:    g.Elapsed(m.Coordinate()),
			WeeksUntil: g.WeeksUntil(m),
		})
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "build_grid",
		SessionID: s.id,
		Duration:  time.Since(start),
		Fields: map[string]any{
			"birth":   s.input.String(),
			"age":     resp.Age,
			"elapsed": g.ElapsedCount(),
		},
	})
	return resp
}

// IsInputLocked reports whether err came from replacing a locked input.
func IsInputLocked(err error) bool {
	return errors.Is(err, ErrInputLocked)
}
