// Package wizard owns the state of one registration session: the answers, the
// per-field errors and touched marks, and the screen cursor that moves through
// the three screens to the submitted review.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/rs/zerolog"

	"github.com/jask/regform/internal/form"
)

var (
	// ErrBlocked is returned when the active screen has failing fields.
	ErrBlocked = errors.New("screen has invalid fields")
	// ErrInvalidTransition is returned for an action the current state does not offer.
	ErrInvalidTransition = errors.New("action not available here")
	// ErrSubmitted is returned when answers are edited on the review screen.
	ErrSubmitted = errors.New("form already submitted")
)

// Session is the explicit state object behind the form UI. All methods are
// meant to be called from one goroutine, the UI event loop.
type Session struct {
	Answers form.Answers
	Errors  form.Errors
	Touched form.Touched

	reference string
	machine   *fsm.FSM
	log       zerolog.Logger
	newID     func() string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition traces.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithIDGenerator replaces the submission reference generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithAnswers seeds the session with pre-filled answers.
func WithAnswers(a form.Answers) Option {
	return func(s *Session) { s.Answers = a.Clone() }
}

// New returns a session on the first screen with empty answers.
func New(opts ...Option) *Session {
	s := &Session{
		Errors:  form.Errors{},
		Touched: form.Touched{},
		log:     zerolog.Nop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.machine = newMachine(s)
	return s
}

// Screen returns the active screen, or 0 once submitted.
func (s *Session) Screen() form.Screen {
	return screenOf(s.machine.Current())
}

// Submitted reports whether the review screen is showing.
func (s *Session) Submitted() bool {
	return s.machine.Current() == stateSubmitted
}

// Reference is the id assigned at submission, empty before.
func (s *Session) Reference() string {
	return s.reference
}

// SetField stores value and re-validates the field if it was already touched.
func (s *Session) SetField(f form.Field, value string) error {
	if s.Submitted() {
		return ErrSubmitted
	}
	if err := s.Answers.Set(f, value); err != nil {
		return fmt.Errorf("set %s: %w", f, err)
	}
	if s.Touched[f] {
		s.Errors.Set(f, form.ValidateField(f, s.Answers.Value(f)))
	}
	return nil
}

// Blur marks f as touched and validates it.
func (s *Session) Blur(f form.Field) {
	if !f.Valid() || s.Submitted() {
		return
	}
	s.Touched[f] = true
	s.Errors.Set(f, form.ValidateField(f, s.Answers.Value(f)))
}

// VisibleError returns the message for f once the user has touched it.
func (s *Session) VisibleError(f form.Field) string {
	if !s.Touched[f] {
		return ""
	}
	return s.Errors.Get(f)
}

// AddSkill selects a catalog skill; repeats are ignored.
func (s *Session) AddSkill(skill string) bool {
	if s.Submitted() {
		return false
	}
	return s.Answers.AddSkill(skill)
}

// RemoveSkill drops skill if selected.
func (s *Session) RemoveSkill(skill string) bool {
	if s.Submitted() {
		return false
	}
	return s.Answers.RemoveSkill(skill)
}

// Next advances to the following screen when the active one passes.
func (s *Session) Next(ctx context.Context) error {
	return s.fire(ctx, eventNext)
}

// Back returns to the previous screen without validating.
func (s *Session) Back(ctx context.Context) error {
	return s.fire(ctx, eventBack)
}

// Submit moves from the last screen to the review when the bio passes.
func (s *Session) Submit(ctx context.Context) error {
	return s.fire(ctx, eventSubmit)
}

// Edit leaves the review for the first screen. Answers are kept; errors and
// touched marks are cleared.
func (s *Session) Edit(ctx context.Context) error {
	return s.fire(ctx, eventEdit)
}

// Advance is Next on the first two screens and Submit on the last.
func (s *Session) Advance(ctx context.Context) error {
	if s.Screen() == form.ScreenAdditional {
		return s.Submit(ctx)
	}
	return s.Next(ctx)
}

// gate validates the active screen. Every field of the screen becomes touched
// so all failures are visible at once.
func (s *Session) gate(screen form.Screen) error {
	s.Errors = form.ValidateScreen(s.Answers, screen)
	for _, f := range screen.Fields() {
		s.Touched[f] = true
	}
	if s.Errors.Empty() {
		return nil
	}
	failing := make([]string, 0, len(s.Errors))
	for _, f := range s.Errors.Fields() {
		failing = append(failing, f.String())
	}
	s.log.Debug().Int("screen", int(screen)).Strs("fields", failing).Msg("screen gate blocked")
	return ErrBlocked
}

func (s *Session) fire(ctx context.Context, event string) error {
	from := s.machine.Current()
	err := s.machine.Event(ctx, event)
	if err == nil {
		s.log.Debug().Str("event", event).Str("from", from).Str("to", s.machine.Current()).Msg("transition")
		return nil
	}

	var canceled fsm.CanceledError
	if errors.As(err, &canceled) {
		if canceled.Err != nil {
			return canceled.Err
		}
		return ErrBlocked
	}
	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, from)
	}
	return fmt.Errorf("%s from %s: %w", event, from, err)
}
