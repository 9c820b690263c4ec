package wizard

import (
	"errors"
	"fmt"

	"github.com/optimium-tools/optimium-args/internal/arguments"
	"github.com/optimium-tools/optimium-args/internal/logging"
)

var (
	// ErrSessionClosed is returned by mutations after Close.
	ErrSessionClosed = errors.New("wizard session is closed")
	// ErrNotFinalStep is returned by Export before the last step is reached.
	ErrNotFinalStep = errors.New("export is only available on the final step")
)

// FieldValue pairs a prompt with the document's current value for it.
type FieldValue struct {
	Prompt
	Value string
}

// Export is a rendered document ready to be saved by the caller.
type Export struct {
	Data     []byte
	Format   arguments.Format
	Filename string // Suggested name; the caller picks the destination
}

// Session is the state of one wizard run: the current step and the document
// being assembled. Create one per run with NewSession and discard it with
// Close.
type Session struct {
	stepper *Stepper
	doc     *arguments.Document
	closed  bool
}

// NewSession starts a session on step 1 with a default document.
func NewSession() *Session {
	s := &Session{
		stepper: NewStepper(TotalSteps),
		doc:     arguments.New(),
	}
	s.doc.EnterStep(s.stepper.Current())
	logging.Debug("Wizard session started")
	return s
}

// Step returns the current step number.
func (s *Session) Step() int {
	return s.stepper.Current()
}

// Current returns the descriptor of the current step.
func (s *Session) Current() Step {
	step, _ := StepAt(s.stepper.Current())
	return step
}

// Total returns the number of steps.
func (s *Session) Total() int {
	return s.stepper.Total()
}

// IsFirst reports whether the session is on the first step.
func (s *Session) IsFirst() bool {
	return s.stepper.IsFirst()
}

// IsLast reports whether the session is on the final step.
func (s *Session) IsLast() bool {
	return s.stepper.IsLast()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Document returns a copy of the document in its current state.
func (s *Session) Document() *arguments.Document {
	return s.doc.Clone()
}

// Advance moves to the next step. It returns false when already on the
// last step or when the session is closed.
func (s *Session) Advance() bool {
	return s.navigate("advance", s.stepper.Advance)
}

// Retreat moves to the previous step. It returns false when already on the
// first step or when the session is closed.
func (s *Session) Retreat() bool {
	return s.navigate("retreat", s.stepper.Retreat)
}

func (s *Session) navigate(action string, move func() bool) bool {
	if s.closed {
		return false
	}
	from := s.stepper.Current()
	moved := move()
	to := s.stepper.Current()
	if moved {
		s.doc.EnterStep(to)
	}
	logging.LogStepTransition(action, from, to, moved)
	return moved
}

// Set writes raw input into a field of the current step.
// Fields owned by other steps are rejected with arguments.ErrCrossStepWrite.
func (s *Session) Set(field arguments.Field, raw string) error {
	if s.closed {
		return ErrSessionClosed
	}
	step := s.stepper.Current()
	err := s.doc.SetField(step, field, raw)
	logging.LogFieldSet(step, string(field), raw, err)
	return err
}

// View returns the current step's prompts with their current values.
func (s *Session) View() []FieldValue {
	step := s.Current()
	out := make([]FieldValue, 0, len(step.Prompts))
	for _, p := range step.Prompts {
		v, err := s.doc.Value(p.Field)
		if err != nil {
			continue
		}
		out = append(out, FieldValue{Prompt: p, Value: v})
	}
	return out
}

// Export renders the document in format f. It is only allowed on the
// final step.
func (s *Session) Export(f arguments.Format) (*Export, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if !s.stepper.IsLast() {
		return nil, fmt.Errorf("step %d of %d: %w", s.stepper.Current(), s.stepper.Total(), ErrNotFinalStep)
	}
	if f == "" {
		f = arguments.FormatJSON
	}

	data, err := s.doc.Encode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to render arguments: %w", err)
	}

	return &Export{
		Data:     data,
		Format:   f,
		Filename: f.Filename(),
	}, nil
}

// Restart discards all input and returns to step 1 with a fresh document.
func (s *Session) Restart() {
	if s.closed {
		return
	}
	s.stepper.Reset()
	s.doc = arguments.New()
	s.doc.EnterStep(s.stepper.Current())
	logging.Info("Wizard session restarted")
}

// Close ends the session. Navigation becomes a no-op and mutations fail.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	logging.Debug("Wizard session closed")
}
