package wizard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/optimium-tools/optimium-args/internal/arguments"
)

// Answers holds raw input keyed by field, for running the wizard without a
// user at the keyboard.
type Answers map[arguments.Field]string

// Complete walks from the current step to the last one, writing each step's
// answers before advancing. Fields without an answer keep their current
// value. Answers for fields no step owns are reported as an error before
// anything is written.
func (s *Session) Complete(answers Answers) error {
	if s.closed {
		return ErrSessionClosed
	}

	var stray []string
	for field := range answers {
		if arguments.StepOf(field) == 0 {
			stray = append(stray, string(field))
		}
	}
	if len(stray) > 0 {
		sort.Strings(stray)
		return fmt.Errorf("no step accepts %s: %w", strings.Join(stray, ", "), arguments.ErrCrossStepWrite)
	}

	for {
		for _, field := range s.Current().Fields() {
			raw, ok := answers[field]
			if !ok {
				continue
			}
			if err := s.Set(field, raw); err != nil {
				return err
			}
		}
		if !s.Advance() {
			return nil
		}
	}
}
