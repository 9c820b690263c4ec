package wizard

// Stepper tracks the current step of the wizard.
//
// The step is always within [1, Total]. Navigation past either end is a
// no-op, and the methods report whether the step actually changed.
type Stepper struct {
	current int
	total   int
}

// NewStepper returns a stepper positioned on step 1. A total below one is
// treated as a single step.
func NewStepper(total int) *Stepper {
	if total < 1 {
		total = 1
	}
	return &Stepper{current: 1, total: total}
}

// Current returns the current step number.
func (s *Stepper) Current() int {
	return s.current
}

// Total returns the number of steps.
func (s *Stepper) Total() int {
	return s.total
}

// IsFirst reports whether the stepper is on step 1.
func (s *Stepper) IsFirst() bool {
	return s.current == 1
}

// IsLast reports whether the stepper is on the final step.
func (s *Stepper) IsLast() bool {
	return s.current == s.total
}

// Advance moves to the next step. It returns false on the last step.
func (s *Stepper) Advance() bool {
	if s.current >= s.total {
		return false
	}
	s.current++
	return true
}

// Retreat moves to the previous step. It returns false on step 1.
func (s *Stepper) Retreat() bool {
	if s.current <= 1 {
		return false
	}
	s.current--
	return true
}

// Reset moves back to step 1.
func (s *Stepper) Reset() {
	s.current = 1
}
