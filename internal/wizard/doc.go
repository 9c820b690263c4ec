// Package wizard sequences the six steps that fill in a user arguments
// document.
//
// A Session is the whole state of one wizard run. It pairs a Stepper (the
// current step, clamped to [1, 6]) with the arguments.Document being
// assembled, and only lets the current step write its own fields:
//
//	s := wizard.NewSession()
//	defer s.Close()
//
//	_ = s.Set(arguments.FieldDeviceName, "edge01") // step 1
//	s.Advance()                                     // step 2
//	s.Retreat()                                     // back to step 1
//	s.Retreat()                                     // still step 1, returns false
//
// On the final step Export renders the document; writing it somewhere is up
// to the caller. The terminal UI in package tui and the export command are
// the two callers.
//
// Steps and their prompts are static. Steps returns them in order with the
// widget kind, choices and illustrative asset for each.
package wizard
