package wizard

import (
	"fmt"

	"github.com/optimium-tools/optimium-args/internal/arguments"
)

// Asset names shown alongside steps. The presentation layer decides how to
// display them.
const (
	AssetDefault = "optimium.png"
	AssetRemote  = "optimium2.png"
)

// Kind tells the presentation layer which widget a prompt needs.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindChoice
	KindToggle
)

// String returns the widget name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindChoice:
		return "choice"
	case KindToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Prompt describes one input field of a step.
type Prompt struct {
	Field   arguments.Field
	Label   string
	Kind    Kind
	Choices []string // Only for KindChoice, in display order
	Min     int      // Only for KindNumber
	Hint    string

	// CommitEmpty commits an untouched empty input when the step is left,
	// so the field's empty-input default applies.
	CommitEmpty bool
}

// Step describes one screen of the wizard.
type Step struct {
	Number  int
	Title   string
	Asset   string
	Prompts []Prompt
}

// Header returns the heading shown above the step, e.g. "Step 3: Remote Configuration".
func (s Step) Header() string {
	return fmt.Sprintf("Step %d: %s", s.Number, s.Title)
}

// Fields returns the document fields the step owns.
func (s Step) Fields() []arguments.Field {
	out := make([]arguments.Field, len(s.Prompts))
	for i, p := range s.Prompts {
		out[i] = p.Field
	}
	return out
}

var steps = []Step{
	{
		Number: arguments.StepDevice,
		Title:  "Device Information",
		Asset:  AssetDefault,
		Prompts: []Prompt{
			{Field: arguments.FieldDeviceName, Label: "Device Name", Kind: KindText},
		},
	},
	{
		Number: arguments.StepModel,
		Title:  "Model Information",
		Asset:  AssetDefault,
		Prompts: []Prompt{
			{Field: arguments.FieldFramework, Label: "Framework", Kind: KindChoice, Choices: frameworkChoices()},
		},
	},
	{
		Number: arguments.StepRemote,
		Title:  "Remote Configuration",
		Asset:  AssetRemote,
		Prompts: []Prompt{
			{Field: arguments.FieldAddress, Label: "Remote Address", Kind: KindText, Hint: "leave empty for localhost", CommitEmpty: true},
			{Field: arguments.FieldPort, Label: "Remote Port", Kind: KindText, Hint: "non-numeric input uses 32264"},
		},
	},
	{
		Number: arguments.StepTarget,
		Title:  "Target Device",
		Asset:  AssetDefault,
		Prompts: []Prompt{
			{Field: arguments.FieldArch, Label: "Architecture", Kind: KindChoice, Choices: archChoices()},
			{Field: arguments.FieldOS, Label: "OS", Kind: KindChoice, Choices: osChoices()},
		},
	},
	{
		Number: arguments.StepRuntime,
		Title:  "Runtime Configuration",
		Asset:  AssetDefault,
		Prompts: []Prompt{
			{Field: arguments.FieldNumThreads, Label: "Number of Threads", Kind: KindNumber, Min: 1},
		},
	},
	{
		Number: arguments.StepOptimization,
		Title:  "Optimization Options",
		Asset:  AssetDefault,
		Prompts: []Prompt{
			{Field: arguments.FieldOptLogKey, Label: "Optimization Log Key", Kind: KindText},
			{Field: arguments.FieldEnableTuning, Label: "Enable Hardware-Specific Auto-Tuning", Kind: KindToggle},
		},
	},
}

// TotalSteps is the number of wizard steps.
var TotalSteps = len(steps)

// Steps returns all steps in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// StepAt returns step n (1-based).
func StepAt(n int) (Step, bool) {
	if n < 1 || n > len(steps) {
		return Step{}, false
	}
	return steps[n-1], true
}

// AssetFor returns the asset shown on step n, falling back to AssetDefault.
func AssetFor(n int) string {
	if s, ok := StepAt(n); ok && s.Asset != "" {
		return s.Asset
	}
	return AssetDefault
}

func frameworkChoices() []string {
	out := make([]string, len(arguments.Frameworks))
	for i, f := range arguments.Frameworks {
		out[i] = string(f)
	}
	return out
}

func archChoices() []string {
	out := make([]string, len(arguments.Arches))
	for i, a := range arguments.Arches {
		out[i] = string(a)
	}
	return out
}

func osChoices() []string {
	out := make([]string, len(arguments.OperatingSystems))
	for i, o := range arguments.OperatingSystems {
		out[i] = string(o)
	}
	return out
}
