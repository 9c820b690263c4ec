package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/optimium-tools/optimium-args/internal/wizard"
)

// fieldModel is the widget for one prompt. Text and number prompts use a
// textinput; choices and toggles are cycled with the arrow keys.
type fieldModel struct {
	prompt wizard.Prompt
	input  textinput.Model
	choice int
	on     bool
	err    error
}

// newFieldModel builds a widget showing the document's current value.
// A placeholder value is shown as the input's placeholder text so typing
// replaces it instead of appending to it.
func newFieldModel(fv wizard.FieldValue, placeholder bool) fieldModel {
	f := fieldModel{prompt: fv.Prompt}

	switch fv.Kind {
	case wizard.KindChoice:
		for i, c := range fv.Choices {
			if c == fv.Value {
				f.choice = i
			}
		}
	case wizard.KindToggle:
		f.on = fv.Value == "true"
	default:
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 253
		if fv.Kind == wizard.KindNumber {
			in.CharLimit = 9
		}
		if placeholder {
			in.Placeholder = fv.Value
		} else {
			in.SetValue(fv.Value)
		}
		f.input = in
	}

	return f
}

func (f fieldModel) isText() bool {
	return f.prompt.Kind == wizard.KindText || f.prompt.Kind == wizard.KindNumber
}

// Value returns the raw input to commit to the session.
func (f fieldModel) Value() string {
	switch f.prompt.Kind {
	case wizard.KindChoice:
		if len(f.prompt.Choices) == 0 {
			return ""
		}
		return f.prompt.Choices[f.choice]
	case wizard.KindToggle:
		return strconv.FormatBool(f.on)
	default:
		return f.input.Value()
	}
}

func (f *fieldModel) focus() tea.Cmd {
	if f.isText() {
		return f.input.Focus()
	}
	return nil
}

func (f *fieldModel) blur() {
	if f.isText() {
		f.input.Blur()
	}
}

// update applies a key press and reports whether the value changed.
func (f fieldModel) update(msg tea.KeyMsg, keys keyMap) (fieldModel, tea.Cmd, bool) {
	switch f.prompt.Kind {
	case wizard.KindChoice:
		n := len(f.prompt.Choices)
		if n == 0 {
			return f, nil, false
		}
		switch {
		case key.Matches(msg, keys.Right, keys.Toggle):
			f.choice = (f.choice + 1) % n
			return f, nil, true
		case key.Matches(msg, keys.Left):
			f.choice = (f.choice - 1 + n) % n
			return f, nil, true
		}
		return f, nil, false

	case wizard.KindToggle:
		if key.Matches(msg, keys.Left, keys.Right, keys.Toggle) {
			f.on = !f.on
			return f, nil, true
		}
		return f, nil, false

	default:
		before := f.input.Value()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd, f.input.Value() != before
	}
}

// view renders the label, widget, hint and any rejection message.
func (f fieldModel) view(focused bool) string {
	var b strings.Builder

	if focused {
		b.WriteString(FocusedLabelStyle.Render("→ " + f.prompt.Label))
	} else {
		b.WriteString(LabelStyle.Render(f.prompt.Label))
	}

	switch f.prompt.Kind {
	case wizard.KindChoice:
		for i, c := range f.prompt.Choices {
			if i > 0 {
				b.WriteString("  ")
			}
			if i == f.choice {
				b.WriteString(FocusedInputStyle.Render("◉ " + c))
			} else {
				b.WriteString(BlurredInputStyle.Render("○ " + c))
			}
		}
	case wizard.KindToggle:
		if f.on {
			b.WriteString(FocusedInputStyle.Render("[x] enabled"))
		} else {
			b.WriteString(BlurredInputStyle.Render("[ ] disabled"))
		}
	default:
		b.WriteString(f.input.View())
	}
	b.WriteString("\n")

	if f.err != nil {
		b.WriteString(FieldErrorStyle.Render("⚠ " + f.err.Error()))
		b.WriteString("\n")
	} else if focused && f.prompt.Hint != "" {
		b.WriteString(HintStyle.Render(f.prompt.Hint))
		b.WriteString("\n")
	}

	return b.String()
}
