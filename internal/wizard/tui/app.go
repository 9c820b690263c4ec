package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/optimium-tools/optimium-args/internal/arguments"
	"github.com/optimium-tools/optimium-args/internal/export"
	"github.com/optimium-tools/optimium-args/internal/logging"
	"github.com/optimium-tools/optimium-args/internal/wizard"
)

// exportDoneMsg reports the outcome of a download
type exportDoneMsg struct {
	path string
	size int
	err  error
}

// AppModel is the wizard screen. It renders the session's current step and
// forwards every edit to the session, which owns the document.
type AppModel struct {
	Session *wizard.Session
	Format  arguments.Format

	// Widgets for the current step; focus == len(fields) selects the
	// export path on the final step.
	fields    []fieldModel
	focus     int
	pathInput textinput.Model

	// Result of the last download
	Exported     string
	ExportedSize int
	LastError    error
	Exporting    bool

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys keyMap
}

// NewAppModel creates the wizard screen for session. exportPath pre-fills
// the download destination shown on the final step.
func NewAppModel(session *wizard.Session, exportPath string, format arguments.Format) AppModel {
	if format == "" {
		format = arguments.FormatJSON
	}

	pathInput := textinput.New()
	pathInput.Prompt = ""
	pathInput.CharLimit = 4096
	pathInput.Placeholder = format.Filename()
	pathInput.SetValue(exportPath)

	m := AppModel{
		Session:   session,
		Format:    format,
		pathInput: pathInput,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Help:      help.New(),
		Keys:      newKeyMap(),
	}
	m.loadStep()
	return m
}

// Init starts the cursor blinking in the first field
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case exportDoneMsg:
		m.Exporting = false
		if msg.err != nil {
			m.LastError = msg.err
			m.Exported = ""
			return m, nil
		}
		m.LastError = nil
		m.Exported = msg.path
		m.ExportedSize = msg.size
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Session.Close()
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Next):
		return m.navigate(m.Session.Advance)

	case key.Matches(msg, m.Keys.Prev):
		return m.navigate(m.Session.Retreat)

	case key.Matches(msg, m.Keys.Restart):
		m.Session.Restart()
		m.Exported = ""
		m.LastError = nil
		m.loadStep()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Download):
		return m.download()

	case key.Matches(msg, m.Keys.NextField):
		cmd := m.setFocus(m.focus + 1)
		return m, cmd

	case key.Matches(msg, m.Keys.PrevField):
		cmd := m.setFocus(m.focus - 1)
		return m, cmd

	case key.Matches(msg, m.Keys.Confirm):
		return m.confirm()
	}

	return m.updateFocused(msg)
}

// navigate moves the session and rebuilds the widgets when the step changed
func (m AppModel) navigate(move func() bool) (tea.Model, tea.Cmd) {
	m.commitEmpty()
	if !move() {
		return m, nil
	}
	m.LastError = nil
	m.Exported = ""
	m.loadStep()
	return m, textinput.Blink
}

// commitEmpty writes "" for CommitEmpty prompts whose input is still empty.
// Must run before the session leaves the step that owns the field.
func (m *AppModel) commitEmpty() {
	for i, f := range m.fields {
		if !f.prompt.CommitEmpty || !f.isText() || f.input.Value() != "" {
			continue
		}
		m.fields[i].err = m.Session.Set(f.prompt.Field, "")
	}
}

// confirm moves to the next field, past the last field to the next step,
// and on the export path starts the download.
func (m AppModel) confirm() (tea.Model, tea.Cmd) {
	if m.onPath() {
		return m.download()
	}
	if m.focus < m.focusCount()-1 {
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	}
	return m.navigate(m.Session.Advance)
}

// updateFocused passes a key to the focused widget and commits any change
func (m AppModel) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.onPath() {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	if m.focus >= len(m.fields) {
		return m, nil
	}

	f, cmd, changed := m.fields[m.focus].update(msg, m.Keys)
	if changed {
		f.err = m.Session.Set(f.prompt.Field, f.Value())
	}
	m.fields[m.focus] = f
	return m, cmd
}

// download renders the document and saves it in the background
func (m AppModel) download() (tea.Model, tea.Cmd) {
	if m.Exporting {
		return m, nil
	}

	out, err := m.Session.Export(m.Format)
	if err != nil {
		m.LastError = err
		return m, nil
	}

	path := strings.TrimSpace(m.pathInput.Value())
	m.Exporting = true
	m.LastError = nil
	return m, saveCmd(path, out)
}

func saveCmd(path string, out *wizard.Export) tea.Cmd {
	return func() tea.Msg {
		dest := export.Resolve(path, out.Format)
		if err := export.Save(dest, out.Data, out.Format); err != nil {
			logging.Error("Download failed", zap.String("destination", dest), zap.Error(err))
			return exportDoneMsg{path: dest, err: err}
		}
		return exportDoneMsg{path: dest, size: len(out.Data)}
	}
}

// loadStep rebuilds the widgets from the session's current step
func (m *AppModel) loadStep() {
	pending := make(map[arguments.Field]bool)
	for _, f := range m.Session.Document().Placeholders() {
		pending[f] = true
	}

	view := m.Session.View()
	m.fields = make([]fieldModel, len(view))
	for i, fv := range view {
		m.fields[i] = newFieldModel(fv, pending[fv.Field])
	}

	m.Keys.Download.SetEnabled(m.Session.IsLast())
	m.focus = 0
	m.setFocus(0)
}

// focusCount is the number of focusable widgets on the current step
func (m AppModel) focusCount() int {
	if m.Session.IsLast() {
		return len(m.fields) + 1
	}
	return len(m.fields)
}

func (m AppModel) onPath() bool {
	return m.Session.IsLast() && m.focus == len(m.fields)
}

// setFocus moves focus to index i, wrapping around
func (m *AppModel) setFocus(i int) tea.Cmd {
	n := m.focusCount()
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n

	for j := range m.fields {
		m.fields[j].blur()
	}
	m.pathInput.Blur()

	m.focus = i
	if m.onPath() {
		return m.pathInput.Focus()
	}
	return m.fields[i].focus()
}

// View renders the current step
func (m AppModel) View() string {
	content := m.buildContent()
	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

func (m AppModel) buildContent() string {
	var b strings.Builder
	step := m.Session.Current()

	b.WriteString(RenderProgress(step.Number, m.Session.Total()))
	b.WriteString("  ")
	b.WriteString(RenderSubtitle(fmt.Sprintf("Step %d of %d", step.Number, m.Session.Total())))
	b.WriteString("\n\n")

	b.WriteString(RenderTitle(step.Header()))
	b.WriteString("\n")
	b.WriteString(RenderAsset(step.Asset))
	b.WriteString("\n")

	for i, f := range m.fields {
		b.WriteString(f.view(i == m.focus))
		b.WriteString("\n")
	}

	if m.Session.IsLast() {
		b.WriteString(m.buildExportSection())
	}

	if m.LastError != nil {
		b.WriteString("\n")
		b.WriteString(RenderError(m.LastError.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

// buildExportSection renders the destination input and download button
func (m AppModel) buildExportSection() string {
	var b strings.Builder
	focused := m.onPath()

	if focused {
		b.WriteString(FocusedLabelStyle.Render("→ Save As"))
	} else {
		b.WriteString(LabelStyle.Render("Save As"))
	}
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")

	label := "Download " + strings.ToUpper(string(m.Format))
	if m.Exporting {
		label = "Saving..."
	}
	if focused {
		b.WriteString(FocusedButtonStyle.Render(label))
	} else {
		b.WriteString(ButtonStyle.Render(label))
	}
	b.WriteString("\n")

	if m.Exported != "" {
		b.WriteString("\n")
		b.WriteString(RenderSuccess(fmt.Sprintf("Saved %s (%d bytes)", m.Exported, m.ExportedSize)))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the wizard on the alternate screen and blocks until the user quits.
func Run(session *wizard.Session, exportPath string, format arguments.Format) error {
	program := tea.NewProgram(NewAppModel(session, exportPath, format), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
