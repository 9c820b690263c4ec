package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/optimium-tools/optimium-args/internal/arguments"
	"github.com/optimium-tools/optimium-args/internal/export"
	"github.com/optimium-tools/optimium-args/internal/wizard"
)

var (
	keyNext     = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyPrev     = tea.KeyMsg{Type: tea.KeyCtrlP}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyDownload = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyRestart  = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds messages to the model and returns the last command
func send(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(AppModel)
	}
	return m, cmd
}

func newTestModel(t *testing.T, path string) (AppModel, *wizard.Session) {
	t.Helper()
	s := wizard.NewSession()
	return NewAppModel(s, path, arguments.FormatJSON), s
}

func TestAppModel_TypingCommitsToSession(t *testing.T) {
	m, s := newTestModel(t, "")

	m, _ = send(t, m, typeText("edge01"))

	if got := s.Document().DeviceName; got != "edge01" {
		t.Errorf("device_name = %q, want edge01", got)
	}
	if !strings.Contains(m.View(), "edge01") {
		t.Error("View() does not show typed value")
	}
}

func TestAppModel_Navigation(t *testing.T) {
	m, s := newTestModel(t, "")

	m, _ = send(t, m, keyPrev)
	if s.Step() != 1 {
		t.Fatalf("retreat from step 1 moved to %d", s.Step())
	}

	m, _ = send(t, m, keyNext, keyNext)
	if s.Step() != 3 {
		t.Fatalf("Step() = %d, want 3", s.Step())
	}
	view := m.View()
	if !strings.Contains(view, "Step 3: Remote Configuration") || !strings.Contains(view, "optimium2.png") {
		t.Errorf("step 3 view missing heading or asset:\n%s", view)
	}

	m, _ = send(t, m, keyPrev)
	if s.Step() != 2 || !strings.Contains(m.View(), "optimium.png") {
		t.Errorf("Step() = %d after retreat, want 2", s.Step())
	}

	for i := 0; i < 10; i++ {
		m, _ = send(t, m, keyNext)
	}
	if s.Step() != 6 {
		t.Errorf("Step() = %d after repeated advance, want 6", s.Step())
	}
}

func TestAppModel_EnterAdvancesPastLastField(t *testing.T) {
	m, s := newTestModel(t, "")
	m, _ = send(t, m, keyNext, keyNext)

	// Step 3 has address then port
	m, _ = send(t, m, keyEnter)
	if s.Step() != 3 || m.focus != 1 {
		t.Fatalf("enter on first field: step %d focus %d", s.Step(), m.focus)
	}

	_, _ = send(t, m, keyEnter)
	if s.Step() != 4 {
		t.Errorf("enter on last field left step at %d, want 4", s.Step())
	}
}

func TestAppModel_ChoiceCycling(t *testing.T) {
	m, s := newTestModel(t, "")
	m, _ = send(t, m, keyNext)

	m, _ = send(t, m, keyRight)
	if got := s.Document().Model.Framework; got != arguments.FrameworkTFLite {
		t.Fatalf("framework after → = %q, want tflite", got)
	}

	_, _ = send(t, m, keyLeft)
	if got := s.Document().Model.Framework; got != arguments.FrameworkTorch {
		t.Errorf("framework after ← = %q, want torch", got)
	}
}

func TestAppModel_ToggleAndFocus(t *testing.T) {
	m, s := newTestModel(t, "")
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, keyNext)
	}

	m, _ = send(t, m, keyTab, keyRight)
	if !s.Document().Optimization.EnableTuning {
		t.Fatal("tuning toggle did not reach the session")
	}

	// Tab wraps through the export destination back to the first field
	m, _ = send(t, m, keyTab)
	if !m.onPath() {
		t.Fatalf("focus = %d, want export destination", m.focus)
	}
	m, _ = send(t, m, keyTab)
	if m.focus != 0 {
		t.Errorf("focus = %d after wrap, want 0", m.focus)
	}
}

func TestAppModel_RejectedInputIsShown(t *testing.T) {
	m, s := newTestModel(t, "")
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, keyNext)
	}

	m, _ = send(t, m, typeText("x"))

	if !errors.Is(m.fields[0].err, arguments.ErrInvalidValue) {
		t.Fatalf("field error = %v, want ErrInvalidValue", m.fields[0].err)
	}
	if got := s.Document().Runtime.NumThreads; got != arguments.DefaultNumThreads {
		t.Errorf("num_threads = %d after rejected input", got)
	}
	if !strings.Contains(m.View(), "⚠") {
		t.Error("View() does not flag the rejected input")
	}
}

func TestAppModel_DownloadOnlyOnFinalStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "args.json")
	m, s := newTestModel(t, path)

	m, _ = send(t, m, keyDownload)
	if m.Exporting || m.LastError != nil {
		t.Fatal("download started before the final step")
	}

	m, _ = send(t, m, typeText("edge01"))
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, keyNext)
	}

	m, cmd := send(t, m, keyDownload)
	if cmd == nil || !m.Exporting {
		t.Fatal("download did not start on the final step")
	}

	m, _ = send(t, m, cmd())
	if m.LastError != nil {
		t.Fatalf("download error = %v", m.LastError)
	}
	if m.Exported != path {
		t.Errorf("Exported = %q, want %q", m.Exported, path)
	}
	if !strings.Contains(m.View(), "Saved") {
		t.Error("View() does not confirm the download")
	}

	doc, err := export.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.DeviceName != "edge01" || doc.Model.Framework != arguments.FrameworkTorch {
		t.Errorf("saved document = %+v", doc)
	}
	if s.Step() != 6 {
		t.Errorf("download moved the session to step %d", s.Step())
	}
}

func TestAppModel_UntouchedAddressExportsLocalhost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "args.json")
	m, s := newTestModel(t, path)

	m, _ = send(t, m, keyNext, keyNext)
	if s.Step() != 3 {
		t.Fatalf("Step() = %d, want 3", s.Step())
	}
	if got := m.fields[0].input.Value(); got != "" {
		t.Fatalf("address input = %q, want empty", got)
	}

	for i := 0; i < 3; i++ {
		m, _ = send(t, m, keyNext)
	}
	if got := s.Document().Remote.Address; got != arguments.DefaultRemoteAddress {
		t.Errorf("address after leaving step 3 = %q, want %q", got, arguments.DefaultRemoteAddress)
	}

	m, cmd := send(t, m, keyDownload)
	if cmd == nil {
		t.Fatal("download did not start on the final step")
	}
	m, _ = send(t, m, cmd())

	doc, err := export.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Remote.Address != arguments.DefaultRemoteAddress {
		t.Errorf("exported address = %q, want %q", doc.Remote.Address, arguments.DefaultRemoteAddress)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if m.ExportedSize != int(info.Size()) {
		t.Errorf("ExportedSize = %d, want %d", m.ExportedSize, info.Size())
	}
	if want := fmt.Sprintf("(%d bytes)", info.Size()); !strings.Contains(m.buildExportSection(), want) {
		t.Errorf("export section does not show %s", want)
	}
}

func TestAppModel_TypedAddressIsKept(t *testing.T) {
	m, s := newTestModel(t, "")

	m, _ = send(t, m, keyNext, keyNext, typeText("10.0.0.7"), keyNext)
	if got := s.Document().Remote.Address; got != "10.0.0.7" {
		t.Errorf("address = %q, want 10.0.0.7", got)
	}

	m, _ = send(t, m, keyPrev)
	if got := m.fields[0].input.Value(); got != "10.0.0.7" {
		t.Errorf("address input on return = %q, want 10.0.0.7", got)
	}
}

func TestAppModel_EnterOnDestinationDownloads(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, dir)
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, keyNext)
	}

	m, _ = send(t, m, keyTab, keyTab)
	m, cmd := send(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("enter on destination did not start a download")
	}

	m, _ = send(t, m, cmd())
	if want := filepath.Join(dir, arguments.DefaultFilename); m.Exported != want {
		t.Errorf("Exported = %q, want %q", m.Exported, want)
	}
}

func TestAppModel_Restart(t *testing.T) {
	m, s := newTestModel(t, "")
	m, _ = send(t, m, typeText("edge01"), keyNext, keyNext)

	m, _ = send(t, m, keyRestart)

	if s.Step() != 1 {
		t.Errorf("Step() = %d after restart", s.Step())
	}
	if got := s.Document().DeviceName; got != arguments.DefaultDeviceName {
		t.Errorf("device_name = %q after restart", got)
	}
	if m.fields[0].Value() != "" {
		t.Errorf("device name widget kept %q", m.fields[0].Value())
	}
}

func TestAppModel_Quit(t *testing.T) {
	m, s := newTestModel(t, "")

	_, cmd := send(t, m, keyEsc)
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
	if !s.Closed() {
		t.Error("quitting did not close the session")
	}
}

func TestAppModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, "")
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width != 120 || m.Height != 40 {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}
	if !strings.Contains(m.View(), AppName) {
		t.Error("View() missing application header")
	}
}
