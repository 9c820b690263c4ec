package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeader_RenderKeepsParamOrder(t *testing.T) {
	h := NewHeader("Export Arguments", "optimium-args export",
		Param{Key: "Destination", Value: "out/user_arguments.json"},
		Param{Key: "Format", Value: "json"},
	).SetWidth(80)
	h.AddParam("Overwrite", "no")

	out := h.Render()
	for _, want := range []string{"EXPORT ARGUMENTS", "optimium-args export", "out/user_arguments.json", "Overwrite"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}

	dest := strings.Index(out, "Destination")
	format := strings.Index(out, "Format")
	overwrite := strings.Index(out, "Overwrite")
	if !(dest < format && format < overwrite) {
		t.Errorf("params rendered out of order:\n%s", out)
	}
}

func TestResult_Render(t *testing.T) {
	success := NewSuccessResult("Arguments exported",
		Param{Key: "File", Value: "user_arguments.json"},
	).SetWidth(80).Render()
	if !strings.Contains(success, "SUCCESS") || !strings.Contains(success, "user_arguments.json") {
		t.Errorf("success box:\n%s", success)
	}

	failure := NewFailureResult("Export failed", errors.New("disk full"), []string{"Choose another directory"}).
		SetWidth(80).Render()
	for _, want := range []string{"FAILED", "disk full", "Troubleshooting", "Choose another directory"} {
		if !strings.Contains(failure, want) {
			t.Errorf("failure box missing %q:\n%s", want, failure)
		}
	}

	warning := RenderWarning("Nothing written", Param{Key: "Reason", Value: "declined"})
	if !strings.Contains(warning, "WARNING") || !strings.Contains(warning, "declined") {
		t.Errorf("warning box:\n%s", warning)
	}
}

func TestRenderPanel(t *testing.T) {
	out := RenderPanel("Arguments", "Device: edge01\n", 0)
	if !strings.Contains(out, "ARGUMENTS") || !strings.Contains(out, "Device: edge01") {
		t.Errorf("RenderPanel() =\n%s", out)
	}
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"sure\n", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if got := ConfirmOverwrite(strings.NewReader(tt.input), &out, "user_arguments.json"); got != tt.want {
			t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "user_arguments.json") {
			t.Errorf("prompt does not name the file: %q", out.String())
		}
	}
}
