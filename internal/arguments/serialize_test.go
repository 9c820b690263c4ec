package arguments

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fillScenario walks every step the way the wizard would.
func fillScenario(t *testing.T) *Document {
	t.Helper()

	doc := New()
	writes := []struct {
		step  int
		field Field
		raw   string
	}{
		{StepDevice, FieldDeviceName, "edge01"},
		{StepModel, FieldFramework, "tflite"},
		{StepRemote, FieldAddress, ""},
		{StepRemote, FieldPort, "9999"},
		{StepTarget, FieldArch, "X86_64"},
		{StepTarget, FieldOS, "LINUX"},
		{StepRuntime, FieldNumThreads, "4"},
		{StepOptimization, FieldOptLogKey, "run1"},
		{StepOptimization, FieldEnableTuning, "true"},
	}

	for _, w := range writes {
		doc.EnterStep(w.step)
		if err := doc.SetField(w.step, w.field, w.raw); err != nil {
			t.Fatalf("SetField(%d, %s, %q) error = %v", w.step, w.field, w.raw, err)
		}
	}
	return doc
}

func TestCompact_Scenario(t *testing.T) {
	doc := fillScenario(t)

	got, err := doc.Compact()
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}

	want := `{"device_name":"edge01","model":{"framework":"tflite"},"remote":{"address":"localhost","port":9999},"target_devices":{"host":{"arch":"X86_64","os":"LINUX","mattr":"auto"}},"runtime":{"num_threads":4},"optimization":{"opt_log_key":"run1","enable_tuning":true}}`
	if string(got) != want {
		t.Errorf("Compact() =\n%s\nwant\n%s", got, want)
	}
}

func TestSerialize_Defaults(t *testing.T) {
	got, err := New().Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	want := `{
    "device_name": "YOUR_DEVICE_ALIAS",
    "model": {
        "framework": "YOUR_FRAMEWORK"
    },
    "remote": {
        "address": "YOUR_REMOTE_IP_ADDRESS",
        "port": "YOUR_REMOTE_PORT"
    },
    "target_devices": {
        "host": {
            "arch": "ARM64",
            "os": "LINUX",
            "mattr": "auto"
        }
    },
    "runtime": {
        "num_threads": 1
    },
    "optimization": {
        "opt_log_key": "USER_LOG_KEY",
        "enable_tuning": false
    }
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	docs := map[string]*Document{
		"defaults": New(),
		"scenario": fillScenario(t),
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			data, err := doc.Serialize()
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			parsed, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(doc, parsed); diff != "" {
				t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
			}

			yml, err := doc.SerializeYAML()
			if err != nil {
				t.Fatalf("SerializeYAML() error = %v", err)
			}
			parsed, err = ParseYAML(yml)
			if err != nil {
				t.Fatalf("ParseYAML() error = %v\n%s", err, yml)
			}
			if diff := cmp.Diff(doc, parsed); diff != "" {
				t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerialize_Complete(t *testing.T) {
	data, err := fillScenario(t).Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("exported document is not JSON: %v", err)
	}

	var got []string
	collectLeaves("", tree, &got)
	sort.Strings(got)

	var want []string
	for _, f := range Fields() {
		want = append(want, string(f))
	}
	sort.Strings(want)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("exported keys mismatch (-want +got):\n%s", diff)
	}
}

func collectLeaves(prefix string, node map[string]interface{}, out *[]string) {
	for k, v := range node {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := v.(map[string]interface{}); ok {
			collectLeaves(path, child, out)
			continue
		}
		*out = append(*out, path)
	}
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{"device_name":"edge02","remote":{"port":"8080"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := New()
	want.DeviceName = "edge02"
	want.Remote.Port = PortOf(8080)

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Rejects(t *testing.T) {
	inputs := map[string]string{
		"unknown key":  `{"device_name":"x","extra":1}`,
		"not json":     `device_name = x`,
		"port as bool": `{"remote":{"port":true}}`,
		"empty":        ``,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(in)); err == nil {
				t.Errorf("Parse(%q) should fail", in)
			}
		})
	}

	if _, err := ParseYAML([]byte("device_name: x\nextra: 1\n")); err == nil {
		t.Error("ParseYAML() should reject unknown keys")
	}
}

func TestParse_RejectsOutOfSchemaValues(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		field Field
	}{
		{"framework", `{"model":{"framework":"onnx"}}`, FieldFramework},
		{"arch", `{"target_devices":{"host":{"arch":"MIPS"}}}`, FieldArch},
		{"os", `{"target_devices":{"host":{"os":"IOS"}}}`, FieldOS},
		{"mattr", `{"target_devices":{"host":{"mattr":"+neon"}}}`, FieldMAttr},
		{"zero threads", `{"runtime":{"num_threads":0}}`, FieldNumThreads},
		{"negative port", `{"remote":{"port":-5}}`, FieldPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("Parse(%s) error = %v, want ErrInvalidValue", tt.in, err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) || fe.Field != tt.field {
				t.Errorf("Parse(%s) rejected field = %v, want %s", tt.in, err, tt.field)
			}
		})
	}

	if _, err := ParseYAML([]byte("runtime:\n  num_threads: -1\n")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ParseYAML() error = %v, want ErrInvalidValue", err)
	}

	// Placeholders are what the default template holds.
	if _, err := Parse([]byte(`{"model":{"framework":"YOUR_FRAMEWORK"},"remote":{"port":"YOUR_REMOTE_PORT"}}`)); err != nil {
		t.Errorf("Parse() of placeholders error = %v", err)
	}
}

func TestSerializeYAML_Layout(t *testing.T) {
	data, err := fillScenario(t).SerializeYAML()
	if err != nil {
		t.Fatalf("SerializeYAML() error = %v", err)
	}

	text := string(data)
	order := []string{"device_name:", "model:", "remote:", "target_devices:", "runtime:", "optimization:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx < 0 {
			t.Fatalf("YAML missing %s:\n%s", key, text)
		}
		if idx < last {
			t.Errorf("YAML key %s out of order:\n%s", key, text)
		}
		last = idx
	}
	if !strings.Contains(text, "port: 9999") {
		t.Errorf("YAML port should be numeric:\n%s", text)
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		in       string
		want     Format
		filename string
	}{
		{"", FormatJSON, "user_arguments.json"},
		{"JSON", FormatJSON, "user_arguments.json"},
		{"yaml", FormatYAML, "user_arguments.yaml"},
		{"yml", FormatYAML, "user_arguments.yaml"},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.want || got.Filename() != tt.filename {
			t.Errorf("ParseFormat(%q) = %s (%s), want %s (%s)", tt.in, got, got.Filename(), tt.want, tt.filename)
		}
	}

	if _, err := ParseFormat("toml"); err == nil {
		t.Error("ParseFormat(toml) should fail")
	}
	if FormatForPath("out/args.YML") != FormatYAML || FormatForPath("args.json") != FormatJSON {
		t.Error("FormatForPath() guessed wrong format")
	}
}
