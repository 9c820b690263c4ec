package wizard

import (
	"errors"
	"testing"

	"github.com/optimium-tools/optimium-args/internal/arguments"
)

func TestSession_Complete_Scenario(t *testing.T) {
	s := NewSession()

	err := s.Complete(Answers{
		arguments.FieldDeviceName:   "edge01",
		arguments.FieldFramework:    "tflite",
		arguments.FieldAddress:      "",
		arguments.FieldPort:         "9999",
		arguments.FieldArch:         "X86_64",
		arguments.FieldOS:           "LINUX",
		arguments.FieldNumThreads:   "4",
		arguments.FieldOptLogKey:    "run1",
		arguments.FieldEnableTuning: "true",
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !s.IsLast() {
		t.Fatalf("Complete() stopped on step %d", s.Step())
	}

	got, err := s.Document().Compact()
	if err != nil {
		t.Fatalf("Compact() error = %v", err)
	}
	want := `{"device_name":"edge01","model":{"framework":"tflite"},"remote":{"address":"localhost","port":9999},"target_devices":{"host":{"arch":"X86_64","os":"LINUX","mattr":"auto"}},"runtime":{"num_threads":4},"optimization":{"opt_log_key":"run1","enable_tuning":true}}`
	if string(got) != want {
		t.Errorf("document =\n%s\nwant\n%s", got, want)
	}
}

func TestSession_Complete_NoAnswers(t *testing.T) {
	s := NewSession()
	if err := s.Complete(nil); err != nil {
		t.Fatalf("Complete(nil) error = %v", err)
	}

	doc := s.Document()
	if doc.Model.Framework != arguments.FrameworkTorch {
		t.Errorf("framework = %q, want torch after visiting step 2", doc.Model.Framework)
	}
	if doc.Remote.Port.String() != "32264" {
		t.Errorf("port = %s, want 32264 after visiting step 3", doc.Remote.Port)
	}
	if doc.Remote.Address != arguments.AddressPlaceholder {
		t.Errorf("address = %q, want placeholder", doc.Remote.Address)
	}
}

func TestSession_Complete_Rejects(t *testing.T) {
	s := NewSession()
	err := s.Complete(Answers{
		arguments.FieldDeviceName: "edge01",
		arguments.FieldMAttr:      "+neon",
	})
	if !errors.Is(err, arguments.ErrCrossStepWrite) {
		t.Fatalf("Complete() error = %v, want ErrCrossStepWrite", err)
	}
	if s.Step() != 1 || s.Document().DeviceName != arguments.DefaultDeviceName {
		t.Error("Complete() wrote answers before rejecting a stray field")
	}

	s = NewSession()
	err = s.Complete(Answers{arguments.FieldNumThreads: "lots"})
	if !errors.Is(err, arguments.ErrInvalidValue) {
		t.Fatalf("Complete() error = %v, want ErrInvalidValue", err)
	}
	if s.Step() != arguments.StepRuntime {
		t.Errorf("Complete() stopped on step %d, want %d", s.Step(), arguments.StepRuntime)
	}
}
