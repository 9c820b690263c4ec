package arguments

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Placeholder values carried by a freshly created document.
const (
	DefaultDeviceName    = "YOUR_DEVICE_ALIAS"
	FrameworkPlaceholder = "YOUR_FRAMEWORK"
	AddressPlaceholder   = "YOUR_REMOTE_IP_ADDRESS"
	PortPlaceholder      = "YOUR_REMOTE_PORT"
	DefaultMAttr         = "auto"
	DefaultOptLogKey     = "USER_LOG_KEY"
	DefaultNumThreads    = 1
)

// Framework is the model framework the optimizer should expect.
type Framework string

const (
	FrameworkTorch  Framework = "torch"
	FrameworkTFLite Framework = "tflite"
)

// Frameworks lists the selectable frameworks in display order.
var Frameworks = []Framework{FrameworkTorch, FrameworkTFLite}

// Arch is the CPU architecture of the target host.
type Arch string

const (
	ArchX86_64 Arch = "X86_64"
	ArchARM64  Arch = "ARM64"
)

// Arches lists the selectable architectures in display order.
var Arches = []Arch{ArchX86_64, ArchARM64}

// OS is the operating system of the target host.
type OS string

const (
	OSLinux   OS = "LINUX"
	OSAndroid OS = "ANDROID"
)

// OperatingSystems lists the selectable operating systems in display order.
var OperatingSystems = []OS{OSLinux, OSAndroid}

// Document is the complete user arguments document.
//
// Field order matches the exported key order.
type Document struct {
	DeviceName    string        `json:"device_name" yaml:"device_name"`
	Model         Model         `json:"model" yaml:"model"`
	Remote        Remote        `json:"remote" yaml:"remote"`
	TargetDevices TargetDevices `json:"target_devices" yaml:"target_devices"`
	Runtime       Runtime       `json:"runtime" yaml:"runtime"`
	Optimization  Optimization  `json:"optimization" yaml:"optimization"`
}

// Model is the sub-tree owned by the model information step.
type Model struct {
	Framework Framework `json:"framework" yaml:"framework"`
}

// Remote is the sub-tree owned by the remote configuration step.
type Remote struct {
	Address string `json:"address" yaml:"address"`
	Port    Port   `json:"port" yaml:"port"`
}

// TargetDevices wraps the host descriptor.
type TargetDevices struct {
	Host Host `json:"host" yaml:"host"`
}

// Host describes the device the optimized model will run on.
// MAttr is fixed to "auto" and is not editable from any step.
type Host struct {
	Arch  Arch   `json:"arch" yaml:"arch"`
	OS    OS     `json:"os" yaml:"os"`
	MAttr string `json:"mattr" yaml:"mattr"`
}

// Runtime is the sub-tree owned by the runtime configuration step.
type Runtime struct {
	NumThreads int `json:"num_threads" yaml:"num_threads"`
}

// Optimization is the sub-tree owned by the optimization options step.
type Optimization struct {
	OptLogKey    string `json:"opt_log_key" yaml:"opt_log_key"`
	EnableTuning bool   `json:"enable_tuning" yaml:"enable_tuning"`
}

// Port is a remote port number. The zero value is unset and serializes as
// PortPlaceholder.
type Port struct {
	value int
	set   bool
}

// PortOf returns a set port.
func PortOf(n int) Port {
	return Port{value: n, set: true}
}

// Value returns the port number and whether it has been set.
func (p Port) Value() (int, bool) {
	return p.value, p.set
}

// IsSet reports whether the port holds a number rather than the placeholder.
func (p Port) IsSet() bool {
	return p.set
}

// Equal reports whether two ports hold the same value.
func (p Port) Equal(o Port) bool {
	return p.set == o.set && p.value == o.value
}

// String returns the port number, or the placeholder when unset.
func (p Port) String() string {
	if !p.set {
		return PortPlaceholder
	}
	return strconv.Itoa(p.value)
}

// MarshalJSON writes a number when set and the placeholder string otherwise.
func (p Port) MarshalJSON() ([]byte, error) {
	if !p.set {
		return json.Marshal(PortPlaceholder)
	}
	return []byte(strconv.Itoa(p.value)), nil
}

// UnmarshalJSON accepts a JSON number or a string. Strings other than the
// placeholder go through NormalizePort.
func (p *Port) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = portFromString(s)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("port must be a number or string: %w", err)
	}
	*p = PortOf(n)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (p Port) MarshalYAML() (interface{}, error) {
	if !p.set {
		return PortPlaceholder, nil
	}
	return p.value, nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (p *Port) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("port must be a scalar, got node kind %d", node.Kind)
	}
	if node.ShortTag() == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*p = PortOf(n)
		return nil
	}
	*p = portFromString(node.Value)
	return nil
}

func portFromString(s string) Port {
	if s == PortPlaceholder {
		return Port{}
	}
	return PortOf(NormalizePort(s))
}

// New creates a document holding the default template.
func New() *Document {
	return &Document{
		DeviceName: DefaultDeviceName,
		Model: Model{
			Framework: FrameworkPlaceholder,
		},
		Remote: Remote{
			Address: AddressPlaceholder,
		},
		TargetDevices: TargetDevices{
			Host: Host{
				Arch:  ArchARM64,
				OS:    OSLinux,
				MAttr: DefaultMAttr,
			},
		},
		Runtime: Runtime{
			NumThreads: DefaultNumThreads,
		},
		Optimization: Optimization{
			OptLogKey:    DefaultOptLogKey,
			EnableTuning: false,
		},
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := *d
	return &c
}

// ParseFramework returns the framework named by s.
func ParseFramework(s string) (Framework, bool) {
	for _, f := range Frameworks {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// ParseArch returns the architecture named by s.
func ParseArch(s string) (Arch, bool) {
	for _, a := range Arches {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// ParseOS returns the operating system named by s.
func ParseOS(s string) (OS, bool) {
	for _, o := range OperatingSystems {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}
