package arguments

import (
	"strconv"
	"strings"
)

// Step numbers. Each step owns a disjoint set of fields.
const (
	StepDevice = iota + 1
	StepModel
	StepRemote
	StepTarget
	StepRuntime
	StepOptimization

	// StepCount is the number of steps that own document fields.
	StepCount = StepOptimization
)

// Field is a dotted path to a leaf of the document.
type Field string

const (
	FieldDeviceName   Field = "device_name"
	FieldFramework    Field = "model.framework"
	FieldAddress      Field = "remote.address"
	FieldPort         Field = "remote.port"
	FieldArch         Field = "target_devices.host.arch"
	FieldOS           Field = "target_devices.host.os"
	FieldMAttr        Field = "target_devices.host.mattr"
	FieldNumThreads   Field = "runtime.num_threads"
	FieldOptLogKey    Field = "optimization.opt_log_key"
	FieldEnableTuning Field = "optimization.enable_tuning"
)

// fieldOrder is the schema order of every leaf.
var fieldOrder = []Field{
	FieldDeviceName,
	FieldFramework,
	FieldAddress,
	FieldPort,
	FieldArch,
	FieldOS,
	FieldMAttr,
	FieldNumThreads,
	FieldOptLogKey,
	FieldEnableTuning,
}

// owners maps each editable field to the step that owns it.
// FieldMAttr is fixed and has no owner.
var owners = map[Field]int{
	FieldDeviceName:   StepDevice,
	FieldFramework:    StepModel,
	FieldAddress:      StepRemote,
	FieldPort:         StepRemote,
	FieldArch:         StepTarget,
	FieldOS:           StepTarget,
	FieldNumThreads:   StepRuntime,
	FieldOptLogKey:    StepOptimization,
	FieldEnableTuning: StepOptimization,
}

// Fields returns every leaf path of the document in schema order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// EditableFields returns the leaf paths that some step can write.
func EditableFields() []Field {
	var out []Field
	for _, f := range fieldOrder {
		if _, ok := owners[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// StepFields returns the fields owned by step, in schema order.
func StepFields(step int) []Field {
	var out []Field
	for _, f := range fieldOrder {
		if owners[f] == step {
			out = append(out, f)
		}
	}
	return out
}

// StepOf returns the step owning field, or 0 if no step owns it.
func StepOf(field Field) int {
	return owners[field]
}

// IsKnown reports whether field is part of the schema.
func (f Field) IsKnown() bool {
	for _, known := range fieldOrder {
		if known == f {
			return true
		}
	}
	return false
}

// Value returns the current value of field as it would be typed into a form.
func (d *Document) Value(field Field) (string, error) {
	switch field {
	case FieldDeviceName:
		return d.DeviceName, nil
	case FieldFramework:
		return string(d.Model.Framework), nil
	case FieldAddress:
		return d.Remote.Address, nil
	case FieldPort:
		return d.Remote.Port.String(), nil
	case FieldArch:
		return string(d.TargetDevices.Host.Arch), nil
	case FieldOS:
		return string(d.TargetDevices.Host.OS), nil
	case FieldMAttr:
		return d.TargetDevices.Host.MAttr, nil
	case FieldNumThreads:
		return strconv.Itoa(d.Runtime.NumThreads), nil
	case FieldOptLogKey:
		return d.Optimization.OptLogKey, nil
	case FieldEnableTuning:
		return strconv.FormatBool(d.Optimization.EnableTuning), nil
	default:
		return "", newFieldError(0, field, "", ErrUnknownField)
	}
}

// SetField writes raw input into field on behalf of step.
//
// The write is rejected with ErrCrossStepWrite when step does not own field.
// Port and address input is normalized and never rejected. On error the
// document is left unchanged.
func (d *Document) SetField(step int, field Field, raw string) error {
	if !field.IsKnown() {
		return newFieldError(step, field, raw, ErrUnknownField)
	}
	if owner, ok := owners[field]; !ok || owner != step {
		return newFieldError(step, field, raw, ErrCrossStepWrite)
	}

	switch field {
	case FieldDeviceName:
		d.DeviceName = raw

	case FieldFramework:
		fw, ok := ParseFramework(raw)
		if !ok {
			return newFieldError(step, field, raw, ErrInvalidValue)
		}
		d.Model.Framework = fw

	case FieldAddress:
		d.Remote.Address = NormalizeAddress(raw)

	case FieldPort:
		d.Remote.Port = PortOf(NormalizePort(raw))

	case FieldArch:
		arch, ok := ParseArch(raw)
		if !ok {
			return newFieldError(step, field, raw, ErrInvalidValue)
		}
		d.TargetDevices.Host.Arch = arch

	case FieldOS:
		os, ok := ParseOS(raw)
		if !ok {
			return newFieldError(step, field, raw, ErrInvalidValue)
		}
		d.TargetDevices.Host.OS = os

	case FieldNumThreads:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return newFieldError(step, field, raw, ErrInvalidValue)
		}
		d.SetNumThreads(n)

	case FieldOptLogKey:
		d.Optimization.OptLogKey = raw

	case FieldEnableTuning:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return newFieldError(step, field, raw, ErrInvalidValue)
		}
		d.Optimization.EnableTuning = v
	}

	return nil
}

// EnterStep applies the coercion a step performs on its initial values when it
// is first shown: the model step replaces the framework placeholder with the
// first framework, and the remote step replaces the port placeholder with
// DefaultRemotePort. Values already chosen are kept.
func (d *Document) EnterStep(step int) {
	switch step {
	case StepModel:
		if _, ok := ParseFramework(string(d.Model.Framework)); !ok {
			d.Model.Framework = Frameworks[0]
		}
	case StepRemote:
		if !d.Remote.Port.IsSet() {
			d.Remote.Port = PortOf(NormalizePort(d.Remote.Port.String()))
		}
	}
}

// Device returns the device name.
func (d *Document) Device() string {
	return d.DeviceName
}

// SetDeviceName stores name verbatim.
func (d *Document) SetDeviceName(name string) {
	d.DeviceName = name
}

// ModelInfo returns a copy of the model sub-tree.
func (d *Document) ModelInfo() Model {
	return d.Model
}

// SetFramework stores fw if it is one of Frameworks.
func (d *Document) SetFramework(fw Framework) error {
	if _, ok := ParseFramework(string(fw)); !ok {
		return newFieldError(StepModel, FieldFramework, string(fw), ErrInvalidValue)
	}
	d.Model.Framework = fw
	return nil
}

// RemoteInfo returns a copy of the remote sub-tree.
func (d *Document) RemoteInfo() Remote {
	return d.Remote
}

// SetRemote normalizes and stores raw address and port input.
func (d *Document) SetRemote(address, port string) {
	d.Remote.Address = NormalizeAddress(address)
	d.Remote.Port = PortOf(NormalizePort(port))
}

// HostInfo returns a copy of the target host descriptor.
func (d *Document) HostInfo() Host {
	return d.TargetDevices.Host
}

// SetHost stores the target architecture and operating system.
func (d *Document) SetHost(arch Arch, os OS) error {
	if _, ok := ParseArch(string(arch)); !ok {
		return newFieldError(StepTarget, FieldArch, string(arch), ErrInvalidValue)
	}
	if _, ok := ParseOS(string(os)); !ok {
		return newFieldError(StepTarget, FieldOS, string(os), ErrInvalidValue)
	}
	d.TargetDevices.Host.Arch = arch
	d.TargetDevices.Host.OS = os
	return nil
}

// RuntimeInfo returns a copy of the runtime sub-tree.
func (d *Document) RuntimeInfo() Runtime {
	return d.Runtime
}

// SetNumThreads stores n, clamped to a minimum of one thread.
func (d *Document) SetNumThreads(n int) {
	if n < 1 {
		n = 1
	}
	d.Runtime.NumThreads = n
}

// OptimizationInfo returns a copy of the optimization sub-tree.
func (d *Document) OptimizationInfo() Optimization {
	return d.Optimization
}

// SetOptimization stores the log key and tuning switch.
func (d *Document) SetOptimization(logKey string, enableTuning bool) {
	d.Optimization.OptLogKey = logKey
	d.Optimization.EnableTuning = enableTuning
}

// Placeholders returns the editable fields that still hold their template
// placeholder value.
func (d *Document) Placeholders() []Field {
	var out []Field
	if d.DeviceName == DefaultDeviceName {
		out = append(out, FieldDeviceName)
	}
	if d.Model.Framework == FrameworkPlaceholder {
		out = append(out, FieldFramework)
	}
	if d.Remote.Address == AddressPlaceholder {
		out = append(out, FieldAddress)
	}
	if !d.Remote.Port.IsSet() {
		out = append(out, FieldPort)
	}
	if d.Optimization.OptLogKey == DefaultOptLogKey {
		out = append(out, FieldOptLogKey)
	}
	return out
}

// String implements fmt.Stringer for log output.
func (f Field) String() string {
	return string(f)
}
