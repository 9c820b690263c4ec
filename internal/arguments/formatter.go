package arguments

import (
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the document
func (d *Document) Summary() string {
	return fmt.Sprintf("%s: %s on %s/%s via %s:%s (%d threads)",
		d.DeviceName,
		d.Model.Framework,
		d.TargetDevices.Host.Arch,
		d.TargetDevices.Host.OS,
		d.Remote.Address,
		d.Remote.Port,
		d.Runtime.NumThreads)
}

// FormatDeviceInfo returns the device and model sections
func (d *Document) FormatDeviceInfo() string {
	var b strings.Builder

	b.WriteString("=== Device Information ===\n")
	b.WriteString(fmt.Sprintf("Device Name:  %s\n", d.DeviceName))
	b.WriteString(fmt.Sprintf("Framework:    %s\n", d.Model.Framework))

	return b.String()
}

// FormatRemoteConfig returns the remote endpoint section
func (d *Document) FormatRemoteConfig() string {
	var b strings.Builder

	b.WriteString("=== Remote Configuration ===\n")
	b.WriteString(fmt.Sprintf("Address:      %s\n", d.Remote.Address))
	b.WriteString(fmt.Sprintf("Port:         %s\n", d.Remote.Port))
	if d.Remote.Port.IsSet() {
		b.WriteString(fmt.Sprintf("Endpoint:     %s:%s\n", d.Remote.Address, d.Remote.Port))
	}

	return b.String()
}

// FormatTargetConfig returns the target host and runtime sections
func (d *Document) FormatTargetConfig() string {
	var b strings.Builder
	host := d.TargetDevices.Host

	b.WriteString("=== Target Device ===\n")
	b.WriteString(fmt.Sprintf("Architecture: %s\n", host.Arch))
	b.WriteString(fmt.Sprintf("OS:           %s\n", host.OS))
	b.WriteString(fmt.Sprintf("MAttr:        %s\n", host.MAttr))
	b.WriteString(fmt.Sprintf("Threads:      %d\n", d.Runtime.NumThreads))

	return b.String()
}

// FormatOptimization returns the optimization section
func (d *Document) FormatOptimization() string {
	var b strings.Builder

	b.WriteString("=== Optimization ===\n")
	b.WriteString(fmt.Sprintf("Log Key:      %s\n", d.Optimization.OptLogKey))
	if d.Optimization.EnableTuning {
		b.WriteString("Auto-Tuning:  ENABLED (hardware-specific)\n")
	} else {
		b.WriteString("Auto-Tuning:  DISABLED\n")
	}

	return b.String()
}

// FormatDetailed returns every section, followed by a note listing fields
// that still hold template placeholders.
func (d *Document) FormatDetailed() string {
	var b strings.Builder

	b.WriteString(d.FormatDeviceInfo())
	b.WriteString("\n")
	b.WriteString(d.FormatRemoteConfig())
	b.WriteString("\n")
	b.WriteString(d.FormatTargetConfig())
	b.WriteString("\n")
	b.WriteString(d.FormatOptimization())

	if pending := d.Placeholders(); len(pending) > 0 {
		names := make([]string, len(pending))
		for i, f := range pending {
			names[i] = string(f)
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Unset: %s\n", strings.Join(names, ", ")))
	}

	return b.String()
}

// FormatStep returns only the section a step edits
func (d *Document) FormatStep(step int) string {
	switch step {
	case StepDevice:
		return fmt.Sprintf("Device Name: %s\n", d.DeviceName)
	case StepModel:
		return fmt.Sprintf("Framework: %s\n", d.Model.Framework)
	case StepRemote:
		return d.FormatRemoteConfig()
	case StepTarget:
		host := d.TargetDevices.Host
		return fmt.Sprintf("Architecture: %s\nOS: %s\n", host.Arch, host.OS)
	case StepRuntime:
		return fmt.Sprintf("Threads: %d\n", d.Runtime.NumThreads)
	case StepOptimization:
		return d.FormatOptimization()
	default:
		return ""
	}
}
