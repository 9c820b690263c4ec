package arguments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultFilename is the name offered for the exported JSON document.
const DefaultFilename = "user_arguments.json"

// Indent is the per-level indentation of exported documents.
const Indent = "    "

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
	}
}

// Filename returns the suggested export filename for f.
func (f Format) Filename() string {
	if f == FormatYAML {
		return "user_arguments.yaml"
	}
	return DefaultFilename
}

// Serialize renders the document as indented JSON in schema order with a
// trailing newline.
func (d *Document) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}
	return append(data, '\n'), nil
}

// Compact renders the document as single-line JSON.
func (d *Document) Compact() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}
	return data, nil
}

// SerializeYAML renders the document as YAML in schema order.
func (d *Document) SerializeYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(Indent))
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to marshal arguments as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush YAML encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode renders the document in format f.
func (d *Document) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		return d.Serialize()
	case FormatYAML:
		return d.SerializeYAML()
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// Parse reads a JSON document. Keys absent from data keep their defaults;
// keys outside the schema are rejected.
func Parse(data []byte) (*Document, error) {
	doc := New()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	if err := doc.checkValues(); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	return doc, nil
}

// ParseYAML reads a YAML document with the same rules as Parse.
func ParseYAML(data []byte) (*Document, error) {
	doc := New()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML arguments: %w", err)
	}
	if err := doc.checkValues(); err != nil {
		return nil, fmt.Errorf("failed to parse YAML arguments: %w", err)
	}
	return doc, nil
}

// checkValues rejects decoded values that no step could have written.
// The framework and port placeholders stay valid so the default template
// round-trips.
func (d *Document) checkValues() error {
	invalid := func(f Field, v string) error {
		return newFieldError(StepOf(f), f, v, ErrInvalidValue)
	}
	if fw := d.Model.Framework; fw != FrameworkPlaceholder {
		if _, ok := ParseFramework(string(fw)); !ok {
			return invalid(FieldFramework, string(fw))
		}
	}
	if n, ok := d.Remote.Port.Value(); ok && n < 0 {
		return invalid(FieldPort, strconv.Itoa(n))
	}
	if _, ok := ParseArch(string(d.TargetDevices.Host.Arch)); !ok {
		return invalid(FieldArch, string(d.TargetDevices.Host.Arch))
	}
	if _, ok := ParseOS(string(d.TargetDevices.Host.OS)); !ok {
		return invalid(FieldOS, string(d.TargetDevices.Host.OS))
	}
	if d.TargetDevices.Host.MAttr != DefaultMAttr {
		return invalid(FieldMAttr, d.TargetDevices.Host.MAttr)
	}
	if d.Runtime.NumThreads < 1 {
		return invalid(FieldNumThreads, strconv.Itoa(d.Runtime.NumThreads))
	}
	return nil
}

// Decode reads data encoded in format f.
func Decode(f Format, data []byte) (*Document, error) {
	switch f {
	case FormatJSON, "":
		return Parse(data)
	case FormatYAML:
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// FormatForPath guesses the encoding of a file from its extension.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}
