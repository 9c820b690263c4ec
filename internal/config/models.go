package config

import (
	"path/filepath"
	"strings"

	"github.com/optimium-tools/optimium-args/internal/arguments"
)

// CurrentVersion is the preferences file schema version.
const CurrentVersion = 1

// Registry represents the entire preferences file.
// It never holds wizard answers; each wizard run starts from the default
// template.
type Registry struct {
	Version int           `yaml:"version"`
	Export  *ExportPrefs  `yaml:"export,omitempty"`
	Logging *LoggingPrefs `yaml:"logging,omitempty"`
}

// ExportPrefs controls where and how exported documents are written.
type ExportPrefs struct {
	Directory string `yaml:"directory,omitempty"` // Empty means the working directory
	Filename  string `yaml:"filename,omitempty"`  // Empty means the format's default name
	Format    string `yaml:"format,omitempty"`    // "json" or "yaml"
}

// LoggingPrefs is used when neither --log-level nor the environment sets a level.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`  // Log destination instead of stderr
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Export: &ExportPrefs{
			Format: string(arguments.FormatJSON),
		},
		Logging: &LoggingPrefs{},
	}
}

// ensureDefaults fills sections missing from a hand-edited file.
func (r *Registry) ensureDefaults() {
	if r.Export == nil {
		r.Export = &ExportPrefs{Format: string(arguments.FormatJSON)}
	}
	if r.Logging == nil {
		r.Logging = &LoggingPrefs{}
	}
}

// ExportFormat returns the preferred export format, falling back to JSON
// when the stored value is missing or unknown.
func (r *Registry) ExportFormat() arguments.Format {
	if r.Export == nil {
		return arguments.FormatJSON
	}
	f, err := arguments.ParseFormat(r.Export.Format)
	if err != nil {
		return arguments.FormatJSON
	}
	return f
}

// ExportPath returns the default destination for a document in format f.
func (r *Registry) ExportPath(f arguments.Format) string {
	name := f.Filename()
	dir := ""
	if r.Export != nil {
		if r.Export.Filename != "" {
			name = matchExtension(r.Export.Filename, f)
		}
		dir = r.Export.Directory
	}
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// matchExtension swaps a .json, .yaml or .yml extension that disagrees with f.
// Other extensions are left alone.
func matchExtension(name string, f arguments.Format) string {
	ext := filepath.Ext(name)
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml":
	default:
		return name
	}
	if arguments.FormatForPath(name) == f {
		return name
	}
	return strings.TrimSuffix(name, ext) + filepath.Ext(f.Filename())
}

// SetExportDefaults records the export destination and format.
func (r *Registry) SetExportDefaults(directory, filename string, f arguments.Format) {
	r.ensureDefaults()
	r.Export.Directory = directory
	r.Export.Filename = filename
	r.Export.Format = string(f)
}

// SetLogging records the fallback log level and destination.
func (r *Registry) SetLogging(level, file string) {
	r.ensureDefaults()
	r.Logging.Level = level
	r.Logging.File = file
}

// LogLevel returns the stored log level, or "" for silent.
func (r *Registry) LogLevel() string {
	if r.Logging == nil {
		return ""
	}
	return r.Logging.Level
}

// LogFile returns the stored log destination, or "" for stderr.
func (r *Registry) LogFile() string {
	if r.Logging == nil {
		return ""
	}
	return r.Logging.File
}
