// Package export saves rendered argument documents to disk for the wizard
// screens and the export command.
package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/optimium-tools/optimium-args/internal/arguments"
	"github.com/optimium-tools/optimium-args/internal/logging"
)

// FileMode is the permission of exported documents.
const FileMode = 0644

// Resolve turns a user-supplied destination into a file path. An empty path
// becomes the format's default filename; an existing directory gets the
// default filename appended.
func Resolve(path string, f arguments.Format) string {
	if path == "" {
		return f.Filename()
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, f.Filename())
	}
	return path
}

// Save writes data to path atomically, creating missing parent directories.
// An existing file is replaced only once the new content is fully written.
func Save(path string, data []byte, f arguments.Format) error {
	if path == "" {
		return errors.New("export path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	if err := renameio.WriteFile(path, data, FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.LogExport(path, string(f), len(data))
	return nil
}

// Load reads and parses a previously exported document, picking the
// decoder from the file extension.
func Load(path string) (*arguments.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := arguments.Decode(arguments.FormatForPath(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
