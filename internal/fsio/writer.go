// Package fsio provides the on-disk file primitives consumed by the
// template materialization pipeline. All write operations create missing
// parent directories.
package fsio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer performs directory and file writes rooted at the OS filesystem.
// The zero value is ready to use.
type Writer struct{}

// EnsureDir creates the directory and any missing parents. Idempotent.
func (Writer) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// WriteText writes content verbatim as UTF-8 text, creating parent
// directories as needed and overwriting any existing file.
func (w Writer) WriteText(path, content string) error {
	if err := w.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteJSON marshals v with two-space indentation and writes it with a
// trailing newline, creating parent directories as needed.
func (w Writer) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON for %s: %w", path, err)
	}
	return w.WriteText(path, string(data)+"\n")
}
