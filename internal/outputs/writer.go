// Package outputs writes generated experiment specs to disk as
// pretty-printed JSON artifacts, one file per experiment.
package outputs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mof-mlip-agent/internal/schema"
)

// Writer persists experiment specs under a single output directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir, creating the directory if
// needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteSpec writes spec as <exp_id>.json and returns the file path.
func (w *Writer) WriteSpec(spec schema.ExperimentSpec) (string, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal spec: %w", err)
	}
	path := filepath.Join(w.dir, spec.ExpID+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write spec file: %w", err)
	}
	return path, nil
}
