package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactStore = (*Writer)(nil)

// Writer persists artifacts as JSON files. Writing goes through a
// temporary file in the destination directory followed by a rename, so a
// failed run never leaves a partial artifact behind.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the destination path.
func (w *Writer) Path() string {
	return w.path
}

// Write persists the artifact atomically.
func (w *Writer) Write(_ context.Context, a *domain.Artifact) error {
	if a == nil {
		return domain.ErrInvalidInput
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close artifact: %w", err)
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish artifact: %w", err)
	}
	return nil
}
