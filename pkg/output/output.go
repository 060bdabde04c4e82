// Package output owns the directories a run writes to: rendered PDFs and diagnostic dumps.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pyhub-apps/packlist/pkg/block"
)

// ErrPermission is returned when an output directory or file cannot be created
var ErrPermission = errors.New("permission denied")

// EnsureDir creates dir and its parents
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: cannot create directory %s", ErrPermission, dir)
		}
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Create creates the file at path, making its directory first
func Create(path string) (*os.File, error) {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: cannot create file %s", ErrPermission, path)
		}
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	return f, nil
}

// FileDumper writes block dumps as <Dir>/<name>.txt
type FileDumper struct {
	Dir string
}

// Dump writes the metadata dump of seq and returns the file path
func (d FileDumper) Dump(name string, seq block.Sequence) (string, error) {
	path := filepath.Join(d.Dir, name+".txt")
	f, err := Create(path)
	if err != nil {
		return "", err
	}
	if err := seq.WriteDump(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write dump %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close dump %s: %w", path, err)
	}
	return path, nil
}
