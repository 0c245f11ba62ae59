// Package output handles file naming and writing for mirrored standards.
// Every standard lands in one flat directory as std-<id><ext>.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// FilePrefix starts every mirrored file name.
const FilePrefix = "std-"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory, creating it
// if absent. If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// FileName returns the deterministic file name for a standard.
func FileName(id int, ext string) string {
	return FilePrefix + strconv.Itoa(id) + ext
}

// Write stores data as std-<id><ext> and returns the written path.
// The file is written to a temporary name first and renamed into place,
// so a failed write never leaves a truncated standard behind.
func (w *Writer) Write(id int, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, FileName(id, ext))

	tmp, err := os.CreateTemp(w.OutputDir, ".stdmirror-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing file %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, nil
}
