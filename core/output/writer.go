// Package output delivers rendered data to its destination.
// Without an output directory, data goes to standard output verbatim.
// With one, the filename is derived from the source file name
// (e.g., README.md → README_md.lines.txt).
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to stdout or to a directory.
type Writer struct {
	OutputDir string
	Stdout    io.Writer
}

// New creates a Writer. An empty outputDir selects stdout; otherwise the
// directory is created if missing.
func New(outputDir string, stdout io.Writer) (*Writer, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, Stdout: stdout}, nil
}

// ToStdout reports whether output goes to standard output.
func (w *Writer) ToStdout() bool {
	return w.OutputDir == ""
}

// Write delivers data for the given source. It returns the written file
// path, or "-" for standard output.
func (w *Writer) Write(sourcePath string, data []byte, ext string) (string, error) {
	if w.ToStdout() {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing to stdout: %w", err)
		}
		return "-", nil
	}

	path := filepath.Join(w.OutputDir, filenameFromSource(sourcePath)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// filenameFromSource converts a source path into a flat filename.
// Example: docs/README.md → README_md
func filenameFromSource(sourcePath string) string {
	base := filepath.Base(sourcePath)
	if base == "." || base == string(filepath.Separator) {
		return "source"
	}
	return sanitize(base)
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
