// Package render provides output renderers for the linedump pipeline.
// This file implements the plain-text renderer, which reproduces the
// console format `NNN: content` one row per line.
package render

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/gaurav-prasanna/linedump/core"
)

// TextRenderer writes one numbered row per kept line.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render formats every line as `%03d: %s` followed by a newline.
func (r *TextRenderer) Render(lines iter.Seq[core.NumberedLine], meta core.SourceMetadata) ([]byte, error) {
	var buf bytes.Buffer
	for nl := range lines {
		buf.WriteString(FormatRow(nl))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".lines.txt"
}

// FormatRow returns the row for a single numbered line, without a
// terminator. The index is padded to three digits and widens past 999.
func FormatRow(nl core.NumberedLine) string {
	return fmt.Sprintf("%03d: %s", nl.Index, nl.Content)
}
