// Package render — JSON renderer.
// Emits the dump metadata and the kept lines as one indented document.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/gaurav-prasanna/linedump/core"
)

// Dump is the complete JSON output for one source file.
type Dump struct {
	Metadata core.SourceMetadata `json:"metadata"`
	Lines    []core.NumberedLine `json:"lines"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render collects the lines and encodes them with the metadata.
// HTML characters in content are kept literal.
func (r *JSONRenderer) Render(lines iter.Seq[core.NumberedLine], meta core.SourceMetadata) ([]byte, error) {
	dump := Dump{Metadata: meta, Lines: []core.NumberedLine{}}
	for nl := range lines {
		dump.Lines = append(dump.Lines, nl)
	}
	dump.Metadata.Emitted = len(dump.Lines)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".lines.json"
}
