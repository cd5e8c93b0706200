// Package core defines the pipeline types and stage interfaces for linedump.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"iter"
)

// SourceText holds the decoded content of the input file.
type SourceText struct {
	Path     string
	Encoding string // canonical name of the declared encoding
	Text     string
	Lines    []string // filled by the split stage; terminators stripped
}

// NumberedLine pairs a line with its 1-based position in the source.
type NumberedLine struct {
	Index   int    `json:"index"`
	Content string `json:"content"`
}

// SourceMetadata describes a dump for renderers. It carries no timestamps
// so repeated runs over an unchanged file render identically.
type SourceMetadata struct {
	Path       string `json:"path"`
	Encoding   string `json:"encoding"`
	TotalLines int    `json:"total_lines"`
	Threshold  string `json:"threshold"`
	Emitted    int    `json:"emitted"`
}

// Reader loads and decodes a file.
type Reader interface {
	Read(ctx context.Context, path string) (*SourceText, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Splitter breaks decoded text into lines.
type Splitter interface {
	Split(text string) []string
}

// Renderer converts numbered lines (and metadata) into a final output format.
type Renderer interface {
	Render(lines iter.Seq[NumberedLine], meta SourceMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".lines.txt").
	Extension() string
}

// Enumerate lazily pairs every line with its 1-based index.
func Enumerate(lines []string) iter.Seq[NumberedLine] {
	return func(yield func(NumberedLine) bool) {
		for i, line := range lines {
			if !yield(NumberedLine{Index: i + 1, Content: line}) {
				return
			}
		}
	}
}
