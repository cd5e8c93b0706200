// Package render — Markdown renderer.
// Wraps the numbered rows in a fenced block under a heading naming the source.
package render

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gaurav-prasanna/linedump/core"
)

// MarkdownRenderer produces a small Markdown document around the rows.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes a heading, a one-line summary and the rows in a code fence.
func (r *MarkdownRenderer) Render(lines iter.Seq[core.NumberedLine], meta core.SourceMetadata) ([]byte, error) {
	var rows []string
	first, last := 0, 0
	longestRun := 0
	for nl := range lines {
		if first == 0 {
			first = nl.Index
		}
		last = nl.Index
		longestRun = max(longestRun, longestBacktickRun(nl.Content))
		rows = append(rows, FormatRow(nl))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", meta.Path)
	if len(rows) == 0 {
		fmt.Fprintf(&b, "No lines selected (%s) from %d lines.\n", meta.Threshold, meta.TotalLines)
		return []byte(b.String()), nil
	}
	fmt.Fprintf(&b, "Lines %d-%d of %d (%s).\n\n", first, last, meta.TotalLines, meta.Threshold)

	// The fence must be longer than any backtick run inside the rows.
	fence := strings.Repeat("`", max(3, longestRun+1))
	b.WriteString(fence + "text\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(fence + "\n")
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".lines.md"
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return longest
}
