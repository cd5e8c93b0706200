// Package split breaks decoded text into lines.
// Boundaries follow universal-newline text reading: \n, \r\n and \r, plus the
// vertical tab, form feed, file/group/record separators, NEL, LS and PS.
package split

import (
	"strings"
	"unicode/utf8"
)

// LineSplitter splits text into lines with terminators stripped.
type LineSplitter struct{}

// New creates a LineSplitter.
func New() *LineSplitter {
	return &LineSplitter{}
}

// Split returns the lines of text in order. A trailing terminator does not
// produce a trailing empty line, and empty text yields no lines.
func (s *LineSplitter) Split(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		// \r\n is a single boundary.
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
