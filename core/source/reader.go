// Package source implements the Reader interface.
// It reads a local file fully into memory and decodes it under a declared
// encoding, failing outright on content that does not decode.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/linedump/core"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding is declared.
const DefaultEncoding = "utf-8"

// ErrInvalidSequence marks input the decoder could only repair with U+FFFD.
var ErrInvalidSequence = errors.New("invalid byte sequence")

// DecodeError reports content that is not valid under the declared encoding.
type DecodeError struct {
	Path     string
	Encoding string
	Offset   int  // byte offset of the first offending byte, -1 if unknown
	Byte     byte // offending byte when Offset >= 0
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("decoding %s as %s: %v", e.Path, e.Encoding, e.Err)
	}
	return fmt.Sprintf("decoding %s as %s: invalid byte 0x%02x at offset %d", e.Path, e.Encoding, e.Byte, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FileReader reads and decodes files from the local filesystem.
type FileReader struct {
	enc  encoding.Encoding
	name string
}

// New creates a FileReader for the named IANA encoding. Matching is
// case-insensitive; an empty name selects UTF-8.
func New(encodingName string) (*FileReader, error) {
	if strings.TrimSpace(encodingName) == "" {
		encodingName = DefaultEncoding
	}
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encodingName, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", encodingName)
	}
	return &FileReader{enc: enc, name: canonicalName(enc, encodingName)}, nil
}

// canonicalName prefers the MIME name (e.g. "ISO-8859-1") over the
// registered IANA name (e.g. "ISO_8859-1:1987").
func canonicalName(enc encoding.Encoding, fallback string) string {
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	return fallback
}

// Encoding returns the canonical name of the declared encoding.
func (r *FileReader) Encoding() string {
	return r.name
}

// Read loads the whole file at path and decodes it. The file is closed on
// every return path.
func (r *FileReader) Read(ctx context.Context, path string) (*core.SourceText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("inspecting source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("reading %s: not a regular file", path)
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := r.decode(path, raw)
	if err != nil {
		return nil, err
	}

	return &core.SourceText{
		Path:     path,
		Encoding: r.name,
		Text:     text,
	}, nil
}

// decode converts raw bytes to a string under the declared encoding.
// UTF-8 input is validated strictly rather than repaired with U+FFFD.
func (r *FileReader) decode(path string, raw []byte) (string, error) {
	if isUTF8(r.name) {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
			return "", r.decodeError(path, raw, err)
		}
		return string(raw), nil
	}

	out, err := r.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &DecodeError{Path: path, Encoding: r.name, Offset: -1, Err: err}
	}
	text := string(out)
	if off, ok := r.replacementOffset(raw, text); ok {
		de := &DecodeError{Path: path, Encoding: r.name, Offset: off, Err: ErrInvalidSequence}
		if off >= 0 {
			de.Byte = raw[off]
		}
		return "", de
	}
	return text, nil
}

// replacementOffset finds the first U+FFFD in text that the decoder
// substituted for invalid input. A U+FFFD is genuine only when re-encoding
// text up to and including it reproduces the start of raw. The returned
// offset is where the invalid input begins, or -1 if it cannot be located.
func (r *FileReader) replacementOffset(raw []byte, text string) (int, bool) {
	for i, c := range text {
		if c != utf8.RuneError {
			continue
		}
		upTo, err := r.enc.NewEncoder().String(text[:i+utf8.RuneLen(c)])
		if err == nil && bytes.HasPrefix(raw, []byte(upTo)) {
			continue
		}
		before, err := r.enc.NewEncoder().String(text[:i])
		if err != nil || len(before) >= len(raw) {
			return -1, true
		}
		return len(before), true
	}
	return -1, false
}

func (r *FileReader) decodeError(path string, raw []byte, err error) *DecodeError {
	de := &DecodeError{Path: path, Encoding: r.name, Offset: -1, Err: err}
	if off := invalidUTF8Offset(raw); off >= 0 {
		de.Offset = off
		de.Byte = raw[off]
	}
	return de
}

// invalidUTF8Offset returns the offset of the first byte that does not start
// a valid UTF-8 sequence, or -1.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}
