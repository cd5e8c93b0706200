package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadUTF8(t *testing.T) {
	path := writeFile(t, "README.md", []byte("# Title\nhéllo\n"))
	r, err := New("")
	require.NoError(t, err)

	src, err := r.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, "UTF-8", src.Encoding)
	assert.Equal(t, "# Title\nhéllo\n", src.Text)
}

func TestReadKeepsBOM(t *testing.T) {
	path := writeFile(t, "bom.md", []byte("\xef\xbb\xbfa\n"))
	r, err := New("utf-8")
	require.NoError(t, err)

	src, err := r.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "\ufeffa\n", src.Text)
}

func TestReadInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
		b      byte
	}{
		{"stray continuation", []byte("ab\xffcd"), 2, 0xff},
		{"truncated sequence", []byte("line\n\xe2\x82"), 5, 0xe2},
		{"overlong encoding", []byte("\xc0\xaf"), 0, 0xc0},
	}
	r, err := New("UTF-8")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.md", tt.data)
			src, err := r.Read(context.Background(), path)
			require.Error(t, err)
			assert.Nil(t, src)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "want *DecodeError, got %T", err)
			assert.Equal(t, tt.offset, de.Offset)
			assert.Equal(t, tt.b, de.Byte)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestReadLatin1(t *testing.T) {
	path := writeFile(t, "latin1.txt", []byte("caf\xe9\n"))
	r, err := New("latin1")
	require.NoError(t, err)
	assert.Contains(t, r.Encoding(), "8859-1")

	src, err := r.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "café\n", src.Text)
}

func TestReadInvalidLegacyEncoding(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		data     []byte
		offset   int
		b        byte
	}{
		{"shift_jis bad trail byte", "Shift_JIS", []byte("ok\n\x81\x20\xaa\n\x00"), 3, 0x81},
		{"euc-jp bad lead byte", "EUC-JP", []byte("ok\n\x81\x20\xaa\n\x00"), 3, 0x81},
		{"windows-1253 undefined byte", "windows-1253", []byte("ok\n\x81\x20\xaa\n\x00"), 3, 0x81},
		{"utf-16le odd trailing byte", "UTF-16LE", []byte("o\x00k\x00\n"), 4, '\n'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.encoding)
			require.NoError(t, err)

			path := writeFile(t, "legacy.txt", tt.data)
			src, err := r.Read(context.Background(), path)
			require.Error(t, err)
			assert.Nil(t, src)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "want *DecodeError, got %T", err)
			assert.ErrorIs(t, err, ErrInvalidSequence)
			assert.Equal(t, tt.offset, de.Offset)
			assert.Equal(t, tt.b, de.Byte)
		})
	}
}

func TestReadLegacyEncodingValid(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		data     []byte
		want     string
	}{
		{"shift_jis hiragana", "Shift_JIS", []byte("\x82\xa0\n"), "あ\n"},
		{"utf-16le encoded replacement char", "UTF-16LE", []byte("a\x00\xfd\xff"), "a\ufffd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.encoding)
			require.NoError(t, err)

			src, err := r.Read(context.Background(), writeFile(t, "ok.txt", tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Text)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "README.md")
	_, err = r.Read(context.Background(), missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), missing)
}

func TestReadDirectory(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	_, err = r.Read(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

func TestReadCanceled(t *testing.T) {
	r, err := New("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Read(ctx, writeFile(t, "a.md", []byte("a")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewUnknownEncoding(t *testing.T) {
	_, err := New("klingon-8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "klingon-8")
}
