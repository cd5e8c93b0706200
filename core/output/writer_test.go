package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStdout(t *testing.T) {
	var stdout bytes.Buffer
	w, err := New("", &stdout)
	require.NoError(t, err)
	assert.True(t, w.ToStdout())

	dest, err := w.Write("README.md", []byte("100: x\n"), ".lines.txt")
	require.NoError(t, err)
	assert.Equal(t, "-", dest)
	assert.Equal(t, "100: x\n", stdout.String())
}

func TestWriteDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	var stdout bytes.Buffer
	w, err := New(dir, &stdout)
	require.NoError(t, err)
	assert.False(t, w.ToStdout())

	dest, err := w.Write(filepath.Join("docs", "README.md"), []byte("{}"), ".lines.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "README_md.lines.json"), dest)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestFilenameFromSource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"README.md", "README_md"},
		{"/abs/path/change-log.txt", "change-log_txt"},
		{"notes v2.md", "notes_v2_md"},
		{".", "source"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, filenameFromSource(tt.in), tt.in)
	}
}
