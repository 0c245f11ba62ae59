package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/stdmirror/core/output"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "std-453.md", output.FileName(453, ".md"))
	assert.Equal(t, "std-7.json", output.FileName(7, ".json"))
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "content")

	w, err := output.New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, w.OutputDir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := output.New(dir)
	require.NoError(t, err)

	path, err := w.Write(641, []byte("# Standard\n"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "std-641.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Standard\n", string(data))

	// Overwrites in place and leaves no temp files behind.
	_, err = w.Write(641, []byte("updated"), ".md")
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "std-641.md", entries[0].Name())
}

func TestWrite_MissingDirectory(t *testing.T) {
	w := &output.Writer{OutputDir: filepath.Join(t.TempDir(), "gone")}

	_, err := w.Write(1, []byte("x"), ".md")
	require.Error(t, err)
}
