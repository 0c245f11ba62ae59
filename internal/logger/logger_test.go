package logger_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdmirror.log")

	l, err := logger.New(logger.Config{Level: "info", Format: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.With(logger.Int("id", 453)).Info("written", logger.String("file", "std-453.md"))
	l.Debug("filtered out")
	l.Error("fetch failed", logger.Error(errors.New("boom")))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"written"`)
	assert.Contains(t, out, `"id":453`)
	assert.Contains(t, out, `"file":"std-453.md"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.NotContains(t, out, "filtered out")
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warn.log")

	l, err := logger.New(logger.Config{Format: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Info("quiet")
	l.Warn("loud")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := logger.New(logger.Config{Format: "xml"})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	l := logger.NewNop()
	l.Info("ignored", logger.Ints("ids", []int{1, 2}))
	assert.Same(t, l, l.With(logger.String("k", "v")))
	assert.NoError(t, l.Sync())
}
