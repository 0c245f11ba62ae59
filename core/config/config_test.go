package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/stdmirror/core/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()

	assert.Equal(t, "https://v8std.ru/std/%d/", c.BaseURL)
	assert.Equal(t, "content", c.OutputDir)
	assert.Equal(t, 15*time.Second, c.Timeout)
	assert.Equal(t, 200, c.MinLength)
	assert.Equal(t, "bsl", c.CodeLanguage)
	assert.Equal(t, "pattern", c.Engine)
	assert.Equal(t, "markdown", c.Format)
	assert.Equal(t, "warn", c.Log.Level)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantField string
	}{
		{"empty output dir", func(c *config.Config) { c.OutputDir = "" }, "output_dir"},
		{"no placeholder", func(c *config.Config) { c.BaseURL = "https://v8std.ru/std/" }, "base_url"},
		{"two placeholders", func(c *config.Config) { c.BaseURL = "https://v8std.ru/%d/%d/" }, "base_url"},
		{"wrong verb", func(c *config.Config) { c.BaseURL = "https://v8std.ru/std/%s/" }, "base_url"},
		{"relative url", func(c *config.Config) { c.BaseURL = "/std/%d/" }, "base_url"},
		{"negative min length", func(c *config.Config) { c.MinLength = -1 }, "min_length"},
		{"zero timeout", func(c *config.Config) { c.Timeout = 0 }, "timeout"},
		{"unknown engine", func(c *config.Config) { c.Engine = "dom" }, "engine"},
		{"unknown format", func(c *config.Config) { c.Format = "docx" }, "format"},
		{"unknown level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.mutate(&c)

			err := c.Validate()
			var errs validation.Errors
			require.True(t, errors.As(err, &errs), "got %v", err)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidate_AcceptsAlternatives(t *testing.T) {
	c := config.Default()
	c.Engine = "Library"
	c.Format = "pdf"
	c.MinLength = 0
	c.BaseURL = "http://127.0.0.1:8080/std/%d/"
	assert.NoError(t, c.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdmirror.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir: mirror
timeout: 30s
min_length: 0
engine: library
log:
  level: debug
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "mirror", c.OutputDir)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.Equal(t, 0, c.MinLength)
	assert.Equal(t, "library", c.Engine)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "console", c.Log.Format)
	assert.Equal(t, "https://v8std.ru/std/%d/", c.BaseURL)
}

func TestLoad_Override(t *testing.T) {
	v := viper.New()
	v.Set("format", "xml")

	_, err := config.Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}
