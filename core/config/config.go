// Package config holds stdmirror's typed configuration. Values come from
// flags, STDMIRROR_* environment variables and an optional stdmirror.yaml,
// merged by viper and decoded here.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/stdmirror/core/catalog"
	"github.com/gaurav-prasanna/stdmirror/core/convert"
	"github.com/gaurav-prasanna/stdmirror/core/fetch"
	"github.com/gaurav-prasanna/stdmirror/core/mirror"
	"github.com/gaurav-prasanna/stdmirror/core/render"
	"github.com/gaurav-prasanna/stdmirror/internal/logger"
)

// DefaultOutputDir is where mirrored standards land.
const DefaultOutputDir = "content"

// Config is the merged configuration for every command.
type Config struct {
	// BaseURL is the standard page template; %d is the identifier.
	BaseURL   string        `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	OutputDir string        `mapstructure:"output_dir" json:"output_dir" yaml:"output_dir"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" json:"user_agent" yaml:"user_agent"`
	// MinLength is the skip threshold in characters.
	MinLength    int    `mapstructure:"min_length" json:"min_length" yaml:"min_length"`
	CodeLanguage string `mapstructure:"code_language" json:"code_language" yaml:"code_language"`
	Engine       string `mapstructure:"engine" json:"engine" yaml:"engine"`
	Format       string `mapstructure:"format" json:"format" yaml:"format"`
	// Catalog is an optional YAML catalog replacing the built-in one.
	Catalog string `mapstructure:"catalog" json:"catalog" yaml:"catalog"`
	PDFFont string `mapstructure:"pdf_font" json:"pdf_font" yaml:"pdf_font"`

	Log logger.Config `mapstructure:"log" json:"log" yaml:"log"`
}

// Default returns a Config with every default filled in.
func Default() Config {
	var c Config
	c.WithDefaults()
	return c
}

// WithDefaults fills zero-value fields.
func (c *Config) WithDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = catalog.DefaultURLTemplate
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Timeout <= 0 {
		c.Timeout = fetch.DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = fetch.DefaultUserAgent
	}
	if c.MinLength == 0 {
		c.MinLength = mirror.DefaultMinLength
	}
	if c.CodeLanguage == "" {
		c.CodeLanguage = convert.DefaultLanguage
	}
	if c.Engine == "" {
		c.Engine = convert.EnginePattern
	}
	if c.Format == "" {
		c.Format = render.FormatMarkdown
	}
	c.Log.SetDefaults()
}

// Validate rejects values no command could work with. Failures come back
// as validation.Errors keyed by config key.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(urlTemplate)),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.MinLength, validation.Min(0)),
		validation.Field(&c.Engine, oneOf(convert.EnginePattern, convert.EngineLibrary)),
		validation.Field(&c.Format, oneOf(render.FormatMarkdown, "md", render.FormatJSON, render.FormatPDF)),
	)
	if err != nil {
		return err
	}
	if err := validation.Validate(c.Log.Level, oneOf("debug", "info", "warn", "warning", "error")); err != nil {
		return validation.Errors{"log.level": err}
	}
	return nil
}

// oneOf is validation.In without regard to case.
func oneOf(allowed ...string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	})
}

func urlTemplate(value interface{}) error {
	tmpl, _ := value.(string)
	if strings.Count(tmpl, "%d") != 1 || strings.Count(tmpl, "%") != 1 {
		return errors.New("must contain exactly one %d placeholder")
	}
	u, err := url.Parse(catalog.StandardURL(tmpl, 1))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

// SetDefaults seeds v so unset keys decode to the defaults and an explicit
// zero survives.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("min_length", d.MinLength)
	v.SetDefault("code_language", d.CodeLanguage)
	v.SetDefault("engine", d.Engine)
	v.SetDefault("format", d.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_paths", d.Log.OutputPaths)
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	// Empty strings in a config file still fall back; min_length was
	// already defaulted by viper, so a deliberate 0 is kept.
	minLength := c.MinLength
	c.WithDefaults()
	c.MinLength = minLength

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
