// Package config loads the cdbgen settings from defaults, an optional
// .cdbgen.yaml file and the environment, in increasing order of precedence.
package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/cdbgen/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Log format names.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Config holds the effective settings of one cdbgen invocation.
type Config struct {
	// Database is the path of the compilation database. Absolute after Load.
	Database string `koanf:"database" yaml:"database" validate:"required"`
	// Prefix is the name prefix that marks a compiler shim.
	Prefix string `koanf:"prefix" yaml:"prefix" validate:"required"`
	// Extensions are the file name suffixes treated as source files.
	Extensions []string `koanf:"extensions" yaml:"extensions" validate:"min=1,dive,startswith=.,min=2"`
	// Log configures diagnostics on stderr.
	Log LogConfig `koanf:"log" yaml:"log"`

	// Source is the configuration file that was applied, if any.
	Source string `koanf:"-" yaml:"source,omitempty"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" yaml:"format" validate:"oneof=pretty json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Database:   domain.DatabaseFileName,
		Prefix:     domain.ShimPrefix,
		Extensions: domain.DefaultSourceExtensions(),
		Log: LogConfig{
			Level:  "warn",
			Format: FormatPretty,
		},
	}
}

var validate = validator.New()

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return zerr.With(errors.Join(domain.ErrConfigInvalid, err), "source", c.sourceName())
	}
	return nil
}

// YAML renders the settings as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) sourceName() string {
	if c.Source == "" {
		return "defaults and environment"
	}
	return c.Source
}
