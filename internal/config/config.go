// Package config loads the sipheader command configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/sipheader/header"
	"github.com/ghettovoice/sipheader/internal/errorutil"
	"github.com/ghettovoice/sipheader/internal/log"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Config is the command configuration.
//
//	log_level: debug
//	dev: true
//	strict: true
//	output:
//	  format: yaml
//	  compact: true
//	raw_headers:
//	  - P-Asserted-Identity
type Config struct {
	LogLevel string `yaml:"log_level"`
	Dev      bool   `yaml:"dev"`
	// Strict makes any invalid header fail the run.
	Strict bool   `yaml:"strict"`
	Output Output `yaml:"output"`
	// RawHeaders are kept as opaque extension headers, even when a typed header exists.
	RawHeaders []string `yaml:"raw_headers"`
}

// Output configures rendering of the parsed headers.
type Output struct {
	Format  string `yaml:"format"`
	Compact bool   `yaml:"compact"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Output:   Output{Format: FormatText},
	}
}

// Load reads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Decode(bytes.NewReader(data)))
}

// Decode reads the configuration from r, unknown keys are rejected.
// Missing values are taken from [Default].
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errtrace.Wrap(errorutil.NewInvalidFormatError(err))
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("log level %q", c.LogLevel))
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("output format %q", c.Output.Format))
	}
	for _, name := range c.RawHeaders {
		if !header.Name(name).IsValid() {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("raw header name %q", name))
		}
	}
	return nil
}
