// Package config loads the settings of the factorize command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"primefactorizer/sieve"
)

// Defaults applied before a config file or flags are read.
const (
	DefaultBound    = 30000
	DefaultStrategy = "direct"
	DefaultFormat   = "text"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{"text", "json"}

var (
	// ErrNegativeBound is returned when the configured bound is below zero.
	ErrNegativeBound = errors.New("bound must not be negative")
	// ErrInvalidFormat is returned for an output format outside ValidFormats.
	ErrInvalidFormat = errors.New("invalid format")
)

// Config holds the factorizer settings.
type Config struct {
	Bound    int    `yaml:"bound"`
	Strategy string `yaml:"strategy"`
	Format   string `yaml:"format"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Bound:    DefaultBound,
		Strategy: DefaultStrategy,
		Format:   DefaultFormat,
	}
}

// Load reads a YAML config file on top of the defaults.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the bound, strategy and format.
func (c Config) Validate() error {
	if c.Bound < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBound, c.Bound)
	}
	if _, err := sieve.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if !isValidFormat(c.Format) {
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidFormat, c.Format, ValidFormats)
	}
	return nil
}

// SieveStrategy returns the parsed strategy. It assumes Validate passed.
func (c Config) SieveStrategy() sieve.Strategy {
	s, _ := sieve.ParseStrategy(c.Strategy)
	return s
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
