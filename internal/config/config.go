// Package config loads the numprec command-line configuration.
// Settings are read from a TOML or YAML file, chosen by file extension,
// on top of defaults, and validated before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/govalues/numprec"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default).
	FormatTOML Format = iota
	// FormatYAML represents YAML format.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds all command-line configuration.
type Config struct {
	Calc    CalcConfig    `toml:"calc" yaml:"calc"`
	Stats   StatsConfig   `toml:"stats" yaml:"stats"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// CalcConfig holds arithmetic settings.
type CalcConfig struct {
	// Precision is the number of significant digits kept when
	// suppressing floating-point noise (default: 15).
	Precision int `toml:"precision" yaml:"precision"`
}

// StatsConfig holds score aggregation settings.
type StatsConfig struct {
	// Places is the number of digits after the decimal point
	// in the reported mean (default: 2).
	Places int `toml:"places" yaml:"places"`

	// Column is the header name of the score column (default: "score").
	Column string `toml:"column" yaml:"column"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `toml:"level" yaml:"level"`

	// Format is text or json (default: text).
	Format string `toml:"format" yaml:"format"`
}

var errInvalidConfig = errors.New("invalid configuration")

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Calc: CalcConfig{
			Precision: numprec.DefaultPrec,
		},
		Stats: StatsConfig{
			Places: 2,
			Column: "score",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration file at path on top of [Default].
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.decode(data, detectFormat(path)); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString parses content in the given format on top of [Default].
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()
	if err := cfg.decode([]byte(content), format); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, format Format) error {
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c)
		if err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return fmt.Errorf("unknown key %q", keys[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to nothing and leaves defaults intact.
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %v", format)
	}
	return nil
}

// detectFormat determines the configuration format from file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks all settings and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := numprec.NewCalc(c.Calc.Precision); err != nil {
		return fmt.Errorf("%w: calc.precision: %w", errInvalidConfig, err)
	}
	if c.Stats.Places < -numprec.MaxPrec || c.Stats.Places > numprec.MaxPrec {
		return fmt.Errorf("%w: stats.places must be between %v and %v, got %v", errInvalidConfig, -numprec.MaxPrec, numprec.MaxPrec, c.Stats.Places)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", errInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", errInvalidConfig, c.Logging.Format)
	}
	return nil
}

// NewCalc returns the calculator described by the configuration.
func (c *Config) NewCalc() (numprec.Calc, error) {
	return numprec.NewCalc(c.Calc.Precision)
}
