// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"unit-convert/core/types"
	"unit-convert/internal/errors"
	"unit-convert/internal/logging"
)

// MaxPrecision is the largest number of decimal digits a float64 result can carry meaningfully
const MaxPrecision = 15

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the main application configuration.
// It is loaded once at startup and treated as read-only afterwards.
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Precision is the number of decimal digits every result is rounded to
	Precision int `json:"precision" yaml:"precision"`

	// Temperature contains temperature-specific defaults
	Temperature TemperatureConfig `json:"temperature" yaml:"temperature"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// TemperatureConfig holds the units substituted when a temperature
// conversion omits them
type TemperatureConfig struct {
	// DefaultFrom is used when no source unit is given
	DefaultFrom types.Unit `json:"defaultFrom" yaml:"defaultFrom"`

	// DefaultTo is used when no target unit is given
	DefaultTo types.Unit `json:"defaultTo" yaml:"defaultTo"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (text, json)
	Format string `json:"format" yaml:"format"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:   "1.0",
		Precision: 2,
		Temperature: TemperatureConfig{
			DefaultFrom: types.Celsius,
			DefaultTo:   types.Fahrenheit,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, decoding it over the defaults.
// The decoder is picked from the extension: .json, .yaml/.yml or .hcl.
// The path is always named by the user, so a missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.TypeConfig, "config file %s not found", path)
		}
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read config %s", path)
	}

	config := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".hcl":
		err = decodeHCL(path, data, config)
	default:
		return nil, errors.Newf(errors.TypeConfig, "unsupported config format %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to decode config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the converter cannot honor
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return errors.Newf(errors.TypeConfig, "precision must be between 0 and %d, got %d", MaxPrecision, c.Precision)
	}

	for name, unit := range map[string]types.Unit{
		"temperature.defaultFrom": c.Temperature.DefaultFrom,
		"temperature.defaultTo":   c.Temperature.DefaultTo,
	} {
		if !types.Temperature.Has(unit) {
			return errors.Newf(errors.TypeConfig, "%s: %q is not a temperature unit", name, unit)
		}
	}
	if c.Temperature.DefaultFrom == c.Temperature.DefaultTo {
		return errors.Newf(errors.TypeConfig, "temperature defaults must differ, both are %q", c.Temperature.DefaultFrom)
	}

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Newf(errors.TypeConfig, "output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	return nil
}

// Save saves configuration to a file as indented JSON
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("failed to create config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode config", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Config(fmt.Sprintf("failed to write config %s", path), err)
	}
	return nil
}
