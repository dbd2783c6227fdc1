package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/colin-opt/colin-adapter/colin"
)

// Config represents the adapter's YAML configuration file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
// Nil pointer fields mean "not set in YAML" and fall back to built-in defaults.
type Config struct {
	LogLevel      string          `yaml:"log_level"`
	MaxInputBytes *int64          `yaml:"max_input_bytes"`
	Objective     ObjectiveConfig `yaml:"objective"`
}

// ObjectiveConfig configures the built-in test function.
type ObjectiveConfig struct {
	Mode          string   `yaml:"mode"`
	RealWeight    *float64 `yaml:"real_weight"`
	IntegerWeight *float64 `yaml:"integer_weight"`
	BinaryWeight  *float64 `yaml:"binary_weight"`
}

// LoadConfig reads and parses a YAML config file with strict field checking
// (typos must cause errors). An empty file yields a zero Config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the log level, objective mode and parameter ranges.
func (c *Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level %q", c.LogLevel)
		}
	}
	if c.MaxInputBytes != nil && *c.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must be non-negative, got %d", *c.MaxInputBytes)
	}
	if !colin.IsValidObjectiveMode(c.Objective.Mode) {
		return fmt.Errorf("unknown objective mode %q", c.Objective.Mode)
	}
	weights := []struct {
		name string
		val  *float64
	}{
		{"real_weight", c.Objective.RealWeight},
		{"integer_weight", c.Objective.IntegerWeight},
		{"binary_weight", c.Objective.BinaryWeight},
	}
	for _, w := range weights {
		if w.val != nil && (math.IsNaN(*w.val) || math.IsInf(*w.val, 0)) {
			return fmt.Errorf("objective %s must be finite, got %v", w.name, *w.val)
		}
	}
	return nil
}

// NewApplication builds the test function described by the config.
func (c *Config) NewApplication() *colin.TestFunction {
	f := colin.NewTestFunction(colin.ObjectiveMode(c.Objective.Mode))
	if c.Objective.RealWeight != nil {
		f.RealWeight = *c.Objective.RealWeight
	}
	if c.Objective.IntegerWeight != nil {
		f.IntegerWeight = *c.Objective.IntegerWeight
	}
	if c.Objective.BinaryWeight != nil {
		f.BinaryWeight = *c.Objective.BinaryWeight
	}
	return f
}

// InputLimit returns the configured request size limit, or the default.
func (c *Config) InputLimit() int64 {
	if c.MaxInputBytes == nil || *c.MaxInputBytes == 0 {
		return colin.DefaultMaxInputBytes
	}
	return *c.MaxInputBytes
}
