// Package config loads the optional bddgen.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the working directory
// when no --config flag is given.
const Filename = "bddgen.yaml"

// Built-in defaults, applied when neither flag nor config file sets a value.
const (
	DefaultOutputDir  = "features"
	DefaultStepDefDir = "stepdefs"
	DefaultStateDir   = ".bddgen"
	DefaultRelayAddr  = ":8085"
)

// Config holds project-level defaults for the CLI. Precedence is explicit
// flag, then config value, then built-in default.
type Config struct {
	OutputDir  string `yaml:"output_dir"`
	StepDefDir string `yaml:"step_def_dir"`
	StateDir   string `yaml:"state_dir"`
	Relay      Relay  `yaml:"relay"`
}

// Relay configures the serve command's upstream connection.
type Relay struct {
	Addr           string `yaml:"addr"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load reads the configuration at path. A missing file yields (nil, nil):
// the config file is optional and callers treat nil as an empty config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// FirstNonEmpty returns the first non-empty value, implementing the
// flag > config > default precedence at call sites.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
