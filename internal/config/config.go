// Package config provides configuration management for pulse with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (bound by the command layer)
//  2. Environment variables (PULSE_* prefix)
//  3. Global config (~/.pulse/config.yaml)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for pulse.
type Config struct {
	// Home is the pulse home directory where all state documents live.
	// Default: ~/.pulse, overridable with PULSE_HOME or --home.
	Home string `yaml:"home" mapstructure:"home"`

	// Hooks contains settings for project on-start hooks.
	Hooks HooksConfig `yaml:"hooks" mapstructure:"hooks"`

	// Output specifies the default output format (text or json).
	Output string `yaml:"output" mapstructure:"output"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Quiet suppresses non-essential output.
	Quiet bool `yaml:"quiet" mapstructure:"quiet"`
}

// HooksConfig contains settings for project on-start hooks.
type HooksConfig struct {
	// Enabled controls whether project on-start commands run at all.
	// Default: true
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() *Config {
	return &Config{
		Hooks:  HooksConfig{Enabled: true},
		Output: "text",
	}
}
