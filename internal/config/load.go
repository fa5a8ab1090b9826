package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/pulse/internal/constants"
)

// newViperInstance creates a new Viper instance with standard pulse
// configuration: environment variable prefix (PULSE_), key replacer, and
// built-in defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers built-in defaults on the viper instance.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("hooks.enabled", def.Hooks.Enabled)
	v.SetDefault("output", def.Output)
	v.SetDefault("verbose", def.Verbose)
	v.SetDefault("quiet", def.Quiet)
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected, not configuration problems.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// A missing config file is not an error; defaults apply.
func Load(home string) (*Config, error) {
	v := newViperInstance()

	home, err := resolveHome(home)
	if err != nil {
		return nil, err
	}

	v.SetConfigName(strings.TrimSuffix(constants.GlobalConfigName, filepath.Ext(constants.GlobalConfigName)))
	v.SetConfigType("yaml")
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		// Tolerate a missing home directory the same way as a missing file.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Home = home

	return &cfg, nil
}

// resolveHome returns the explicit home if given, otherwise PULSE_HOME or
// the default ~/.pulse.
func resolveHome(home string) (string, error) {
	if home != "" {
		return home, nil
	}
	if env := os.Getenv(constants.HomeEnvVar); env != "" {
		return env, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, constants.PulseHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file
// inside the given home directory.
func GlobalConfigPath(home string) string {
	return filepath.Join(home, constants.GlobalConfigName)
}

// WriteDefault writes a commented default config.yaml into the home
// directory. Existing files are left untouched.
func WriteDefault(home string) error {
	path := GlobalConfigPath(home)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(home, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := []byte("# pulse configuration.\n# Values here are overridden by PULSE_* environment variables and CLI flags.\n")
	if err := os.WriteFile(path, append(header, data...), 0o600); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}
