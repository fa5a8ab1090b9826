package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies a home with no config file yields the built-in
// defaults.
func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.True(t, cfg.Hooks.Enabled)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.Verbose)
}

// TestLoad_FromFile verifies config.yaml values override defaults.
func TestLoad_FromFile(t *testing.T) {
	home := t.TempDir()
	content := "output: json\nhooks:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(GlobalConfigPath(home), []byte(content), 0o600))

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.False(t, cfg.Hooks.Enabled)
}

// TestLoad_EnvOverridesFile verifies PULSE_* environment variables win over
// the config file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(GlobalConfigPath(home), []byte("output: json\n"), 0o600))
	t.Setenv("PULSE_OUTPUT", "text")

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
}

// TestLoad_HomeResolution verifies the explicit home beats PULSE_HOME, which
// beats the user default.
func TestLoad_HomeResolution(t *testing.T) {
	explicit := t.TempDir()
	envHome := t.TempDir()
	t.Setenv("PULSE_HOME", envHome)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, cfg.Home)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, envHome, cfg.Home)
}

// TestWriteDefault verifies the default file is created once and never
// clobbered.
func TestWriteDefault(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")

	require.NoError(t, WriteDefault(home))

	data, err := os.ReadFile(GlobalConfigPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# pulse configuration.")
	assert.Contains(t, string(data), "output: text")

	// Second call leaves a user-edited file alone.
	require.NoError(t, os.WriteFile(GlobalConfigPath(home), []byte("output: json\n"), 0o600))
	require.NoError(t, WriteDefault(home))

	data, err = os.ReadFile(GlobalConfigPath(home))
	require.NoError(t, err)
	assert.Equal(t, "output: json\n", string(data))
}
