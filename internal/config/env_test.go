package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvRates, "")
	t.Setenv(EnvDebug, "")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, s.Port)
	assert.Empty(t, s.RatesPath)
	assert.False(t, s.Debug)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvRates, "/etc/estimate/rates.yaml")
	t.Setenv(EnvDebug, "true")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 9090, s.Port)
	assert.Equal(t, "/etc/estimate/rates.yaml", s.RatesPath)
	assert.True(t, s.Debug)
}

func TestLoadSettings_EnvironmentWinsOverDotEnv(t *testing.T) {
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvRates, "")
	t.Setenv(EnvDebug, "")
	require.NoError(t, os.Unsetenv(EnvDebug))
	path := writeFile(t, ".env", "PORT=6060\nESTIMATE_DEBUG=1\n")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, s.Port)
	assert.True(t, s.Debug)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv(EnvRates, "")
	t.Setenv(EnvDebug, "")

	t.Setenv(EnvPort, "eighty")
	_, err := LoadSettings()
	assert.ErrorContains(t, err, "invalid PORT")

	t.Setenv(EnvPort, "")
	t.Setenv(EnvDebug, "sometimes")
	_, err = LoadSettings()
	assert.ErrorContains(t, err, "invalid ESTIMATE_DEBUG")
}
