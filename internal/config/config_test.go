package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.validate())
	assert.Equal(t, time.Second/30, cfg.Simulation.StepDT())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
name = "Testbed"
start_zone = 2

[simulation]
steps_per_second = 60
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Testbed", cfg.Server.Name)
	assert.Equal(t, 2, cfg.Server.StartZone)
	assert.Equal(t, 60, cfg.Simulation.StepsPerSecond)
	// Untouched sections keep their defaults.
	assert.Equal(t, "0.0.0.0:8080", cfg.Network.BindAddress)
	assert.Equal(t, 5, cfg.Simulation.MaxStepsPerFrame)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[simulation]
steps_per_second = 0
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
