package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("robot_size: 20\nhost: example.test\nport: 1234\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.RobotSize)
	assert.Equal(t, "example.test", cfg.Host)
	assert.Equal(t, 1234, cfg.Port)
	// Unspecified fields keep their defaults.
	assert.Equal(t, Default().ViewAngle, cfg.ViewAngle)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
