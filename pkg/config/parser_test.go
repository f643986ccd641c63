package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.True(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Cache.Debug)
	assert.Equal(t, 60, cfg.Cache.DefaultTTL)
	assert.True(t, cfg.Logging.Console)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[cache]
enabled = false
debug = true
defaultTTL = 5

[logging]
console = false
file = "/tmp/microcache.log"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Cache.Debug)
	assert.Equal(t, 5, cfg.Cache.DefaultTTL)
	assert.False(t, cfg.Logging.Console)
	assert.Equal(t, "/tmp/microcache.log", cfg.Logging.File)
}

func TestLoadConfigPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[cache]
debug = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// unspecified fields keep their defaults
	assert.True(t, cfg.Cache.Debug)
	assert.Equal(t, 60, cfg.Cache.DefaultTTL)
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
