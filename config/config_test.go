// Package config_test contains unit tests for configuration loading,
// defaulting, and validation.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/config"
)

// write drops a config file into a fresh temp dir and returns its path.
func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wayfind.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := config.Load(write(t, `
map_file: maps/gondor.map
log_level: debug
strategy: queue
workers: 4
`))
	require.NoError(t, err)

	assert.Equal(t, "maps/gondor.map", cfg.MapFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "queue", cfg.Strategy)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EmptyFieldsFallBackToDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "map_file: m.map\n"))
	require.NoError(t, err)

	def := config.Default()
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
	assert.Equal(t, def.Strategy, cfg.Strategy)
	assert.Equal(t, def.Workers, cfg.Workers)
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	_, err := config.Load(write(t, "log_level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate")
}

func TestLoad_RejectsUnknownStrategy(t *testing.T) {
	_, err := config.Load(write(t, "strategy: recursive\n"))
	require.Error(t, err)
}

func TestLoad_RejectsNegativeWorkers(t *testing.T) {
	_, err := config.Load(write(t, "workers: -1\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := config.Load(write(t, "map_file: [unclosed\n"))
	require.Error(t, err)
}
