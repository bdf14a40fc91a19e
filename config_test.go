package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configName)
	require.NoError(t, os.WriteFile(path, []byte(`
prompt = "$ "
color = false
heap-limit = 64
trace = true
history = "/tmp/hist"
`), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
	assert.Equal(t, 64, cfg.HeapLimit)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "/tmp/hist", cfg.History)
}

func TestLoadConfig_defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Nil(t, cfg.Color, "color defaults to terminal detection")
	assert.Zero(t, cfg.HeapLimit)
}

func TestLoadConfig_badFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configName)
	require.NoError(t, os.WriteFile(path, []byte("prompt = [nope"), 0644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestResolveConfig_missingExplicitPath(t *testing.T) {
	_, err := resolveConfig("/no/such/fourth.toml")
	assert.Error(t, err)
}
