package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingDefaultIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config{}, c)
}

func TestLoadConfigMissingExplicitPathIsAnError(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxDepth: 256\nformat: cbor\n"), 0o644))

	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 256, c.MaxDepth)
	assert.Equal(t, "cbor", c.Format)
}

func TestResolveFormatPrecedence(t *testing.T) {
	assert.Equal(t, "cbor", resolveFormat("cbor", "json"))
	assert.Equal(t, "json", resolveFormat("", "json"))
	assert.Equal(t, "json", resolveFormat("", ""))
}

func TestResolveMaxDepthPrecedence(t *testing.T) {
	assert.Equal(t, 100, resolveMaxDepth(100, 200))
	assert.Equal(t, 200, resolveMaxDepth(0, 200))
	assert.Equal(t, 0, resolveMaxDepth(0, 0))
}
