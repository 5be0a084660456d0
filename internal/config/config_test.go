package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGlobal_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadGlobalFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Override", cfg.OnConflict)
	assert.Equal(t, ResolutionRecursive, cfg.Resolution)
	assert.False(t, cfg.StrictDefaults)
	assert.Empty(t, cfg.Files)
}

func TestLoadGlobal_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
files:
  - ~/commands/*.yaml
on_conflict: Error
resolution: git_root
strict_defaults: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ds.yaml"), []byte(content), 0644))

	cfg, err := loadGlobalFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"~/commands/*.yaml"}, cfg.Files)
	assert.Equal(t, "Error", cfg.OnConflict)
	assert.Equal(t, ResolutionGitRoot, cfg.Resolution)
	assert.True(t, cfg.StrictDefaults)
}

func TestLoadGlobal_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ds.yaml"), []byte("files:\n  - /etc/ds/base.yaml\n"), 0644))

	cfg, err := loadGlobalFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "Override", cfg.OnConflict)
	assert.Equal(t, ResolutionRecursive, cfg.Resolution)
}

func TestGetGlobalConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, err := GetGlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/ds", dir)
}
