package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branyzp/whatsforlunch/pkg/picker"
)

func init() {
	homedir.DisableCache = true
}

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LUNCH_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	s, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".whatsforlunch"), s.BasePath())
	assert.Equal(t, picker.DefaultPolicy(), s.Policy())
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "", s.LogFile)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LUNCH_CONFIG_PATH", dir)
	t.Chdir(t.TempDir())

	data := []byte("path: /tmp/lunch-presets\nguard_categories: false\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lunch.yaml"), data, 0o644))
	t.Setenv("LUNCH_RESET_CLEARS_ALL", "false")

	s, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/lunch-presets", s.Path)
	assert.False(t, s.GuardCategories)
	assert.False(t, s.ResetClearsAll)
	assert.Equal(t, "debug", s.LogLevel)
}
