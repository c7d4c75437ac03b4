package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petals-kitchen/menubook/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "R", cfg.Currency)
	assert.Equal(t, "Mains", cfg.DefaultCourse)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, "currency: $\ndefault_course: Desserts\nlog_level: debug\nlog_file: /tmp/menubook.log\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "Desserts", cfg.DefaultCourse)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/menubook.log", cfg.LogFile)
}

func TestLoadConfigRejectsUnknownCourse(t *testing.T) {
	path := writeConfig(t, "default_course: Brunch\n")

	_, err := loadConfig(path)
	assert.ErrorIs(t, err, types.ErrDefaultCourseUnknown)
}

func TestEnsureDefaultConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "menubook-config")

	require.NoError(t, ensureDefaultConfigFile(dir))
	data, err := os.ReadFile(filepath.Join(dir, configFileFull))
	require.NoError(t, err)
	assert.Contains(t, string(data), "currency: R")

	// Second call must leave the existing file alone.
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileFull), []byte("currency: $\n"), 0o644))
	require.NoError(t, ensureDefaultConfigFile(dir))
	data, err = os.ReadFile(filepath.Join(dir, configFileFull))
	require.NoError(t, err)
	assert.Equal(t, "currency: $\n", string(data))
}
