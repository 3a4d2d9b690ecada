package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.ActivitiesFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, ThemeAuto, cfg.Theme)
}

func TestLoadFromHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := DefaultPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`activities_file = "~/school/activities.yaml"`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "school", "activities.yaml"), cfg.ActivitiesFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
activities_file = "/srv/activities.yaml"
log_level = "debug"
log_format = "json"
theme = "dark"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/activities.yaml", cfg.ActivitiesFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ThemeDark, cfg.Theme)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(writeConfig(t, `theme = "neon"`))
	assert.ErrorContains(t, err, "invalid theme")

	_, err = Load(writeConfig(t, `log_format = "xml"`))
	assert.ErrorContains(t, err, "invalid log_format")

	_, err = Load(writeConfig(t, `theme = `))
	assert.Error(t, err)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
