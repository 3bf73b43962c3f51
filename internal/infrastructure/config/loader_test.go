package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetDispatcherDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, []string{"fave"}, mgr.viper.GetStringSlice("dispatcher.internal_schemes"))
	assert.Equal(t, []string{"http", "https"}, mgr.viper.GetStringSlice("dispatcher.web_schemes"))
	assert.False(t, mgr.viper.GetBool("dispatcher.strict_contexts"))
	assert.True(t, mgr.viper.GetBool("journal.enabled"))
}

func TestManager_LoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
routes_file = "routes.yaml"

[logging]
level = "DEBUG"

[dispatcher]
internal_schemes = ["Fave", "astro://", "fave"]
strict_contexts = true
extra_tracking_params = ["ref"]

[database]
path = "/tmp/riblet-test.sqlite"

[[routes]]
pattern = "fave://item/{id}"
builder = "Page"
title = "item"

[[routes]]
pattern = "https://example.com/help"
builder = "webview"
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, []string{"fave", "astro"}, cfg.Dispatcher.InternalSchemes)
	assert.Equal(t, []string{"http", "https"}, cfg.Dispatcher.WebSchemes)
	assert.True(t, cfg.Dispatcher.StrictContexts)
	assert.Equal(t, []string{"ref"}, cfg.Dispatcher.ExtraTrackingParams)
	assert.Equal(t, []RouteConfig{
		{Pattern: "fave://item/{id}", Builder: "page", Title: "item"},
		{Pattern: "https://example.com/help", Builder: "webview"},
	}, cfg.Routes)
	assert.Equal(t, filepath.Join(dir, "routes.yaml"), cfg.RoutesFile)
	assert.Equal(t, "/tmp/riblet-test.sqlite", cfg.Database.Path)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "riblet.yaml", `
journal:
  enabled: false
database:
  path: /tmp/x.sqlite
routes:
  - pattern: fave://home
    builder: page
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, 30, cfg.Journal.RetentionDays)
	require.Len(t, cfg.Routes, 1)
	assert.Equal(t, "fave://home", cfg.Routes[0].Pattern)
}

func TestManager_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[logging]\nlevel = \"info\"\n[database]\npath = \"/tmp/a.sqlite\"\n")
	t.Setenv("RIBLET_LOG_LEVEL", "warn")
	t.Setenv("RIBLET_DATABASE_PATH", "/tmp/b.sqlite")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/b.sqlite", cfg.Database.Path)
}

func TestManager_MissingExplicitFile(t *testing.T) {
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestManager_InvalidConfigRejected(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
[dispatcher]
internal_schemes = ["https"]

[[routes]]
pattern = ""
builder = "page"
`)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scheme "https" cannot be both internal and web`)
	assert.Contains(t, err.Error(), "routes[0].pattern cannot be empty")
}

func TestNewManagerWithFile_EmptyPath(t *testing.T) {
	_, err := NewManagerWithFile("  ")
	assert.Error(t, err)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", "[database]\npath = \"/tmp/a.sqlite\"\n")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Dispatcher.InternalSchemes[0] = "mutated"
	assert.Equal(t, "fave", mgr.Get().Dispatcher.InternalSchemes[0])
}

func TestManager_FirstRunWritesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(home))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(home, "config", "riblet", "config.toml"))
	assert.Equal(t, filepath.Join(home, "data", "riblet", "riblet.sqlite"), mgr.Get().Database.Path)
}

func TestNormalizeSchemes(t *testing.T) {
	assert.Equal(t, []string{"fave", "astro"}, normalizeSchemes([]string{" FAVE ", "astro:", "fave://", ""}))
	assert.Empty(t, normalizeSchemes(nil))
}
