package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the override variables for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTheme, EnvLogLevel, EnvChannel} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	h := &ConfigManager{configPath: filepath.Join(t.TempDir(), "config.toml")}

	config, err := h.Load()

	require.NoError(t, err)
	assert.Equal(t, "default", config.Theme)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 250, config.RefreshIntervalMs)
	assert.Equal(t, 10, config.DebugPaneHeight)
	assert.Equal(t, "general", config.Channel)
	assert.False(t, config.ShowDebugOnStart)
	assert.NotEmpty(t, config.UserName)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	clearEnv(t)
	h, err := NewConfigManager(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	_, err = h.Load()

	assert.ErrorContains(t, err, "config file not found")
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), `
theme = "dracula"
log_level = "debug"
refresh_interval_ms = 100
debug_pane_height = 15
channel = "random"
user_name = "alice"
show_debug_on_start = true
`)
	h, err := NewConfigManager(path)
	require.NoError(t, err)

	config, err := h.Load()

	require.NoError(t, err)
	assert.Equal(t, &Config{
		Theme:             "dracula",
		LogLevel:          "debug",
		RefreshIntervalMs: 100,
		DebugPaneHeight:   15,
		Channel:           "random",
		UserName:          "alice",
		ShowDebugOnStart:  true,
	}, config)
	assert.Equal(t, 100*time.Millisecond, config.RefreshInterval())
}

func TestLoad_NormalizesInvalidValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "refresh_interval_ms = 0\ndebug_pane_height = 1\nchannel = \"\"\n")
	h, err := NewConfigManager(path)
	require.NoError(t, err)

	config, err := h.Load()

	require.NoError(t, err)
	assert.Equal(t, 250, config.RefreshIntervalMs)
	assert.Equal(t, 10, config.DebugPaneHeight)
	assert.Equal(t, "general", config.Channel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "theme = \"dracula\"\nchannel = \"random\"\nlog_level = \"warn\"\n")
	t.Setenv(EnvTheme, "minimal")
	t.Setenv(EnvChannel, "ops")
	t.Setenv(EnvLogLevel, "trace")
	h, err := NewConfigManager(path)
	require.NoError(t, err)

	config, err := h.Load()

	require.NoError(t, err)
	assert.Equal(t, "minimal", config.Theme)
	assert.Equal(t, "ops", config.Channel)
	assert.Equal(t, "trace", config.LogLevel)
}

func TestLoad_DotEnvInConfigDir(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvTheme))
	dir := t.TempDir()
	path := writeConfig(t, dir, "theme = \"default\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OST_THEME=dracula\n"), 0o644))
	h, err := NewConfigManager(path)
	require.NoError(t, err)

	config, err := h.Load()

	require.NoError(t, err)
	assert.Equal(t, "dracula", config.Theme)
}

func TestLoad_DotEnvDoesNotReplaceEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvChannel, "from-env")
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OST_CHANNEL=from-dotenv\n"), 0o644))
	h, err := NewConfigManager(path)
	require.NoError(t, err)

	config, err := h.Load()

	require.NoError(t, err)
	assert.Equal(t, "from-env", config.Channel)
}

func TestGetConfig_FallsBackToDefaultsOnParseError(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), "theme = [broken")
	h, err := NewConfigManager(path)
	require.NoError(t, err)

	_, err = h.Load()
	assert.Error(t, err)

	config := h.GetConfig()
	assert.Equal(t, "default", config.Theme)
	assert.Same(t, config, h.GetConfig(), "config is loaded once")
}

func TestUpdateConfig_SaveAndReload(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")
	h := &ConfigManager{configPath: filepath.Join(dir, "config.toml")}

	require.NoError(t, h.UpdateConfig(func(c *Config) {
		c.Channel = "design"
		c.DebugPaneHeight = 12
	}, true))

	data, err := os.ReadFile(h.ConfigPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `channel = "design"`)

	other := &ConfigManager{configPath: h.ConfigPath()}
	require.NoError(t, other.Reload())
	assert.Equal(t, "design", other.GetConfig().Channel)
	assert.Equal(t, 12, other.GetConfig().DebugPaneHeight)
}

func TestNewConfigManager_DefaultLocation(t *testing.T) {
	h, err := NewConfigManager("")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(h.ConfigPath(), filepath.Join(".config", "ost", "config.toml")))
	assert.Equal(t, filepath.Join(h.ConfigDir(), "themes"), h.ThemesDir())
	assert.False(t, h.explicit)
}
