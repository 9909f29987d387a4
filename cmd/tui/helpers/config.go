package helpers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

const (
	defaultConfigDir  = "~/.config/ost"
	configFileName    = "config.toml"
	themesDirName     = "themes"
	dotEnvFileName    = ".env"
	defaultRefreshMs  = 250
	defaultDebugLines = 10
)

// Environment variables that override file values.
const (
	EnvTheme    = "OST_THEME"
	EnvLogLevel = "OST_LOG_LEVEL"
	EnvChannel  = "OST_CHANNEL"
)

// Config is the TUI configuration read from config.toml.
type Config struct {
	Theme             string `toml:"theme"`
	LogLevel          string `toml:"log_level"`
	RefreshIntervalMs int    `toml:"refresh_interval_ms"`
	DebugPaneHeight   int    `toml:"debug_pane_height"`
	Channel           string `toml:"channel"`
	UserName          string `toml:"user_name"`
	ShowDebugOnStart  bool   `toml:"show_debug_on_start"`
}

// RefreshInterval is the period of the UI tick that drains captured logs.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMs) * time.Millisecond
}

type ConfigManager struct {
	configPath string
	explicit   bool
	config     *Config
	loaded     bool
	mu         sync.RWMutex
}

// DefaultConfigDir returns ~/.config/ost with the home directory expanded.
func DefaultConfigDir() (string, error) {
	dir, err := homedir.Expand(defaultConfigDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return dir, nil
}

// NewConfigManager creates a manager for configPath, or for the default
// location when configPath is empty. A missing default file is not an error,
// a missing explicit one is.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath != "" {
		expanded, err := homedir.Expand(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		return &ConfigManager{configPath: expanded, explicit: true}, nil
	}

	dir, err := DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	return &ConfigManager{configPath: filepath.Join(dir, configFileName)}, nil
}

func (h *ConfigManager) ConfigPath() string {
	return h.configPath
}

func (h *ConfigManager) ConfigDir() string {
	return filepath.Dir(h.configPath)
}

// ThemesDir is where user YAML themes are looked up.
func (h *ConfigManager) ThemesDir() string {
	return filepath.Join(h.ConfigDir(), themesDirName)
}

// Load reads the config file on top of the defaults, then applies .env files
// and environment overrides.
func (h *ConfigManager) Load() (*Config, error) {
	config := h.GetDefaultConfig()

	if err := h.loadDotEnv(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(h.configPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if h.explicit {
			return nil, fmt.Errorf("config file not found: %s", h.configPath)
		}
	} else if _, err := toml.DecodeFile(h.configPath, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", h.configPath, err)
	}

	applyEnvOverrides(config)
	h.normalize(config)
	return config, nil
}

// loadDotEnv loads .env from the working directory and then from the config
// directory. Variables already set in the environment are never replaced.
func (h *ConfigManager) loadDotEnv() error {
	candidates := []string{dotEnvFileName, filepath.Join(h.ConfigDir(), dotEnvFileName)}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvTheme); v != "" {
		config.Theme = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv(EnvChannel); v != "" {
		config.Channel = v
	}
}

func (h *ConfigManager) normalize(config *Config) {
	defaults := h.GetDefaultConfig()
	if config.RefreshIntervalMs <= 0 {
		config.RefreshIntervalMs = defaults.RefreshIntervalMs
	}
	if config.DebugPaneHeight < 3 {
		config.DebugPaneHeight = defaults.DebugPaneHeight
	}
	if config.Channel == "" {
		config.Channel = defaults.Channel
	}
	if config.Theme == "" {
		config.Theme = defaults.Theme
	}
	if config.UserName == "" {
		config.UserName = defaults.UserName
	}
}

func (h *ConfigManager) Save(config *Config) error {
	if err := os.MkdirAll(h.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(h.configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfig returns the current config (thread-safe with lazy loading)
func (h *ConfigManager) GetConfig() *Config {
	h.mu.RLock()
	if h.loaded {
		defer h.mu.RUnlock()
		return h.config
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Double-check in case another goroutine loaded it while we were waiting
	if h.loaded {
		return h.config
	}

	config, err := h.Load()
	if err != nil {
		// Fall back to defaults so a broken file never blocks startup
		config = h.GetDefaultConfig()
	}

	h.config = config
	h.loaded = true
	return h.config
}

// UpdateConfig updates the config and optionally saves to disk (thread-safe)
func (h *ConfigManager) UpdateConfig(fn func(*Config), save bool) error {
	_ = h.GetConfig()

	h.mu.Lock()
	defer h.mu.Unlock()

	fn(h.config)

	if save {
		return h.Save(h.config)
	}
	return nil
}

// Reload reloads the config from disk (thread-safe)
func (h *ConfigManager) Reload() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	config, err := h.Load()
	if err != nil {
		return err
	}
	h.config = config
	h.loaded = true
	return nil
}

func (h *ConfigManager) GetDefaultConfig() *Config {
	userName := os.Getenv("USER")
	if userName == "" {
		userName = "me"
	}
	return &Config{
		Theme:             "default",
		LogLevel:          "info",
		RefreshIntervalMs: defaultRefreshMs,
		DebugPaneHeight:   defaultDebugLines,
		Channel:           "general",
		UserName:          userName,
		ShowDebugOnStart:  false,
	}
}
