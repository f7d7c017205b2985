// Package config manages persistent user settings. Settings live in a
// JSON file at ~/.parley/config.json and are safe for concurrent use.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/parleyhq/parley/internal/errors"
)

const (
	configDirName  = ".parley"
	configFileName = "config.json"

	// DefaultServer is used when no server was configured or given.
	DefaultServer = "https://chat.parley.dev"

	// DefaultTheme is the theme applied on first run.
	DefaultTheme = "dark-purple"
)

// Config holds the persisted user settings.
type Config struct {
	DisplayName          string `json:"display_name"`
	Server               string `json:"server"`
	Room                 string `json:"room,omitempty"`
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	LastSeenVersion      string `json:"last_seen_version,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// defaultPath returns the standard config file location.
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.E(errors.Op("config.defaultPath"), errors.KindConfig, "cannot determine home directory", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config from the standard location. A missing file is
// not an error; it yields a config with defaults that has not been
// saved yet.
func Load() (*Config, error) {
	path, err := defaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		Server:               DefaultServer,
		Theme:                DefaultTheme,
		NotificationsEnabled: true,
		filePath:             path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg, nil
}

// Save writes the config to its file, creating the directory if needed.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetDisplayName returns the configured display name.
func (c *Config) GetDisplayName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DisplayName
}

// SetDisplayName updates the display name.
func (c *Config) SetDisplayName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DisplayName = name
}

// GetServer returns the configured server URL.
func (c *Config) GetServer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Server
}

// SetServer updates the server URL.
func (c *Config) SetServer(server string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Server = server
}

// GetRoom returns the last joined room.
func (c *Config) GetRoom() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Room
}

// SetRoom records the last joined room.
func (c *Config) SetRoom(room string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Room = room
}

// GetTheme returns the configured theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme updates the theme name.
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled reports whether mention notifications fire.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles mention notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetLastSeenVersion returns the newest version the user has been told about.
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records that the user has seen an update notice.
func (c *Config) SetLastSeenVersion(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = v
}
