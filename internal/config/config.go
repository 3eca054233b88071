package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"
	LogLevel    string `koanf:"log_level"`    // zerolog level name (default: "info")
	MetricsAddr string `koanf:"metrics_addr"` // e.g. "127.0.0.1:9464", empty disables /metrics
	MediaFolder string `koanf:"media_folder"` // where relative media paths resolve (default: cwd)

	// On-screen controls behaviour
	Controls ControlsConfig `koanf:"controls"`

	// Media player settings
	Player PlayerConfig `koanf:"player"`

	// Desktop integrations (MPRIS, notifications)
	Integrations IntegrationsConfig `koanf:"integrations"`
}

// ControlsConfig holds on-screen controls settings.
type ControlsConfig struct {
	HideAfterMs int `koanf:"hide_after_ms"` // Auto-hide delay (1000-10000, default: 3500)
	SkipSeconds int `koanf:"skip_seconds"`  // Skip step for ←/→ (1-120, default: 10)
}

// PlayerConfig holds media player settings.
type PlayerConfig struct {
	StatusIntervalMs int  `koanf:"status_interval_ms"` // Status report period (50-2000, default: 250)
	Loop             bool `koanf:"loop"`               // Rewind instead of finishing
	StartMuted       bool `koanf:"start_muted"`
}

// IntegrationsConfig toggles desktop integrations.
type IntegrationsConfig struct {
	MPRIS         *bool `koanf:"mpris"`         // default: true
	Notifications *bool `koanf:"notifications"` // default: true
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		MediaFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MediaFolder != "" {
		cfg.MediaFolder = expandPath(cfg.MediaFolder)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/marquee/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "marquee", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ResolveMedia returns path unchanged if absolute, else joined to MediaFolder.
func (c *Config) ResolveMedia(path string) string {
	path = expandPath(path)
	if filepath.IsAbs(path) || c.MediaFolder == "" {
		return path
	}
	return filepath.Join(c.MediaFolder, path)
}

// HasMetrics returns true if the metrics endpoint is configured.
func (c *Config) HasMetrics() bool {
	return c.MetricsAddr != ""
}

// GetControlsConfig returns the controls configuration with defaults applied.
func (c *Config) GetControlsConfig() ControlsConfig {
	cfg := c.Controls

	if cfg.HideAfterMs < 1000 || cfg.HideAfterMs > 10000 {
		cfg.HideAfterMs = 3500
	}
	if cfg.SkipSeconds < 1 || cfg.SkipSeconds > 120 {
		cfg.SkipSeconds = 10
	}

	return cfg
}

// HideAfter returns the auto-hide delay as a duration.
func (c ControlsConfig) HideAfter() time.Duration {
	return time.Duration(c.HideAfterMs) * time.Millisecond
}

// SkipInterval returns the skip step as a duration.
func (c ControlsConfig) SkipInterval() time.Duration {
	return time.Duration(c.SkipSeconds) * time.Second
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.StatusIntervalMs < 50 || cfg.StatusIntervalMs > 2000 {
		cfg.StatusIntervalMs = 250
	}

	return cfg
}

// StatusInterval returns the status report period as a duration.
func (c PlayerConfig) StatusInterval() time.Duration {
	return time.Duration(c.StatusIntervalMs) * time.Millisecond
}

// MPRISEnabled returns true unless MPRIS was switched off.
func (c *Config) MPRISEnabled() bool {
	return c.Integrations.MPRIS == nil || *c.Integrations.MPRIS
}

// NotificationsEnabled returns true unless notifications were switched off.
func (c *Config) NotificationsEnabled() bool {
	return c.Integrations.Notifications == nil || *c.Integrations.Notifications
}
