package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Header text shown at the top of the sidebar
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`

	Sidebar SidebarConfig `koanf:"sidebar"`
	Log     LogConfig     `koanf:"log"`
}

// SidebarConfig holds the sidebar width policy and drag timing.
// Widths are in terminal cells.
type SidebarConfig struct {
	DefaultWidth      int `koanf:"default_width"`       // default: 32
	MinWidth          int `koanf:"min_width"`           // below this the panel collapses (default: 20)
	MaxWidth          int `koanf:"max_width"`           // default: 60
	NarrowWidth       int `koanf:"narrow_width"`        // collapsed width (default: 6)
	ThrottleMS        int `koanf:"throttle_ms"`         // min gap between drag updates (default: 20)
	ClickThresholdMS  int `koanf:"click_threshold_ms"`  // press shorter than this toggles (default: 300)
	MaxSessionIdleMS  int `koanf:"max_session_idle_ms"` // idle drag is dropped after this (default: 30000)
	CompactBreakpoint int `koanf:"compact_breakpoint"`  // terminals narrower than this are compact (default: 80)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/parley/parley.log
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files, skipping those that do not exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/parley/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "parley", "config.toml"))
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

// GetSidebarConfig returns the sidebar configuration with defaults applied.
// Values that are not positive fall back to their default.
func (c *Config) GetSidebarConfig() SidebarConfig {
	cfg := c.Sidebar

	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = 32
	}
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = 20
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = 60
	}
	if cfg.NarrowWidth <= 0 {
		cfg.NarrowWidth = 6
	}
	if cfg.ThrottleMS <= 0 {
		cfg.ThrottleMS = 20
	}
	if cfg.ClickThresholdMS <= 0 {
		cfg.ClickThresholdMS = 300
	}
	if cfg.MaxSessionIdleMS <= 0 {
		cfg.MaxSessionIdleMS = 30_000
	}
	if cfg.CompactBreakpoint <= 0 {
		cfg.CompactBreakpoint = 80
	}

	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	return cfg
}

// GetTitle returns the sidebar header title.
func (c *Config) GetTitle() string {
	if c.Title == "" {
		return "Parley"
	}
	return c.Title
}
