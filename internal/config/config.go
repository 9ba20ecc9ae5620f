// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config is the root configuration structure.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds editing behavior.
type EditorConfig struct {
	// TabWidth is the number of spaces a tab inserts (and renders as).
	TabWidth int `toml:"tab_width"`
	// ExpandTabs inserts spaces instead of a literal tab.
	ExpandTabs bool `toml:"expand_tabs"`
	// PageJump is how many rows PageUp/PageDown move.
	PageJump int `toml:"page_jump"`
	// MaxFileSize refuses to open larger files, in bytes. 0 disables the limit.
	MaxFileSize int64 `toml:"max_file_size"`
	// RestoreCursor reopens files at the last cursor position.
	RestoreCursor bool `toml:"restore_cursor"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// Theme is the Chroma style the UI chrome colors are derived from.
	// Defaults to "vulcan" if unset.
	Theme       string `toml:"theme"`
	LineNumbers bool   `toml:"line_numbers"`
}

// ThemeOrDefault returns the configured theme or "vulcan" if unset.
func (u UIConfig) ThemeOrDefault() string {
	if u.Theme == "" {
		return "vulcan"
	}
	return u.Theme
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	// File is the log destination. Empty means delta.log in the data dir.
	File string `toml:"file"`
}

// ZerologLevel parses Level, defaulting to warn.
func (l LogConfig) ZerologLevel() zerolog.Level {
	if l.Level == "" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:      4,
			ExpandTabs:    true,
			PageJump:      60,
			MaxFileSize:   100 << 20,
			RestoreCursor: true,
		},
		UI: UIConfig{
			Theme:       "vulcan",
			LineNumbers: true,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads configuration from a TOML file on top of the defaults and applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width=%d must be between 1 and 16", c.Editor.TabWidth))
	}
	if c.Editor.PageJump < 1 {
		errs = append(errs, fmt.Errorf("editor.page_jump=%d must be positive", c.Editor.PageJump))
	}
	if c.Editor.MaxFileSize < 0 {
		errs = append(errs, fmt.Errorf("editor.max_file_size=%d must not be negative", c.Editor.MaxFileSize))
	}
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"DELTA_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"DELTA_LOG_FILE", func(v string) {
			if v != "" {
				cfg.Log.File = v
			}
		}},
		{"DELTA_THEME", func(v string) {
			if v != "" {
				cfg.UI.Theme = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the delta data directory (~/.config/delta).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "delta"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
