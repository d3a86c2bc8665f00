// Package config loads annotate-demo settings from a TOML file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config is the root configuration structure.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Render RenderConfig `toml:"render"`
	Editor EditorConfig `toml:"editor"`
}

// LogConfig controls the zerolog destination. The TUI owns the terminal, so
// an empty File discards logs.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// RenderConfig controls the markup pane.
type RenderConfig struct {
	// Escape escapes '<', '>', '&' and quotes in user text. Turning it off
	// reproduces raw markup injection and is only safe for non-HTML sinks.
	Escape bool `toml:"escape"`
	// Highlight colors the markup pane with Chroma.
	Highlight bool   `toml:"highlight"`
	Theme     string `toml:"theme"`
}

// EditorConfig holds layout settings.
type EditorConfig struct {
	// InputRatio is the share of the height given to the input pane.
	InputRatio float64 `toml:"input_ratio"`
}

func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Render: RenderConfig{Escape: true, Highlight: true, Theme: "monokai"},
		Editor: EditorConfig{InputRatio: 0.5},
	}
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. An empty path yields the defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
	}
	if c.Render.Highlight && c.Render.Theme == "" {
		errs = append(errs, errors.New("render.theme is required when render.highlight is set"))
	}
	if c.Editor.InputRatio <= 0 || c.Editor.InputRatio >= 1 {
		errs = append(errs, fmt.Errorf("editor.input_ratio=%v must be between 0 and 1 (exclusive)", c.Editor.InputRatio))
	}

	return errors.Join(errs...)
}

func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"ANNOTATE_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"ANNOTATE_LOG_FILE", func(v string) {
			if v != "" {
				cfg.Log.File = v
			}
		}},
		{"ANNOTATE_THEME", func(v string) {
			if v != "" {
				cfg.Render.Theme = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}
