// Package config loads runtime settings: embedded defaults with an optional
// user file on top.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Log       LogConfig       `yaml:"log"`
	Trace     TraceConfig     `yaml:"trace"`
	HotReload HotReloadConfig `yaml:"hot_reload"`
	Render    RenderConfig    `yaml:"render"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// LogConfig selects the zap level and encoding ("json" or "console").
type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Development bool   `yaml:"development"`
}

// TraceConfig enables the per-frame CSV trace when Path is set.
type TraceConfig struct {
	Path string `yaml:"path"`
}

type HotReloadConfig struct {
	Enabled bool     `yaml:"enabled"`
	Dirs    []string `yaml:"dirs"`
}

type RenderConfig struct {
	Zoom          float64 `yaml:"zoom"`
	CaptureCursor bool    `yaml:"capture_cursor"`
	PhysicsDebug  bool    `yaml:"physics_debug"`
}

// Load parses the embedded defaults and, when path is non-empty, overlays
// the fields present in that file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: parse defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("config: window tps %d must be positive", c.Window.TPS)
	}
	if c.Render.Zoom <= 0 {
		return fmt.Errorf("config: render zoom %g must be positive", c.Render.Zoom)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}
