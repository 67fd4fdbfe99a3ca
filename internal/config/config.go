package config

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/inamate/pattern-engine/internal/engine"
)

type Config struct {
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	PointThreshold float32 `envconfig:"PATTERN_POINT_THRESHOLD" default:"4"`
	CrossSize      float32 `envconfig:"PATTERN_CROSS_SIZE" default:"0.3"`
	DefaultColor   string  `envconfig:"PATTERN_DEFAULT_COLOR" default:"#000000FF"`
	HighlightColor string  `envconfig:"PATTERN_HIGHLIGHT_COLOR" default:"#0000FFFF"`
	View           string  `envconfig:"PATTERN_VIEW" default:"Model"`
	DisabledLayers []int32 `envconfig:"PATTERN_DISABLED_LAYERS"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Settings returns the engine settings described by the environment.
func (c *Config) Settings() (engine.Settings, error) {
	s := engine.DefaultSettings()

	def, err := engine.ParseHexColor(c.DefaultColor)
	if err != nil {
		return s, fmt.Errorf("PATTERN_DEFAULT_COLOR: %w", err)
	}
	hl, err := engine.ParseHexColor(c.HighlightColor)
	if err != nil {
		return s, fmt.Errorf("PATTERN_HIGHLIGHT_COLOR: %w", err)
	}

	s.DefaultColor = def
	s.HighlightColor = hl
	s.PointThreshold = c.PointThreshold
	s.CrossSize = c.CrossSize
	s.View = c.View
	for _, l := range c.DisabledLayers {
		s.DisableLayer(l)
	}
	return s, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level. Unknown names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
