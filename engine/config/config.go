// Package config reads the optional sprig.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/ui"
	"gopkg.in/yaml.v3"
)

// Config mirrors sprig.yaml. Missing fields keep their defaults.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Loop     LoopConfig   `yaml:"loop"`
	Assets   AssetsConfig `yaml:"assets"`
	LogLevel string       `yaml:"log_level,omitempty"`
	Theme    ThemeConfig  `yaml:"theme"`
	Layout   LayoutConfig `yaml:"layout"`
}

type WindowConfig struct {
	Title      string `yaml:"title,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	VSync      *bool  `yaml:"vsync,omitempty"`
	ClearColor *Color `yaml:"clear_color,omitempty"`
}

type LoopConfig struct {
	TicksPerSecond float64 `yaml:"ticks_per_second,omitempty"`
	MaxFrameTime   float64 `yaml:"max_frame_time,omitempty"`
}

type AssetsConfig struct {
	Root string `yaml:"root,omitempty"`
}

// ThemeConfig overrides individual colors of the default color scheme.
type ThemeConfig struct {
	BgRegular     *Color `yaml:"bg_regular,omitempty"`
	BgActive      *Color `yaml:"bg_active,omitempty"`
	BgPanel       *Color `yaml:"bg_panel,omitempty"`
	BorderRegular *Color `yaml:"border_regular,omitempty"`
	BorderActive  *Color `yaml:"border_active,omitempty"`
	BorderPanel   *Color `yaml:"border_panel,omitempty"`
	TextRegular   *Color `yaml:"text_regular,omitempty"`
	TextActive    *Color `yaml:"text_active,omitempty"`
	Neutral       *Color `yaml:"neutral,omitempty"`
}

type LayoutConfig struct {
	BorderWidth      *float32    `yaml:"border_width,omitempty"`
	WidgetPadding    *[2]float32 `yaml:"widget_padding,omitempty"`
	ContainerSpacing *[2]float32 `yaml:"container_spacing,omitempty"`
	DialogSpacing    *float32    `yaml:"dialog_spacing,omitempty"`
	FontPath         string      `yaml:"font_path,omitempty"`
	FontSize         int         `yaml:"font_size,omitempty"`
}

// Color accepts "#rrggbb", "#rrggbbaa", [r, g, b] or [r, g, b, a] with
// components in [0,1].
type Color colors.Color

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := colors.ParseHex(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = Color(v)
		return nil
	case yaml.SequenceNode:
		var parts []float32
		if err := n.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 3 && len(parts) != 4 {
			return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", n.Line, len(parts))
		}
		v := colors.Color{0, 0, 0, 1}
		copy(v[:], parts)
		*c = Color(v)
		return nil
	default:
		return fmt.Errorf("line %d: color must be a hex string or a list", n.Line)
	}
}

// DefaultFile is looked up when no path is given.
const DefaultFile = "sprig.yaml"

// LoadOptional reads path if it exists. A missing file yields an empty Config.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if tps := cfg.Loop.TicksPerSecond; tps != 0 && tps < 1 {
		return nil, fmt.Errorf("loop.ticks_per_second must be at least 1, got %v", tps)
	}
	if cfg.Loop.MaxFrameTime < 0 {
		return nil, fmt.Errorf("loop.max_frame_time must not be negative, got %v", cfg.Loop.MaxFrameTime)
	}
	return &cfg, nil
}

// Core resolves the engine settings.
func (c *Config) Core() core.Config {
	out := core.Config{
		Title:          c.Window.Title,
		Width:          c.Window.Width,
		Height:         c.Window.Height,
		VSync:          true,
		ClearColor:     colors.Steel,
		TicksPerSecond: c.Loop.TicksPerSecond,
		MaxFrameTime:   c.Loop.MaxFrameTime,
	}
	if out.Title == "" {
		out.Title = "sprig"
	}
	if out.Width <= 0 {
		out.Width = 640
	}
	if out.Height <= 0 {
		out.Height = 480
	}
	if c.Window.VSync != nil {
		out.VSync = *c.Window.VSync
	}
	if c.Window.ClearColor != nil {
		out.ClearColor = colors.Color(*c.Window.ClearColor)
	}
	return out
}

// ColorScheme returns the default scheme with the theme overrides applied.
func (c *Config) ColorScheme() *ui.ColorScheme {
	cs := ui.DefaultColorScheme()
	set := func(dst *colors.Color, v *Color) {
		if v != nil {
			*dst = colors.Color(*v)
		}
	}
	t := c.Theme
	set(&cs.BgRegular, t.BgRegular)
	set(&cs.BgActive, t.BgActive)
	set(&cs.BgPanel, t.BgPanel)
	set(&cs.BorderRegular, t.BorderRegular)
	set(&cs.BorderActive, t.BorderActive)
	set(&cs.BorderPanel, t.BorderPanel)
	set(&cs.TextRegular, t.TextRegular)
	set(&cs.TextActive, t.TextActive)
	set(&cs.Neutral, t.Neutral)
	return cs
}

// LayoutScheme returns the default layout with the overrides applied.
func (c *Config) LayoutScheme() *ui.LayoutScheme {
	ls := ui.DefaultLayoutScheme()
	l := c.Layout
	if l.BorderWidth != nil {
		ls.BorderWidth = *l.BorderWidth
	}
	if l.WidgetPadding != nil {
		ls.WidgetPadding = core.V(l.WidgetPadding[0], l.WidgetPadding[1])
	}
	if l.ContainerSpacing != nil {
		ls.ContainerSpacing = core.V(l.ContainerSpacing[0], l.ContainerSpacing[1])
	}
	if l.DialogSpacing != nil {
		ls.DialogSpacing = *l.DialogSpacing
	}
	if l.FontPath != "" {
		ls.FontPath = l.FontPath
	}
	if l.FontSize > 0 {
		ls.FontSize = l.FontSize
	}
	return ls
}

// AssetsRoot is the directory assets are loaded from.
func (c *Config) AssetsRoot() string {
	if c.Assets.Root == "" {
		return "assets"
	}
	return c.Assets.Root
}

// Level maps log_level to a slog level; unknown names fall back to Info.
func (c *Config) Level() slog.Level {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lv
}
