package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/ui"
)

const sample = `
window:
  title: demo
  width: 800
  vsync: false
  clear_color: "#000000"
loop:
  ticks_per_second: 60
assets:
  root: data
log_level: debug
theme:
  bg_panel: [0.2, 0.3, 0.4]
  text_regular: "#ff000080"
layout:
  border_width: 1
  widget_padding: [10, 6]
  font_size: 16
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c := cfg.Core()
	if c.Title != "demo" || c.Width != 800 || c.Height != 480 {
		t.Errorf("window = %+v", c)
	}
	if c.VSync {
		t.Error("vsync override ignored")
	}
	if c.ClearColor != colors.Black {
		t.Errorf("clear color = %v", c.ClearColor)
	}
	if c.TicksPerSecond != 60 || c.MaxFrameTime != 0 {
		t.Errorf("loop = %v %v", c.TicksPerSecond, c.MaxFrameTime)
	}
	if cfg.AssetsRoot() != "data" {
		t.Errorf("assets root = %q", cfg.AssetsRoot())
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.Level())
	}

	cs := cfg.ColorScheme()
	if cs.BgPanel != (colors.Color{0.2, 0.3, 0.4, 1}) {
		t.Errorf("bg_panel = %v", cs.BgPanel)
	}
	if cs.TextRegular != (colors.Color{1, 0, 0, float32(0x80) / 255}) {
		t.Errorf("text_regular = %v", cs.TextRegular)
	}
	if cs.BgRegular != ui.DefaultColorScheme().BgRegular {
		t.Error("untouched color changed")
	}

	ls := cfg.LayoutScheme()
	if ls.BorderWidth != 1 || ls.WidgetPadding != core.V(10, 6) || ls.FontSize != 16 {
		t.Errorf("layout = %+v", ls)
	}
	if ls.FontPath != ui.DefaultLayoutScheme().FontPath || ls.DialogSpacing != 8 {
		t.Errorf("layout defaults lost: %+v", ls)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	c := cfg.Core()
	if c.Title != "sprig" || c.Width != 640 || c.Height != 480 || !c.VSync || c.ClearColor != colors.Steel {
		t.Errorf("defaults = %+v", c)
	}
	if cfg.Level() != slog.LevelInfo || cfg.AssetsRoot() != "assets" {
		t.Errorf("level %v root %q", cfg.Level(), cfg.AssetsRoot())
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad hex":       "window:\n  clear_color: \"#12\"\n",
		"short list":    "theme:\n  neutral: [1, 2]\n",
		"map color":     "theme:\n  neutral: {r: 1}\n",
		"unknown field": "windows:\n  title: x\n",
		"slow ticks":    "loop:\n  ticks_per_second: 0.4\n",
		"negative tick": "loop:\n  ticks_per_second: -5\n",
		"negative cap":  "loop:\n  max_frame_time: -1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOptional(filepath.Join(dir, "missing.yaml"))
	if err != nil || cfg == nil {
		t.Fatalf("missing file: cfg=%v err=%v", cfg, err)
	}

	path := filepath.Join(dir, "sprig.yaml")
	if err := os.WriteFile(path, []byte("window: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadOptional(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("err = %v", err)
	}
}
