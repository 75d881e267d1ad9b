// Command sandbox runs the widget demo on a GLFW window with OpenGL.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/config"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/platform"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/state"
	"github.com/hubastard/sprig/engine/ui"
	"github.com/hubastard/sprig/internal/demo"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	cfgPath := flag.String("config", config.DefaultFile, "settings file")
	flag.Parse()

	cfg, err := config.LoadOptional(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(log)
	profiler.Init(0)

	layout := cfg.LayoutScheme()
	fsys := assets.WithFallback(os.DirFS(cfg.AssetsRoot()), map[string][]byte{
		layout.FontPath: goregular.TTF,
	})

	start := func(e *core.Engine) (core.Client, error) {
		res := assets.New(&assets.DeviceLoader{R: e.Renderer, FS: fsys}, assets.WithLogger(log))
		e.OnShutdown(res.Release)
		g, err := ui.New(res, e.Input,
			ui.WithColorScheme(cfg.ColorScheme()),
			ui.WithLayoutScheme(layout),
		)
		if err != nil {
			return nil, err
		}
		app := demo.New(g, res, log)
		return state.NewMachine(app.Start(), state.WithLogger(log)), nil
	}

	if err := core.Run(cfg.Core(), platform.GLFW(), start); err != nil {
		log.Error("sandbox failed", "err", err)
		os.Exit(1)
	}

	if profiler.Enabled {
		path := filepath.Join(os.TempDir(), "sprig.speedscope.json")
		if err := profiler.Dump(path); err != nil {
			log.Warn("profile not written", "err", err)
			return
		}
		log.Info("profile written", "path", path)
	}
}
