// Command sandbox-ebiten runs the widget demo on ebiten.
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
	"github.com/hubastard/sprig/engine/platform/ebitenhost"
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

	var res *assets.Resources
	start := func(h *ebitenhost.Host) (core.Client, error) {
		res = assets.New(h.Loader, assets.WithLogger(log))
		g, err := ui.New(res, h.Input,
			ui.WithColorScheme(cfg.ColorScheme()),
			ui.WithLayoutScheme(layout),
		)
		if err != nil {
			return nil, err
		}
		return state.NewMachine(demo.New(g, res, log).Start(), state.WithLogger(log)), nil
	}

	err = ebitenhost.Run(cfg.Core(), fsys, start)
	if res != nil {
		res.Release()
	}
	if err != nil {
		log.Error("sandbox failed", "err", err)
		os.Exit(1)
	}
	if profiler.Enabled {
		path := filepath.Join(os.TempDir(), "sprig-ebiten.speedscope.json")
		if err := profiler.Dump(path); err != nil {
			log.Warn("profile not written", "err", err)
			return
		}
		log.Info("profile written", "path", path)
	}
}
