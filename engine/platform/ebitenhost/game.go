// Package ebitenhost runs a core.Client inside an ebiten game loop, as an
// alternative to the GLFW host.
package ebitenhost

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/profiler"
)

// Host is what the start callback gets to build its client.
type Host struct {
	Input  *core.Input
	Loader *Loader
	Config core.Config
}

// Game implements ebiten.Game on top of a core.Client.
type Game struct {
	host   *Host
	client core.Client
	step   *core.FixedStep
	frame  float64 // seconds between two Update calls
	canvas canvas
	weight float64
	cursor core.Vec2
	keys   []ebiten.Key
}

func (g *Game) Update() error {
	if g.client.IsOver() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		slog.Debug("close event received")
		return ebiten.Termination
	}

	g.host.Input.Latch()
	g.pollInput()
	if g.client.IsOver() {
		return ebiten.Termination
	}

	// ebiten calls Update at a fixed rate; credit exactly one update.
	endTick := profiler.Start("tick")
	weight, alive := g.step.Advance(g.frame, g.client)
	endTick()
	if !alive {
		return ebiten.Termination
	}
	g.weight = weight
	return nil
}

func (g *Game) pollInput() {
	mods := translateMods()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.dispatch(core.EventKey{Key: translateKey(k), Down: true, Mods: mods})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.dispatch(core.EventKey{Key: translateKey(k), Down: false, Mods: mods})
	}

	x, y := ebiten.CursorPosition()
	if p := core.V(float32(x), float32(y)); p != g.cursor {
		g.cursor = p
		g.dispatch(core.EventCursor{X: p.X, Y: p.Y})
	}

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.dispatch(core.EventButton{Button: b.btn, Down: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.dispatch(core.EventButton{Button: b.btn, Down: false})
		}
	}
}

// dispatch drops events once the client is over.
func (g *Game) dispatch(ev core.Event) {
	if g.client.IsOver() {
		return
	}
	core.Dispatch(g.host.Input, g.client, ev)
}

func (g *Game) Draw(screen *ebiten.Image) {
	defer profiler.Start("draw")()
	screen.Fill(g.host.Config.ClearColor.NRGBA())
	g.canvas.screen = screen
	g.client.Draw(&g.canvas, g.weight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and drives the client until it is over or the window
// is closed.
func Run(cfg core.Config, fsys fs.FS, start func(*Host) (core.Client, error)) error {
	host := &Host{Input: core.NewInput(), Loader: NewLoader(fsys), Config: cfg}
	client, err := start(host)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	step := core.NewFixedStep(cfg)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	rate := updateRate(step.Period)
	ebiten.SetTPS(rate)

	g := &Game{host: host, client: client, step: step, frame: 1 / float64(rate)}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	slog.Info("engine exit", "host", "ebiten")
	return nil
}

// updateRate is the ebiten tick rate closest to one update per period, never
// below one per second.
func updateRate(period float64) int {
	if period <= 0 {
		return ebiten.DefaultTPS
	}
	return max(1, int(math.Round(1/period)))
}
