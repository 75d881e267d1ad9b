package demo

import (
	"errors"
	"fmt"
	"math"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/state"
	"github.com/hubastard/sprig/engine/ui"
)

// frameStats is implemented by canvases that count their draw traffic.
type frameStats interface {
	Stats() renderer2d.Statistics
}

// Tester echoes the raw input events it receives and turns the picture
// towards the cursor. The picture lives in a resource scope of its own that
// is dropped when the tester is superseded. Q quits at once, Escape goes back
// to the menu.
type Tester struct {
	state.Base
	app      *App
	menu     state.Node
	res      *assets.Resources
	key      *ui.Label
	button   *ui.Label
	cursor   *ui.Label
	angle    *ui.Label
	stats    *ui.Label
	frame    *ui.Label
	sampled  float64
	labels   *ui.Rail
	picture  ui.Widget
	screen   core.Vec2
	at       core.Vec2
	rotation float32
}

func (a *App) NewTester(menu state.Node) *Tester {
	g := a.gui
	p := &Tester{app: a, menu: menu, res: a.res.Child(a.res.Prefix()), at: core.V(-1, -1)}

	p.key = ui.Named(g.Label(""), "key")
	p.button = ui.Named(g.Label(""), "button")
	p.cursor = ui.Named(g.Label(""), "cursor")
	p.angle = ui.Named(g.Label("Angle: none"), "angle")
	p.stats = ui.Named(g.Label(""), "runtime")
	p.frame = ui.Named(g.Label("Last frame: no stats"), "frame")
	p.setKey(nil)
	p.setButton(nil)
	p.setCursor(p.at)
	p.sampleRuntime()

	p.labels = ui.Named(g.Rail(core.V(10, 10), ui.DirDown, 20), "readout")
	for _, l := range []*ui.Label{p.key, p.button, p.cursor, p.angle, p.stats, p.frame} {
		p.labels.Insert(l, ui.AlignDefault)
	}

	img, err := p.res.Image(TesterImage)
	switch {
	case err == nil:
		p.picture = ui.Named(g.Image(img), "picture")
	case errors.Is(err, assets.ErrNotFound):
		a.log.Info("tester picture missing", "path", TesterImage)
		p.picture = ui.Named(g.Label(TesterImage+" not found"), "picture")
	default:
		a.log.Error("tester picture", "err", err)
		p.picture = ui.Named(g.Label("cannot load "+TesterImage), "picture")
	}
	return p
}

func (p *Tester) String() string { return "tester" }

// Held keeps the menu alive for the way back.
func (p *Tester) Held() []state.Node {
	if p.menu == nil {
		return nil
	}
	return []state.Node{p.menu}
}

func (p *Tester) OnKey(key core.Key, down bool) state.Result {
	if !down {
		p.setKey(nil)
		return state.Continue()
	}
	p.setKey(&key)
	switch key {
	case core.KeyQ:
		return state.Terminate()
	case core.KeyEscape:
		if p.menu == nil {
			return state.Terminate()
		}
		return p.app.fadeTo(p, p.menu)
	}
	return state.Continue()
}

func (p *Tester) OnButton(button core.Button, down bool) state.Result {
	if down {
		p.setButton(&button)
	} else {
		p.setButton(nil)
	}
	return state.Continue()
}

func (p *Tester) OnCursor(pos core.Vec2) state.Result {
	p.setCursor(pos)
	return state.Continue()
}

// Tick refreshes the runtime readout once a second.
func (p *Tester) Tick(dt float64) state.Result {
	p.sampled += dt
	if p.sampled >= 1 {
		p.sampled = 0
		p.sampleRuntime()
	}
	return state.Continue()
}

func (p *Tester) Draw(c core.Canvas, weight float64) state.Result {
	if s := c.Size(); s != p.screen {
		p.screen = s
		ui.Place(p.picture, s.Scale(0.5), ui.AlignCenter|ui.AlignMiddle)
	}
	p.aim()
	if fs, ok := c.(frameStats); ok {
		s := fs.Stats()
		p.frame.SetText(fmt.Sprintf("Last frame: %d draw calls, %d vertices, %d indices",
			s.DrawCalls, s.TotalVertexCount(), s.TotalIndexCount()))
	}

	if img, ok := p.picture.(*ui.Image); ok {
		r := img.Rect()
		c.DrawImageRotated(img.Bitmap(), r.Min.Add(r.Size().Scale(0.5)), p.rotation)
	} else {
		p.picture.Draw(c)
	}
	p.labels.Draw(c)
	return state.Continue()
}

// Release drops the tester's resource scope.
func (p *Tester) Release() { p.res.Release() }

func (p *Tester) setKey(k *core.Key) {
	if k == nil {
		p.key.SetText("Last key: none")
		return
	}
	p.key.SetText("Last key: " + k.String())
}

func (p *Tester) setButton(b *core.Button) {
	if b == nil {
		p.button.SetText("Last button: none")
		return
	}
	p.button.SetText("Last button: " + b.String())
}

func (p *Tester) setCursor(pos core.Vec2) {
	p.at = pos
	p.cursor.SetText(fmt.Sprintf("Mouse at: (%.1f, %.1f)", pos.X, pos.Y))
}

// aim points the picture from the screen center towards the cursor. It runs
// on Draw, the first point where the screen size is known.
func (p *Tester) aim() {
	mid := p.screen.Scale(0.5)
	rad := math.Atan2(float64(p.at.Y-mid.Y), float64(p.at.X-mid.X))
	p.rotation = float32(rad)
	p.angle.SetText(fmt.Sprintf("Angle: %.0f deg", rad*180/math.Pi))
}

func (p *Tester) sampleRuntime() {
	rt := profiler.ReadRuntime()
	p.stats.SetText(fmt.Sprintf("Heap: %.1f MB, goroutines: %d", rt.HeapMB(), rt.Goroutines))
}
