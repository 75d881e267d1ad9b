package state

import (
	"fmt"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// Fade draws a child node under a full-screen color overlay whose opacity
// changes linearly over a period. When the period ends it transitions to its
// successor, or terminates when there is none.
//
// Input is swallowed while fading. The child and the successor are shared, not
// owned: Fade reports them through Held so the machine keeps them alive while
// the fade runs.
type Fade struct {
	child  Node
	next   Node
	period float64
	timer  float64
	in     bool
	color  colors.Color
	done   bool
}

// NewFadeIn uncovers child: the overlay starts opaque and clears.
func NewFadeIn(child, next Node, period float64, c colors.Color) *Fade {
	return newFade(child, next, period, c, true)
}

// NewFadeOut covers child: the overlay starts clear and becomes opaque.
func NewFadeOut(child, next Node, period float64, c colors.Color) *Fade {
	return newFade(child, next, period, c, false)
}

func newFade(child, next Node, period float64, c colors.Color, in bool) *Fade {
	if period <= 0 {
		period = 1e-9
	}
	return &Fade{child: child, next: next, period: period, timer: period, in: in, color: c}
}

// Alpha is the overlay opacity for the current timer, in [0,1].
func (f *Fade) Alpha() float64 {
	t := f.timer / f.period
	if t < 0 {
		t = 0
	}
	if f.in {
		return t
	}
	return 1 - t
}

func (f *Fade) Done() bool { return f.done }

// Child is the node drawn under the overlay.
func (f *Fade) Child() Node { return f.child }

// Next is the node that takes over when the fade ends, nil to terminate.
func (f *Fade) Next() Node { return f.next }

func (f *Fade) Held() []Node {
	held := make([]Node, 0, 2)
	for _, n := range []Node{f.child, f.next} {
		if n != nil {
			held = append(held, n)
		}
	}
	return held
}

func (f *Fade) OnKey(core.Key, bool) Result       { return Continue() }
func (f *Fade) OnButton(core.Button, bool) Result { return Continue() }
func (f *Fade) OnCursor(core.Vec2) Result         { return Continue() }

func (f *Fade) Tick(dt float64) Result {
	if f.done {
		return Continue()
	}
	f.timer -= dt
	if f.timer > 0 {
		return Continue()
	}
	f.done = true
	if f.next == nil {
		return Terminate()
	}
	return TransitionTo(f.next)
}

func (f *Fade) Draw(c core.Canvas, weight float64) Result {
	if f.child != nil {
		// A child cannot switch states from under the fade.
		f.child.Draw(c, weight)
	}
	screen := core.RectAt(core.Vec2{}, c.Size())
	c.FillRect(screen, f.color.WithAlpha(float32(f.Alpha())))
	return Continue()
}

func (f *Fade) String() string {
	dir := "out"
	if f.in {
		dir = "in"
	}
	return fmt.Sprintf("fade-%s(%.2fs)", dir, f.period)
}

func nodeName(n Node) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", n)
}
