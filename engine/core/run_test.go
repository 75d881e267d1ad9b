package core

import (
	"math"
	"testing"
)

func TestFixedStepDefaults(t *testing.T) {
	s := NewFixedStep(Config{})
	if s.Period != 1.0/DefaultTicksPerSecond {
		t.Errorf("Period = %v", s.Period)
	}
	if s.MaxFrameTime != DefaultMaxFrameTime {
		t.Errorf("MaxFrameTime = %v", s.MaxFrameTime)
	}
}

func TestFixedStepSlowTicks(t *testing.T) {
	s := NewFixedStep(Config{TicksPerSecond: 2})
	if s.MaxFrameTime != 0.5 {
		t.Fatalf("MaxFrameTime = %v, want one period", s.MaxFrameTime)
	}
	c := &recordClient{}
	s.Advance(0.5, c)
	if c.ticks != 1 {
		t.Errorf("ticks = %d, want 1", c.ticks)
	}
}

func TestFixedStepAdvance(t *testing.T) {
	s := &FixedStep{Period: 0.25, MaxFrameTime: 1}
	c := &recordClient{}

	w, alive := s.Advance(0.125, c)
	if !alive || c.ticks != 0 || w != 0.5 {
		t.Fatalf("after 0.125: ticks=%d weight=%v alive=%v", c.ticks, w, alive)
	}

	w, _ = s.Advance(0.5, c) // accum 0.625
	if c.ticks != 2 || w != 0.5 {
		t.Errorf("after 0.625: ticks=%d weight=%v", c.ticks, w)
	}
}

func TestFixedStepClampsFrameTime(t *testing.T) {
	s := &FixedStep{Period: 0.25, MaxFrameTime: 0.5}
	c := &recordClient{}
	s.Advance(10, c)
	if c.ticks != 2 {
		t.Errorf("ticks = %d, want 2 (clamped)", c.ticks)
	}
	s.Advance(-1, c)
	if c.ticks != 2 {
		t.Errorf("negative frame ticked")
	}
}

func TestFixedStepStopsWhenOver(t *testing.T) {
	s := &FixedStep{Period: 0.125, MaxFrameTime: 1}
	c := &recordClient{overAt: 3}
	_, alive := s.Advance(1, c)
	if alive {
		t.Error("Advance reported alive after the client finished")
	}
	if c.ticks != 3 {
		t.Errorf("ticks = %d, want 3", c.ticks)
	}
}

func TestConfigTickPeriod(t *testing.T) {
	cfg := Config{TicksPerSecond: 100, MaxFrameTime: 0.2}
	if p := cfg.tickPeriod(); math.Abs(p-0.01) > 1e-12 {
		t.Errorf("tickPeriod = %v", p)
	}
	if m := cfg.maxFrameTime(); m != 0.2 {
		t.Errorf("maxFrameTime = %v", m)
	}
}

func TestShutdownHooksRunInReverse(t *testing.T) {
	var got []int
	e := &Engine{}
	for i := range 3 {
		e.OnShutdown(func() { got = append(got, i) })
	}
	e.runShutdown()
	if len(got) != 3 || got[0] != 2 || got[1] != 1 || got[2] != 0 {
		t.Errorf("order = %v, want [2 1 0]", got)
	}
}

// teardown records the order in which Run's collaborators are shut down.
type teardown struct{ log []string }

type closedWindow struct{ td *teardown }

func (w closedWindow) PollEvents()                  {}
func (w closedWindow) SwapBuffers()                 {}
func (w closedWindow) ShouldClose() bool            { return true }
func (w closedWindow) RequestClose()                {}
func (w closedWindow) FramebufferSize() (int, int)  { return 320, 200 }
func (w closedWindow) SetTitle(string)              {}
func (w closedWindow) SetEventCallback(func(Event)) {}
func (w closedWindow) Destroy()                     { w.td.log = append(w.td.log, "window") }

type inertRenderer struct {
	Renderer
	td *teardown
}

func (r inertRenderer) Resize(w, h int) {}
func (r inertRenderer) Shutdown()      { r.td.log = append(r.td.log, "renderer") }

type releasedCanvas struct {
	FrameCanvas
	td *teardown
}

func (c releasedCanvas) Release() { c.td.log = append(c.td.log, "canvas") }

func TestRunReleasesCanvasBeforeRenderer(t *testing.T) {
	td := &teardown{}
	p := Platform{
		NewWindow:   func(Config) (Window, error) { return closedWindow{td}, nil },
		NewRenderer: func(Window, Config) (Renderer, error) { return inertRenderer{td: td}, nil },
		NewCanvas:   func(Renderer) (FrameCanvas, error) { return releasedCanvas{td: td}, nil },
	}
	err := Run(Config{}, p, func(e *Engine) (Client, error) {
		e.OnShutdown(func() { td.log = append(td.log, "client") })
		return &recordClient{}, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"client", "canvas", "renderer", "window"}
	if len(td.log) != len(want) {
		t.Fatalf("teardown = %v, want %v", td.log, want)
	}
	for i := range want {
		if td.log[i] != want[i] {
			t.Fatalf("teardown = %v, want %v", td.log, want)
		}
	}
}
