package core

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/sprig/engine/profiler"
)

// FixedStep is the accumulator behind the fixed-timestep loop.
type FixedStep struct {
	Period       float64 // seconds per tick
	MaxFrameTime float64 // cap on real time credited per frame
	accum        float64
}

// NewFixedStep never credits less than one tick per frame, so slow tick
// rates still advance.
func NewFixedStep(cfg Config) *FixedStep {
	p := cfg.tickPeriod()
	return &FixedStep{Period: p, MaxFrameTime: max(cfg.maxFrameTime(), p)}
}

// Advance credits frame seconds of real time, runs every whole tick that fits
// and returns the interpolation weight for the following draw. It stops as
// soon as a tick finishes the client and reports alive=false.
func (s *FixedStep) Advance(frame float64, c Client) (weight float64, alive bool) {
	if frame > s.MaxFrameTime {
		frame = s.MaxFrameTime
	}
	if frame < 0 {
		frame = 0
	}
	s.accum += frame
	for s.accum >= s.Period {
		c.Tick(s.Period)
		if c.IsOver() {
			return 0, false
		}
		s.accum -= s.Period
	}
	return s.accum / s.Period, true
}

// Run wires the platform window, renderer and canvas, asks start for the
// client and drives it until it is over or the window is closed.
func Run(cfg Config, p Platform, start func(*Engine) (Client, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := p.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if d, ok := win.(interface{ Destroy() }); ok {
		defer d.Destroy()
	}
	slog.Debug("window ready", "title", cfg.Title, "w", cfg.Width, "h", cfg.Height)

	rend, err := p.NewRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	canvas, err := p.NewCanvas(rend)
	if err != nil {
		return fmt.Errorf("create canvas: %w", err)
	}

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Canvas:   canvas,
		Input:    NewInput(),
		Config:   cfg,
		start:    time.Now(),
	}
	// Registered first so it runs after every hook added by start.
	if rel, ok := canvas.(interface{ Release() }); ok {
		eng.OnShutdown(rel.Release)
	}
	defer eng.runShutdown()

	client, err := start(eng)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	closing := false
	win.SetEventCallback(func(ev Event) {
		if closing || client.IsOver() {
			return
		}
		switch e := ev.(type) {
		case EventCloseRequested:
			slog.Debug("close event received")
			closing = true
			return
		case EventResize:
			if e.W < 1 || e.H < 1 {
				return
			}
			rend.Resize(e.W, e.H)
			return
		}
		Dispatch(eng.Input, client, ev)
	})

	step := NewFixedStep(cfg)
	prev := time.Now()

	for {
		win.PollEvents()
		if closing || client.IsOver() || win.ShouldClose() {
			break
		}

		now := time.Now()
		frame := now.Sub(prev).Seconds()
		prev = now

		endTick := profiler.Start("tick")
		weight, alive := step.Advance(frame, client)
		endTick()
		if !alive {
			break
		}

		endDraw := profiler.Start("draw")
		fw, fh := win.FramebufferSize()
		rend.Clear(cfg.ClearColor)
		canvas.BeginFrame(fw, fh)
		client.Draw(canvas, weight)
		canvas.EndFrame()
		endDraw()
		win.SwapBuffers()
		eng.Input.Latch()

		if client.IsOver() {
			break
		}
		if !cfg.VSync {
			time.Sleep(time.Millisecond)
		}
	}

	slog.Info("engine exit", "uptime", eng.Uptime())
	return nil
}
