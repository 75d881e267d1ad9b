package core

import (
	"time"

	"github.com/hubastard/sprig/engine/colors"
)

// Engine exposes core services to the code that builds the initial client.
type Engine struct {
	Window   Window
	Renderer Renderer
	Canvas   FrameCanvas
	Input    *Input
	Config   Config
	start    time.Time
	shutdown []func()
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// OnShutdown registers fn to run after the loop ends, while the window and
// renderer still exist. Hooks run last registered first.
func (e *Engine) OnShutdown(fn func()) { e.shutdown = append(e.shutdown, fn) }

func (e *Engine) runShutdown() {
	for i := len(e.shutdown) - 1; i >= 0; i-- {
		e.shutdown[i]()
	}
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the GPU device.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(t Texture)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	DeletePipeline(p Pipeline)
	CreateMesh(desc MeshDesc) (Mesh, error)
	DeleteMesh(m Mesh)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)
	GPUVersion() string
	Shutdown()
}

// Platform bundles the constructors of a concrete host.
type Platform struct {
	NewWindow   func(Config) (Window, error)
	NewRenderer func(Window, Config) (Renderer, error)
	NewCanvas   func(Renderer) (FrameCanvas, error)
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color

	// Fixed timestep settings; zero values fall back to the defaults.
	TicksPerSecond float64
	MaxFrameTime   float64 // seconds of real time credited per frame at most
}

const (
	DefaultTicksPerSecond = 50.0
	DefaultMaxFrameTime   = 0.05
)

func (c Config) tickPeriod() float64 {
	if c.TicksPerSecond <= 0 {
		return 1 / DefaultTicksPerSecond
	}
	return 1 / c.TicksPerSecond
}

func (c Config) maxFrameTime() float64 {
	if c.MaxFrameTime <= 0 {
		return DefaultMaxFrameTime
	}
	return c.MaxFrameTime
}
