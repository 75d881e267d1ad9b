// Package platform hosts the engine on a GLFW window with an OpenGL device.
package platform

import (
	"github.com/hubastard/sprig/engine/core"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
	"github.com/hubastard/sprig/engine/gfx/renderer2d"
)

// GLFW returns the constructors core.Run needs for a GLFW + GL 3.3 host.
func GLFW() core.Platform {
	return core.Platform{
		NewWindow: func(cfg core.Config) (core.Window, error) {
			return NewGLFWWindow(cfg, nil)
		},
		NewRenderer: func(win core.Window, cfg core.Config) (core.Renderer, error) {
			return glbackend.NewRendererGL(win, cfg)
		},
		NewCanvas: func(r core.Renderer) (core.FrameCanvas, error) {
			return renderer2d.NewCanvas(r)
		},
	}
}
