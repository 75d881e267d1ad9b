package core

import "github.com/hubastard/sprig/engine/colors"

// Image is a loaded bitmap handle. Backends attach whatever they need to draw it.
type Image interface {
	Size() Vec2
}

// Font is a loaded font handle able to report text metrics.
type Font interface {
	MeasureText(s string) Vec2
	LineHeight() float32
}

// Canvas is the drawing surface for one frame. Coordinates are screen pixels
// with the origin at the top-left corner.
type Canvas interface {
	Size() Vec2
	FillRect(r Rect, c colors.Color)
	StrokeRect(r Rect, c colors.Color, width float32)
	DrawImage(img Image, at Vec2)
	// DrawImageRotated draws img centered on center, turned clockwise on
	// screen by rad radians.
	DrawImageRotated(img Image, center Vec2, rad float32)
	DrawText(f Font, at Vec2, s string, c colors.Color)
}

// FrameCanvas is a Canvas the frame driver opens and closes around Draw.
type FrameCanvas interface {
	Canvas
	BeginFrame(width, height int)
	EndFrame()
}
