package core

// Vec2 is a point or extent in screen space. Positive Y goes down.
type Vec2 struct {
	X, Y float32
}

func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) Max(o Vec2) Vec2      { return Vec2{X: maxf(v.X, o.X), Y: maxf(v.Y, o.Y)} }
func (v Vec2) Min(o Vec2) Vec2      { return Vec2{X: minf(v.X, o.X), Y: minf(v.Y, o.Y)} }
func (v Vec2) ClampZero() Vec2      { return v.Max(Vec2{}) }

// Rect is an axis aligned box from Min (top-left) to Max (bottom-right).
type Rect struct {
	Min, Max Vec2
}

// RectAt builds the rect spanning offset..offset+size.
func RectAt(offset, size Vec2) Rect {
	return Rect{Min: offset, Max: offset.Add(size.ClampZero())}
}

func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min).ClampZero() }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Expand grows r by pad on every side.
func (r Rect) Expand(pad Vec2) Rect {
	return Rect{Min: r.Min.Sub(pad), Max: r.Max.Add(pad)}
}

func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
