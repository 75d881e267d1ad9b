// Package renderer2d batches screen-space quads into as few draw calls as the
// device's texture slots allow, and exposes them as a core.Canvas.
package renderer2d

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	vStride      = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }
func (s Statistics) TotalIndexCount() int  { return s.QuadCount * indsPerQuad }

// Batch accumulates quads and flushes them through a core.Renderer.
type Batch struct {
	r      core.Renderer
	pipe   core.Pipeline
	white  core.Texture // 1x1 white, always slot 0
	texArr [maxTexSlots]core.Texture
	texCnt int

	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	mesh     core.Mesh
	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	vp    [16]float32
	stats Statistics
}

// NewBatch compiles the quad pipeline and allocates a mesh for maxQuads.
func NewBatch(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Batch, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("quad pipeline: %w", err)
	}

	white, err := r.CreateTexture(core.TextureDesc{
		Width:     1,
		Height:    1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("white texture: %w", err)
	}

	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, fmt.Errorf("quad mesh: %w", err)
	}

	b := &Batch{
		r:        r,
		pipe:     pipe,
		white:    white,
		mesh:     mesh,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range b.texNames {
		b.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	b.resetBatch()
	return b, nil
}

// Begin starts a frame with the given view-projection matrix.
func (b *Batch) Begin(vp [16]float32) {
	b.vp = vp
	b.stats = Statistics{}
	b.resetBatch()
}

func (b *Batch) End() { b.flush() }

func (b *Batch) Stats() Statistics { return b.stats }

// Release frees the device objects owned by the batch. The batch must not be
// used afterwards.
func (b *Batch) Release() {
	if b.white != nil {
		b.r.DeleteTexture(b.white)
		b.white = nil
	}
	if b.mesh != nil {
		b.r.DeleteMesh(b.mesh)
		b.mesh = nil
	}
	if b.pipe != nil {
		b.r.DeletePipeline(b.pipe)
		b.pipe = nil
	}
}

// Quad draws a solid rect with its top-left corner at (x,y).
func (b *Batch) Quad(x, y, w, h float32, c colors.Color) {
	b.push(x+w*0.5, y+h*0.5, w, h, c, 0, b.white, 0, 0, 1, 1)
}

// TexturedQuad draws tex stretched over the rect, tinted by c.
func (b *Batch) TexturedQuad(x, y, w, h float32, tex core.Texture, c colors.Color) {
	b.push(x+w*0.5, y+h*0.5, w, h, c, 0, tex, 0, 0, 1, 1)
}

// DrawTexturedQuadUV draws a sub-rect of tex centered on (cx,cy), turned
// clockwise by rotationRad on screen. It is also the glyph entry point used
// by text.Font.
func (b *Batch) DrawTexturedQuadUV(cx, cy, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	b.push(cx, cy, w, h, tint, rotationRad, tex, u0, v0, u1, v1)
}

func (b *Batch) push(cx, cy, w, h float32, c colors.Color, rotationRad float32, tex core.Texture, u0, v0, u1, v1 float32) {
	if b.quadCount >= b.maxQuads {
		b.flush()
	}
	slot := b.texSlot(tex)

	halfW, halfH := w*0.5, h*0.5
	// TL, TR, BL, BR. Y goes down, so the top edge is at -halfH.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	cos, sin := float32(1), float32(0)
	if rotationRad != 0 {
		cos, sin = float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))
	}

	start := uint32(len(b.verts) / vStride)
	for _, p := range corners {
		x := p[0]*cos - p[1]*sin + cx
		y := p[0]*sin + p[1]*cos + cy
		b.verts = append(b.verts, x, y, c[0], c[1], c[2], c[3], p[2], p[3], slot)
	}
	b.inds = append(b.inds,
		start+0, start+2, start+1,
		start+1, start+2, start+3,
	)
	b.quadCount++
	b.stats.QuadCount++
}

func (b *Batch) texSlot(t core.Texture) float32 {
	for i := 0; i < b.texCnt; i++ {
		if b.texArr[i] == t {
			return float32(i)
		}
	}
	if b.texCnt >= maxTexSlots {
		b.flush()
	}
	b.texArr[b.texCnt] = t
	b.texCnt++
	b.stats.TextureCount = max(b.stats.TextureCount, b.texCnt)
	return float32(b.texCnt - 1)
}

func (b *Batch) flush() {
	if b.quadCount == 0 {
		return
	}

	if err := b.r.UpdateMesh(b.mesh, b.verts, b.inds); err != nil {
		panic(err)
	}

	clear(b.samplers)
	for i := 0; i < b.texCnt; i++ {
		b.samplers[b.texNames[i]] = b.texArr[i]
	}
	b.uniforms["uVP"] = b.vp

	b.r.Draw(core.DrawCmd{
		Pipe:       b.pipe,
		Mesh:       b.mesh,
		IndexCount: len(b.inds),
		Uniforms:   b.uniforms,
		Samplers:   b.samplers,
	})
	b.stats.DrawCalls++

	b.resetBatch()
}

func (b *Batch) resetBatch() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.quadCount = 0
	clear(b.texArr[:])
	b.texArr[0] = b.white
	b.texCnt = 1
}
