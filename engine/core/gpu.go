package core

// GPU resource descriptions shared by the device backends and the 2D batcher.

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte // tightly packed rows, top-left origin
	MinFilter, MagFilter string // "nearest" or "linear"
	WrapU, WrapV         string // "clamp" or "repeat"
}

// Texture is an opaque device texture handle.
type Texture interface {
	Size() (w, h int)
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type Pipeline interface{ isPipeline() }

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type Mesh interface{ isMesh() }

// DrawCmd draws the first IndexCount indices of Mesh (all of them when zero).
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int
	Uniforms   map[string]any
	Samplers   map[string]Texture
}

// TextureImage presents a device texture as an Image.
type TextureImage struct {
	Texture Texture
}

func (t TextureImage) Size() Vec2 {
	if t.Texture == nil {
		return Vec2{}
	}
	w, h := t.Texture.Size()
	return Vec2{X: float32(w), Y: float32(h)}
}

func (t TextureImage) DeviceTexture() Texture { return t.Texture }
