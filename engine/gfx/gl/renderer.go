package glbackend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
)

// RendererGL is the OpenGL 3.3 core implementation of core.Renderer. The GL
// context must be current on the calling thread.
type RendererGL struct {
	win     core.Window
	version string
	current *pipeline
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	r := &RendererGL{win: win, version: gl.GoStr(gl.GetString(gl.VERSION))}
	slog.Info("GL ready", "version", r.version, "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	return r, nil
}

func (r *RendererGL) GPUVersion() string { return r.version }

func (r *RendererGL) Shutdown() {
	if r.current != nil {
		gl.UseProgram(0)
		r.current = nil
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// --- textures ---

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("texture format %d not supported", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture %dx%d: got %d bytes, want %d", desc.Width, desc.Height, len(desc.Pixels), want)
	}

	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.WrapV))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (r *RendererGL) DeleteTexture(tex core.Texture) {
	if t, ok := tex.(*texture); ok && t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func filter(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- pipelines ---

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	locations map[string]int32
}

func (*pipeline) isPipeline() {}

func (p *pipeline) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, err
	}
	return &pipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		locations: make(map[string]int32),
	}, nil
}

func (r *RendererGL) DeletePipeline(pp core.Pipeline) {
	p, ok := pp.(*pipeline)
	if !ok || p.program == 0 {
		return
	}
	if r.current == p {
		gl.UseProgram(0)
		r.current = nil
	}
	gl.DeleteProgram(p.program)
	p.program = 0
}

// --- meshes ---

type mesh struct {
	vao, vbo, ebo uint32
	indexCount    int
	vboCap        int // bytes
	eboCap        int // bytes
}

func (*mesh) isMesh() {}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if len(desc.Vertices) == 0 {
		return nil, fmt.Errorf("mesh without vertices")
	}
	m := &mesh{indexCount: len(desc.Indices)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.vboCap = len(desc.Vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, m.vboCap, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	if len(desc.Indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		m.eboCap = len(desc.Indices) * 4
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.eboCap, gl.Ptr(desc.Indices), gl.DYNAMIC_DRAW)
	}

	for _, a := range desc.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			return nil, fmt.Errorf("attribute %d: type %d not supported", a.Location, a.Type)
		}
		loc := uint32(a.Location)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, int32(a.Size), gl.FLOAT, false, int32(desc.Layout.Stride), uintptr(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

func (r *RendererGL) DeleteMesh(mh core.Mesh) {
	m, ok := mh.(*mesh)
	if !ok || m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}

func (r *RendererGL) UpdateMesh(mh core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := mh.(*mesh)
	if !ok {
		return fmt.Errorf("foreign mesh %T", mh)
	}
	if n := len(vertices) * 4; n > m.vboCap {
		return fmt.Errorf("mesh update: %d vertex bytes exceed capacity %d", n, m.vboCap)
	}
	if n := len(indices) * 4; n > m.eboCap {
		return fmt.Errorf("mesh update: %d index bytes exceed capacity %d", n, m.eboCap)
	}

	gl.BindVertexArray(m.vao)
	if len(vertices) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}
	if len(indices) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	m.indexCount = len(indices)
	return nil
}

// --- drawing ---

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		return
	}

	if r.current != p {
		gl.UseProgram(p.program)
		r.current = p
	}
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), v)
	}

	unit := int32(0)
	for name, tex := range cmd.Samplers {
		t, ok := tex.(*texture)
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.Uniform1i(p.location(name), unit)
		unit++
	}

	count := cmd.IndexCount
	if count <= 0 || count > m.indexCount {
		count = m.indexCount
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch x := v.(type) {
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &x[0])
	case [4]float32:
		gl.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case colors.Color:
		gl.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case [2]float32:
		gl.Uniform2f(loc, x[0], x[1])
	case float32:
		gl.Uniform1f(loc, x)
	case int:
		gl.Uniform1i(loc, int32(x))
	case int32:
		gl.Uniform1i(loc, x)
	default:
		slog.Debug("unsupported uniform type", "type", fmt.Sprintf("%T", v))
	}
}

// --- shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
