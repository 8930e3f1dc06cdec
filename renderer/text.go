package renderer

import (
	"github.com/richinsley/pianino/inputs"
	"github.com/richinsley/pianino/sgl"
)

type textVertex struct {
	Pos [2]float32
	UV  [2]float32
}

var quadIndices = []uint16{0, 1, 2, 2, 3, 0}

// TextOverlay draws a block of text anchored to the top-left corner of the
// viewport at one texel per framebuffer pixel.
type TextOverlay struct {
	program  *sgl.Program
	vertices *sgl.Buffer[textVertex]
	indices  *sgl.Buffer[uint16]
	elements sgl.Elements[textVertex, uint16]
	texture  *sgl.Texture
	sampler  sgl.Sampler
	tint     sgl.Uniform[[4]float32]

	style        inputs.TextStyle
	text         string
	texW, texH   int
	viewW, viewH int

	// Tint multiplies every texel.
	Tint [4]float32
}

// NewTextOverlay takes ownership of program, which must declare vec2
// attributes "position" and "uv", a sampler2D "glyphs" and a vec4 "tint".
func NewTextOverlay(gl sgl.Context, program *sgl.Program, style inputs.TextStyle) (*TextOverlay, error) {
	t := &TextOverlay{program: program, style: style, Tint: [4]float32{1, 1, 1, 1}}
	attribs := sgl.Attribs{
		sgl.NewAttrib[[2]float32](gl, program, "position"),
		sgl.NewAttrib[[2]float32](gl, program, "uv"),
	}
	var err error
	if t.vertices, err = sgl.NewVertexBuffer[textVertex](gl, attribs); err != nil {
		return nil, err
	}
	if t.indices, err = sgl.NewIndexBuffer[uint16](gl); err != nil {
		t.vertices.Delete(gl)
		return nil, err
	}
	if t.texture, err = sgl.NewTexture(gl, sgl.Texture2D, sgl.RGBA8888); err != nil {
		t.vertices.Delete(gl)
		t.indices.Delete(gl)
		return nil, err
	}
	t.indices.Load(gl, quadIndices)
	t.elements = sgl.Elements[textVertex, uint16]{Vertices: t.vertices, Attribs: attribs, Indices: t.indices}
	t.sampler = sgl.Sampler{Texture: t.texture, Uniform: sgl.NewUniform[int32](gl, program, "glyphs")}
	t.tint = sgl.NewUniform[[4]float32](gl, program, "tint")
	t.SetText(gl, "")
	return t, nil
}

// Text returns the text currently shown.
func (t *TextOverlay) Text() string { return t.text }

// SetText rasterizes text into the overlay texture.
func (t *TextOverlay) SetText(gl sgl.Context, text string) {
	img := inputs.RasterizeText(text, t.style)
	t.texture.LoadImage(gl, img)
	t.text = text
	t.texW, t.texH = img.Bounds().Dx(), img.Bounds().Dy()
	t.updateQuad(gl)
}

// SetViewport sets the framebuffer size in pixels.
func (t *TextOverlay) SetViewport(gl sgl.Context, width, height int) {
	t.viewW, t.viewH = width, height
	t.updateQuad(gl)
}

func (t *TextOverlay) updateQuad(gl sgl.Context) {
	if t.viewW <= 0 || t.viewH <= 0 {
		return
	}
	x0, y0 := float32(-1), float32(1)
	x1 := x0 + 2*float32(t.texW)/float32(t.viewW)
	y1 := y0 - 2*float32(t.texH)/float32(t.viewH)
	// Image row 0 is uploaded first, so v=0 is the top of the text.
	t.vertices.Load(gl, []textVertex{
		{Pos: [2]float32{x0, y0}, UV: [2]float32{0, 0}},
		{Pos: [2]float32{x0, y1}, UV: [2]float32{0, 1}},
		{Pos: [2]float32{x1, y1}, UV: [2]float32{1, 1}},
		{Pos: [2]float32{x1, y0}, UV: [2]float32{1, 0}},
	})
}

// Render blends the text over the framebuffer. Nothing is drawn until the
// viewport is known.
func (t *TextOverlay) Render(gl sgl.Context) {
	if t.vertices.Len() == 0 {
		return
	}
	gl.Enable(sgl.BLEND)
	gl.BlendFunc(sgl.SRC_ALPHA, sgl.ONE_MINUS_SRC_ALPHA)
	t.program.Enable(gl)
	t.tint.Load(gl, t.Tint)
	sgl.BindSamplers(gl, t.sampler)
	t.elements.Draw(gl, sgl.Triangles)
	sgl.UnbindSamplers(gl, t.sampler)
	t.program.Disable(gl)
	gl.Disable(sgl.BLEND)
}

// Delete releases every GL object of the overlay.
func (t *TextOverlay) Delete(gl sgl.Context) {
	t.program.Delete(gl)
	t.vertices.Delete(gl)
	t.indices.Delete(gl)
	t.texture.Delete(gl)
}
