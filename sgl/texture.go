package sgl

import (
	"fmt"
	"image"
)

// TextureTarget is the dimensionality of a texture.
type TextureTarget uint8

const (
	Texture2D TextureTarget = iota
	Texture3D
)

func (t TextureTarget) enum() Enum {
	if t == Texture3D {
		return TEXTURE_3D
	}
	return TEXTURE_2D
}

// Extent is a texture size. Depth is ignored by 2D textures.
type Extent struct {
	Width, Height, Depth int
}

func Size2D(w, h int) Extent    { return Extent{w, h, 1} }
func Size3D(w, h, d int) Extent { return Extent{w, h, d} }

func (e Extent) pixels(target TextureTarget) int {
	n := e.Width * e.Height
	if target == Texture3D {
		n *= e.Depth
	}
	return n
}

func (e Extent) pow2(target TextureTarget) bool {
	if !isPow2(e.Width) || !isPow2(e.Height) {
		return false
	}
	return target != Texture3D || isPow2(e.Depth)
}

func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// Format is a pixel layout understood by GLES 2 and later.
type Format uint8

const (
	RGB888   Format = iota // 3 bytes: R, G, B
	RGBA8888               // 4 bytes: R, G, B, A
	L8                     // 1 byte luminance
	A8                     // 1 byte alpha
	LA88                   // 2 bytes: luminance, alpha
	RGB565                 // 16-bit packed R5 G6 B5
	RGBA4444               // 16-bit packed R4 G4 B4 A4
	RGBA5551               // 16-bit packed R5 G5 B5 A1
)

type formatInfo struct {
	name      string
	format    Enum
	typ       Enum
	pixelSize int
}

var formats = [...]formatInfo{
	RGB888:   {"RGB888", RGB, UNSIGNED_BYTE, 3},
	RGBA8888: {"RGBA8888", RGBA, UNSIGNED_BYTE, 4},
	L8:       {"L8", LUMINANCE, UNSIGNED_BYTE, 1},
	A8:       {"A8", ALPHA, UNSIGNED_BYTE, 1},
	LA88:     {"LA88", LUMINANCE_ALPHA, UNSIGNED_BYTE, 2},
	RGB565:   {"RGB565", RGB, UNSIGNED_SHORT_5_6_5, 2},
	RGBA4444: {"RGBA4444", RGBA, UNSIGNED_SHORT_4_4_4_4, 2},
	RGBA5551: {"RGBA5551", RGBA, UNSIGNED_SHORT_5_5_5_1, 2},
}

func (f Format) String() string { return formats[f].name }

// PixelSize returns the bytes per pixel of the format.
func (f Format) PixelSize() int { return formats[f].pixelSize }

// GLFormat returns the GL pixel format enum.
func (f Format) GLFormat() Enum { return formats[f].format }

// GLType returns the GL pixel data type enum.
func (f Format) GLType() Enum { return formats[f].typ }

// Texture owns a GPU texture of one target and pixel format.
type Texture struct {
	id     TextureID
	target TextureTarget
	format Format
}

// NewTexture creates an empty texture.
func NewTexture(gl Context, target TextureTarget, format Format) (*Texture, error) {
	id := gl.CreateTexture()
	if !id.Valid() {
		return nil, fmt.Errorf("texture: %w", ErrCreate)
	}
	return &Texture{id: id, target: target, format: format}, nil
}

func (t *Texture) ID() TextureID         { return t.id }
func (t *Texture) Target() TextureTarget { return t.target }
func (t *Texture) Format() Format        { return t.format }

func (t *Texture) Bind(gl Context)   { gl.BindTexture(t.target.enum(), t.id) }
func (t *Texture) Unbind(gl Context) { gl.BindTexture(t.target.enum(), 0) }

// Init allocates uninitialized storage of the given size at level 0.
func (t *Texture) Init(gl Context, size Extent) {
	t.Bind(gl)
	t.image(gl, size, nil)
	t.Unbind(gl)
}

// Load uploads a full image at level 0. It panics, before any GL call, if
// len(data) does not match size and the pixel format. Power-of-two sizes
// get a mipmap chain; other sizes are clamped and linearly filtered.
func (t *Texture) Load(gl Context, size Extent, data []byte) {
	t.checkLen(size, data)
	t.Bind(gl)
	gl.PixelStorei(UNPACK_ALIGNMENT, 1)
	t.image(gl, size, data)
	target := t.target.enum()
	if size.pow2(t.target) {
		gl.GenerateMipmap(target)
	} else {
		gl.TexParameteri(target, TEXTURE_WRAP_S, int(CLAMP_TO_EDGE))
		gl.TexParameteri(target, TEXTURE_WRAP_T, int(CLAMP_TO_EDGE))
		if t.target == Texture3D {
			gl.TexParameteri(target, TEXTURE_WRAP_R, int(CLAMP_TO_EDGE))
		}
		gl.TexParameteri(target, TEXTURE_MIN_FILTER, int(LINEAR))
		gl.TexParameteri(target, TEXTURE_MAG_FILTER, int(LINEAR))
	}
	t.Unbind(gl)
}

// LoadSub replaces a region of level 0.
func (t *Texture) LoadSub(gl Context, offset, size Extent, data []byte) {
	t.checkLen(size, data)
	f := formats[t.format]
	t.Bind(gl)
	gl.PixelStorei(UNPACK_ALIGNMENT, 1)
	if t.target == Texture3D {
		gl.TexSubImage3D(TEXTURE_3D, 0, offset.Width, offset.Height, offset.Depth,
			size.Width, size.Height, size.Depth, f.format, f.typ, data)
	} else {
		gl.TexSubImage2D(TEXTURE_2D, 0, offset.Width, offset.Height, size.Width, size.Height, f.format, f.typ, data)
	}
	t.Unbind(gl)
}

// LoadImage uploads an RGBA image into an RGBA8888 2D texture.
func (t *Texture) LoadImage(gl Context, img *image.RGBA) {
	if t.format != RGBA8888 || t.target != Texture2D {
		panic(fmt.Sprintf("sgl: LoadImage needs a 2D RGBA8888 texture, have %s", t.format))
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := img.Pix
	if img.Stride != w*4 {
		pix = make([]byte, 0, w*h*4)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := img.PixOffset(b.Min.X, y)
			pix = append(pix, img.Pix[off:off+w*4]...)
		}
	} else {
		pix = pix[:w*h*4]
	}
	t.Load(gl, Size2D(w, h), pix)
}

// Delete releases the texture. Further calls are no-ops.
func (t *Texture) Delete(gl Context) {
	if !t.id.Valid() {
		return
	}
	gl.DeleteTexture(t.id)
	t.id = 0
}

func (t *Texture) image(gl Context, size Extent, data []byte) {
	f := formats[t.format]
	if t.target == Texture3D {
		gl.TexImage3D(TEXTURE_3D, 0, f.format, size.Width, size.Height, size.Depth, f.format, f.typ, data)
	} else {
		gl.TexImage2D(TEXTURE_2D, 0, f.format, size.Width, size.Height, f.format, f.typ, data)
	}
}

func (t *Texture) checkLen(size Extent, data []byte) {
	if want := size.pixels(t.target) * t.format.PixelSize(); want != len(data) {
		panic(fmt.Sprintf("sgl: texture image data size mismatch: %s %dx%dx%d needs %d bytes, got %d",
			t.format, size.Width, size.Height, size.Depth, want, len(data)))
	}
}

// Sampler pairs a texture with the sampler uniform that reads it.
type Sampler struct {
	Texture *Texture
	Uniform Uniform[int32]
}

// BindSamplers binds samplers[i] to texture unit i and points its uniform
// at that unit.
func BindSamplers(gl Context, samplers ...Sampler) {
	for i, s := range samplers {
		gl.ActiveTexture(TEXTURE0 + Enum(i))
		s.Texture.Bind(gl)
		s.Uniform.Load(gl, int32(i))
	}
}

// UnbindSamplers unbinds the texture units used by BindSamplers.
func UnbindSamplers(gl Context, samplers ...Sampler) {
	for i := len(samplers) - 1; i >= 0; i-- {
		gl.ActiveTexture(TEXTURE0 + Enum(i))
		samplers[i].Texture.Unbind(gl)
	}
	gl.ActiveTexture(TEXTURE0)
}
