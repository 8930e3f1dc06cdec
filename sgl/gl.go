// Package sgl is a thin typed layer over the OpenGL ES entry points used to
// create buffers, textures and programs and to issue draw calls.
//
// Every operation takes the current Context explicitly. Nothing in this
// package deletes GPU resources implicitly: owners call Delete with the
// Context that created the resource.
package sgl

// Enum is a GL enumerant.
type Enum uint32

const (
	// Buffer targets and usages.
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8
	STREAM_DRAW          Enum = 0x88E0

	// Data types.
	BYTE                   Enum = 0x1400
	UNSIGNED_BYTE          Enum = 0x1401
	SHORT                  Enum = 0x1402
	UNSIGNED_SHORT         Enum = 0x1403
	INT                    Enum = 0x1404
	UNSIGNED_INT           Enum = 0x1405
	FLOAT                  Enum = 0x1406
	UNSIGNED_SHORT_4_4_4_4 Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1 Enum = 0x8034
	UNSIGNED_SHORT_5_6_5   Enum = 0x8363

	// Primitives.
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	// Textures.
	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE_3D         Enum = 0x806F
	TEXTURE0           Enum = 0x84C0
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	TEXTURE_WRAP_R     Enum = 0x8072
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_MAG_FILTER Enum = 0x2800
	CLAMP_TO_EDGE      Enum = 0x812F
	LINEAR             Enum = 0x2601
	NEAREST            Enum = 0x2600
	UNPACK_ALIGNMENT   Enum = 0x0CF5
	PACK_ALIGNMENT     Enum = 0x0D05

	// Pixel formats.
	ALPHA           Enum = 0x1906
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190A

	// Shaders and programs.
	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82

	// Capabilities and clear bits.
	BLEND               Enum = 0x0BE2
	DEPTH_TEST          Enum = 0x0B71
	STENCIL_TEST        Enum = 0x0B90
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	COLOR_BUFFER_BIT    Enum = 0x00004000
	DEPTH_BUFFER_BIT    Enum = 0x00000100
	STENCIL_BUFFER_BIT  Enum = 0x00000400

	// Queries.
	VENDOR                   Enum = 0x1F00
	RENDERER                 Enum = 0x1F01
	VERSION                  Enum = 0x1F02
	SHADING_LANGUAGE_VERSION Enum = 0x8B8C
	RED_BITS                 Enum = 0x0D52
	GREEN_BITS               Enum = 0x0D53
	BLUE_BITS                Enum = 0x0D54
	ALPHA_BITS               Enum = 0x0D55
	DEPTH_BITS               Enum = 0x0D56
	STENCIL_BITS             Enum = 0x0D57
	SAMPLES                  Enum = 0x80A9
	VIEWPORT                 Enum = 0x0BA2
)

// Context lists the GL entry points used by this package and its callers.
// Implementations forward to a current GL context; exactly one goroutine
// (the one owning the context) may call them.
type Context interface {
	CreateBuffer() BufferID
	DeleteBuffer(b BufferID)
	BindBuffer(target Enum, b BufferID)
	// BufferData uploads data, or allocates size uninitialized bytes when data is nil.
	BufferData(target Enum, size int, data []byte, usage Enum)

	EnableVertexAttribArray(a AttribLoc)
	DisableVertexAttribArray(a AttribLoc)
	VertexAttribPointer(a AttribLoc, size int, typ Enum, normalized bool, stride, offset int)
	VertexAttribIPointer(a AttribLoc, size int, typ Enum, stride, offset int)

	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, typ Enum, offset int)

	CreateTexture() TextureID
	DeleteTexture(t TextureID)
	BindTexture(target Enum, t TextureID)
	ActiveTexture(unit Enum)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, data []byte)
	TexImage3D(target Enum, level int, internalFormat Enum, width, height, depth int, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, typ Enum, data []byte)
	TexSubImage3D(target Enum, level int, x, y, z, width, height, depth int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int)

	CreateShader(typ Enum) ShaderID
	ShaderSource(s ShaderID, src string)
	CompileShader(s ShaderID)
	GetShaderi(s ShaderID, pname Enum) int
	GetShaderInfoLog(s ShaderID) string
	DeleteShader(s ShaderID)

	CreateProgram() ProgramID
	AttachShader(p ProgramID, s ShaderID)
	DetachShader(p ProgramID, s ShaderID)
	LinkProgram(p ProgramID)
	GetProgrami(p ProgramID, pname Enum) int
	GetProgramInfoLog(p ProgramID) string
	UseProgram(p ProgramID)
	DeleteProgram(p ProgramID)
	GetAttribLocation(p ProgramID, name string) AttribLoc
	GetUniformLocation(p ProgramID, name string) UniformLoc

	Uniform1f(u UniformLoc, v float32)
	Uniform2f(u UniformLoc, v0, v1 float32)
	Uniform3f(u UniformLoc, v0, v1, v2 float32)
	Uniform4f(u UniformLoc, v0, v1, v2, v3 float32)
	Uniform1i(u UniformLoc, v int32)
	Uniform2i(u UniformLoc, v0, v1 int32)
	Uniform3i(u UniformLoc, v0, v1, v2 int32)
	Uniform4i(u UniformLoc, v0, v1, v2, v3 int32)
	UniformMatrix2fv(u UniformLoc, transpose bool, m []float32)
	UniformMatrix3fv(u UniformLoc, transpose bool, m []float32)
	UniformMatrix4fv(u UniformLoc, transpose bool, m []float32)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	ClearStencil(s int)
	StencilMask(mask uint32)
	Clear(mask Enum)
	Enable(cap Enum)
	Disable(cap Enum)
	BlendFunc(sfactor, dfactor Enum)

	GetString(name Enum) string
	GetInteger(pname Enum) int
	ReadPixels(dst []byte, x, y, width, height int, format, typ Enum)
}
