// Package gles implements sgl.Context on top of the go-gl OpenGL ES 3
// bindings. The bindings must be initialized on the thread that owns the
// current context before any call is made.
package gles

import (
	"strings"
	"sync"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/richinsley/pianino/sgl"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the GL entry points through getProcAddr. Only the first call
// does any work.
func Init(getProcAddr func(name string) unsafe.Pointer) error {
	initOnce.Do(func() {
		initErr = gl.InitWithProcAddrFunc(getProcAddr)
	})
	return initErr
}

// Context forwards to the GL context current on the calling thread.
type Context struct{}

var _ sgl.Context = Context{}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (Context) CreateBuffer() sgl.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return sgl.BufferID(id)
}

func (Context) DeleteBuffer(b sgl.BufferID) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (Context) BindBuffer(target sgl.Enum, b sgl.BufferID) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (Context) BufferData(target sgl.Enum, size int, data []byte, usage sgl.Enum) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (Context) EnableVertexAttribArray(a sgl.AttribLoc) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (Context) DisableVertexAttribArray(a sgl.AttribLoc) {
	gl.DisableVertexAttribArray(uint32(a))
}

func (Context) VertexAttribPointer(a sgl.AttribLoc, size int, typ sgl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(a), int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Context) VertexAttribIPointer(a sgl.AttribLoc, size int, typ sgl.Enum, stride, offset int) {
	gl.VertexAttribIPointer(uint32(a), int32(size), uint32(typ), int32(stride), gl.PtrOffset(offset))
}

func (Context) DrawArrays(mode sgl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (Context) DrawElements(mode sgl.Enum, count int, typ sgl.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

func (Context) CreateTexture() sgl.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	return sgl.TextureID(id)
}

func (Context) DeleteTexture(t sgl.TextureID) {
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

func (Context) BindTexture(target sgl.Enum, t sgl.TextureID) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (Context) ActiveTexture(unit sgl.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (Context) TexImage2D(target sgl.Enum, level int, internalFormat sgl.Enum, width, height int, format, typ sgl.Enum, data []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0,
		uint32(format), uint32(typ), ptr(data))
}

func (Context) TexImage3D(target sgl.Enum, level int, internalFormat sgl.Enum, width, height, depth int, format, typ sgl.Enum, data []byte) {
	gl.TexImage3D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), int32(depth), 0,
		uint32(format), uint32(typ), ptr(data))
}

func (Context) TexSubImage2D(target sgl.Enum, level int, x, y, width, height int, format, typ sgl.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height),
		uint32(format), uint32(typ), ptr(data))
}

func (Context) TexSubImage3D(target sgl.Enum, level int, x, y, z, width, height, depth int, format, typ sgl.Enum, data []byte) {
	gl.TexSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth),
		uint32(format), uint32(typ), ptr(data))
}

func (Context) TexParameteri(target, pname sgl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (Context) GenerateMipmap(target sgl.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (Context) PixelStorei(pname sgl.Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (Context) CreateShader(typ sgl.Enum) sgl.ShaderID {
	return sgl.ShaderID(gl.CreateShader(uint32(typ)))
}

func (Context) ShaderSource(s sgl.ShaderID, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (Context) CompileShader(s sgl.ShaderID) {
	gl.CompileShader(uint32(s))
}

func (Context) GetShaderi(s sgl.ShaderID, pname sgl.Enum) int {
	var v int32
	gl.GetShaderiv(uint32(s), uint32(pname), &v)
	return int(v)
}

func (Context) GetShaderInfoLog(s sgl.ShaderID) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(uint32(s), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Context) DeleteShader(s sgl.ShaderID) {
	gl.DeleteShader(uint32(s))
}

func (Context) CreateProgram() sgl.ProgramID {
	return sgl.ProgramID(gl.CreateProgram())
}

func (Context) AttachShader(p sgl.ProgramID, s sgl.ShaderID) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (Context) DetachShader(p sgl.ProgramID, s sgl.ShaderID) {
	gl.DetachShader(uint32(p), uint32(s))
}

func (Context) LinkProgram(p sgl.ProgramID) {
	gl.LinkProgram(uint32(p))
}

func (Context) GetProgrami(p sgl.ProgramID, pname sgl.Enum) int {
	var v int32
	gl.GetProgramiv(uint32(p), uint32(pname), &v)
	return int(v)
}

func (Context) GetProgramInfoLog(p sgl.ProgramID) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(uint32(p), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Context) UseProgram(p sgl.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (Context) DeleteProgram(p sgl.ProgramID) {
	gl.DeleteProgram(uint32(p))
}

func (Context) GetAttribLocation(p sgl.ProgramID, name string) sgl.AttribLoc {
	return sgl.AttribLoc(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (Context) GetUniformLocation(p sgl.ProgramID, name string) sgl.UniformLoc {
	return sgl.UniformLoc(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (Context) Uniform1f(u sgl.UniformLoc, v float32) { gl.Uniform1f(int32(u), v) }

func (Context) Uniform2f(u sgl.UniformLoc, v0, v1 float32) { gl.Uniform2f(int32(u), v0, v1) }

func (Context) Uniform3f(u sgl.UniformLoc, v0, v1, v2 float32) { gl.Uniform3f(int32(u), v0, v1, v2) }

func (Context) Uniform4f(u sgl.UniformLoc, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(u), v0, v1, v2, v3)
}

func (Context) Uniform1i(u sgl.UniformLoc, v int32) { gl.Uniform1i(int32(u), v) }

func (Context) Uniform2i(u sgl.UniformLoc, v0, v1 int32) { gl.Uniform2i(int32(u), v0, v1) }

func (Context) Uniform3i(u sgl.UniformLoc, v0, v1, v2 int32) { gl.Uniform3i(int32(u), v0, v1, v2) }

func (Context) Uniform4i(u sgl.UniformLoc, v0, v1, v2, v3 int32) {
	gl.Uniform4i(int32(u), v0, v1, v2, v3)
}

func (Context) UniformMatrix2fv(u sgl.UniformLoc, transpose bool, m []float32) {
	gl.UniformMatrix2fv(int32(u), 1, transpose, &m[0])
}

func (Context) UniformMatrix3fv(u sgl.UniformLoc, transpose bool, m []float32) {
	gl.UniformMatrix3fv(int32(u), 1, transpose, &m[0])
}

func (Context) UniformMatrix4fv(u sgl.UniformLoc, transpose bool, m []float32) {
	gl.UniformMatrix4fv(int32(u), 1, transpose, &m[0])
}

func (Context) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Context) ClearStencil(s int)            { gl.ClearStencil(int32(s)) }
func (Context) StencilMask(mask uint32)       { gl.StencilMask(mask) }
func (Context) Clear(mask sgl.Enum)           { gl.Clear(uint32(mask)) }
func (Context) Enable(cap sgl.Enum)           { gl.Enable(uint32(cap)) }
func (Context) Disable(cap sgl.Enum)          { gl.Disable(uint32(cap)) }

func (Context) BlendFunc(sfactor, dfactor sgl.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (Context) GetString(name sgl.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Context) GetInteger(pname sgl.Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (Context) ReadPixels(dst []byte, x, y, width, height int, format, typ sgl.Enum) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(typ), ptr(dst))
}
