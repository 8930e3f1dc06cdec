// Package sgltest provides a recording sgl.Context for tests.
package sgltest

import (
	"github.com/richinsley/pianino/sgl"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

// GL records every call made through it and tracks the objects it issued.
// The zero value is not usable; call New.
type GL struct {
	Calls []Call

	// FailCompile makes every shader of the listed types fail to compile.
	FailCompile map[sgl.Enum]bool
	// FailLink makes every link fail.
	FailLink bool
	// Missing lists attribute and uniform names that resolve to -1.
	Missing map[string]bool
	// Ints answers GetInteger.
	Ints map[sgl.Enum]int
	// Strings answers GetString.
	Strings map[sgl.Enum]string

	next     uint32
	attribs  map[string]sgl.AttribLoc
	uniforms map[string]sgl.UniformLoc
	compiled map[sgl.ShaderID]bool
	types    map[sgl.ShaderID]sgl.Enum

	Buffers  map[sgl.BufferID]bool
	Textures map[sgl.TextureID]bool
	Shaders  map[sgl.ShaderID]bool
	Programs map[sgl.ProgramID]bool

	viewport [4]int
}

var _ sgl.Context = (*GL)(nil)

// New returns an empty recorder.
func New() *GL {
	return &GL{
		FailCompile: map[sgl.Enum]bool{},
		Missing:     map[string]bool{},
		Ints:        map[sgl.Enum]int{},
		Strings:     map[sgl.Enum]string{},
		attribs:     map[string]sgl.AttribLoc{},
		uniforms:    map[string]sgl.UniformLoc{},
		compiled:    map[sgl.ShaderID]bool{},
		types:       map[sgl.ShaderID]sgl.Enum{},
		Buffers:     map[sgl.BufferID]bool{},
		Textures:    map[sgl.TextureID]bool{},
		Shaders:     map[sgl.ShaderID]bool{},
		Programs:    map[sgl.ProgramID]bool{},
	}
}

func (g *GL) record(name string, args ...any) {
	g.Calls = append(g.Calls, Call{Name: name, Args: args})
}

func (g *GL) id() uint32 {
	g.next++
	return g.next
}

// Reset forgets the recorded calls but keeps object state.
func (g *GL) Reset() { g.Calls = nil }

// Count returns how many times the named call was made.
func (g *GL) Count(name string) int {
	n := 0
	for _, c := range g.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the recorded calls with the given name.
func (g *GL) Find(name string) []Call {
	var out []Call
	for _, c := range g.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the call names in order.
func (g *GL) Names() []string {
	out := make([]string, len(g.Calls))
	for i, c := range g.Calls {
		out[i] = c.Name
	}
	return out
}

// LastViewport returns the last viewport set.
func (g *GL) LastViewport() [4]int { return g.viewport }

func (g *GL) CreateBuffer() sgl.BufferID {
	id := sgl.BufferID(g.id())
	g.Buffers[id] = true
	g.record("CreateBuffer", id)
	return id
}

func (g *GL) DeleteBuffer(b sgl.BufferID) {
	delete(g.Buffers, b)
	g.record("DeleteBuffer", b)
}

func (g *GL) BindBuffer(target sgl.Enum, b sgl.BufferID) { g.record("BindBuffer", target, b) }

func (g *GL) BufferData(target sgl.Enum, size int, data []byte, usage sgl.Enum) {
	g.record("BufferData", target, size, data != nil, usage)
}

func (g *GL) EnableVertexAttribArray(a sgl.AttribLoc)  { g.record("EnableVertexAttribArray", a) }
func (g *GL) DisableVertexAttribArray(a sgl.AttribLoc) { g.record("DisableVertexAttribArray", a) }

func (g *GL) VertexAttribPointer(a sgl.AttribLoc, size int, typ sgl.Enum, normalized bool, stride, offset int) {
	g.record("VertexAttribPointer", a, size, typ, normalized, stride, offset)
}

func (g *GL) VertexAttribIPointer(a sgl.AttribLoc, size int, typ sgl.Enum, stride, offset int) {
	g.record("VertexAttribIPointer", a, size, typ, stride, offset)
}

func (g *GL) DrawArrays(mode sgl.Enum, first, count int) { g.record("DrawArrays", mode, first, count) }

func (g *GL) DrawElements(mode sgl.Enum, count int, typ sgl.Enum, offset int) {
	g.record("DrawElements", mode, count, typ, offset)
}

func (g *GL) CreateTexture() sgl.TextureID {
	id := sgl.TextureID(g.id())
	g.Textures[id] = true
	g.record("CreateTexture", id)
	return id
}

func (g *GL) DeleteTexture(t sgl.TextureID) {
	delete(g.Textures, t)
	g.record("DeleteTexture", t)
}

func (g *GL) BindTexture(target sgl.Enum, t sgl.TextureID) { g.record("BindTexture", target, t) }
func (g *GL) ActiveTexture(unit sgl.Enum)                  { g.record("ActiveTexture", unit) }

func (g *GL) TexImage2D(target sgl.Enum, level int, internalFormat sgl.Enum, width, height int, format, typ sgl.Enum, data []byte) {
	g.record("TexImage2D", target, level, internalFormat, width, height, format, typ, len(data))
}

func (g *GL) TexImage3D(target sgl.Enum, level int, internalFormat sgl.Enum, width, height, depth int, format, typ sgl.Enum, data []byte) {
	g.record("TexImage3D", target, level, internalFormat, width, height, depth, format, typ, len(data))
}

func (g *GL) TexSubImage2D(target sgl.Enum, level int, x, y, width, height int, format, typ sgl.Enum, data []byte) {
	g.record("TexSubImage2D", target, level, x, y, width, height, format, typ, len(data))
}

func (g *GL) TexSubImage3D(target sgl.Enum, level int, x, y, z, width, height, depth int, format, typ sgl.Enum, data []byte) {
	g.record("TexSubImage3D", target, level, x, y, z, width, height, depth, format, typ, len(data))
}

func (g *GL) TexParameteri(target, pname sgl.Enum, param int) {
	g.record("TexParameteri", target, pname, param)
}

func (g *GL) GenerateMipmap(target sgl.Enum)      { g.record("GenerateMipmap", target) }
func (g *GL) PixelStorei(pname sgl.Enum, param int) { g.record("PixelStorei", pname, param) }

func (g *GL) CreateShader(typ sgl.Enum) sgl.ShaderID {
	id := sgl.ShaderID(g.id())
	g.Shaders[id] = true
	g.types[id] = typ
	g.record("CreateShader", typ, id)
	return id
}

func (g *GL) ShaderSource(s sgl.ShaderID, src string) { g.record("ShaderSource", s, src) }

func (g *GL) CompileShader(s sgl.ShaderID) {
	g.compiled[s] = !g.FailCompile[g.types[s]]
	g.record("CompileShader", s)
}

func (g *GL) GetShaderi(s sgl.ShaderID, pname sgl.Enum) int {
	g.record("GetShaderi", s, pname)
	if pname == sgl.COMPILE_STATUS && g.compiled[s] {
		return 1
	}
	return 0
}

func (g *GL) GetShaderInfoLog(s sgl.ShaderID) string {
	g.record("GetShaderInfoLog", s)
	return "ERROR: 0:1: syntax error"
}

func (g *GL) DeleteShader(s sgl.ShaderID) {
	delete(g.Shaders, s)
	g.record("DeleteShader", s)
}

func (g *GL) CreateProgram() sgl.ProgramID {
	id := sgl.ProgramID(g.id())
	g.Programs[id] = true
	g.record("CreateProgram", id)
	return id
}

func (g *GL) AttachShader(p sgl.ProgramID, s sgl.ShaderID) { g.record("AttachShader", p, s) }
func (g *GL) DetachShader(p sgl.ProgramID, s sgl.ShaderID) { g.record("DetachShader", p, s) }
func (g *GL) LinkProgram(p sgl.ProgramID)                  { g.record("LinkProgram", p) }

func (g *GL) GetProgrami(p sgl.ProgramID, pname sgl.Enum) int {
	g.record("GetProgrami", p, pname)
	if pname == sgl.LINK_STATUS && !g.FailLink {
		return 1
	}
	return 0
}

func (g *GL) GetProgramInfoLog(p sgl.ProgramID) string {
	g.record("GetProgramInfoLog", p)
	return "error: unresolved varying"
}

func (g *GL) UseProgram(p sgl.ProgramID) { g.record("UseProgram", p) }

func (g *GL) DeleteProgram(p sgl.ProgramID) {
	delete(g.Programs, p)
	g.record("DeleteProgram", p)
}

func (g *GL) GetAttribLocation(p sgl.ProgramID, name string) sgl.AttribLoc {
	g.record("GetAttribLocation", p, name)
	if g.Missing[name] {
		return -1
	}
	loc, ok := g.attribs[name]
	if !ok {
		loc = sgl.AttribLoc(len(g.attribs))
		g.attribs[name] = loc
	}
	return loc
}

func (g *GL) GetUniformLocation(p sgl.ProgramID, name string) sgl.UniformLoc {
	g.record("GetUniformLocation", p, name)
	if g.Missing[name] {
		return -1
	}
	loc, ok := g.uniforms[name]
	if !ok {
		loc = sgl.UniformLoc(len(g.uniforms))
		g.uniforms[name] = loc
	}
	return loc
}

func (g *GL) Uniform1f(u sgl.UniformLoc, v float32)         { g.record("Uniform1f", u, v) }
func (g *GL) Uniform2f(u sgl.UniformLoc, v0, v1 float32)    { g.record("Uniform2f", u, v0, v1) }
func (g *GL) Uniform3f(u sgl.UniformLoc, v0, v1, v2 float32) { g.record("Uniform3f", u, v0, v1, v2) }
func (g *GL) Uniform4f(u sgl.UniformLoc, v0, v1, v2, v3 float32) {
	g.record("Uniform4f", u, v0, v1, v2, v3)
}
func (g *GL) Uniform1i(u sgl.UniformLoc, v int32)          { g.record("Uniform1i", u, v) }
func (g *GL) Uniform2i(u sgl.UniformLoc, v0, v1 int32)     { g.record("Uniform2i", u, v0, v1) }
func (g *GL) Uniform3i(u sgl.UniformLoc, v0, v1, v2 int32) { g.record("Uniform3i", u, v0, v1, v2) }
func (g *GL) Uniform4i(u sgl.UniformLoc, v0, v1, v2, v3 int32) {
	g.record("Uniform4i", u, v0, v1, v2, v3)
}

func (g *GL) UniformMatrix2fv(u sgl.UniformLoc, transpose bool, m []float32) {
	g.record("UniformMatrix2fv", u, transpose, append([]float32(nil), m...))
}

func (g *GL) UniformMatrix3fv(u sgl.UniformLoc, transpose bool, m []float32) {
	g.record("UniformMatrix3fv", u, transpose, append([]float32(nil), m...))
}

func (g *GL) UniformMatrix4fv(u sgl.UniformLoc, transpose bool, m []float32) {
	g.record("UniformMatrix4fv", u, transpose, append([]float32(nil), m...))
}

func (g *GL) Viewport(x, y, width, height int) {
	g.viewport = [4]int{x, y, width, height}
	g.record("Viewport", x, y, width, height)
}

func (g *GL) ClearColor(r, gr, b, a float32)      { g.record("ClearColor", r, gr, b, a) }
func (g *GL) ClearStencil(s int)                  { g.record("ClearStencil", s) }
func (g *GL) StencilMask(mask uint32)             { g.record("StencilMask", mask) }
func (g *GL) Clear(mask sgl.Enum)                 { g.record("Clear", mask) }
func (g *GL) Enable(cap sgl.Enum)                 { g.record("Enable", cap) }
func (g *GL) Disable(cap sgl.Enum)                { g.record("Disable", cap) }
func (g *GL) BlendFunc(sfactor, dfactor sgl.Enum) { g.record("BlendFunc", sfactor, dfactor) }

func (g *GL) GetString(name sgl.Enum) string {
	g.record("GetString", name)
	return g.Strings[name]
}

func (g *GL) GetInteger(pname sgl.Enum) int {
	g.record("GetInteger", pname)
	return g.Ints[pname]
}

func (g *GL) ReadPixels(dst []byte, x, y, width, height int, format, typ sgl.Enum) {
	for i := range dst {
		dst[i] = byte(i)
	}
	g.record("ReadPixels", x, y, width, height, format, typ)
}
