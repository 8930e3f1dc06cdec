package sgl

import "fmt"

// ShaderType is the pipeline stage of a shader.
type ShaderType uint8

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	if t == FragmentShader {
		return "fragment"
	}
	return "vertex"
}

func (t ShaderType) enum() Enum {
	if t == FragmentShader {
		return FRAGMENT_SHADER
	}
	return VERTEX_SHADER
}

// Shader is a compiled shader stage waiting to be linked.
type Shader struct {
	id  ShaderID
	typ ShaderType
}

// NewShader compiles src. On failure the shader object is deleted and the
// returned *BuildError carries the compiler log.
func NewShader(gl Context, typ ShaderType, src string) (*Shader, error) {
	id := gl.CreateShader(typ.enum())
	if !id.Valid() {
		return nil, fmt.Errorf("%s shader: %w", typ, ErrCreate)
	}
	gl.ShaderSource(id, src)
	gl.CompileShader(id)
	if gl.GetShaderi(id, COMPILE_STATUS) == 0 {
		log := gl.GetShaderInfoLog(id)
		gl.DeleteShader(id)
		return nil, &BuildError{Stage: typ.String(), Log: log}
	}
	return &Shader{id: id, typ: typ}, nil
}

func (s *Shader) ID() ShaderID     { return s.id }
func (s *Shader) Type() ShaderType { return s.typ }

// Delete releases a shader that was never linked.
func (s *Shader) Delete(gl Context) {
	if !s.id.Valid() {
		return
	}
	gl.DeleteShader(s.id)
	s.id = 0
}

// Program is a linked shader program.
type Program struct {
	id    ProgramID
	names map[string]string
}

// ProgramOption configures NewProgram.
type ProgramOption func(*Program)

// WithNames resolves attribute and uniform names through m before querying
// the context. Names absent from m are used as is.
func WithNames(m map[string]string) ProgramOption {
	return func(p *Program) {
		p.names = m
	}
}

// NewProgram links shaders into a program. The shaders are consumed: they
// are detached and deleted whether linking succeeds or not. On failure the
// program is deleted and the returned *BuildError carries the linker log.
func NewProgram(gl Context, shaders []*Shader, opts ...ProgramOption) (*Program, error) {
	id := gl.CreateProgram()
	if !id.Valid() {
		for _, s := range shaders {
			s.Delete(gl)
		}
		return nil, fmt.Errorf("program: %w", ErrCreate)
	}
	for _, s := range shaders {
		gl.AttachShader(id, s.id)
	}
	gl.LinkProgram(id)
	linked := gl.GetProgrami(id, LINK_STATUS) != 0
	var log string
	if !linked {
		log = gl.GetProgramInfoLog(id)
	}
	for _, s := range shaders {
		gl.DetachShader(id, s.id)
		s.Delete(gl)
	}
	if !linked {
		gl.DeleteProgram(id)
		return nil, &BuildError{Stage: "link", Log: log}
	}
	p := &Program{id: id}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// BuildProgram compiles a vertex and a fragment shader and links them.
// No shader or program object survives a failure.
func BuildProgram(gl Context, vertex, fragment string, opts ...ProgramOption) (*Program, error) {
	vs, err := NewShader(gl, VertexShader, vertex)
	if err != nil {
		return nil, err
	}
	fs, err := NewShader(gl, FragmentShader, fragment)
	if err != nil {
		vs.Delete(gl)
		return nil, err
	}
	return NewProgram(gl, []*Shader{vs, fs}, opts...)
}

func (p *Program) ID() ProgramID { return p.id }

// Enable makes p the current program.
func (p *Program) Enable(gl Context) { gl.UseProgram(p.id) }

// Disable clears the current program.
func (p *Program) Disable(gl Context) { gl.UseProgram(0) }

// Delete releases the program. Further calls are no-ops.
func (p *Program) Delete(gl Context) {
	if !p.id.Valid() {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) mapped(name string) string {
	if n, ok := p.names[name]; ok {
		return n
	}
	return name
}

// AttribLoc returns the location of the named attribute, or an invalid
// location after logging a warning.
func (p *Program) AttribLoc(gl Context, name string) AttribLoc {
	loc := gl.GetAttribLocation(p.id, p.mapped(name))
	if !loc.Valid() {
		Logger().Warn("no attribute found", "name", name, "program", p.id)
	}
	return loc
}

// UniformLoc returns the location of the named uniform, or an invalid
// location after logging a warning.
func (p *Program) UniformLoc(gl Context, name string) UniformLoc {
	loc := gl.GetUniformLocation(p.id, p.mapped(name))
	if !loc.Valid() {
		Logger().Warn("no uniform found", "name", name, "program", p.id)
	}
	return loc
}

// NewAttrib resolves the named attribute with the kind of T.
func NewAttrib[T AttribValue](gl Context, p *Program, name string) Attrib {
	return Attrib{Loc: p.AttribLoc(gl, name), Kind: KindOf[T]()}
}

// NewUniform resolves the named uniform holding values of type T.
func NewUniform[T UniformValue](gl Context, p *Program, name string) Uniform[T] {
	return Uniform[T]{Loc: p.UniformLoc(gl, name)}
}
