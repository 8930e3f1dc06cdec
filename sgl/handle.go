package sgl

// Handles are issued by a Context and are only accepted by the Context
// methods of their own kind. The zero value of an ID names no object.
type (
	BufferID  uint32
	TextureID uint32
	ShaderID  uint32
	ProgramID uint32
)

// AttribLoc is a vertex attribute location. Negative values mean the name
// was not found in the program.
type AttribLoc int32

// UniformLoc is a uniform location. Negative values mean the name was not
// found in the program.
type UniformLoc int32

func (b BufferID) Valid() bool  { return b != 0 }
func (t TextureID) Valid() bool { return t != 0 }
func (s ShaderID) Valid() bool  { return s != 0 }
func (p ProgramID) Valid() bool { return p != 0 }
func (a AttribLoc) Valid() bool { return a >= 0 }
func (u UniformLoc) Valid() bool { return u >= 0 }
