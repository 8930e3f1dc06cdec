package sgl

// Column-major matrices as uploaded to GLSL mat2, mat3 and mat4.
type (
	Mat2 [4]float32
	Mat3 [9]float32
	Mat4 [16]float32
)

// Matrix is the set of matrix types a uniform can hold.
type Matrix interface {
	Mat2 | Mat3 | Mat4
}

// Transposed wraps a row-major matrix; GL transposes it during upload.
type Transposed[M Matrix] struct {
	M M
}

// UniformValue is the set of Go values a Uniform can upload.
type UniformValue interface {
	float32 | int32 |
		[2]float32 | [3]float32 | [4]float32 |
		[2]int32 | [3]int32 | [4]int32 |
		Mat2 | Mat3 | Mat4 |
		Transposed[Mat2] | Transposed[Mat3] | Transposed[Mat4]
}

// Uniform is a typed uniform slot of a linked program. A Uniform whose
// name was not found loads nothing.
type Uniform[T UniformValue] struct {
	Loc UniformLoc
}

// Load uploads v to the uniform. The owning program must be in use.
func (u Uniform[T]) Load(gl Context, v T) {
	if !u.Loc.Valid() {
		return
	}
	loadUniform(gl, u.Loc, v)
}

func loadUniform(gl Context, loc UniformLoc, v any) {
	switch v := v.(type) {
	case float32:
		gl.Uniform1f(loc, v)
	case int32:
		gl.Uniform1i(loc, v)
	case [2]float32:
		gl.Uniform2f(loc, v[0], v[1])
	case [3]float32:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case [4]float32:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	case [2]int32:
		gl.Uniform2i(loc, v[0], v[1])
	case [3]int32:
		gl.Uniform3i(loc, v[0], v[1], v[2])
	case [4]int32:
		gl.Uniform4i(loc, v[0], v[1], v[2], v[3])
	case Mat2:
		gl.UniformMatrix2fv(loc, false, v[:])
	case Mat3:
		gl.UniformMatrix3fv(loc, false, v[:])
	case Mat4:
		gl.UniformMatrix4fv(loc, false, v[:])
	case Transposed[Mat2]:
		gl.UniformMatrix2fv(loc, true, v.M[:])
	case Transposed[Mat3]:
		gl.UniformMatrix3fv(loc, true, v.M[:])
	case Transposed[Mat4]:
		gl.UniformMatrix4fv(loc, true, v.M[:])
	}
}
