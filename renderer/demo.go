package renderer

import (
	"github.com/richinsley/pianino/sgl"
)

// triangleVertices is the demo triangle in normalized device coordinates.
var triangleVertices = [][2]float32{
	{0, 0.5},
	{-0.5, -0.5},
	{0.5, -0.5},
}

// Demo draws a single triangle shifted by a uniform offset.
type Demo struct {
	program  *sgl.Program
	vertices *sgl.Buffer[[2]float32]
	arrays   sgl.Arrays[[2]float32]
	offset   sgl.Uniform[[2]float32]

	// Offset is uploaded on every Render.
	Offset [2]float32
}

// NewDemo uploads the triangle and takes ownership of program, which must
// declare a vec2 attribute "position" and a vec2 uniform "offset".
func NewDemo(gl sgl.Context, program *sgl.Program) (*Demo, error) {
	d := &Demo{}
	d.setProgram(gl, program)
	vb, err := sgl.NewVertexBuffer[[2]float32](gl, d.arrays.Attribs)
	if err != nil {
		return nil, err
	}
	vb.Load(gl, triangleVertices)
	d.vertices = vb
	d.arrays.Vertices = vb
	return d, nil
}

func (d *Demo) setProgram(gl sgl.Context, program *sgl.Program) {
	d.program = program
	d.arrays.Attribs = sgl.Attribs{sgl.NewAttrib[[2]float32](gl, program, "position")}
	d.offset = sgl.NewUniform[[2]float32](gl, program, "offset")
}

// ReplaceProgram swaps in a new program and deletes the old one.
func (d *Demo) ReplaceProgram(gl sgl.Context, program *sgl.Program) {
	old := d.program
	d.setProgram(gl, program)
	old.Delete(gl)
}

// SetOffset moves the triangle.
func (d *Demo) SetOffset(x, y float32) { d.Offset = [2]float32{x, y} }

// Render draws the triangle with the current program.
func (d *Demo) Render(gl sgl.Context) {
	d.program.Enable(gl)
	d.offset.Load(gl, d.Offset)
	d.arrays.Draw(gl, sgl.Triangles)
	d.program.Disable(gl)
}

// Delete releases the program and vertex buffer.
func (d *Demo) Delete(gl sgl.Context) {
	d.program.Delete(gl)
	d.vertices.Delete(gl)
}
