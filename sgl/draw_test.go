package sgl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/sgl/sgltest"
)

func newArrays(t *testing.T, gl *sgltest.GL, n int) *sgl.Arrays[[2]float32] {
	t.Helper()
	vb, err := sgl.NewBuffer[[2]float32](gl, sgl.ArrayBuffer)
	require.NoError(t, err)
	vb.Load(gl, make([][2]float32, n))
	return &sgl.Arrays[[2]float32]{Vertices: vb, Attribs: sgl.Attribs{{Loc: 0, Kind: sgl.Vec2}}}
}

func TestBufferLoadRecordsLength(t *testing.T) {
	gl := sgltest.New()
	b, err := sgl.NewBuffer[[3]float32](gl, sgl.ArrayBuffer)
	require.NoError(t, err)

	b.Load(gl, make([][3]float32, 5))
	assert.Equal(t, 5, b.Len())
	data := gl.Find("BufferData")
	require.Len(t, data, 1)
	assert.Equal(t, []any{sgl.ARRAY_BUFFER, 60, true, sgl.STATIC_DRAW}, data[0].Args)

	b.Resize(gl, 9)
	assert.Equal(t, 9, b.Len())
	data = gl.Find("BufferData")
	assert.Equal(t, []any{sgl.ARRAY_BUFFER, 108, false, sgl.STATIC_DRAW}, data[1].Args)

	b.Delete(gl)
	b.Delete(gl)
	assert.Equal(t, 1, gl.Count("DeleteBuffer"))
	assert.Empty(t, gl.Buffers)
}

func TestDrawCountMatchesLoad(t *testing.T) {
	for _, n := range []int{0, 1, 3, 64, 1000} {
		gl := sgltest.New()
		a := newArrays(t, gl, n)
		gl.Reset()
		a.Draw(gl, sgl.Points)
		draws := gl.Find("DrawArrays")
		require.Len(t, draws, 1)
		assert.Equal(t, []any{sgl.POINTS, 0, n}, draws[0].Args)
	}
}

func TestTriangleDraw(t *testing.T) {
	gl := sgltest.New()
	vb, err := sgl.NewBuffer[[2]float32](gl, sgl.ArrayBuffer)
	require.NoError(t, err)
	vb.Load(gl, [][2]float32{{0, 0.5}, {-0.5, -0.5}, {0.5, -0.5}})
	a := &sgl.Arrays[[2]float32]{Vertices: vb, Attribs: sgl.Attribs{{Loc: 0, Kind: sgl.KindOf[[2]float32]()}}}

	gl.Reset()
	sgl.Draw(gl, a, sgl.Triangles)

	assert.Equal(t, []string{
		"BindBuffer", "EnableVertexAttribArray", "VertexAttribPointer",
		"DrawArrays", "DisableVertexAttribArray", "BindBuffer",
	}, gl.Names())
	assert.Equal(t, []any{sgl.TRIANGLES, 0, 3}, gl.Find("DrawArrays")[0].Args)
	assert.Zero(t, gl.Count("DrawElements"))
}

func TestDrawRangeBounds(t *testing.T) {
	gl := sgltest.New()
	a := newArrays(t, gl, 4)
	gl.Reset()

	assert.Panics(t, func() { sgl.DrawRange(gl, a, sgl.Lines, 5, 5) })
	assert.Panics(t, func() { sgl.DrawRange(gl, a, sgl.Lines, 0, 5) })
	assert.Panics(t, func() { sgl.DrawRange(gl, a, sgl.Lines, 3, 2) })
	assert.Empty(t, gl.Calls)

	sgl.DrawRange(gl, a, sgl.Lines, 1, 3)
	assert.Equal(t, []any{sgl.LINES, 1, 2}, gl.Find("DrawArrays")[0].Args)
}

func TestDrawRangeFullEqualsDraw(t *testing.T) {
	full := sgltest.New()
	a := newArrays(t, full, 6)
	full.Reset()
	sgl.Draw(full, a, sgl.TriangleStrip)

	ranged := sgltest.New()
	b := newArrays(t, ranged, 6)
	ranged.Reset()
	sgl.DrawRange(ranged, b, sgl.TriangleStrip, 0, 6)

	assert.Equal(t, full.Calls, ranged.Calls)
}

func TestElementsDraw(t *testing.T) {
	gl := sgltest.New()
	a := newArrays(t, gl, 4)
	ib, err := sgl.NewIndexBuffer[uint16](gl)
	require.NoError(t, err)
	ib.Load(gl, []uint16{0, 1, 2, 2, 3, 0})
	e := &sgl.Elements[[2]float32, uint16]{Vertices: a.Vertices, Attribs: a.Attribs, Indices: ib}
	assert.Equal(t, 6, e.Len())

	gl.Reset()
	e.Draw(gl, sgl.Triangles)
	assert.Equal(t, []any{sgl.TRIANGLES, 6, sgl.UNSIGNED_SHORT, 0}, gl.Find("DrawElements")[0].Args)
	binds := gl.Find("BindBuffer")
	require.Len(t, binds, 4)
	assert.Equal(t, []any{sgl.ELEMENT_ARRAY_BUFFER, ib.ID()}, binds[1].Args)
	assert.Equal(t, []any{sgl.ELEMENT_ARRAY_BUFFER, sgl.BufferID(0)}, binds[2].Args)

	gl.Reset()
	sgl.DrawRange(gl, e, sgl.Triangles, 3, 6)
	assert.Equal(t, []any{sgl.TRIANGLES, 3, sgl.UNSIGNED_SHORT, 6}, gl.Find("DrawElements")[0].Args)

	gl.Reset()
	assert.Panics(t, func() { sgl.DrawRange(gl, e, sgl.Triangles, 0, 7) })
	assert.Empty(t, gl.Calls)
}

func TestIndexTypes(t *testing.T) {
	gl := sgltest.New()
	a := newArrays(t, gl, 3)

	ib8, _ := sgl.NewIndexBuffer[uint8](gl)
	ib8.Load(gl, []uint8{0, 1, 2})
	ib32, _ := sgl.NewIndexBuffer[uint32](gl)
	ib32.Load(gl, []uint32{0, 1, 2})

	gl.Reset()
	sgl.DrawRange(gl, &sgl.Elements[[2]float32, uint8]{Vertices: a.Vertices, Attribs: a.Attribs, Indices: ib8}, sgl.Triangles, 1, 3)
	sgl.DrawRange(gl, &sgl.Elements[[2]float32, uint32]{Vertices: a.Vertices, Attribs: a.Attribs, Indices: ib32}, sgl.Triangles, 1, 3)

	draws := gl.Find("DrawElements")
	require.Len(t, draws, 2)
	assert.Equal(t, []any{sgl.TRIANGLES, 2, sgl.UNSIGNED_BYTE, 1}, draws[0].Args)
	assert.Equal(t, []any{sgl.TRIANGLES, 2, sgl.UNSIGNED_INT, 4}, draws[1].Args)
}
