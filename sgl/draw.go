package sgl

import (
	"fmt"
	"unsafe"
)

// DrawMode is the primitive assembled by a draw call.
type DrawMode uint8

const (
	Points DrawMode = iota
	LineStrip
	LineLoop
	Lines
	TriangleStrip
	TriangleFan
	Triangles
)

func (m DrawMode) enum() Enum {
	switch m {
	case Points:
		return POINTS
	case LineStrip:
		return LINE_STRIP
	case LineLoop:
		return LINE_LOOP
	case Lines:
		return LINES
	case TriangleStrip:
		return TRIANGLE_STRIP
	case TriangleFan:
		return TRIANGLE_FAN
	default:
		return TRIANGLES
	}
}

// Drawable is geometry that can be drawn in whole or in part.
type Drawable interface {
	// Len is the number of vertices (or indices) a full draw consumes.
	Len() int
	drawPart(gl Context, mode DrawMode, start, count int)
}

// Draw draws all of d.
func Draw(gl Context, d Drawable, mode DrawMode) {
	d.drawPart(gl, mode, 0, d.Len())
}

// DrawRange draws the elements [start, end) of d. It panics, before any GL
// call, if the range is not within d.
func DrawRange(gl Context, d Drawable, mode DrawMode, start, end int) {
	n := d.Len()
	if start < 0 || start > n {
		panic(fmt.Sprintf("sgl: draw range start %d exceeds length %d", start, n))
	}
	if end > n {
		panic(fmt.Sprintf("sgl: draw range end %d exceeds length %d", end, n))
	}
	if end < start {
		panic(fmt.Sprintf("sgl: draw range end %d precedes start %d", end, start))
	}
	d.drawPart(gl, mode, start, end-start)
}

// Arrays draws vertices in buffer order.
type Arrays[T any] struct {
	Vertices *Buffer[T]
	Attribs  Attribs
}

func (a *Arrays[T]) Len() int { return a.Vertices.Len() }

func (a *Arrays[T]) drawPart(gl Context, mode DrawMode, start, count int) {
	a.Vertices.Bind(gl)
	a.Attribs.Enable(gl)
	gl.DrawArrays(mode.enum(), start, count)
	a.Attribs.Disable(gl)
	a.Vertices.Unbind(gl)
}

// Draw draws all vertices.
func (a *Arrays[T]) Draw(gl Context, mode DrawMode) { Draw(gl, a, mode) }

// Elements draws vertices selected by an index buffer.
type Elements[T any, I Index] struct {
	Vertices *Buffer[T]
	Attribs  Attribs
	Indices  *Buffer[I]
}

func (e *Elements[T, I]) Len() int { return e.Indices.Len() }

func (e *Elements[T, I]) drawPart(gl Context, mode DrawMode, start, count int) {
	var zero I
	e.Vertices.Bind(gl)
	e.Attribs.Enable(gl)
	e.Indices.Bind(gl)
	gl.DrawElements(mode.enum(), count, indexType[I](), start*int(unsafe.Sizeof(zero)))
	e.Indices.Unbind(gl)
	e.Attribs.Disable(gl)
	e.Vertices.Unbind(gl)
}

// Draw draws all indexed vertices.
func (e *Elements[T, I]) Draw(gl Context, mode DrawMode) { Draw(gl, e, mode) }
