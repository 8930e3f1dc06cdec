package sgl

import (
	"fmt"
	"unsafe"
)

// BufferTarget is the binding point of a buffer.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) enum() Enum {
	if t == ElementArrayBuffer {
		return ELEMENT_ARRAY_BUFFER
	}
	return ARRAY_BUFFER
}

// Index is the set of element index types.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

func indexType[I Index]() Enum {
	var zero I
	switch unsafe.Sizeof(zero) {
	case 1:
		return UNSIGNED_BYTE
	case 2:
		return UNSIGNED_SHORT
	default:
		return UNSIGNED_INT
	}
}

// Buffer owns a GPU buffer holding elements of type T. Its length is the
// element count of the most recent Load or Resize.
type Buffer[T any] struct {
	id     BufferID
	target BufferTarget
	length int
}

// NewBuffer creates an empty buffer for the given target.
func NewBuffer[T any](gl Context, target BufferTarget) (*Buffer[T], error) {
	id := gl.CreateBuffer()
	if !id.Valid() {
		return nil, fmt.Errorf("buffer: %w", ErrCreate)
	}
	return &Buffer[T]{id: id, target: target}, nil
}

// NewVertexBuffer creates an array buffer whose elements are laid out by
// attribs. T must be exactly one vertex wide.
func NewVertexBuffer[T any](gl Context, attribs Attribs) (*Buffer[T], error) {
	var zero T
	if size, stride := int(unsafe.Sizeof(zero)), attribs.Stride(); size != stride {
		return nil, fmt.Errorf("vertex type is %d bytes but attributes need a stride of %d", size, stride)
	}
	return NewBuffer[T](gl, ArrayBuffer)
}

// NewIndexBuffer creates an element array buffer.
func NewIndexBuffer[I Index](gl Context) (*Buffer[I], error) {
	return NewBuffer[I](gl, ElementArrayBuffer)
}

// ID returns the underlying handle.
func (b *Buffer[T]) ID() BufferID { return b.id }

// Len returns the recorded element count.
func (b *Buffer[T]) Len() int { return b.length }

// Bind binds the buffer to its target.
func (b *Buffer[T]) Bind(gl Context) {
	gl.BindBuffer(b.target.enum(), b.id)
}

// Unbind clears the buffer's target.
func (b *Buffer[T]) Unbind(gl Context) {
	gl.BindBuffer(b.target.enum(), 0)
}

// Resize allocates uninitialized storage for count elements.
func (b *Buffer[T]) Resize(gl Context, count int) {
	if count < 0 {
		panic(fmt.Sprintf("sgl: negative buffer size %d", count))
	}
	var zero T
	b.length = count
	b.Bind(gl)
	gl.BufferData(b.target.enum(), count*int(unsafe.Sizeof(zero)), nil, STATIC_DRAW)
	b.Unbind(gl)
}

// Load uploads data for drawing many times.
func (b *Buffer[T]) Load(gl Context, data []T) {
	b.load(gl, data, STATIC_DRAW)
}

// LoadDynamic uploads data that is expected to be replaced often.
func (b *Buffer[T]) LoadDynamic(gl Context, data []T) {
	b.load(gl, data, DYNAMIC_DRAW)
}

func (b *Buffer[T]) load(gl Context, data []T, usage Enum) {
	bytes := asBytes(data)
	b.length = len(data)
	b.Bind(gl)
	gl.BufferData(b.target.enum(), len(bytes), bytes, usage)
	b.Unbind(gl)
}

// Delete releases the buffer. Further calls are no-ops.
func (b *Buffer[T]) Delete(gl Context) {
	if !b.id.Valid() {
		return
	}
	gl.DeleteBuffer(b.id)
	b.id = 0
	b.length = 0
}

func asBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(zero)))
}
