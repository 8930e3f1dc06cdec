package sgl

import (
	"fmt"
	"image/color"
)

// AttribKind describes the shape of one vertex attribute: its component
// count, element type and how the shader receives it.
type AttribKind uint8

const (
	Float AttribKind = iota
	Vec2
	Vec3
	Vec4
	Byte1
	Byte2
	Byte3
	Byte4
	UByte1
	UByte2
	UByte3
	UByte4
	Short1
	Short2
	Short3
	Short4
	UShort1
	UShort2
	UShort3
	UShort4
	// UByte4Norm feeds four unsigned bytes to a float vec4 scaled to [0, 1].
	UByte4Norm
)

type attribInfo struct {
	name       string
	typ        Enum
	components int
	elemSize   int
	integer    bool
	normalized bool
}

var attribKinds = [...]attribInfo{
	Float:      {"float", FLOAT, 1, 4, false, false},
	Vec2:       {"vec2", FLOAT, 2, 4, false, false},
	Vec3:       {"vec3", FLOAT, 3, 4, false, false},
	Vec4:       {"vec4", FLOAT, 4, 4, false, false},
	Byte1:      {"byte", BYTE, 1, 1, true, false},
	Byte2:      {"byte2", BYTE, 2, 1, true, false},
	Byte3:      {"byte3", BYTE, 3, 1, true, false},
	Byte4:      {"byte4", BYTE, 4, 1, true, false},
	UByte1:     {"ubyte", UNSIGNED_BYTE, 1, 1, true, false},
	UByte2:     {"ubyte2", UNSIGNED_BYTE, 2, 1, true, false},
	UByte3:     {"ubyte3", UNSIGNED_BYTE, 3, 1, true, false},
	UByte4:     {"ubyte4", UNSIGNED_BYTE, 4, 1, true, false},
	Short1:     {"short", SHORT, 1, 2, true, false},
	Short2:     {"short2", SHORT, 2, 2, true, false},
	Short3:     {"short3", SHORT, 3, 2, true, false},
	Short4:     {"short4", SHORT, 4, 2, true, false},
	UShort1:    {"ushort", UNSIGNED_SHORT, 1, 2, true, false},
	UShort2:    {"ushort2", UNSIGNED_SHORT, 2, 2, true, false},
	UShort3:    {"ushort3", UNSIGNED_SHORT, 3, 2, true, false},
	UShort4:    {"ushort4", UNSIGNED_SHORT, 4, 2, true, false},
	UByte4Norm: {"ubyte4n", UNSIGNED_BYTE, 4, 1, false, true},
}

func (k AttribKind) info() attribInfo {
	if int(k) >= len(attribKinds) {
		panic(fmt.Sprintf("sgl: invalid attribute kind %d", k))
	}
	return attribKinds[k]
}

func (k AttribKind) String() string { return k.info().name }

// Components returns the number of components of the kind.
func (k AttribKind) Components() int { return k.info().components }

// Type returns the GL element type of the kind.
func (k AttribKind) Type() Enum { return k.info().typ }

// Size returns the byte width of one value of the kind.
func (k AttribKind) Size() int {
	i := k.info()
	return i.components * i.elemSize
}

// AttribValue is the set of Go value shapes that map to an AttribKind.
type AttribValue interface {
	float32 | [2]float32 | [3]float32 | [4]float32 |
		int8 | [2]int8 | [3]int8 | [4]int8 |
		uint8 | [2]uint8 | [3]uint8 | [4]uint8 |
		int16 | [2]int16 | [3]int16 | [4]int16 |
		uint16 | [2]uint16 | [3]uint16 | [4]uint16 |
		color.RGBA | color.NRGBA
}

// KindOf returns the attribute kind of T.
func KindOf[T AttribValue]() AttribKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float
	case [2]float32:
		return Vec2
	case [3]float32:
		return Vec3
	case [4]float32:
		return Vec4
	case int8:
		return Byte1
	case [2]int8:
		return Byte2
	case [3]int8:
		return Byte3
	case [4]int8:
		return Byte4
	case uint8:
		return UByte1
	case [2]uint8:
		return UByte2
	case [3]uint8:
		return UByte3
	case [4]uint8:
		return UByte4
	case int16:
		return Short1
	case [2]int16:
		return Short2
	case [3]int16:
		return Short3
	case [4]int16:
		return Short4
	case uint16:
		return UShort1
	case [2]uint16:
		return UShort2
	case [3]uint16:
		return UShort3
	case [4]uint16:
		return UShort4
	case color.RGBA, color.NRGBA:
		return UByte4Norm
	}
	panic("unreachable")
}

// Attrib is a resolved vertex attribute of a program.
type Attrib struct {
	Loc  AttribLoc
	Kind AttribKind
}

// Attribs is an ordered set of attributes read from one interleaved buffer.
type Attribs []Attrib

// Layout returns the vertex stride and the byte offset of every attribute.
// Offsets accumulate in declaration order starting at zero.
func (as Attribs) Layout() (stride int, offsets []int) {
	offsets = make([]int, len(as))
	for i, a := range as {
		offsets[i] = stride
		stride += a.Kind.Size()
	}
	return stride, offsets
}

// Stride returns the sum of the byte widths of all attributes.
func (as Attribs) Stride() int {
	stride, _ := as.Layout()
	return stride
}

// Enable enables every resolved attribute and points it at the currently
// bound array buffer. Unresolved attributes are skipped but still occupy
// their bytes in the layout.
func (as Attribs) Enable(gl Context) {
	stride, offsets := as.Layout()
	for i, a := range as {
		if !a.Loc.Valid() {
			continue
		}
		info := a.Kind.info()
		gl.EnableVertexAttribArray(a.Loc)
		if info.integer {
			gl.VertexAttribIPointer(a.Loc, info.components, info.typ, stride, offsets[i])
		} else {
			gl.VertexAttribPointer(a.Loc, info.components, info.typ, info.normalized, stride, offsets[i])
		}
	}
}

// Disable disables every resolved attribute.
func (as Attribs) Disable(gl Context) {
	for _, a := range as {
		if a.Loc.Valid() {
			gl.DisableVertexAttribArray(a.Loc)
		}
	}
}
