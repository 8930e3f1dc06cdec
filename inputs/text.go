package inputs

import (
	"image"
	"image/color"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle controls RasterizeText.
type TextStyle struct {
	Color   color.Color
	Scale   int // integer magnification of the 7x13 glyphs
	Padding int // transparent border in unscaled pixels
}

// DefaultTextStyle is white text at twice the glyph size.
var DefaultTextStyle = TextStyle{Color: color.White, Scale: 2, Padding: 2}

// RasterizeText draws text, one line per '\n', on a transparent RGBA image.
// The result is at least one glyph cell in size so an empty buffer still
// yields a valid texture.
func RasterizeText(text string, style TextStyle) *image.RGBA {
	face := basicfont.Face7x13
	if style.Scale < 1 {
		style.Scale = 1
	}
	if style.Color == nil {
		style.Color = color.White
	}
	lines := strings.Split(text, "\n")
	m := face.Metrics()
	lineHeight := m.Height.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	if width < face.Advance {
		width = face.Advance
	}
	pad := style.Padding
	src := image.NewRGBA(image.Rect(0, 0, width+2*pad, lineHeight*len(lines)+2*pad))

	d := &font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(style.Color),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(pad, pad+i*lineHeight+m.Ascent.Ceil())
		d.DrawString(line)
	}
	if style.Scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*style.Scale, b.Dy()*style.Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
