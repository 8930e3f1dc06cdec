// Package inputs turns image files and text into pixel data for textures.
package inputs

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/richinsley/pianino/sgl"
)

// LoadImage decodes a PNG, JPEG, BMP or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// ToRGBA converts img to a tightly packed RGBA image with its origin at
// (0, 0). With flipY the rows are reversed, so the first row uploaded is
// the bottom of the picture as GL expects.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if flipY {
		rgba = vflip(rgba)
	}
	return rgba
}

func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()
	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// NewImageTexture uploads img to a new RGBA8888 2D texture.
func NewImageTexture(gl sgl.Context, img image.Image, flipY bool) (*sgl.Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	tex, err := sgl.NewTexture(gl, sgl.Texture2D, sgl.RGBA8888)
	if err != nil {
		return nil, err
	}
	tex.LoadImage(gl, ToRGBA(img, flipY))
	return tex, nil
}
