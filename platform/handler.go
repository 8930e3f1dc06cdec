// Package platform adapts window system events to an EventHandler and owns
// the rendering context across suspend and resume.
package platform

import (
	"fmt"

	"github.com/richinsley/pianino/sgl"
)

// PixelFormat is the framebuffer layout of a view.
type PixelFormat struct {
	ColorBits   int // red+green+blue
	AlphaBits   int
	StencilBits int
	DepthBits   int
	Samples     int
	SRGB        bool
}

func (f PixelFormat) String() string {
	return fmt.Sprintf("color %d alpha %d stencil %d depth %d samples %d srgb %t",
		f.ColorBits, f.AlphaBits, f.StencilBits, f.DepthBits, f.Samples, f.SRGB)
}

// ViewConfig is reported to EventHandler.Reconfigure whenever the view is
// created or changes size or scale.
type ViewConfig struct {
	PixelFormat
	// Width and Height are in logical units: framebuffer pixels / DotScale.
	Width, Height float32
	DotScale      float32
}

// EventHandler receives the events of one view. All methods run on the
// thread owning the rendering context.
type EventHandler interface {
	Input(ch rune)
	Key(key Key, pressed bool)
	// Pointer reports the cursor position in framebuffer pixels.
	Pointer(x, y, dotScale float32)
	Button(button Button, pressed bool)
	Scroll(dx, dy float32, pixels bool)
	Touch(x, y float32, phase TouchPhase)
	Hover(inside bool)
	Focus(focused bool)
	FileOver(path string)
	FileOut()
	FileDrop(path string)

	Reconfigure(conf ViewConfig, gl sgl.Context)
	Redraw(gl sgl.Context)
	Destroy()
	Suspend()
	Resume()
}

// BaseHandler implements every EventHandler method as a no-op. Embed it
// and override what is needed.
type BaseHandler struct{}

func (BaseHandler) Input(rune)                          {}
func (BaseHandler) Key(Key, bool)                       {}
func (BaseHandler) Pointer(x, y, dotScale float32)      {}
func (BaseHandler) Button(Button, bool)                 {}
func (BaseHandler) Scroll(dx, dy float32, pixels bool)  {}
func (BaseHandler) Touch(x, y float32, p TouchPhase)    {}
func (BaseHandler) Hover(bool)                          {}
func (BaseHandler) Focus(bool)                          {}
func (BaseHandler) FileOver(string)                     {}
func (BaseHandler) FileOut()                            {}
func (BaseHandler) FileDrop(string)                     {}
func (BaseHandler) Reconfigure(ViewConfig, sgl.Context) {}
func (BaseHandler) Redraw(sgl.Context)                  {}
func (BaseHandler) Destroy()                            {}
func (BaseHandler) Suspend()                            {}
func (BaseHandler) Resume()                             {}
