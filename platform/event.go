package platform

import "github.com/richinsley/pianino/sgl"

// Event is a window system event delivered to Platform.Handle.
type Event interface {
	event()
}

type (
	CloseRequested struct{}

	// Resized carries the new framebuffer size in pixels.
	Resized struct{ Width, Height int }

	ScaleChanged struct{ Scale float32 }

	CharInput struct{ Char rune }

	KeyInput struct {
		Key     Key
		Pressed bool
	}

	// CursorMoved carries the cursor position in framebuffer pixels.
	CursorMoved struct{ X, Y float32 }

	MouseInput struct {
		Button  Button
		Pressed bool
	}

	// MouseWheel carries a scroll delta in lines, or in pixels when Pixels is set.
	MouseWheel struct {
		DX, DY float32
		Pixels bool
	}

	TouchInput struct {
		X, Y  float32
		Phase TouchPhase
	}

	CursorEntered      struct{}
	CursorLeft         struct{}
	Focused            struct{ Focused bool }
	FileHovered        struct{ Path string }
	FileHoverCancelled struct{}
	FileDropped        struct{ Path string }

	Suspended       struct{}
	Resumed         struct{}
	Destroyed       struct{}
	RedrawRequested struct{}
)

func (CloseRequested) event()     {}
func (Resized) event()            {}
func (ScaleChanged) event()       {}
func (CharInput) event()          {}
func (KeyInput) event()           {}
func (CursorMoved) event()        {}
func (MouseInput) event()         {}
func (MouseWheel) event()         {}
func (TouchInput) event()         {}
func (CursorEntered) event()      {}
func (CursorLeft) event()         {}
func (Focused) event()            {}
func (FileHovered) event()        {}
func (FileHoverCancelled) event() {}
func (FileDropped) event()        {}
func (Suspended) event()          {}
func (Resumed) event()            {}
func (Destroyed) event()          {}
func (RedrawRequested) event()    {}

// Surface is a window with a rendering context that can be made current
// and released.
type Surface interface {
	// MakeCurrent makes the context current on the calling thread.
	MakeCurrent() (sgl.Context, error)
	// ReleaseCurrent detaches the context; it stays alive for a later MakeCurrent.
	ReleaseCurrent()
	SwapBuffers() error
	FramebufferSize() (width, height int)
	ContentScale() float32
	PixelFormat(gl sgl.Context) PixelFormat
	// PumpEvents delivers pending events to sink. With wait set it blocks
	// until at least one event arrives.
	PumpEvents(wait bool, sink func(Event))
}
