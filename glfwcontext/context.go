package glfwcontext

import (
	"fmt"
	"image"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/pianino/gles"
	"github.com/richinsley/pianino/inputs"
	"github.com/richinsley/pianino/options"
	"github.com/richinsley/pianino/platform"
	"github.com/richinsley/pianino/sgl"
)

// Context is a glfw window with an OpenGL ES context. It implements
// platform.Surface.
type Context struct {
	window *glfw.Window
	srgb   bool
	sink   func(platform.Event)
}

var _ platform.Surface = (*Context)(nil)

// New creates a window configured by opts. The context is not made
// current; platform.Platform does that when it creates the view.
func New(opts *options.Options) (*Context, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLESMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLESMinor)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, opts.Samples)
	glfw.WindowHint(glfw.DepthBits, opts.DepthBits)
	glfw.WindowHint(glfw.StencilBits, opts.StencilBits)
	if opts.SRGB {
		glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	c := &Context{window: win, srgb: opts.SRGB}

	if opts.Icon != "" {
		if img, err := inputs.LoadImage(opts.Icon); err != nil {
			sgl.Logger().Warn("window icon not loaded", "path", opts.Icon, "err", err)
		} else {
			win.SetIcon([]image.Image{img})
		}
	}

	if opts.VSync {
		win.MakeContextCurrent()
		glfw.SwapInterval(1)
		glfw.DetachCurrentContext()
	}

	c.registerCallbacks()
	return c, nil
}

func (c *Context) emit(ev platform.Event) {
	if c.sink != nil {
		c.sink(ev)
	}
}

func (c *Context) registerCallbacks() {
	w := c.window
	w.SetCloseCallback(func(_ *glfw.Window) {
		c.emit(platform.CloseRequested{})
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		c.emit(platform.Resized{Width: width, Height: height})
	})
	w.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		c.emit(platform.ScaleChanged{Scale: x})
	})
	w.SetCharCallback(func(_ *glfw.Window, char rune) {
		c.emit(platform.CharInput{Char: char})
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		c.emit(platform.KeyInput{Key: mapKey(key), Pressed: action != glfw.Release})
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := c.pixelRatio()
		c.emit(platform.CursorMoved{X: float32(x * sx), Y: float32(y * sy)})
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		c.emit(platform.MouseInput{Button: platform.Button(button), Pressed: action == glfw.Press})
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		c.emit(platform.MouseWheel{DX: float32(xoff), DY: float32(yoff)})
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			c.emit(platform.CursorEntered{})
		} else {
			c.emit(platform.CursorLeft{})
		}
	})
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		c.emit(platform.Focused{Focused: focused})
	})
	w.SetDropCallback(func(_ *glfw.Window, names []string) {
		for _, name := range names {
			c.emit(platform.FileDropped{Path: name})
		}
	})
	// A minimized window has nothing to present; treat it as a suspended view.
	w.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			c.emit(platform.Suspended{})
		} else {
			c.emit(platform.Resumed{})
		}
	})
}

// pixelRatio converts window coordinates to framebuffer pixels.
func (c *Context) pixelRatio() (float64, float64) {
	fbWidth, fbHeight := c.window.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	if winWidth <= 0 || winHeight <= 0 {
		return 1, 1
	}
	return float64(fbWidth) / float64(winWidth), float64(fbHeight) / float64(winHeight)
}

// MakeCurrent makes the window's context current on the calling thread and
// loads the GL entry points on first use.
func (c *Context) MakeCurrent() (gl sgl.Context, err error) {
	defer func() {
		// go-gl/glfw reports context errors by panicking.
		if r := recover(); r != nil {
			gl, err = nil, fmt.Errorf("make context current: %v", r)
		}
	}()
	c.window.MakeContextCurrent()
	if err := gles.Init(glfw.GetProcAddress); err != nil {
		return nil, fmt.Errorf("failed to initialize GLES bindings: %w", err)
	}
	return gles.Context{}, nil
}

// ReleaseCurrent detaches the context from the calling thread.
func (c *Context) ReleaseCurrent() {
	glfw.DetachCurrentContext()
}

func (c *Context) SwapBuffers() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("swap buffers: %v", r)
		}
	}()
	c.window.SwapBuffers()
	return nil
}

func (c *Context) FramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) ContentScale() float32 {
	x, _ := c.window.GetContentScale()
	return x
}

// PixelFormat queries the bit depths of the current default framebuffer.
func (c *Context) PixelFormat(gl sgl.Context) platform.PixelFormat {
	return platform.PixelFormat{
		ColorBits:   gl.GetInteger(sgl.RED_BITS) + gl.GetInteger(sgl.GREEN_BITS) + gl.GetInteger(sgl.BLUE_BITS),
		AlphaBits:   gl.GetInteger(sgl.ALPHA_BITS),
		StencilBits: gl.GetInteger(sgl.STENCIL_BITS),
		DepthBits:   gl.GetInteger(sgl.DEPTH_BITS),
		Samples:     gl.GetInteger(sgl.SAMPLES),
		SRGB:        c.srgb,
	}
}

// PumpEvents processes pending window events, blocking for one when wait
// is set.
func (c *Context) PumpEvents(wait bool, sink func(platform.Event)) {
	c.sink = sink
	if wait {
		glfw.WaitEvents()
	} else {
		glfw.PollEvents()
	}
	c.sink = nil
	if c.window.ShouldClose() {
		sink(platform.CloseRequested{})
	}
}

// Close destroys the window.
func (c *Context) Close() {
	c.window.Destroy()
}

// InitGraphics initializes glfw. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	sgl.Logger().Info("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts glfw down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	sgl.Logger().Info("GLFW terminated")
}
