package platform

import (
	"fmt"

	"github.com/richinsley/pianino/sgl"
)

// State is the lifecycle stage of a Platform's view.
type State uint8

const (
	// StateNoContext: no view was created yet.
	StateNoContext State = iota
	// StateCurrent: the view exists and its context is current.
	StateCurrent
	// StateSuspended: the view is torn down; the context is kept but not current.
	StateSuspended
	// StateDestroyed: the platform is shutting down.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateNoContext:
		return "no-context"
	case StateCurrent:
		return "current"
	case StateSuspended:
		return "suspended"
	}
	return "destroyed"
}

type view struct {
	gl            sgl.Context
	format        PixelFormat
	width, height int
	scale         float32
	reconfigure   bool
}

// Platform dispatches events from a Surface to an EventHandler.
type Platform struct {
	surface Surface
	handler EventHandler
	state   State
	view    *view
	exit    bool
}

// New returns a platform without a view. Run, or a Resumed event, creates
// it.
func New(surface Surface, handler EventHandler) *Platform {
	return &Platform{surface: surface, handler: handler}
}

// State returns the current lifecycle stage.
func (p *Platform) State() State { return p.state }

// Exiting reports whether the event loop has been asked to stop.
func (p *Platform) Exiting() bool { return p.exit }

// Exit asks the event loop to stop after the current event.
func (p *Platform) Exit() { p.exit = true }

// Run creates the view and pumps events until exit is requested. Every
// iteration ends with a redraw. The handler's Destroy is called before Run
// returns.
func (p *Platform) Run() error {
	if err := p.initView(); err != nil {
		return fmt.Errorf("view init: %w", err)
	}
	for !p.exit {
		// Without a view there is nothing to draw; block instead of spinning.
		p.surface.PumpEvents(p.view == nil, p.Handle)
		if p.exit {
			break
		}
		p.Handle(RedrawRequested{})
	}
	p.Handle(Destroyed{})
	return nil
}

// Handle processes one event.
func (p *Platform) Handle(ev Event) {
	if p.state == StateDestroyed {
		return
	}
	switch ev := ev.(type) {
	case CloseRequested:
		p.exit = true
	case Suspended:
		p.suspend()
	case Resumed:
		p.resume()
	case Destroyed:
		p.destroy()
	case RedrawRequested:
		p.redraw()
	default:
		if p.view != nil {
			p.windowEvent(ev)
		}
	}
}

func (p *Platform) windowEvent(ev Event) {
	h := p.handler
	switch ev := ev.(type) {
	case Resized:
		p.view.width, p.view.height = ev.Width, ev.Height
		p.view.reconfigure = true
	case ScaleChanged:
		p.view.scale = ev.Scale
		p.view.reconfigure = true
	case CharInput:
		h.Input(ev.Char)
	case KeyInput:
		if ev.Key == KeyEscape {
			if ev.Pressed {
				sgl.Logger().Info("escape pressed, exiting")
				p.exit = true
			}
			return
		}
		h.Key(ev.Key, ev.Pressed)
	case CursorMoved:
		h.Pointer(ev.X, ev.Y, p.view.scale)
	case MouseInput:
		h.Button(ev.Button, ev.Pressed)
	case MouseWheel:
		h.Scroll(ev.DX, ev.DY, ev.Pixels)
	case TouchInput:
		h.Touch(ev.X, ev.Y, ev.Phase)
	case CursorEntered:
		h.Hover(true)
	case CursorLeft:
		h.Hover(false)
	case Focused:
		h.Focus(ev.Focused)
	case FileHovered:
		h.FileOver(ev.Path)
	case FileHoverCancelled:
		h.FileOut()
	case FileDropped:
		h.FileDrop(ev.Path)
	}
}

func (p *Platform) initView() error {
	gl, err := p.surface.MakeCurrent()
	if err != nil {
		return err
	}
	log := sgl.Logger()
	log.Info("GL context current",
		"vendor", gl.GetString(sgl.VENDOR),
		"renderer", gl.GetString(sgl.RENDERER),
		"version", gl.GetString(sgl.VERSION),
		"glsl", gl.GetString(sgl.SHADING_LANGUAGE_VERSION))
	format := p.surface.PixelFormat(gl)
	log.Info("pixel format", "format", format.String())

	gl.ClearColor(0.5, 0.5, 0.5, 1)
	gl.ClearStencil(0)
	gl.StencilMask(^uint32(0))

	w, h := p.surface.FramebufferSize()
	scale := p.surface.ContentScale()
	if scale <= 0 {
		scale = 1
	}
	p.view = &view{gl: gl, format: format, width: w, height: h, scale: scale, reconfigure: true}
	p.state = StateCurrent
	return nil
}

func (p *Platform) teardown() {
	p.view = nil
	p.surface.ReleaseCurrent()
}

func (p *Platform) suspend() {
	if p.view == nil {
		return
	}
	p.handler.Suspend()
	p.teardown()
	p.state = StateSuspended
}

func (p *Platform) resume() {
	if p.view != nil {
		return
	}
	if err := p.initView(); err != nil {
		sgl.Logger().Error("view init error", "err", err)
		return
	}
	p.handler.Resume()
}

func (p *Platform) destroy() {
	p.handler.Destroy()
	if p.view != nil {
		p.teardown()
	}
	p.state = StateDestroyed
	p.exit = true
}

func (p *Platform) redraw() {
	v := p.view
	if v == nil {
		return
	}
	if v.reconfigure {
		v.reconfigure = false
		v.gl.Viewport(0, 0, v.width, v.height)
		p.handler.Reconfigure(ViewConfig{
			PixelFormat: v.format,
			Width:       float32(v.width) / v.scale,
			Height:      float32(v.height) / v.scale,
			DotScale:    v.scale,
		}, v.gl)
	}
	p.handler.Redraw(v.gl)
	if err := p.surface.SwapBuffers(); err != nil {
		sgl.Logger().Error("swap buffers", "err", err)
	}
}
