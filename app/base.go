package app

import (
	"math"

	"github.com/richinsley/pianino/encoder"
	"github.com/richinsley/pianino/inputs"
	"github.com/richinsley/pianino/options"
	"github.com/richinsley/pianino/platform"
	"github.com/richinsley/pianino/renderer"
	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/shader"
)

// Base is the event handler shared by the demos. It creates the scene on
// the first Reconfigure, draws it on every Redraw, applies shader reloads
// and feeds the recorder.
type Base struct {
	platform.BaseHandler

	Opts  *options.Options
	Scene *renderer.Scene

	overlay  bool
	recorder *encoder.Recorder
	watcher  *shader.Watcher
	gl       sgl.Context
	current  bool
	failed   bool

	// framebuffer size in pixels
	Width, Height int

	exit func()
}

// NewBase returns a handler for opts. The shader watcher starts right away
// when a shader directory is configured.
func NewBase(opts *options.Options, overlay bool) *Base {
	b := &Base{Opts: opts, overlay: overlay, exit: func() {}}
	if opts.Record.Output != "" {
		b.recorder = encoder.New(opts.Record)
	}
	if opts.ShaderDir != "" {
		w, err := shader.Watch(opts.ShaderDir, "triangle")
		if err != nil {
			sgl.Logger().Warn("shader directory not watched", "dir", opts.ShaderDir, "err", err)
		} else {
			b.watcher = w
		}
	}
	return b
}

func (b *Base) sceneOptions() renderer.SceneOptions {
	so := renderer.SceneOptions{
		Title:     b.Opts.Title,
		Translate: b.Opts.Translate,
		Overlay:   b.overlay,
		TextStyle: inputs.DefaultTextStyle,
	}
	if b.Opts.ShaderDir != "" {
		src, err := shader.LoadDir(b.Opts.ShaderDir, "triangle")
		if err != nil {
			sgl.Logger().Warn("using built-in triangle shaders", "err", err)
		} else {
			so.Triangle = src
		}
	}
	return so
}

func (b *Base) Reconfigure(conf platform.ViewConfig, gl sgl.Context) {
	b.gl = gl
	b.current = true
	b.Width = int(math.Round(float64(conf.Width * conf.DotScale)))
	b.Height = int(math.Round(float64(conf.Height * conf.DotScale)))
	sgl.Logger().Info("view reconfigured", "width", conf.Width, "height", conf.Height, "scale", conf.DotScale)

	if b.Scene == nil && !b.failed {
		scene, err := renderer.LoadScene(gl, b.sceneOptions())
		if err != nil {
			sgl.Logger().Error("failed to load scene", "err", err)
			b.failed = true
			b.exit()
			return
		}
		b.Scene = scene
	}
	if b.Scene != nil {
		b.Scene.Resize(gl, b.Width, b.Height)
	}
	if b.recorder != nil && !b.recorder.Started() {
		if err := b.recorder.Start(b.Width, b.Height); err != nil {
			sgl.Logger().Error("failed to start recording", "err", err)
			b.recorder = nil
		}
	}
}

func (b *Base) Redraw(gl sgl.Context) {
	if b.Scene == nil {
		return
	}
	if b.watcher != nil {
		if src, ok := b.watcher.Poll(); ok {
			b.Scene.Reload(gl, src)
		}
	}
	gl.Clear(sgl.COLOR_BUFFER_BIT | sgl.STENCIL_BUFFER_BIT)
	b.Scene.Render(gl)

	if b.recorder != nil && b.recorder.Started() {
		if err := b.recorder.Capture(gl, b.Width, b.Height); err != nil {
			sgl.Logger().Error("frame capture failed", "err", err)
		}
		if b.recorder.Done() {
			sgl.Logger().Info("frame limit reached, exiting", "frames", b.recorder.Captured())
			b.exit()
		}
	}
}

func (b *Base) Suspend() {
	b.current = false
	sgl.Logger().Info("view suspended")
}

func (b *Base) Resume() {
	b.current = true
	sgl.Logger().Info("view resumed")
}

// Destroy releases the scene while the context is still current, then
// stops the recorder and the watcher.
func (b *Base) Destroy() {
	if b.current && b.Scene != nil {
		b.Scene.Destroy(b.gl)
	}
	b.Scene = nil
	if b.recorder != nil {
		if err := b.recorder.Close(); err != nil {
			sgl.Logger().Error("recording failed", "err", err)
		}
	}
	if b.watcher != nil {
		b.watcher.Close()
	}
}

// PixelToNDC converts a framebuffer pixel position to normalized device
// coordinates.
func (b *Base) PixelToNDC(x, y float32) (float32, float32) {
	if b.Width <= 0 || b.Height <= 0 {
		return 0, 0
	}
	return 2*x/float32(b.Width) - 1, 1 - 2*y/float32(b.Height)
}
