// Command pianino is a text and input sandbox: typed characters are shown
// in an overlay, every event is logged and the triangle follows the cursor.
package main

import (
	"runtime"

	"github.com/richinsley/pianino/app"
	"github.com/richinsley/pianino/platform"
	"github.com/richinsley/pianino/sgl"
)

func init() {
	runtime.LockOSThread()
}

type pianino struct {
	*app.Base
	editor editor
	shown  bool
}

func newPianino(b *app.Base) platform.EventHandler {
	return &pianino{Base: b, editor: editor{text: []rune("Text")}}
}

func (p *pianino) Input(ch rune) {
	sgl.Logger().Debug("input", "char", string(ch), "code", int(ch))
	p.editor.input(ch)
}

func (p *pianino) Key(key platform.Key, pressed bool) {
	sgl.Logger().Debug("key", "key", key.String(), "pressed", pressed)
	p.editor.key(key, pressed)
}

func (p *pianino) Pointer(x, y, dotScale float32) {
	sgl.Logger().Debug("pointer", "x", x, "y", y, "scale", dotScale)
	if p.Scene != nil {
		p.Scene.Demo.SetOffset(p.PixelToNDC(x, y))
	}
}

func (p *pianino) Button(button platform.Button, pressed bool) {
	sgl.Logger().Debug("button", "button", button.String(), "pressed", pressed)
}

func (p *pianino) Scroll(dx, dy float32, pixels bool) {
	sgl.Logger().Debug("scroll", "dx", dx, "dy", dy, "pixels", pixels)
}

func (p *pianino) Touch(x, y float32, phase platform.TouchPhase) {
	sgl.Logger().Debug("touch", "x", x, "y", y, "phase", phase.String())
}

func (p *pianino) Hover(inside bool) { sgl.Logger().Debug("hover", "inside", inside) }

func (p *pianino) Focus(focused bool) { sgl.Logger().Debug("focus", "focused", focused) }

func (p *pianino) FileOver(path string) { sgl.Logger().Debug("file over", "path", path) }

func (p *pianino) FileOut() { sgl.Logger().Debug("file out") }

func (p *pianino) FileDrop(path string) { sgl.Logger().Debug("file drop", "path", path) }

func (p *pianino) Redraw(gl sgl.Context) {
	if p.Scene != nil && p.Scene.Overlay != nil && (p.editor.dirty || !p.shown) {
		p.Scene.Overlay.SetText(gl, p.editor.String())
		p.editor.dirty = false
		p.shown = true
	}
	p.Base.Redraw(gl)
}

func (p *pianino) Destroy() {
	p.Base.Destroy()
	sgl.Logger().Info("good luck...")
}

func main() {
	app.Main(app.Config{
		Name:       "pianino",
		Title:      "Pianino",
		Usage:      "type text, move the pointer, watch the event log",
		Overlay:    true,
		NewHandler: newPianino,
	})
}
