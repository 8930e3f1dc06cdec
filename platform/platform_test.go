package platform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/sgl/sgltest"
)

type fakeSurface struct {
	gl       *sgltest.GL
	w, h     int
	scale    float32
	failNext int
	current  bool
	swaps    int
	releases int
	batches  [][]Event
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{gl: sgltest.New(), w: 800, h: 600, scale: 1}
}

func (s *fakeSurface) MakeCurrent() (sgl.Context, error) {
	if s.failNext > 0 {
		s.failNext--
		return nil, errors.New("context lost")
	}
	s.current = true
	return s.gl, nil
}

func (s *fakeSurface) ReleaseCurrent() {
	s.current = false
	s.releases++
}

func (s *fakeSurface) SwapBuffers() error {
	s.swaps++
	return nil
}

func (s *fakeSurface) FramebufferSize() (int, int) { return s.w, s.h }
func (s *fakeSurface) ContentScale() float32       { return s.scale }

func (s *fakeSurface) PixelFormat(sgl.Context) PixelFormat {
	return PixelFormat{ColorBits: 24, AlphaBits: 8, StencilBits: 8, DepthBits: 24, Samples: 4}
}

func (s *fakeSurface) PumpEvents(wait bool, sink func(Event)) {
	if len(s.batches) == 0 {
		sink(CloseRequested{})
		return
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	for _, ev := range batch {
		sink(ev)
	}
}

// recorder logs every handler call as a string.
type recorder struct {
	calls   []string
	configs []ViewConfig
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Input(ch rune)                       { r.add("input %q", ch) }
func (r *recorder) Key(k Key, pressed bool)             { r.add("key %s %t", k, pressed) }
func (r *recorder) Pointer(x, y, s float32)             { r.add("pointer %g %g %g", x, y, s) }
func (r *recorder) Button(b Button, pressed bool)       { r.add("button %s %t", b, pressed) }
func (r *recorder) Scroll(dx, dy float32, pixels bool)  { r.add("scroll %g %g %t", dx, dy, pixels) }
func (r *recorder) Touch(x, y float32, p TouchPhase)    { r.add("touch %g %g %s", x, y, p) }
func (r *recorder) Hover(in bool)                       { r.add("hover %t", in) }
func (r *recorder) Focus(f bool)                        { r.add("focus %t", f) }
func (r *recorder) FileOver(path string)                { r.add("fileover %s", path) }
func (r *recorder) FileOut()                            { r.add("fileout") }
func (r *recorder) FileDrop(path string)                { r.add("filedrop %s", path) }
func (r *recorder) Redraw(gl sgl.Context)               { r.add("redraw") }
func (r *recorder) Destroy()                            { r.add("destroy") }
func (r *recorder) Suspend()                            { r.add("suspend") }
func (r *recorder) Resume()                             { r.add("resume") }
func (r *recorder) Reconfigure(c ViewConfig, gl sgl.Context) {
	r.configs = append(r.configs, c)
	r.add("reconfigure")
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func started(t *testing.T) (*Platform, *fakeSurface, *recorder) {
	t.Helper()
	s := newFakeSurface()
	h := &recorder{}
	p := New(s, h)
	p.Handle(Resumed{})
	require.Equal(t, StateCurrent, p.State())
	h.calls = nil
	return p, s, h
}

func TestEventTranslation(t *testing.T) {
	p, _, h := started(t)
	events := []Event{
		CharInput{Char: 'x'},
		KeyInput{Key: KeyA, Pressed: true},
		CursorMoved{X: 10, Y: 20},
		MouseInput{Button: ButtonRight, Pressed: false},
		MouseWheel{DX: 0, DY: -1},
		MouseWheel{DX: 3, DY: 4, Pixels: true},
		TouchInput{X: 1, Y: 2, Phase: TouchCancelled},
		CursorEntered{},
		CursorLeft{},
		Focused{Focused: true},
		FileHovered{Path: "/tmp/a.png"},
		FileHoverCancelled{},
		FileDropped{Path: "/tmp/b.png"},
	}
	for _, ev := range events {
		p.Handle(ev)
	}
	assert.Equal(t, []string{
		"input 'x'",
		"key A true",
		"pointer 10 20 1",
		"button Right false",
		"scroll 0 -1 false",
		"scroll 3 4 true",
		"touch 1 2 Cancelled",
		"hover true",
		"hover false",
		"focus true",
		"fileover /tmp/a.png",
		"fileout",
		"filedrop /tmp/b.png",
	}, h.calls)
	assert.False(t, p.Exiting())
}

func TestEscapeIsIntercepted(t *testing.T) {
	p, _, h := started(t)
	p.Handle(KeyInput{Key: KeyEscape, Pressed: true})
	p.Handle(KeyInput{Key: KeyEscape, Pressed: false})
	assert.Empty(t, h.calls)
	assert.True(t, p.Exiting())
}

func TestCloseRequested(t *testing.T) {
	p, _, _ := started(t)
	p.Handle(CloseRequested{})
	assert.True(t, p.Exiting())
}

func TestCloseRequestedWhileSuspended(t *testing.T) {
	p, _, _ := started(t)
	p.Handle(Suspended{})
	p.Handle(CloseRequested{})
	assert.True(t, p.Exiting())
}

func TestFirstRedrawReconfigures(t *testing.T) {
	p, s, h := started(t)
	p.Handle(RedrawRequested{})
	p.Handle(RedrawRequested{})

	assert.Equal(t, []string{"reconfigure", "redraw", "redraw"}, h.calls)
	require.Len(t, h.configs, 1)
	assert.Equal(t, float32(800), h.configs[0].Width)
	assert.Equal(t, float32(600), h.configs[0].Height)
	assert.Equal(t, 8, h.configs[0].StencilBits)
	assert.Equal(t, 2, s.swaps)
}

func TestResizeReconfigures(t *testing.T) {
	p, s, h := started(t)
	p.Handle(RedrawRequested{})

	p.Handle(Resized{Width: 1024, Height: 300})
	p.Handle(Resized{Width: 640, Height: 480})
	p.Handle(RedrawRequested{})

	require.Len(t, h.configs, 2)
	assert.Equal(t, float32(640), h.configs[1].Width)
	assert.Equal(t, float32(480), h.configs[1].Height)
	assert.Equal(t, [4]int{0, 0, 640, 480}, s.gl.LastViewport())
	assert.Equal(t, []string{"reconfigure", "redraw", "reconfigure", "redraw"}, h.calls)
}

func TestScaleChangedReportsLogicalSize(t *testing.T) {
	p, _, h := started(t)
	p.Handle(ScaleChanged{Scale: 2})
	p.Handle(CursorMoved{X: 4, Y: 6})
	p.Handle(RedrawRequested{})

	require.Len(t, h.configs, 1)
	assert.Equal(t, float32(400), h.configs[0].Width)
	assert.Equal(t, float32(300), h.configs[0].Height)
	assert.Equal(t, float32(2), h.configs[0].DotScale)
	assert.Equal(t, "pointer 4 6 2", h.calls[0])
}

func TestSuspendResume(t *testing.T) {
	p, s, h := started(t)
	p.Handle(RedrawRequested{})

	p.Handle(Suspended{})
	assert.Equal(t, StateSuspended, p.State())
	assert.False(t, s.current)

	s.gl.Reset()
	swaps := s.swaps
	p.Handle(RedrawRequested{})
	p.Handle(CharInput{Char: 'q'})
	p.Handle(Resized{Width: 10, Height: 10})
	assert.Empty(t, s.gl.Calls, "no GL call while suspended")
	assert.Equal(t, swaps, s.swaps)

	p.Handle(Resumed{})
	assert.Equal(t, StateCurrent, p.State())
	p.Handle(RedrawRequested{})
	p.Handle(RedrawRequested{})

	assert.Equal(t, []string{
		"reconfigure", "redraw",
		"suspend",
		"resume", "reconfigure", "redraw", "redraw",
	}, h.calls)
}

func TestResumeFailureKeepsRunning(t *testing.T) {
	p, s, h := started(t)
	p.Handle(Suspended{})

	s.failNext = 1
	p.Handle(Resumed{})
	assert.Equal(t, StateSuspended, p.State())
	p.Handle(RedrawRequested{})
	assert.Equal(t, []string{"suspend"}, h.calls)
	assert.False(t, p.Exiting())

	p.Handle(Resumed{})
	assert.Equal(t, StateCurrent, p.State())
	p.Handle(RedrawRequested{})
	assert.Equal(t, []string{"suspend", "resume", "reconfigure", "redraw"}, h.calls)
}

func TestRepeatedLifecycleEventsAreIgnored(t *testing.T) {
	p, _, h := started(t)
	p.Handle(Resumed{})
	p.Handle(Suspended{})
	p.Handle(Suspended{})
	assert.Equal(t, []string{"suspend"}, h.calls)
}

func TestDestroyed(t *testing.T) {
	p, s, h := started(t)
	p.Handle(Destroyed{})
	assert.Equal(t, StateDestroyed, p.State())
	assert.True(t, p.Exiting())
	assert.False(t, s.current)

	p.Handle(Resumed{})
	p.Handle(RedrawRequested{})
	assert.Equal(t, []string{"destroy"}, h.calls)
}

func TestRun(t *testing.T) {
	s := newFakeSurface()
	s.batches = [][]Event{
		{CharInput{Char: 'a'}},
		{Resized{Width: 320, Height: 200}},
		{KeyInput{Key: KeyEscape, Pressed: true}},
	}
	h := &recorder{}
	p := New(s, h)
	require.NoError(t, p.Run())

	assert.Equal(t, []string{
		"input 'a'", "reconfigure", "redraw",
		"reconfigure", "redraw",
		"destroy",
	}, h.calls)
	assert.Equal(t, StateDestroyed, p.State())
	assert.Equal(t, 1, s.releases)
}

func TestRunFailsWithoutContext(t *testing.T) {
	s := newFakeSurface()
	s.failNext = 1
	p := New(s, &recorder{})
	assert.Error(t, p.Run())
}

func TestBaseHandlerIsEventHandler(t *testing.T) {
	var h EventHandler = struct{ BaseHandler }{}
	h.Redraw(nil)
	h.Key(KeyEnter, true)
}
