package renderer

import (
	"fmt"

	"github.com/richinsley/pianino/sgl"
	"github.com/richinsley/pianino/shader"
)

// Scene owns every GL resource drawn by an application: the triangle and an
// optional text overlay.
type Scene struct {
	Title   string
	Demo    *Demo
	Overlay *TextOverlay

	translate bool
}

// LoadScene builds the scene's programs and geometry. On failure nothing
// created so far is left behind.
func LoadScene(gl sgl.Context, opts SceneOptions) (*Scene, error) {
	s := &Scene{Title: opts.Title, translate: opts.Translate}
	src := opts.Triangle
	if src == (shader.Sources{}) {
		src = shader.Triangle()
	}

	program, err := newProgram(gl, src, opts.Translate)
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	if s.Demo, err = NewDemo(gl, program); err != nil {
		program.Delete(gl)
		return nil, fmt.Errorf("triangle: %w", err)
	}

	if opts.Overlay {
		program, err := newProgram(gl, shader.Text(), opts.Translate)
		if err != nil {
			s.Destroy(gl)
			return nil, fmt.Errorf("text overlay: %w", err)
		}
		if s.Overlay, err = NewTextOverlay(gl, program, opts.TextStyle); err != nil {
			program.Delete(gl)
			s.Destroy(gl)
			return nil, fmt.Errorf("text overlay: %w", err)
		}
	}

	sgl.Logger().Info("scene loaded", "title", s.Title, "overlay", opts.Overlay)
	return s, nil
}

// Reload rebuilds the triangle program from src. The previous program
// stays in use when the new one fails to build.
func (s *Scene) Reload(gl sgl.Context, src shader.Sources) error {
	program, err := newProgram(gl, src, s.translate)
	if err != nil {
		sgl.Logger().Error("shader reload failed, keeping previous program", "err", err)
		return err
	}
	s.Demo.ReplaceProgram(gl, program)
	sgl.Logger().Info("shader reloaded", "title", s.Title)
	return nil
}

// Resize tells the scene the framebuffer size in pixels.
func (s *Scene) Resize(gl sgl.Context, width, height int) {
	if s.Overlay != nil {
		s.Overlay.SetViewport(gl, width, height)
	}
}

// Render draws the triangle, then the overlay.
func (s *Scene) Render(gl sgl.Context) {
	s.Demo.Render(gl)
	if s.Overlay != nil {
		s.Overlay.Render(gl)
	}
}

// Destroy releases all GL resources used by the scene.
func (s *Scene) Destroy(gl sgl.Context) {
	if s == nil {
		return
	}
	sgl.Logger().Info("destroying scene", "title", s.Title)
	if s.Demo != nil {
		s.Demo.Delete(gl)
		s.Demo = nil
	}
	if s.Overlay != nil {
		s.Overlay.Delete(gl)
		s.Overlay = nil
	}
}
