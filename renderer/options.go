package renderer

import (
	"github.com/richinsley/pianino/inputs"
	"github.com/richinsley/pianino/shader"
)

// SceneOptions configures LoadScene.
type SceneOptions struct {
	Title string
	// Triangle sources; zero means the built-in shaders.
	Triangle shader.Sources
	// Translate passes every shader through ANGLE before compiling it.
	Translate bool
	// Overlay adds a text overlay drawn after the triangle.
	Overlay   bool
	TextStyle inputs.TextStyle
}
