package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/richinsley/pianino/platform"
)

func TestMapKey(t *testing.T) {
	cases := map[glfw.Key]platform.Key{
		glfw.KeyA:         platform.KeyA,
		glfw.KeyQ:         platform.KeyQ,
		glfw.KeyZ:         platform.KeyZ,
		glfw.Key0:         platform.Key0,
		glfw.Key7:         platform.Key7,
		glfw.KeyF1:        platform.KeyF1,
		glfw.KeyF12:       platform.KeyF12,
		glfw.KeyEscape:    platform.KeyEscape,
		glfw.KeyBackspace: platform.KeyBackspace,
		glfw.KeyKPEnter:   platform.KeyEnter,
		glfw.KeyF25:       platform.KeyUnknown,
		glfw.KeyUnknown:   platform.KeyUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, mapKey(in), "glfw key %d", in)
	}
}
