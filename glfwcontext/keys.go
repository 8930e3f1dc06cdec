package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/richinsley/pianino/platform"
)

var keyTable = map[glfw.Key]platform.Key{
	glfw.KeyEscape:       platform.KeyEscape,
	glfw.KeyEnter:        platform.KeyEnter,
	glfw.KeyKPEnter:      platform.KeyEnter,
	glfw.KeyTab:          platform.KeyTab,
	glfw.KeyBackspace:    platform.KeyBackspace,
	glfw.KeyInsert:       platform.KeyInsert,
	glfw.KeyDelete:       platform.KeyDelete,
	glfw.KeyRight:        platform.KeyRight,
	glfw.KeyLeft:         platform.KeyLeft,
	glfw.KeyDown:         platform.KeyDown,
	glfw.KeyUp:           platform.KeyUp,
	glfw.KeyPageUp:       platform.KeyPageUp,
	glfw.KeyPageDown:     platform.KeyPageDown,
	glfw.KeyHome:         platform.KeyHome,
	glfw.KeyEnd:          platform.KeyEnd,
	glfw.KeySpace:        platform.KeySpace,
	glfw.KeyLeftShift:    platform.KeyLeftShift,
	glfw.KeyRightShift:   platform.KeyRightShift,
	glfw.KeyLeftControl:  platform.KeyLeftControl,
	glfw.KeyRightControl: platform.KeyRightControl,
	glfw.KeyLeftAlt:      platform.KeyLeftAlt,
	glfw.KeyRightAlt:     platform.KeyRightAlt,
	glfw.KeyLeftSuper:    platform.KeyLeftSuper,
	glfw.KeyRightSuper:   platform.KeyRightSuper,
}

// mapKey converts a glfw key code. Letters, digits and F1-F12 are
// contiguous in both tables.
func mapKey(k glfw.Key) platform.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return platform.KeyA + platform.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return platform.Key0 + platform.Key(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return platform.KeyF1 + platform.Key(k-glfw.KeyF1)
	}
	if key, ok := keyTable[k]; ok {
		return key
	}
	return platform.KeyUnknown
}
