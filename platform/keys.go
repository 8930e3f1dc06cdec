package platform

import "strconv"

// Key identifies a physical key independent of the keyboard layout.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeySpace
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = [...]string{
	KeyUnknown:      "Unknown",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeySpace:        "Space",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightSuper:   "RightSuper",
}

func (k Key) String() string {
	switch {
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case int(k) < len(keyNames):
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Button is a mouse button. Buttons past ButtonMiddle are numbered as the
// window system reports them.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	}
	return "Button" + strconv.Itoa(int(b))
}

// TouchPhase is the stage of a touch contact.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "Started"
	case TouchMoved:
		return "Moved"
	case TouchEnded:
		return "Ended"
	}
	return "Cancelled"
}
