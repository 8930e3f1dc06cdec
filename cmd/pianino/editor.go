package main

import "github.com/richinsley/pianino/platform"

const del = 0x7f

// editor is the text buffer shown by the overlay.
type editor struct {
	text  []rune
	dirty bool
}

// input appends printable characters; control characters and DEL are
// ignored.
func (e *editor) input(ch rune) {
	if ch < 0x20 || ch == del {
		return
	}
	e.text = append(e.text, ch)
	e.dirty = true
}

// key applies Backspace and Enter on press.
func (e *editor) key(key platform.Key, pressed bool) {
	if !pressed {
		return
	}
	switch key {
	case platform.KeyBackspace:
		if len(e.text) > 0 {
			e.text = e.text[:len(e.text)-1]
			e.dirty = true
		}
	case platform.KeyEnter:
		e.text = append(e.text, '\n')
		e.dirty = true
	}
}

func (e *editor) String() string { return string(e.text) }
