// Command triangle opens a "GLES Demo" window and draws a triangle.
package main

import (
	"runtime"

	"github.com/richinsley/pianino/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	app.Main(app.Config{
		Name:  "triangle",
		Title: "GLES Demo",
		Usage: "draw a triangle with OpenGL ES",
	})
}
