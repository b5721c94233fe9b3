// holy-window opens a window and clears it every frame until it is closed or
// escape is pressed.
package main

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-learngl/core"
	"github.com/toxichemicals/GO/holy-learngl/internal/config"
	"github.com/toxichemicals/GO/holy-learngl/internal/demo"
)

const windowTitle = "Hello Window"

var clearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

func init() {
	// GLFW and SDL event handling must run on the main thread.
	runtime.LockOSThread()
}

type app struct {
	backend core.Backend
}

func newApp(sess *core.Session, _ config.Config) (demo.Scene, error) {
	return &app{backend: sess.Backend}, nil
}

func (a *app) HandleEvent(core.Event) {}

func (a *app) Update(dt, elapsed float32) {}

func (a *app) Render() {
	a.backend.Clear(clearColor, false)
}

func main() {
	demo.Main(windowTitle, newApp)
}
