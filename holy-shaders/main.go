// holy-shaders draws a vertex-coloured triangle moved sideways by the offset
// uniform. Left and right arrows change the offset.
package main

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-learngl/core"
	"github.com/toxichemicals/GO/holy-learngl/internal/config"
	"github.com/toxichemicals/GO/holy-learngl/internal/demo"
)

const (
	windowTitle   = "Shaders"
	initialOffset = 0.5
	offsetStep    = 0.05
	maxOffset     = 1.0
)

var clearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}

func init() {
	runtime.LockOSThread()
}

type app struct {
	backend  core.Backend
	program  *core.ShaderProgram
	triangle *core.Mesh
	offset   float32
}

func newApp(sess *core.Session, cfg config.Config) (demo.Scene, error) {
	program, err := sess.LoadShaderProgram(cfg.Shaders(), "triangle.vert", "triangle.frag")
	if err != nil {
		return nil, err
	}
	triangle, err := sess.NewMesh(core.Triangle())
	if err != nil {
		return nil, err
	}
	return &app{
		backend:  sess.Backend,
		program:  program,
		triangle: triangle,
		offset:   initialOffset,
	}, nil
}

func (a *app) HandleEvent(e core.Event) {
	key, ok := e.(core.KeyEvent)
	if !ok || !key.Pressed {
		return
	}
	switch key.Key {
	case core.KeyLeft:
		a.offset -= offsetStep
	case core.KeyRight:
		a.offset += offsetStep
	}
	a.offset = mgl32.Clamp(a.offset, -maxOffset, maxOffset)
}

func (a *app) Update(dt, elapsed float32) {}

func (a *app) Render() {
	a.backend.Clear(clearColor, false)
	a.program.Use()
	a.program.SetFloat("offset", a.offset)
	a.triangle.Draw()
}

func main() {
	demo.Main(windowTitle, newApp)
}
