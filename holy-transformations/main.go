// holy-transformations draws a textured quad through a transform matrix. Q and
// R rotate it, W and S scale it and the arrow keys move it. Without key input
// it keeps spinning slowly.
package main

import (
	"image/color"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-learngl/core"
	"github.com/toxichemicals/GO/holy-learngl/internal/config"
	"github.com/toxichemicals/GO/holy-learngl/internal/demo"
)

const (
	windowTitle = "Transformations"

	rotateStep    = 2.0  // degrees per key press
	scaleStep     = 0.05 // per key press
	translateStep = 0.02 // per key press
	minScale      = 0.05
	spinSpeed     = 20.0 // degrees per second
)

var clearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}

func init() {
	runtime.LockOSThread()
}

// transform is the quad placement edited from the keyboard.
type transform struct {
	rotation float32 // degrees around z
	scale    float32
	tx, ty   float32
}

func newTransform() transform {
	return transform{scale: 1}
}

// apply changes the transform for a key press and reports whether the key
// was one of the controls.
func (t *transform) apply(key core.Key) bool {
	switch key {
	case core.KeyQ:
		t.rotation -= rotateStep
	case core.KeyR:
		t.rotation += rotateStep
	case core.KeyW:
		t.scale += scaleStep
	case core.KeyS:
		t.scale = mgl32.Clamp(t.scale-scaleStep, minScale, t.scale)
	case core.KeyUp:
		t.ty += translateStep
	case core.KeyDown:
		t.ty -= translateStep
	case core.KeyLeft:
		t.tx -= translateStep
	case core.KeyRight:
		t.tx += translateStep
	default:
		return false
	}
	return true
}

// matrix translates, then rotates, then scales.
func (t transform) matrix(spin float32) mgl32.Mat4 {
	return mgl32.Translate3D(t.tx, t.ty, 0).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.rotation + spin))).
		Mul4(mgl32.Scale3D(t.scale, t.scale, t.scale))
}

type app struct {
	backend core.Backend
	program *core.ShaderProgram
	quad    *core.Mesh
	texture *core.Texture

	transform transform
	spin      float32
}

func newApp(sess *core.Session, cfg config.Config) (demo.Scene, error) {
	program, err := sess.LoadShaderProgram(cfg.Shaders(), "transform.vert", "transform.frag")
	if err != nil {
		return nil, err
	}
	quad, err := sess.NewMesh(core.Quad())
	if err != nil {
		return nil, err
	}
	fallback := core.Checkerboard(256, 8, color.RGBA{R: 230, G: 160, B: 60, A: 255}, color.RGBA{R: 60, G: 40, B: 20, A: 255})
	texture := sess.LoadTexture(cfg.TexturePath, fallback)

	program.Use()
	program.SetInt("texture1", 0)

	return &app{
		backend:   sess.Backend,
		program:   program,
		quad:      quad,
		texture:   texture,
		transform: newTransform(),
	}, nil
}

func (a *app) HandleEvent(e core.Event) {
	if key, ok := e.(core.KeyEvent); ok && key.Pressed {
		a.transform.apply(key.Key)
	}
}

func (a *app) Update(dt, elapsed float32) {
	a.spin = elapsed * spinSpeed
}

func (a *app) Render() {
	a.backend.Clear(clearColor, false)
	a.texture.Bind(0)
	a.program.Use()
	a.program.SetMat4("transform", a.transform.matrix(a.spin))
	a.quad.Draw()
}

func main() {
	demo.Main(windowTitle, newApp)
}
