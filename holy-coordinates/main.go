// holy-coordinates draws ten textured cubes through separate model, view and
// projection matrices. Every third cube spins; up and down change how much
// the second texture shows through.
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
	windowTitle = "Coordinate Systems"

	fieldOfView  = 45.0
	nearPlane    = 0.1
	farPlane     = 100.0
	initialMix   = 0.2
	mixStep      = 0.1
	spinSpeed    = 25.0 // degrees per second
	anglePerCube = 20.0
)

var (
	clearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}
	rotateAxis = mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()

	cubePositions = []mgl32.Vec3{
		{0.0, 0.0, 0.0},
		{2.0, 5.0, -15.0},
		{-1.5, -2.2, -2.5},
		{-3.8, -2.0, -12.3},
		{2.4, -0.4, -3.5},
		{-1.7, 3.0, -7.5},
		{1.3, -2.0, -2.5},
		{1.5, 2.0, -2.5},
		{1.5, 0.2, -1.5},
		{-1.3, 1.0, -1.5},
	}
)

func init() {
	runtime.LockOSThread()
}

// cubeModel places cube i at its position, turned 20 degrees more than the
// previous one. Every third cube also spins with time.
func cubeModel(i int, elapsed float32) mgl32.Mat4 {
	angle := anglePerCube * float32(i)
	if i%3 == 0 {
		angle += elapsed * spinSpeed
	}
	return mgl32.Translate3D(cubePositions[i].Elem()).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), rotateAxis))
}

// viewMatrix moves the scene three units away from the viewer.
func viewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -3)
}

type app struct {
	sess     *core.Session
	program  *core.ShaderProgram
	cube     *core.Mesh
	textures [2]*core.Texture

	mix     float32
	elapsed float32
}

func newApp(sess *core.Session, cfg config.Config) (demo.Scene, error) {
	program, err := sess.LoadShaderProgram(cfg.Shaders(), "camera.vert", "textured.frag")
	if err != nil {
		return nil, err
	}
	cube, err := sess.NewMesh(core.Cube())
	if err != nil {
		return nil, err
	}

	crate := core.Checkerboard(256, 4, color.RGBA{R: 150, G: 100, B: 50, A: 255}, color.RGBA{R: 90, G: 60, B: 30, A: 255})
	overlay := core.Checkerboard(256, 16, color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{B: 120, A: 255})

	a := &app{
		sess:    sess,
		program: program,
		cube:    cube,
		mix:     initialMix,
	}
	a.textures[0] = sess.LoadTexture(cfg.TexturePath, crate)
	a.textures[1] = sess.NewTexture(overlay)

	program.Use()
	program.SetInt("texture1", 0)
	program.SetInt("texture2", 1)
	return a, nil
}

func (a *app) HandleEvent(e core.Event) {
	key, ok := e.(core.KeyEvent)
	if !ok || !key.Pressed {
		return
	}
	switch key.Key {
	case core.KeyUp:
		a.mix += mixStep
	case core.KeyDown:
		a.mix -= mixStep
	}
	a.mix = mgl32.Clamp(a.mix, 0, 1)
}

func (a *app) Update(dt, elapsed float32) {
	a.elapsed = elapsed
}

func (a *app) Render() {
	a.sess.Backend.Clear(clearColor, true)
	for unit, tex := range a.textures {
		tex.Bind(uint32(unit))
	}

	projection := mgl32.Perspective(mgl32.DegToRad(fieldOfView), a.sess.AspectRatio(), nearPlane, farPlane)

	a.program.Use()
	a.program.SetFloat("mixValue", a.mix)
	a.program.SetMat4("view", viewMatrix())
	a.program.SetMat4("projection", projection)
	for i := range cubePositions {
		a.program.SetMat4("model", cubeModel(i, a.elapsed))
		a.cube.Draw()
	}
}

func main() {
	demo.Main(windowTitle, newApp)
}
