// holy-colors lights a cube with a small lamp cube using ambient, diffuse and
// specular terms. WASD or the arrow keys fly the camera, the mouse looks
// around, the wheel zooms and tab releases or captures the cursor.
package main

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/toxichemicals/GO/holy-learngl/core"
	"github.com/toxichemicals/GO/holy-learngl/internal/config"
	"github.com/toxichemicals/GO/holy-learngl/internal/demo"
)

const (
	windowTitle = "Colors"

	nearPlane        = 0.1
	farPlane         = 100.0
	lampScale        = 0.2
	ambientStrength  = 0.1
	specularStrength = 0.5
	shininess        = 32
)

var (
	clearColor  = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}
	lightPos    = mgl32.Vec3{1.2, 1.0, 2.0}
	lightColor  = mgl32.Vec3{1.0, 1.0, 1.0}
	objectColor = mgl32.Vec3{1.0, 0.5, 0.31}
	cameraStart = mgl32.Vec3{0.0, 0.0, 3.0}
)

func init() {
	runtime.LockOSThread()
}

// lampModel moves the unit cube to the light and shrinks it.
func lampModel() mgl32.Mat4 {
	return mgl32.Translate3D(lightPos.Elem()).Mul4(mgl32.Scale3D(lampScale, lampScale, lampScale))
}

type app struct {
	sess       *core.Session
	object     *core.ShaderProgram
	lamp       *core.ShaderProgram
	cube       *core.Mesh
	camera     *core.Camera
	controller *core.CameraController
	captured   bool
}

func newApp(sess *core.Session, cfg config.Config) (demo.Scene, error) {
	object, err := sess.LoadShaderProgram(cfg.Shaders(), "lighting.vert", "object.frag")
	if err != nil {
		return nil, err
	}
	lamp, err := sess.LoadShaderProgram(cfg.Shaders(), "lighting.vert", "light.frag")
	if err != nil {
		return nil, err
	}
	cube, err := sess.NewMesh(core.LitCube())
	if err != nil {
		return nil, err
	}

	camera := core.NewCamera(cameraStart)
	a := &app{
		sess:       sess,
		object:     object,
		lamp:       lamp,
		cube:       cube,
		camera:     camera,
		controller: core.NewCameraController(camera),
	}
	a.setCaptured(true)
	return a, nil
}

func (a *app) setCaptured(captured bool) {
	a.captured = captured
	a.sess.Window.CaptureCursor(captured)
	a.controller.ResetMouse()
}

func (a *app) HandleEvent(e core.Event) {
	if key, ok := e.(core.KeyEvent); ok && key.Key == core.KeyTab {
		if key.Pressed {
			a.setCaptured(!a.captured)
		}
		return
	}
	if _, ok := e.(core.MouseMotionEvent); ok && !a.captured {
		return
	}
	a.controller.HandleEvent(e)
}

func (a *app) Update(dt, elapsed float32) {
	a.controller.Update(dt)
}

func (a *app) Render() {
	a.sess.Backend.Clear(clearColor, true)

	view := a.camera.ViewMatrix()
	projection := a.camera.ProjectionMatrix(a.sess.AspectRatio(), nearPlane, farPlane)

	a.object.Use()
	a.object.SetVec3("objectColor", objectColor)
	a.object.SetVec3("lightColor", lightColor)
	a.object.SetVec3("lightPos", lightPos)
	a.object.SetVec3("viewPos", a.camera.Position())
	a.object.SetFloat("ambientStrength", ambientStrength)
	a.object.SetFloat("specularStrength", specularStrength)
	a.object.SetInt("shininess", shininess)
	a.object.SetMat4("projection", projection)
	a.object.SetMat4("view", view)
	a.object.SetMat4("model", mgl32.Ident4())
	a.cube.Draw()

	a.lamp.Use()
	a.lamp.SetVec3("lightColor", lightColor)
	a.lamp.SetMat4("projection", projection)
	a.lamp.SetMat4("view", view)
	a.lamp.SetMat4("model", lampModel())
	a.cube.Draw()
}

func main() {
	demo.Main(windowTitle, newApp)
}
