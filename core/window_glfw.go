package core

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

type glfwWindow struct {
	window *glfw.Window
	events []Event
}

func openGLFWWindow(cfg WindowConfig, log *zap.Logger) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	log.Debug("GLFW window created",
		zap.String("glfw", glfw.GetVersionString()), zap.Bool("vsync", cfg.VSync))

	w := &glfwWindow{window: window}
	window.SetKeyCallback(w.keyCallback)
	window.SetCursorPosCallback(w.cursorPosCallback)
	window.SetScrollCallback(w.scrollCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	return w, nil
}

func (w *glfwWindow) PollEvents() []Event {
	glfw.PollEvents()
	if w.window.ShouldClose() {
		w.events = append(w.events, QuitEvent{})
	}

	events := w.events
	w.events = nil
	return events
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *glfwWindow) CaptureCursor(captured bool) {
	if captured {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *glfwWindow) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *glfwWindow) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	if k == KeyUnknown {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.events = append(w.events, KeyEvent{Key: k, Pressed: true})
	case glfw.Release:
		w.events = append(w.events, KeyEvent{Key: k, Pressed: false})
	}
}

func (w *glfwWindow) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.events = append(w.events, MouseMotionEvent{X: xpos, Y: ypos})
}

func (w *glfwWindow) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.events = append(w.events, ScrollEvent{DX: xoff, DY: yoff})
}

func (w *glfwWindow) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.events = append(w.events, ResizeEvent{Width: width, Height: height})
}

func glfwKey(key glfw.Key) Key {
	switch key {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyW:
		return KeyW
	case glfw.KeyA:
		return KeyA
	case glfw.KeyS:
		return KeyS
	case glfw.KeyD:
		return KeyD
	case glfw.KeyQ:
		return KeyQ
	case glfw.KeyR:
		return KeyR
	case glfw.KeyUp:
		return KeyUp
	case glfw.KeyDown:
		return KeyDown
	case glfw.KeyLeft:
		return KeyLeft
	case glfw.KeyRight:
		return KeyRight
	case glfw.KeySpace:
		return KeySpace
	case glfw.KeyTab:
		return KeyTab
	}
	return KeyUnknown
}
