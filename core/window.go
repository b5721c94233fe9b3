package core

import (
	"fmt"

	"go.uber.org/zap"
)

// Windowing backends accepted by WindowConfig.Backend.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

// WindowConfig describes the window and context to create.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Backend   string
	VSync     bool
	Resizable bool
}

// Window owns a native window with a current OpenGL 4.1 core context.
type Window interface {
	// PollEvents returns the events received since the last call.
	PollEvents() []Event
	SwapBuffers()
	FramebufferSize() (width, height int)
	SetTitle(title string)

	// CaptureCursor hides the cursor and keeps reporting motion past the
	// window edges, for mouse look.
	CaptureCursor(captured bool)

	// Destroy releases the context, the window and the windowing library.
	Destroy()
}

// OpenWindow creates a window with the backend named in cfg. The context is
// current on the calling thread when it returns, which must be the main
// thread.
func OpenWindow(cfg WindowConfig, log *zap.Logger) (Window, error) {
	switch cfg.Backend {
	case BackendGLFW, "":
		return openGLFWWindow(cfg, log)
	case BackendSDL:
		return openSDLWindow(cfg, log)
	}
	return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
}
