package core

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

type sdlWindow struct {
	window  *sdl.Window
	context sdl.GLContext

	// accumulated from relative motion so positions stay meaningful while
	// the cursor is captured
	cursorX, cursorY float64
}

func openSDLWindow(cfg WindowConfig, log *zap.Logger) (Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("failed to set SDL GL attribute: %w", err)
		}
	}

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create SDL window: %w", err)
	}

	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
	}
	if err := window.GLMakeCurrent(context); err != nil {
		sdl.GLDeleteContext(context)
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to make OpenGL context current: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("unable to set swap interval", zap.Error(err))
	}

	var version sdl.Version
	sdl.VERSION(&version)
	log.Debug("SDL window created",
		zap.String("sdl", fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch)),
		zap.Bool("vsync", cfg.VSync))

	return &sdlWindow{
		window:  window,
		context: context,
		cursorX: float64(cfg.Width) / 2,
		cursorY: float64(cfg.Height) / 2,
	}, nil
}

func (w *sdlWindow) PollEvents() []Event {
	var events []Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, QuitEvent{})
		case *sdl.KeyboardEvent:
			if k := sdlKey(e.Keysym.Sym); k != KeyUnknown {
				events = append(events, KeyEvent{Key: k, Pressed: e.Type == sdl.KEYDOWN})
			}
		case *sdl.MouseMotionEvent:
			w.cursorX += float64(e.XRel)
			w.cursorY += float64(e.YRel)
			events = append(events, MouseMotionEvent{X: w.cursorX, Y: w.cursorY})
		case *sdl.MouseWheelEvent:
			events = append(events, ScrollEvent{DX: float64(e.X), DY: float64(e.Y)})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.FramebufferSize()
				events = append(events, ResizeEvent{Width: width, Height: height})
			}
		}
	}
	return events
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *sdlWindow) CaptureCursor(captured bool) {
	sdl.SetRelativeMouseMode(captured)
}

func (w *sdlWindow) Destroy() {
	sdl.GLDeleteContext(w.context)
	_ = w.window.Destroy()
	sdl.Quit()
}

func sdlKey(key sdl.Keycode) Key {
	switch key {
	case sdl.K_ESCAPE:
		return KeyEscape
	case sdl.K_w:
		return KeyW
	case sdl.K_a:
		return KeyA
	case sdl.K_s:
		return KeyS
	case sdl.K_d:
		return KeyD
	case sdl.K_q:
		return KeyQ
	case sdl.K_r:
		return KeyR
	case sdl.K_UP:
		return KeyUp
	case sdl.K_DOWN:
		return KeyDown
	case sdl.K_LEFT:
		return KeyLeft
	case sdl.K_RIGHT:
		return KeyRight
	case sdl.K_SPACE:
		return KeySpace
	case sdl.K_TAB:
		return KeyTab
	}
	return KeyUnknown
}
