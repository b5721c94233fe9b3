// Package core holds the pieces shared by the tutorial programs: the window
// and context lifecycle, shader programs, meshes, textures and the camera.
package core

import (
	"fmt"
	"image"
	"io/fs"

	"go.uber.org/zap"
)

// Releaser is a GPU resource owned by a Session.
type Releaser interface {
	Release()
}

// ReleaseFunc adapts a function to Releaser.
type ReleaseFunc func()

func (f ReleaseFunc) Release() { f() }

// Session owns a window, its context and every resource created through it.
// Close releases the resources, newest first, before the window and context
// go away.
type Session struct {
	Window  Window
	Backend Backend

	log       *zap.Logger
	resources []Releaser
	closed    bool
}

// Open creates the window and context described by cfg and loads OpenGL.
// Depth testing is enabled and the viewport covers the framebuffer.
func Open(cfg WindowConfig, log *zap.Logger) (*Session, error) {
	window, err := OpenWindow(cfg, log)
	if err != nil {
		return nil, err
	}

	backend, err := NewGLBackend()
	if err != nil {
		window.Destroy()
		return nil, err
	}
	log.Info("OpenGL initialized",
		zap.String("version", backend.Version()), zap.String("window", cfg.Backend))

	s := NewSession(window, backend, log)
	s.Backend.SetDepthTest(true)
	s.Backend.Viewport(window.FramebufferSize())
	return s, nil
}

// NewSession wraps a window and backend that are already set up.
func NewSession(window Window, backend Backend, log *zap.Logger) *Session {
	return &Session{
		Window:  window,
		Backend: backend,
		log:     log,
	}
}

// Log returns the session's logger.
func (s *Session) Log() *zap.Logger {
	return s.log
}

// Track hands r to the session to be released by Close.
func (s *Session) Track(r Releaser) {
	s.resources = append(s.resources, r)
}

// NewShaderProgram builds a program owned by the session.
func (s *Session) NewShaderProgram(vertexSource, fragmentSource string) (*ShaderProgram, error) {
	p, err := NewShaderProgram(s.Backend, vertexSource, fragmentSource, WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	s.Track(p)
	return p, nil
}

// LoadShaderProgram reads a source pair from fsys and builds a program owned
// by the session.
func (s *Session) LoadShaderProgram(fsys fs.FS, vertexPath, fragmentPath string) (*ShaderProgram, error) {
	vertexSource, fragmentSource, err := LoadShaderSources(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := s.NewShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// NewMesh uploads a mesh owned by the session.
func (s *Session) NewMesh(spec MeshSpec) (*Mesh, error) {
	m, err := NewMesh(s.Backend, spec)
	if err != nil {
		return nil, err
	}
	s.Track(m)
	return m, nil
}

// NewTexture uploads a texture owned by the session.
func (s *Session) NewTexture(img image.Image) *Texture {
	t := NewTexture(s.Backend, img)
	s.Track(t)
	return t
}

// LoadTexture uploads the image at path, or fallback if path is empty or
// cannot be read.
func (s *Session) LoadTexture(path string, fallback image.Image) *Texture {
	if path != "" {
		img, err := LoadImage(path)
		if err == nil {
			s.log.Info("texture loaded", zap.String("path", path))
			return s.NewTexture(img)
		}
		s.log.Warn("using generated texture", zap.Error(err))
	}
	return s.NewTexture(fallback)
}

// Resize updates the viewport after a ResizeEvent.
func (s *Session) Resize(e ResizeEvent) {
	s.Backend.Viewport(e.Width, e.Height)
}

// AspectRatio of the current framebuffer. A minimised window reports 1.
func (s *Session) AspectRatio() float32 {
	width, height := s.Window.FramebufferSize()
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Close releases tracked resources in reverse order, then the window.
// Calling it again does nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for i := len(s.resources) - 1; i >= 0; i-- {
		s.resources[i].Release()
	}
	s.resources = nil

	s.Window.Destroy()
	s.log.Debug("session closed")
}
