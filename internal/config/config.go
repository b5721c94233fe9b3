// Package config holds the command line settings shared by every tutorial
// program.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/toxichemicals/GO/holy-learngl/core"
	"github.com/toxichemicals/GO/holy-learngl/shaders"
)

// Defaults for window dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrInvalid is wrapped by every validation failure returned from Parse.
var ErrInvalid = errors.New("invalid configuration")

// Config is the parsed command line of a tutorial program.
type Config struct {
	Width   int
	Height  int
	Title   string
	Backend string
	VSync   bool

	// ShaderDir, when set, replaces the embedded GLSL sources with files read
	// from disk so shaders can be edited without rebuilding.
	ShaderDir string

	// TexturePath is an optional png or jpeg. Programs that need a texture
	// fall back to a generated checkerboard when it is empty or unreadable.
	TexturePath string

	Debug bool
}

// Default returns the configuration used when no flags are given.
func Default(title string) Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Title:   title,
		Backend: core.BackendGLFW,
		VSync:   true,
	}
}

// Parse reads flags from args (without the program name). Usage and flag
// errors are written to output.
func Parse(title string, args []string, output io.Writer) (Config, error) {
	cfg := Default(title)

	fset := flag.NewFlagSet(title, flag.ContinueOnError)
	fset.SetOutput(output)
	fset.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fset.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fset.StringVar(&cfg.Backend, "backend", cfg.Backend, "windowing backend: glfw or sdl")
	fset.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "synchronise buffer swaps with the display")
	fset.StringVar(&cfg.ShaderDir, "shaders", "", "read GLSL sources from this directory instead of the embedded copies")
	fset.StringVar(&cfg.TexturePath, "texture", "", "png or jpeg used by the textured programs")
	fset.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that Parse cannot enforce through flag types.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	switch c.Backend {
	case core.BackendGLFW, core.BackendSDL:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}

// Window converts the configuration into the settings core.Open expects.
func (c Config) Window() core.WindowConfig {
	return core.WindowConfig{
		Width:     c.Width,
		Height:    c.Height,
		Title:     c.Title,
		Backend:   c.Backend,
		VSync:     c.VSync,
		Resizable: true,
	}
}

// Shaders returns the file system GLSL sources are loaded from.
func (c Config) Shaders() fs.FS {
	if c.ShaderDir != "" {
		return os.DirFS(c.ShaderDir)
	}
	return shaders.FS
}
