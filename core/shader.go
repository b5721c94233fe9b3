package core

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// noInfoLog stands in for a driver that reports a failure without a log.
const noInfoLog = "no info log available"

// ShaderCompileError is returned when one stage fails to compile.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader:\n%s", e.Stage, e.Log)
}

// ShaderLinkError is returned when both stages compile but do not link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link program:\n%s", e.Log)
}

// ShaderOption configures a ShaderProgram.
type ShaderOption func(*ShaderProgram)

// WithLogger sets the logger used to report uniforms the program does not
// have. The default discards everything.
func WithLogger(log *zap.Logger) ShaderOption {
	return func(p *ShaderProgram) {
		p.log = log
	}
}

// ShaderProgram is a linked vertex and fragment shader pair.
//
// Uniform setters write to whichever program is currently bound, so Use must
// be called first. Names the program does not have are ignored.
type ShaderProgram struct {
	backend   ShaderBackend
	handle    uint32
	locations map[string]int32
	log       *zap.Logger
	deleted   bool
}

// NewShaderProgram compiles both stages and links them. No program is
// returned if any step fails, and nothing allocated on the way is leaked.
func NewShaderProgram(backend ShaderBackend, vertexSource, fragmentSource string, opts ...ShaderOption) (*ShaderProgram, error) {
	vertex, err := compileStage(backend, VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}

	fragment, err := compileStage(backend, FragmentStage, fragmentSource)
	if err != nil {
		backend.DeleteShader(vertex)
		return nil, err
	}

	handle, ok, infoLog := backend.LinkProgram(vertex, fragment)

	// the stage objects are not needed once linking has been attempted
	backend.DeleteShader(vertex)
	backend.DeleteShader(fragment)

	if !ok {
		backend.DeleteProgram(handle)
		if infoLog == "" {
			infoLog = noInfoLog
		}
		return nil, &ShaderLinkError{Log: infoLog}
	}

	p := &ShaderProgram{
		backend:   backend,
		handle:    handle,
		locations: make(map[string]int32),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func compileStage(backend ShaderBackend, stage Stage, source string) (uint32, error) {
	shader, ok, infoLog := backend.CompileShader(stage, source)
	if !ok {
		backend.DeleteShader(shader)
		if infoLog == "" {
			infoLog = noInfoLog
		}
		return 0, &ShaderCompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

// LoadShaderProgram reads both sources from fsys and builds a program from
// them.
func LoadShaderProgram(backend ShaderBackend, fsys fs.FS, vertexPath, fragmentPath string, opts ...ShaderOption) (*ShaderProgram, error) {
	vertexSource, fragmentSource, err := LoadShaderSources(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewShaderProgram(backend, vertexSource, fragmentSource, opts...)
}

// LoadShaderSources reads a vertex and fragment source pair.
func LoadShaderSources(fsys fs.FS, vertexPath, fragmentPath string) (string, string, error) {
	vertexSource, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("load shader %q: %w", vertexPath, err)
	}
	fragmentSource, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("load shader %q: %w", fragmentPath, err)
	}
	return string(vertexSource), string(fragmentSource), nil
}

// Handle returns the backend's name for the program.
func (p *ShaderProgram) Handle() uint32 {
	return p.handle
}

// Use binds the program for subsequent draw calls and uniform writes. It
// does nothing once the program is deleted.
func (p *ShaderProgram) Use() {
	if p.deleted {
		return
	}
	p.backend.UseProgram(p.handle)
}

// location resolves name once per program. Misses are cached as -1 and
// reported a single time. A deleted program has no uniforms.
func (p *ShaderProgram) location(name string) int32 {
	if p.deleted {
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}

	loc := p.backend.UniformLocation(p.handle, name)
	p.locations[name] = loc
	if loc == -1 {
		p.log.Debug("uniform not found, writes will be ignored",
			zap.String("uniform", name), zap.Uint32("program", p.handle))
	}
	return loc
}

func (p *ShaderProgram) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	p.SetInt(name, v)
}

func (p *ShaderProgram) SetInt(name string, value int32) {
	if loc := p.location(name); loc != -1 {
		p.backend.Uniform1i(loc, value)
	}
}

func (p *ShaderProgram) SetFloat(name string, value float32) {
	if loc := p.location(name); loc != -1 {
		p.backend.Uniform1f(loc, value)
	}
}

func (p *ShaderProgram) SetVec3(name string, value mgl32.Vec3) {
	if loc := p.location(name); loc != -1 {
		p.backend.Uniform3f(loc, value)
	}
}

func (p *ShaderProgram) SetMat4(name string, value mgl32.Mat4) {
	if loc := p.location(name); loc != -1 {
		p.backend.UniformMatrix4(loc, value)
	}
}

// Delete releases the program. Calling it again does nothing.
func (p *ShaderProgram) Delete() {
	if p.deleted {
		return
	}
	p.backend.DeleteProgram(p.handle)
	p.deleted = true
}

// Release implements Releaser.
func (p *ShaderProgram) Release() {
	p.Delete()
}
