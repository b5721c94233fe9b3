package core

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// ShaderBackend is the part of the graphics driver ShaderProgram needs.
//
// CompileShader and LinkProgram always return a handle, even on failure, so
// the caller can release it. The info log is only meaningful when ok is false.
type ShaderBackend interface {
	CompileShader(stage Stage, source string) (shader uint32, ok bool, infoLog string)
	DeleteShader(shader uint32)
	LinkProgram(vertex, fragment uint32) (program uint32, ok bool, infoLog string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// UniformLocation returns -1 when the program has no active uniform with
	// that name.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, v mgl32.Vec3)
	UniformMatrix4(location int32, m mgl32.Mat4)
}

// MeshBackend uploads vertex data and issues draw calls.
type MeshBackend interface {
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// UploadVertices and UploadIndices leave the new buffer bound to its
	// target, so index buffers must be uploaded while the owning vertex array
	// is bound.
	UploadVertices(data []float32) uint32
	UploadIndices(data []uint32) uint32
	DeleteBuffer(buffer uint32)

	// VertexAttrib describes a float attribute of the bound vertex buffer.
	// Offset and stride are in bytes.
	VertexAttrib(location uint32, size, stride int32, offset int)

	DrawArrays(first, count int32)
	DrawElements(count int32)
}

// TextureBackend manages 2D textures.
type TextureBackend interface {
	CreateTexture(img *image.RGBA) uint32
	BindTexture(unit uint32, texture uint32)
	DeleteTexture(texture uint32)
}

// Backend is the complete set of driver calls a Session makes.
type Backend interface {
	ShaderBackend
	MeshBackend
	TextureBackend

	Viewport(width, height int)
	SetDepthTest(enabled bool)
	Clear(color mgl32.Vec4, depth bool)
	Version() string
}
