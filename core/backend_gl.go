package core

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// infoLogLimit bounds the compiler and linker logs copied out of the driver.
const infoLogLimit = 512

// GLBackend implements Backend with OpenGL 4.1 core. A context must be
// current on the calling thread before NewGLBackend is called.
type GLBackend struct {
	version string
}

// NewGLBackend loads the OpenGL function pointers for the current context.
func NewGLBackend() (*GLBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &GLBackend{version: gl.GoStr(gl.GetString(gl.VERSION))}, nil
}

// Version reports the driver's GL_VERSION string.
func (b *GLBackend) Version() string {
	return b.version
}

func (b *GLBackend) CompileShader(stage Stage, source string) (uint32, bool, string) {
	var kind uint32
	switch stage {
	case VertexStage:
		kind = gl.VERTEX_SHADER
	case FragmentStage:
		kind = gl.FRAGMENT_SHADER
	}

	shader := gl.CreateShader(kind)
	glShaderSource(shader, source)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return shader, false, readInfoLog(logLength, func(size int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, size, nil, buf)
		})
	}
	return shader, true, ""
}

func (b *GLBackend) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (b *GLBackend) LinkProgram(vertex, fragment uint32) (uint32, bool, string) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	// stages can be flagged for deletion as soon as the program no longer
	// needs them attached
	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return program, false, readInfoLog(logLength, func(size int32, buf *uint8) {
			gl.GetProgramInfoLog(program, size, nil, buf)
		})
	}
	return program, true, ""
}

func (b *GLBackend) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (b *GLBackend) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (b *GLBackend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *GLBackend) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (b *GLBackend) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (b *GLBackend) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (b *GLBackend) UniformMatrix4(location int32, m mgl32.Mat4) {
	// mgl32 matrices are column-major, same as GL
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (b *GLBackend) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (b *GLBackend) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (b *GLBackend) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (b *GLBackend) UploadVertices(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}

func (b *GLBackend) UploadIndices(data []uint32) uint32 {
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return ebo
}

func (b *GLBackend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (b *GLBackend) VertexAttrib(location uint32, size, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, stride, uintptr(offset))
	gl.EnableVertexAttribArray(location)
}

func (b *GLBackend) DrawArrays(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (b *GLBackend) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (b *GLBackend) CreateTexture(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	size := img.Rect.Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

func (b *GLBackend) BindTexture(unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (b *GLBackend) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (b *GLBackend) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *GLBackend) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (b *GLBackend) Clear(color mgl32.Vec4, depth bool) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// glShaderSource passes GLSL source to the driver. gl.Strs needs a NUL
// terminator, which sources read from disk do not have.
func glShaderSource(shader uint32, source string) {
	if !strings.HasSuffix(source, "\x00") {
		source += "\x00"
	}
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

// readInfoLog copies at most infoLogLimit bytes of a shader or program log.
func readInfoLog(logLength int32, get func(size int32, buf *uint8)) string {
	if logLength <= 0 {
		return ""
	}
	if logLength > infoLogLimit {
		logLength = infoLogLimit
	}
	buf := make([]byte, logLength)
	get(logLength, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}
