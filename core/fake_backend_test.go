package core

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeBackend records driver calls. A shader whose source contains
// "#error" fails to compile and one containing "#silent" fails with an empty
// log; a pair whose sources both contain "mismatch" fails to link, with an
// empty log if either also contains "#silent".
type fakeBackend struct {
	next uint32

	shaders  map[uint32]string
	programs map[uint32]bool
	deleted  map[uint32]int

	bound    uint32
	uniforms map[string]int32
	lookups  map[string]int
	writes   []string

	vaos, buffers, textures map[uint32]bool
	attribs                 []string
	draws                   []string
	calls                   []string
}

func newFakeBackend(uniforms ...string) *fakeBackend {
	b := &fakeBackend{
		next:     1,
		shaders:  make(map[uint32]string),
		programs: make(map[uint32]bool),
		deleted:  make(map[uint32]int),
		uniforms: make(map[string]int32),
		lookups:  make(map[string]int),
		vaos:     make(map[uint32]bool),
		buffers:  make(map[uint32]bool),
		textures: make(map[uint32]bool),
	}
	for i, name := range uniforms {
		b.uniforms[name] = int32(i)
	}
	return b
}

func (b *fakeBackend) handle() uint32 {
	h := b.next
	b.next++
	return h
}

func (b *fakeBackend) CompileShader(stage Stage, source string) (uint32, bool, string) {
	h := b.handle()
	b.shaders[h] = source
	if strings.Contains(source, "#silent") && !strings.Contains(source, "mismatch") {
		return h, false, ""
	}
	if strings.Contains(source, "#error") {
		return h, false, fmt.Sprintf("0:1(1): error: %s stage rejected", stage)
	}
	return h, true, ""
}

func (b *fakeBackend) DeleteShader(shader uint32) {
	b.deleted[shader]++
	delete(b.shaders, shader)
}

func (b *fakeBackend) LinkProgram(vertex, fragment uint32) (uint32, bool, string) {
	h := b.handle()
	b.programs[h] = true
	if strings.Contains(b.shaders[vertex], "mismatch") && strings.Contains(b.shaders[fragment], "mismatch") {
		if strings.Contains(b.shaders[vertex]+b.shaders[fragment], "#silent") {
			return h, false, ""
		}
		return h, false, "error: fragment shader input not written by vertex shader"
	}
	return h, true, ""
}

func (b *fakeBackend) DeleteProgram(program uint32) {
	b.deleted[program]++
	delete(b.programs, program)
}

func (b *fakeBackend) UseProgram(program uint32) {
	b.bound = program
}

func (b *fakeBackend) UniformLocation(program uint32, name string) int32 {
	b.lookups[name]++
	if loc, ok := b.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (b *fakeBackend) Uniform1i(location int32, v int32) {
	b.writes = append(b.writes, fmt.Sprintf("%d=%d", location, v))
}

func (b *fakeBackend) Uniform1f(location int32, v float32) {
	b.writes = append(b.writes, fmt.Sprintf("%d=%g", location, v))
}

func (b *fakeBackend) Uniform3f(location int32, v mgl32.Vec3) {
	b.writes = append(b.writes, fmt.Sprintf("%d=%v", location, v))
}

func (b *fakeBackend) UniformMatrix4(location int32, m mgl32.Mat4) {
	b.writes = append(b.writes, fmt.Sprintf("%d=mat4", location))
}

func (b *fakeBackend) CreateVertexArray() uint32 {
	h := b.handle()
	b.vaos[h] = true
	b.calls = append(b.calls, "vao")
	return h
}

func (b *fakeBackend) BindVertexArray(vao uint32) {
	b.calls = append(b.calls, fmt.Sprintf("bind %d", vao))
}

func (b *fakeBackend) DeleteVertexArray(vao uint32) {
	b.deleted[vao]++
	delete(b.vaos, vao)
}

func (b *fakeBackend) UploadVertices(data []float32) uint32 {
	h := b.handle()
	b.buffers[h] = true
	b.calls = append(b.calls, fmt.Sprintf("vertices %d", len(data)))
	return h
}

func (b *fakeBackend) UploadIndices(data []uint32) uint32 {
	h := b.handle()
	b.buffers[h] = true
	b.calls = append(b.calls, fmt.Sprintf("indices %d", len(data)))
	return h
}

func (b *fakeBackend) DeleteBuffer(buffer uint32) {
	b.deleted[buffer]++
	delete(b.buffers, buffer)
}

func (b *fakeBackend) VertexAttrib(location uint32, size, stride int32, offset int) {
	b.attribs = append(b.attribs, fmt.Sprintf("%d:%d/%d+%d", location, size, stride, offset))
}

func (b *fakeBackend) DrawArrays(first, count int32) {
	b.draws = append(b.draws, fmt.Sprintf("arrays %d", count))
}

func (b *fakeBackend) DrawElements(count int32) {
	b.draws = append(b.draws, fmt.Sprintf("elements %d", count))
}

func (b *fakeBackend) CreateTexture(img *image.RGBA) uint32 {
	h := b.handle()
	b.textures[h] = true
	return h
}

func (b *fakeBackend) BindTexture(unit uint32, texture uint32) {
	b.calls = append(b.calls, fmt.Sprintf("texture %d@%d", texture, unit))
}

func (b *fakeBackend) DeleteTexture(texture uint32) {
	b.deleted[texture]++
	delete(b.textures, texture)
}

func (b *fakeBackend) Viewport(width, height int) {
	b.calls = append(b.calls, fmt.Sprintf("viewport %dx%d", width, height))
}

func (b *fakeBackend) SetDepthTest(enabled bool) {}

func (b *fakeBackend) Clear(color mgl32.Vec4, depth bool) {}

func (b *fakeBackend) Version() string { return "fake" }

// fakeWindow replays queued events.
type fakeWindow struct {
	width, height int
	queued        [][]Event
	destroyed     int
	title         string
	onDestroy     func()
}

func (w *fakeWindow) PollEvents() []Event {
	if len(w.queued) == 0 {
		return nil
	}
	events := w.queued[0]
	w.queued = w.queued[1:]
	return events
}

func (w *fakeWindow) SwapBuffers() {}

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SetTitle(title string) { w.title = title }

func (w *fakeWindow) CaptureCursor(bool) {}

func (w *fakeWindow) Destroy() {
	w.destroyed++
	if w.onDestroy != nil {
		w.onDestroy()
	}
}
