package core

import (
	"errors"
	"fmt"
)

const floatSize = 4

// ErrMeshLayout is returned for vertex data that does not divide into whole
// vertices of the declared layout.
var ErrMeshLayout = errors.New("vertex data does not match attribute layout")

// Attribute is one float vector attribute of an interleaved vertex.
type Attribute struct {
	Location uint32
	Size     int32
}

// MeshSpec describes interleaved vertex data. Attributes are laid out in
// order, so their offsets follow from the sizes before them.
type MeshSpec struct {
	Vertices   []float32
	Indices    []uint32
	Attributes []Attribute
}

// Stride is the size of one vertex in bytes.
func (s MeshSpec) Stride() int32 {
	var floats int32
	for _, a := range s.Attributes {
		floats += a.Size
	}
	return floats * floatSize
}

// Offset is the byte offset of attribute i within a vertex.
func (s MeshSpec) Offset(i int) int {
	var floats int32
	for _, a := range s.Attributes[:i] {
		floats += a.Size
	}
	return int(floats * floatSize)
}

// VertexCount is the number of whole vertices in Vertices.
func (s MeshSpec) VertexCount() int32 {
	stride := s.Stride() / floatSize
	if stride == 0 {
		return 0
	}
	return int32(len(s.Vertices)) / stride
}

// Validate checks that the data can be uploaded.
func (s MeshSpec) Validate() error {
	stride := s.Stride() / floatSize
	if stride == 0 {
		return fmt.Errorf("%w: no attributes", ErrMeshLayout)
	}
	if len(s.Vertices) == 0 || len(s.Vertices)%int(stride) != 0 {
		return fmt.Errorf("%w: %d floats with %d per vertex", ErrMeshLayout, len(s.Vertices), stride)
	}

	count := uint32(s.VertexCount())
	for _, idx := range s.Indices {
		if idx >= count {
			return fmt.Errorf("%w: index %d out of range for %d vertices", ErrMeshLayout, idx, count)
		}
	}
	return nil
}

// Mesh is vertex data uploaded to the GPU with its attribute layout recorded
// in a vertex array object.
type Mesh struct {
	backend  MeshBackend
	vao      uint32
	vbo      uint32
	ebo      uint32
	count    int32
	indexed  bool
	released bool
}

// NewMesh uploads spec and records its layout.
func NewMesh(backend MeshBackend, spec MeshSpec) (*Mesh, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{backend: backend}
	m.vao = backend.CreateVertexArray()
	backend.BindVertexArray(m.vao)

	m.vbo = backend.UploadVertices(spec.Vertices)
	if len(spec.Indices) > 0 {
		m.ebo = backend.UploadIndices(spec.Indices)
		m.indexed = true
		m.count = int32(len(spec.Indices))
	} else {
		m.count = spec.VertexCount()
	}

	stride := spec.Stride()
	for i, a := range spec.Attributes {
		backend.VertexAttrib(a.Location, a.Size, stride, spec.Offset(i))
	}

	backend.BindVertexArray(0)
	return m, nil
}

// Draw renders the mesh as triangles with the currently bound program.
func (m *Mesh) Draw() {
	m.backend.BindVertexArray(m.vao)
	if m.indexed {
		m.backend.DrawElements(m.count)
	} else {
		m.backend.DrawArrays(0, m.count)
	}
	m.backend.BindVertexArray(0)
}

// Release deletes the vertex array and its buffers. Calling it again does
// nothing.
func (m *Mesh) Release() {
	if m.released {
		return
	}
	m.backend.DeleteVertexArray(m.vao)
	m.backend.DeleteBuffer(m.vbo)
	if m.indexed {
		m.backend.DeleteBuffer(m.ebo)
	}
	m.released = true
}
