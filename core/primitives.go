package core

import "github.com/go-gl/mathgl/mgl32"

// Triangle is a single triangle with a colour per corner. Attributes:
// position at 0, colour at 1.
func Triangle() MeshSpec {
	return MeshSpec{
		Vertices: []float32{
			// positions      // colors
			0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
		},
		Attributes: []Attribute{{Location: 0, Size: 3}, {Location: 1, Size: 3}},
	}
}

// Quad is an indexed unit rectangle facing +Z. Attributes: position at 0,
// colour at 1, texture coordinates at 2.
func Quad() MeshSpec {
	return MeshSpec{
		Vertices: []float32{
			// positions     // colors     // texture coords
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
		Attributes: []Attribute{{Location: 0, Size: 3}, {Location: 1, Size: 3}, {Location: 2, Size: 2}},
	}
}

// cubeFace is one side of the unit cube. Corners run counter-clockwise seen
// from outside, starting bottom left in texture space.
type cubeFace struct {
	normal  mgl32.Vec3
	color   mgl32.Vec3
	corners [4]mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{ // front
		normal:  mgl32.Vec3{0, 0, 1},
		color:   mgl32.Vec3{1, 0, 0},
		corners: [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
	},
	{ // back
		normal:  mgl32.Vec3{0, 0, -1},
		color:   mgl32.Vec3{0, 1, 0},
		corners: [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
	},
	{ // top
		normal:  mgl32.Vec3{0, 1, 0},
		color:   mgl32.Vec3{0, 0, 1},
		corners: [4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
	},
	{ // bottom
		normal:  mgl32.Vec3{0, -1, 0},
		color:   mgl32.Vec3{1, 1, 0},
		corners: [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
	},
	{ // right
		normal:  mgl32.Vec3{1, 0, 0},
		color:   mgl32.Vec3{0, 1, 1},
		corners: [4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
	},
	{ // left
		normal:  mgl32.Vec3{-1, 0, 0},
		color:   mgl32.Vec3{1, 0, 1},
		corners: [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
	},
}

var quadUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// cube builds 24 vertices and 36 indices, writing each vertex with emit.
func cube(emit func(face cubeFace, corner int) []float32) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32
	for f, face := range cubeFaces {
		base := uint32(f * 4)
		for corner := range face.corners {
			vertices = append(vertices, emit(face, corner)...)
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// Cube is a unit cube centred on the origin with a colour per face.
// Attributes: position at 0, colour at 1, texture coordinates at 2.
func Cube() MeshSpec {
	vertices, indices := cube(func(face cubeFace, corner int) []float32 {
		p, uv := face.corners[corner], quadUVs[corner]
		return []float32{p[0], p[1], p[2], face.color[0], face.color[1], face.color[2], uv[0], uv[1]}
	})
	return MeshSpec{
		Vertices:   vertices,
		Indices:    indices,
		Attributes: []Attribute{{Location: 0, Size: 3}, {Location: 1, Size: 3}, {Location: 2, Size: 2}},
	}
}

// LitCube is a unit cube with face normals for lighting. Attributes:
// position at 0, normal at 1.
func LitCube() MeshSpec {
	vertices, indices := cube(func(face cubeFace, corner int) []float32 {
		p, n := face.corners[corner], face.normal
		return []float32{p[0], p[1], p[2], n[0], n[1], n[2]}
	})
	return MeshSpec{
		Vertices:   vertices,
		Indices:    indices,
		Attributes: []Attribute{{Location: 0, Size: 3}, {Location: 1, Size: 3}},
	}
}
