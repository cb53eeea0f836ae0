package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/udhos/gwob"
)

// floatsPerVertex is the interleaved layout: position (3), normal (3), texture coordinates (2).
const floatsPerVertex = 8

// Mesh represents a 3D mesh with vertices and indices
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position/normal/uv vertices and their indices.
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, floatsPerVertex*4, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, floatsPerVertex*4, 3*4)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, floatsPerVertex*4, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// LoadOBJ parses a Wavefront OBJ file and uploads it as a mesh.
func LoadOBJ(path string) (*Mesh, error) {
	obj, err := gwob.NewObjFromFile(path, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse obj %s: %w", path, err)
	}

	vertices, indices, err := interleaveOBJ(obj)
	if err != nil {
		return nil, fmt.Errorf("obj %s: %w", path, err)
	}

	return NewMesh(vertices, indices), nil
}

// interleaveOBJ converts gwob's packed coordinates (position, optional
// texture, optional normal) into the fixed layout the lighting shader reads.
// Missing normals and texture coordinates are left zero.
func interleaveOBJ(obj *gwob.Obj) ([]float32, []uint32, error) {
	if obj.StrideSize <= 0 || len(obj.Indices) == 0 {
		return nil, nil, fmt.Errorf("no geometry")
	}

	stride := obj.StrideSize / 4
	count := len(obj.Coord) / stride
	posOffset := obj.StrideOffsetPosition / 4
	texOffset := obj.StrideOffsetTexture / 4
	normOffset := obj.StrideOffsetNormal / 4

	vertices := make([]float32, count*floatsPerVertex)
	for i := range count {
		src := obj.Coord[i*stride : (i+1)*stride]
		dst := vertices[i*floatsPerVertex : (i+1)*floatsPerVertex]

		copy(dst[0:3], src[posOffset:posOffset+3])
		if obj.NormCoordFound {
			copy(dst[3:6], src[normOffset:normOffset+3])
		}
		if obj.TextCoordFound {
			copy(dst[6:8], src[texOffset:texOffset+2])
		}
	}

	indices := make([]uint32, len(obj.Indices))
	for i, idx := range obj.Indices {
		if idx < 0 || idx >= count {
			return nil, nil, fmt.Errorf("index %d out of range (%d vertices)", idx, count)
		}
		indices[i] = uint32(idx)
	}

	return vertices, indices, nil
}

// Draw renders the mesh
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
