package openglhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udhos/gwob"
)

func TestInterleaveOBJ_FullStride(t *testing.T) {
	// position (3), texture (2), normal (3)
	obj := &gwob.Obj{
		Indices: []int{0, 1, 2},
		Coord: []float32{
			0, 0, 0, 0, 0, 0, 0, 1,
			1, 0, 0, 1, 0, 0, 0, 1,
			0, 1, 0, 0, 1, 0, 0, 1,
		},
		TextCoordFound:       true,
		NormCoordFound:       true,
		StrideSize:           8 * 4,
		StrideOffsetPosition: 0,
		StrideOffsetTexture:  3 * 4,
		StrideOffsetNormal:   5 * 4,
	}

	vertices, indices, err := interleaveOBJ(obj)
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 1, 2}, indices)
	require.Len(t, vertices, 3*floatsPerVertex)
	// second vertex: position, normal, uv
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 1, 0}, vertices[8:16])
}

func TestInterleaveOBJ_PositionOnly(t *testing.T) {
	obj := &gwob.Obj{
		Indices:    []int{0, 1, 2},
		Coord:      []float32{0, 0, 0, 2, 0, 0, 0, 2, 0},
		StrideSize: 3 * 4,
	}

	vertices, _, err := interleaveOBJ(obj)
	require.NoError(t, err)

	assert.Equal(t, []float32{2, 0, 0, 0, 0, 0, 0, 0}, vertices[8:16])
}

func TestInterleaveOBJ_Errors(t *testing.T) {
	_, _, err := interleaveOBJ(&gwob.Obj{})
	assert.ErrorContains(t, err, "no geometry")

	_, _, err = interleaveOBJ(&gwob.Obj{
		Indices:    []int{0, 5},
		Coord:      []float32{0, 0, 0},
		StrideSize: 3 * 4,
	})
	assert.ErrorContains(t, err, "out of range")
}
