package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVertices3x3(t *testing.T) {
	vertices, count := BuildVertices(3, 1.0)

	require.Equal(t, 9, count)
	require.Len(t, vertices, 9)

	for i, v := range vertices {
		if v.Position[1] != 0 {
			t.Errorf("vertex %d y = %v, want 0", i, v.Position[1])
		}
		if v.Normal != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d normal = %v, want up", i, v.Normal)
		}
	}

	// Centre vertex sits at the origin.
	assert.Equal(t, [3]float32{0, 0, 0}, vertices[4].Position)
	assert.Equal(t, [3]float32{-1, 0, -1}, vertices[0].Position)
	assert.Equal(t, [3]float32{1, 0, 1}, vertices[8].Position)
}

func TestBuildVerticesStride(t *testing.T) {
	vertices, _ := BuildVertices(4, 0.2)
	b := ComputeBounds(vertices)

	assert.InDelta(t, -0.3, b.Min[0], 1e-6)
	assert.InDelta(t, 0.3, b.Max[0], 1e-6)
	assert.InDelta(t, -0.3, b.Min[2], 1e-6)
	assert.InDelta(t, 0.3, b.Max[2], 1e-6)
}

func TestBuildIndices3x3(t *testing.T) {
	indices, count := BuildIndices(3)

	require.Equal(t, 13, count)
	require.Len(t, indices, 13)

	want := []uint32{0, 3, 1, 4, 2, 5, 2, 5, 8, 4, 7, 3, 6}
	assert.Equal(t, want, indices)

	for _, tri := range StripTriangles(indices) {
		for _, idx := range tri {
			if idx >= 9 {
				t.Errorf("triangle %v references vertex %d outside [0,9)", tri, idx)
			}
		}
	}
}

func TestIndexCount(t *testing.T) {
	tests := []struct {
		dimension int
		want      int
	}{
		{1, 0},
		{2, 4},
		{3, 13},
		{4, 26},
		{32, 2*32*31 + 30},
	}
	for _, tt := range tests {
		indices, count := BuildIndices(tt.dimension)
		if count != tt.want {
			t.Errorf("BuildIndices(%d) count = %d, want %d", tt.dimension, count, tt.want)
		}
		if len(indices) != tt.want {
			t.Errorf("BuildIndices(%d) len = %d, want %d", tt.dimension, len(indices), tt.want)
		}
	}
}

func TestStripCoversEveryQuad(t *testing.T) {
	const dim = 5
	indices, _ := BuildIndices(dim)
	tris := StripTriangles(indices)

	// Each of the (dim-1)^2 quads contributes two triangles; the
	// zero-area column triangles at row joins are extra.
	assert.GreaterOrEqual(t, len(tris), 2*(dim-1)*(dim-1))

	used := make(map[uint32]bool)
	for _, tri := range tris {
		for _, idx := range tri {
			used[idx] = true
		}
	}
	assert.Len(t, used, dim*dim)
}

func TestBuildInvalidDimension(t *testing.T) {
	assert.Panics(t, func() { BuildVertices(0, 1) })
	assert.Panics(t, func() { BuildIndices(-1) })
}

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, 24, VertexSize)
	assert.Equal(t, 12, NormalOffset)
}
