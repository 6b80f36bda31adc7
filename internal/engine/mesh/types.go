// Package mesh builds the static grid geometry the ocean surface is written into.
package mesh

import "unsafe"

// Vertex is a position/normal pair laid out for direct GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexSize is the byte stride of Vertex in an interleaved buffer.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// NormalOffset is the byte offset of Normal inside Vertex.
const NormalOffset = int(unsafe.Offsetof(Vertex{}.Normal))

// Bounds holds the axis-aligned bounding box of a vertex set.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// ComputeBounds returns the bounding box of vertices.
func ComputeBounds(vertices []Vertex) Bounds {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := range vertices {
		updateBounds(&b, vertices[i].Position)
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
