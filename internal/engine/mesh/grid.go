package mesh

// BuildVertices creates a flat dimension x dimension grid centred on the
// origin, spaced stride apart, with every normal pointing up.
// Vertex (z, x) is stored at z*dimension + x.
func BuildVertices(dimension int, stride float32) ([]Vertex, int) {
	if dimension <= 0 {
		panic("mesh: grid dimension must be positive")
	}

	count := dimension * dimension
	vertices := make([]Vertex, count)
	half := (float32(dimension) - 1) / 2

	for z := range dimension {
		for x := range dimension {
			vertices[z*dimension+x] = Vertex{
				Position: [3]float32{(float32(x) - half) * stride, 0, (float32(z) - half) * stride},
				Normal:   [3]float32{0, 1, 0},
			}
		}
	}
	return vertices, count
}

// IndexCount returns the strip length BuildIndices produces for dimension.
func IndexCount(dimension int) int {
	if dimension < 2 {
		return 0
	}
	return 2*dimension*(dimension-1) + (dimension - 2)
}

// BuildIndices creates a single triangle strip covering the grid.
// Rows run serpentine: even rows left to right, odd rows right to left.
// Every row but the last ends with one degenerate index repeating its last
// top vertex, which stitches it to the next row.
func BuildIndices(dimension int) ([]uint32, int) {
	if dimension <= 0 {
		panic("mesh: grid dimension must be positive")
	}

	count := IndexCount(dimension)
	indices := make([]uint32, 0, count)
	dim := uint32(dimension)

	for z := uint32(0); z+1 < dim; z++ {
		row := z * dim
		last := z+2 == dim

		if z%2 == 0 {
			for x := uint32(0); x < dim; x++ {
				indices = append(indices, row+x, row+x+dim)
			}
			if !last {
				indices = append(indices, row+dim-1)
			}
		} else {
			for x := dim; x > 0; x-- {
				indices = append(indices, row+x-1, row+x-1+dim)
			}
			if !last {
				indices = append(indices, row)
			}
		}
	}
	return indices, count
}

// StripTriangles decodes a triangle strip into triangles, dropping
// degenerate ones (any repeated index).
func StripTriangles(indices []uint32) [][3]uint32 {
	var tris [][3]uint32
	for i := 2; i < len(indices); i++ {
		a, b, c := indices[i-2], indices[i-1], indices[i]
		if a == b || b == c || a == c {
			continue
		}
		// Odd triangles flip winding in a strip.
		if i%2 == 1 {
			a, b = b, a
		}
		tris = append(tris, [3]uint32{a, b, c})
	}
	return tris
}
