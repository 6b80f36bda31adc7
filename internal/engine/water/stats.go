package water

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/oceanwaves/internal/engine/mesh"
)

// Stats summarizes a height sample.
type Stats struct {
	Mean     float64
	Variance float64
	Min      float64
	Max      float64
}

// ComputeStats summarizes heights.
func ComputeStats(heights []float64) Stats {
	if len(heights) == 0 {
		return Stats{}
	}
	mean, variance := stat.MeanVariance(heights, nil)
	return Stats{
		Mean:     mean,
		Variance: variance,
		Min:      floats.Min(heights),
		Max:      floats.Max(heights),
	}
}

// HeightStats summarizes the full-resolution height field of the last Update.
func (o *Ocean) HeightStats() Stats {
	return ComputeStats(o.Heights())
}

// MeshHeights copies the y coordinate of every vertex into dst, growing it
// as needed, and returns it.
func MeshHeights(dst []float64, vertices []mesh.Vertex) []float64 {
	dst = dst[:0]
	for i := range vertices {
		dst = append(dst, float64(vertices[i].Position[1]))
	}
	return dst
}
