package spectrum

import "math"

// BuildDispersion returns the deep-water angular frequency
// omega(k) = sqrt(g*|k|) for every wavevector of an n x n grid.
func BuildDispersion(n int, patchLength, gravity float64) []float64 {
	k := WaveNumbers(n, patchLength)
	omega := make([]float64, n*n)
	for y := range n {
		for x := range n {
			omega[y*n+x] = math.Sqrt(gravity * math.Hypot(k[x], k[y]))
		}
	}
	return omega
}
