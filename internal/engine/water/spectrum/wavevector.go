// Package spectrum generates and evolves the Tessendorf wave spectrum.
//
// Spectral grids are n x n, row-major, indexed [y*n + x]. Index i on either
// axis maps to the wave number 2*pi*(i - n/2)/patchLength, so the DC term sits
// at (n/2, n/2) and index 0 holds the most negative frequency.
package spectrum

import "math"

// WaveNumber maps grid index i to its wave number along one axis.
func WaveNumber(i, n int, patchLength float64) float64 {
	return 2 * math.Pi * (float64(i) - float64(n)/2) / patchLength
}

// WaveNumbers returns WaveNumber for every index on an axis of length n.
func WaveNumbers(n int, patchLength float64) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = WaveNumber(i, n, patchLength)
	}
	return k
}

// MirrorIndex returns the index holding -k for the wave number at index i.
// Index 0 (-n/2) has no positive partner on the grid and maps to itself.
func MirrorIndex(i, n int) int {
	return (n - i) % n
}
