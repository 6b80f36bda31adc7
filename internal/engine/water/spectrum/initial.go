package spectrum

import (
	"math"
	"math/rand"
)

// DefaultSeed seeds the initial spectrum so every run produces the same sea.
const DefaultSeed int64 = 0

// NewRand returns the deterministic generator BuildInitial draws from.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GaussRand returns a standard normal sample using the cosine branch of the
// Box-Muller transform over two uniform draws.
func GaussRand(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	if u1 < 1e-6 {
		u1 = 1e-6
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// BuildInitial computes h0(k) = (Er + i*Ei) * sqrt(P(k)) / sqrt(2) for every
// wavevector of an n x n grid. Samples are drawn Er then Ei per wavevector in
// row-major order, so a given seed always yields the same spectrum.
func BuildInitial(n int, patchLength float64, p PhillipsParams, rng *rand.Rand) []complex128 {
	k := WaveNumbers(n, patchLength)
	h0 := make([]complex128, n*n)

	for y := range n {
		for x := range n {
			amp := math.Sqrt(Phillips(k[x], k[y], p)) / math.Sqrt2
			er := GaussRand(rng)
			ei := GaussRand(rng)
			h0[y*n+x] = complex(er*amp, ei*amp)
		}
	}
	return h0
}
