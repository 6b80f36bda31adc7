package spectrum

import "math"

// Fields holds the per-frame spectra. Buffers are allocated once and
// overwritten by every Evolve call.
type Fields struct {
	N  int
	H  []complex128 // h(k,t)
	Dx []complex128 // horizontal displacement along x
	Dz []complex128 // horizontal displacement along z
	Nx []complex128 // slope along x
	Nz []complex128 // slope along z
}

// NewFields allocates spectra for an n x n grid.
func NewFields(n int) *Fields {
	size := n * n
	return &Fields{
		N:  n,
		H:  make([]complex128, size),
		Dx: make([]complex128, size),
		Dz: make([]complex128, size),
		Nx: make([]complex128, size),
		Nz: make([]complex128, size),
	}
}

// Evolver advances h0(k) to h(k,t).
type Evolver struct {
	n          int
	k          []float64
	wavePeriod float64

	// Mirrored uses the true h0(-k) in the conjugate term. When false the
	// conjugate term reuses h0(k), which makes h(k,t) real.
	Mirrored bool
}

// NewEvolver creates an evolver for an n x n grid covering patchLength.
// wavePeriod scales simulated time.
func NewEvolver(n int, patchLength, wavePeriod float64) *Evolver {
	return &Evolver{
		n:          n,
		k:          WaveNumbers(n, patchLength),
		wavePeriod: wavePeriod,
	}
}

// Evolve writes h(k,t) = h0(k)e^{iwt} + conj(h0(-k))e^{-iwt} into dst.H and
// the displacement spectra Dx = i*kx/|k|*h, Dz = i*ky/|k|*h. When slopes is
// set it also writes Nx = i*kx*h and Nz = i*ky*h in the same pass.
func (e *Evolver) Evolve(dst *Fields, h0 []complex128, omega []float64, t float64, slopes bool) {
	n := e.n
	for y := range n {
		ky := e.k[y]
		my := MirrorIndex(y, n)

		for x := range n {
			i := y*n + x
			kx := e.k[x]

			sin, cos := math.Sincos(omega[i] * t * e.wavePeriod)
			fwd := complex(cos, sin)
			back := complex(cos, -sin)

			h0mk := h0[i]
			if e.Mirrored {
				h0mk = h0[my*n+MirrorIndex(x, n)]
			}
			h := h0[i]*fwd + complex(real(h0mk), -imag(h0mk))*back
			dst.H[i] = h

			ksqr := kx*kx + ky*ky
			var rk float64
			if ksqr > 1e-12 {
				rk = 1 / math.Sqrt(ksqr)
			}
			dst.Dx[i] = complex(0, kx*rk) * h
			dst.Dz[i] = complex(0, ky*rk) * h

			if slopes {
				dst.Nx[i] = complex(0, kx) * h
				dst.Nz[i] = complex(0, ky) * h
			}
		}
	}
}
