// Package transform turns evolved spectra into spatial height, displacement
// and slope fields with an inverse 2D FFT.
package transform

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/Faultbox/oceanwaves/internal/engine/water/spectrum"
)

// ErrInvalidSize is returned for transform sizes that are not a positive power of two.
var ErrInvalidSize = errors.New("transform size must be a positive power of two")

// Plan is a reusable n x n inverse transform. It keeps the 1D FFT and all
// scratch space, so Inverse does not allocate.
type Plan struct {
	n    int
	fft  *fourier.CmplxFFT
	work []complex128 // n*n intermediate after the row pass
	in   []complex128 // one row or column
	out  []complex128
}

// NewPlan builds a plan for n x n grids.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	return &Plan{
		n:    n,
		fft:  fourier.NewCmplxFFT(n),
		work: make([]complex128, n*n),
		in:   make([]complex128, n),
		out:  make([]complex128, n),
	}, nil
}

// Size returns the grid side the plan was built for.
func (p *Plan) Size() int {
	return p.n
}

// Inverse computes the unnormalized inverse 2D DFT of src and writes the real
// part to dst. Both slices hold n*n row-major samples; src is not modified.
//
// src is a centred spectrum (index 0 holds frequency -n/2), so the raw
// transform is off by a factor of (-1)^(x+z). Inverse removes it, leaving
// every sample of dst in true spatial order.
func (p *Plan) Inverse(dst []float64, src []complex128) {
	n := p.n
	if len(src) != n*n || len(dst) != n*n {
		panic(fmt.Sprintf("transform: buffer size mismatch: plan %dx%d, src %d, dst %d", n, n, len(src), len(dst)))
	}

	// Rows.
	for y := range n {
		copy(p.in, src[y*n:(y+1)*n])
		p.fft.Sequence(p.out, p.in)
		copy(p.work[y*n:(y+1)*n], p.out)
	}

	// Columns.
	for x := range n {
		for y := range n {
			p.in[y] = p.work[y*n+x]
		}
		p.fft.Sequence(p.out, p.in)
		for y := range n {
			v := real(p.out[y])
			if (x+y)&1 == 1 {
				v = -v
			}
			dst[y*n+x] = v
		}
	}
}

// Fields holds the spatial results of one update.
type Fields struct {
	N      int
	Height []float64
	Dx     []float64
	Dz     []float64
	Nx     []float64
	Nz     []float64
}

// At returns the index of sample (z, x) with toroidal wrap on both axes.
func (f *Fields) At(z, x int) int {
	n := f.N
	return ((z%n+n)%n)*n + (x%n+n)%n
}

// Engine owns one plan and the spatial buffers it writes into.
type Engine struct {
	plan   *Plan
	fields *Fields
}

// NewEngine creates the plan and allocates spatial buffers for n x n grids.
func NewEngine(n int) (*Engine, error) {
	plan, err := NewPlan(n)
	if err != nil {
		return nil, err
	}
	size := n * n
	return &Engine{
		plan: plan,
		fields: &Fields{
			N:      n,
			Height: make([]float64, size),
			Dx:     make([]float64, size),
			Dz:     make([]float64, size),
			Nx:     make([]float64, size),
			Nz:     make([]float64, size),
		},
	}, nil
}

// Transform converts height and displacement spectra, plus the slope spectra
// when slopes is set, into spatial fields. The returned Fields are reused by
// the next call.
func (e *Engine) Transform(src *spectrum.Fields, slopes bool) *Fields {
	e.plan.Inverse(e.fields.Height, src.H)
	e.plan.Inverse(e.fields.Dx, src.Dx)
	e.plan.Inverse(e.fields.Dz, src.Dz)
	if slopes {
		e.plan.Inverse(e.fields.Nx, src.Nx)
		e.plan.Inverse(e.fields.Nz, src.Nz)
	}
	return e.fields
}

// Fields returns the buffers written by the last Transform.
func (e *Engine) Fields() *Fields {
	return e.fields
}
