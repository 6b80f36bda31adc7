// Package normals derives surface normals from the spatial ocean fields.
package normals

import (
	"fmt"

	"github.com/Faultbox/oceanwaves/internal/engine/water/transform"
	"github.com/Faultbox/oceanwaves/pkg/math"
)

// Mode names a normal strategy in configuration.
type Mode string

const (
	ModeAnalytic Mode = "analytic"
	ModeSobel    Mode = "sobel"
)

// DefaultDamp scales heights before Sobel differencing.
const DefaultDamp = 0.4

// Strategy computes the normal at full-resolution sample (z, x).
type Strategy interface {
	Normal(f *transform.Fields, z, x int) [3]float32
	// NeedsSlopes reports whether the slope spectra must be transformed.
	NeedsSlopes() bool
}

// New returns the strategy for mode.
func New(mode Mode) (Strategy, error) {
	switch mode {
	case ModeAnalytic, "":
		return Analytic{}, nil
	case ModeSobel:
		return Sobel{Damp: DefaultDamp}, nil
	default:
		return nil, fmt.Errorf("unknown normal mode %q", mode)
	}
}

// Analytic builds normals from the transformed slope fields.
type Analytic struct{}

// Normal returns normalize(-Nx, 1, -Nz).
func (Analytic) Normal(f *transform.Fields, z, x int) [3]float32 {
	i := f.At(z, x)
	return math.Vec3{X: float32(-f.Nx[i]), Y: 1, Z: float32(-f.Nz[i])}.Normalize().Array()
}

// NeedsSlopes implements Strategy.
func (Analytic) NeedsSlopes() bool { return true }

// Sobel estimates normals with a 3x3 Sobel filter over the height field.
// The field is a periodic tile, so neighbours wrap on both axes.
type Sobel struct {
	Damp float64
}

// Normal returns normalize(-dx, 1, dy), where dx is the gradient toward +x
// and dy the gradient toward -z.
func (s Sobel) Normal(f *transform.Fields, z, x int) [3]float32 {
	h := func(dz, dx int) float64 {
		return s.Damp * f.Height[f.At(z+dz, x+dx)]
	}

	tl, t, tr := h(-1, -1), h(-1, 0), h(-1, 1)
	l, r := h(0, -1), h(0, 1)
	bl, b, br := h(1, -1), h(1, 0), h(1, 1)

	dx := (tr + 2*r + br) - (tl + 2*l + bl)
	dy := (tl + 2*t + tr) - (bl + 2*b + br)

	return math.Vec3{X: float32(-dx), Y: 1, Z: float32(dy)}.Normalize().Array()
}

// NeedsSlopes implements Strategy.
func (Sobel) NeedsSlopes() bool { return false }
