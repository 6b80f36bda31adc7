package water

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/oceanwaves/internal/engine/water/normals"
	"github.com/Faultbox/oceanwaves/internal/engine/water/spectrum"
)

// ErrInvalidParams wraps every parameter validation failure.
var ErrInvalidParams = errors.New("invalid ocean parameters")

// Gravity is standard gravitational acceleration in m/s^2.
const Gravity = 9.81

// Params configures an Ocean. It is copied into the Ocean by New and never
// changes afterwards.
type Params struct {
	FFTDim       int     // side of the frequency grid, power of two
	HeightmapDim int     // side of the visible vertex grid, at most FFTDim/2
	PatchLength  float64 // world size the frequency grid represents

	WindDirection float64 // radians
	WindSpeed     float64
	Amplitude     float64
	WindAlignment float64 // energy kept by waves opposing the wind
	SmallestWave  float64 // small-wave suppression factor

	Choppiness float64
	WavePeriod float64 // time scale

	Gravity      float64
	VertexStride float32
	Seed         int64

	NormalMode normals.Mode
	// MirroredConjugate evolves with the true h0(-k) instead of reusing h0(k).
	MirroredConjugate bool
	// AccumulateChop adds displacement to the previous frame's x/z instead of
	// the rest position.
	AccumulateChop bool
}

// DefaultParams returns a 64x64 spectrum driving a 32x32 mesh.
func DefaultParams() Params {
	return Params{
		FFTDim:        64,
		HeightmapDim:  32,
		PatchLength:   50,
		WindDirection: 0,
		WindSpeed:     20,
		Amplitude:     1e-7,
		WindAlignment: 0.07,
		SmallestWave:  1000,
		Choppiness:    1,
		WavePeriod:    1,
		Gravity:       Gravity,
		VertexStride:  0.2,
		Seed:          spectrum.DefaultSeed,
		NormalMode:    normals.ModeAnalytic,
	}
}

// Validate reports every invalid field at once.
func (p Params) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...))
	}

	if p.FFTDim <= 0 || p.FFTDim&(p.FFTDim-1) != 0 {
		invalid("fft dimension %d is not a positive power of two", p.FFTDim)
	}
	if p.HeightmapDim <= 0 {
		invalid("heightmap dimension %d must be positive", p.HeightmapDim)
	} else if p.FFTDim > 0 && p.HeightmapDim > p.FFTDim/2 {
		invalid("heightmap dimension %d exceeds half the fft dimension %d", p.HeightmapDim, p.FFTDim)
	}
	if p.PatchLength <= 0 {
		invalid("patch length %v must be positive", p.PatchLength)
	}
	if p.Gravity <= 0 {
		invalid("gravity %v must be positive", p.Gravity)
	}
	if p.WindSpeed <= 0 {
		invalid("wind speed %v must be positive", p.WindSpeed)
	}
	if p.SmallestWave <= 0 {
		invalid("smallest wave %v must be positive", p.SmallestWave)
	}
	if p.Amplitude < 0 {
		invalid("amplitude %v must not be negative", p.Amplitude)
	}
	if p.WindAlignment < 0 {
		invalid("wind alignment %v must not be negative", p.WindAlignment)
	}
	if _, nerr := normals.New(p.NormalMode); nerr != nil {
		invalid("%v", nerr)
	}
	return err
}

func (p Params) phillips() spectrum.PhillipsParams {
	return spectrum.PhillipsParams{
		WindDirection: p.WindDirection,
		WindSpeed:     p.WindSpeed,
		Amplitude:     p.Amplitude,
		WindAlignment: p.WindAlignment,
		SmallestWave:  p.SmallestWave,
		Gravity:       p.Gravity,
	}
}
