package spectrum

import "math"

// PhillipsParams describes the wind driving the Phillips spectrum.
type PhillipsParams struct {
	WindDirection float64 // radians, measured from +X toward +Y
	WindSpeed     float64 // V
	Amplitude     float64 // A
	WindAlignment float64 // S, energy kept by waves travelling against the wind
	SmallestWave  float64 // divides the largest wave length to get the cutoff length
	Gravity       float64
}

// Phillips evaluates the Phillips power spectrum at wavevector (kx, ky).
func Phillips(kx, ky float64, p PhillipsParams) float64 {
	if kx == 0 && ky == 0 {
		return 0
	}

	// Largest wave a constant wind of speed V can sustain.
	L := p.WindSpeed * p.WindSpeed / p.Gravity
	l := L / p.SmallestWave

	sin, cos := math.Sincos(p.WindDirection)
	ksqr := kx*kx + ky*ky
	kcos := kx*cos + ky*sin

	ph := p.Amplitude * math.Exp(-1/(ksqr*L*L)) / (ksqr * ksqr * ksqr) * kcos * kcos
	if kcos < 0 {
		ph *= p.WindAlignment
	}
	return ph * math.Exp(-ksqr*l*l)
}
