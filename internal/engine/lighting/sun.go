// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts an azimuth around +Y and an elevation above the
// horizon, both in degrees, to a unit vector pointing towards the sun.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	sa, ca := math32.Sincos(mgl32.DegToRad(azimuth))
	se, ce := math32.Sincos(mgl32.DegToRad(elevation))
	return mgl32.Vec3{ce * sa, se, ce * ca}
}

// LightDirection returns the direction light travels for a sun at the given
// angles, the form shaders take it in.
func LightDirection(azimuth, elevation float32) mgl32.Vec3 {
	return SunDirection(azimuth, elevation).Mul(-1)
}
