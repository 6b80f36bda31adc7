// Package camera provides the orbit camera used to look at the ocean.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/oceanwaves/internal/engine/mesh"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Radians per second added to Yaw by Update.
	AutoRotate float32

	ZoomSensitivity float32

	FOV  float32 // Vertical field of view, radians
	Near float32
	Far  float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8.0,
		Pitch:           0.5,
		MinDistance:     1.0,
		MaxDistance:     200.0,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		AutoRotate:      0.1,
		ZoomSensitivity: 0.1,
		FOV:             mgl32.DegToRad(45),
		Near:            0.1,
		Far:             1000.0,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return c.Center.Add(mgl32.Vec3{
		c.Distance * cp * sy,
		c.Distance * sp,
		c.Distance * cp * cy,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.ViewMatrix())
}

// Update advances the automatic rotation by dt seconds.
func (c *OrbitCamera) Update(dt float32) {
	c.Yaw += c.AutoRotate * dt
	if c.Yaw > 2*math32.Pi {
		c.Yaw -= 2 * math32.Pi
	}
}

// HandleOrbit rotates by the given deltas in radians, clamping pitch.
func (c *OrbitCamera) HandleOrbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance; positive delta moves closer.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off far enough to frame it.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds) {
	c.Center = mgl32.Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}

	size := math32.Max(b.Max[0]-b.Min[0], b.Max[2]-b.Min[2])
	c.Distance = mgl32.Clamp(size*1.2, c.MinDistance, c.MaxDistance)
	c.Pitch = mgl32.Clamp(0.6, c.MinPitch, c.MaxPitch) // ~35 degrees down
}
