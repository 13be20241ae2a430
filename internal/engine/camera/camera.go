// Package camera provides the panorama camera used to look around the
// inside of the image sphere.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Settings holds the camera constraints.
type Settings struct {
	FOV        float32 // Initial vertical field of view (degrees)
	MinFOV     float32
	MaxFOV     float32
	PitchLimit float32 // Pitch is clamped to [-PitchLimit, PitchLimit]
	Near       float32
	Far        float32
}

// DefaultSettings returns the stock viewer constraints.
func DefaultSettings() Settings {
	return Settings{
		FOV:        100,
		MinFOV:     30,
		MaxFOV:     120,
		PitchLimit: 89,
		Near:       0.1,
		Far:        1000,
	}
}

// PanoramaCamera is a free-look camera. Angles are in degrees.
type PanoramaCamera struct {
	Yaw      float32
	Pitch    float32
	FOV      float32
	Position mgl32.Vec3

	settings Settings
}

// NewPanoramaCamera creates a camera at the origin looking down -Z.
func NewPanoramaCamera(s Settings) *PanoramaCamera {
	c := &PanoramaCamera{settings: s}
	c.FOV = clamp(s.FOV, s.MinFOV, s.MaxFOV)
	return c
}

// Rotate adds the given angles (degrees) to yaw and pitch and clamps pitch.
func (c *PanoramaCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, -c.settings.PitchLimit, c.settings.PitchLimit)
}

// Zoom changes the field of view by delta degrees, clamped to the allowed
// range. Returns true if the field of view changed.
func (c *PanoramaCamera) Zoom(delta float32) bool {
	fov := clamp(c.FOV+delta, c.settings.MinFOV, c.settings.MaxFOV)
	changed := fov != c.FOV
	c.FOV = fov
	return changed
}

// Move translates the camera position.
func (c *PanoramaCamera) Move(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
}

// Recenter puts the camera back at the sphere centre.
func (c *PanoramaCamera) Recenter() {
	c.Position = mgl32.Vec3{}
}

// Forward returns the horizontal look direction for the current yaw.
// Pitch never contributes, so movement stays on the XZ plane.
func (c *PanoramaCamera) Forward() mgl32.Vec3 {
	s, co := sincos(c.Yaw)
	return mgl32.Vec3{s, 0, -co}
}

// Right returns the horizontal strafe direction for the current yaw.
func (c *PanoramaCamera) Right() mgl32.Vec3 {
	s, co := sincos(c.Yaw)
	return mgl32.Vec3{co, 0, s}
}

// ViewMatrix translates by -Position first, then applies pitch about X and
// yaw about Y, in that order.
func (c *PanoramaCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw)))
}

// ProjectionMatrix returns the perspective projection for the given
// viewport size. A zero height is treated as an aspect ratio of 1.
func (c *PanoramaCamera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height != 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.settings.Near, c.settings.Far)
}

func sincos(deg float32) (float32, float32) {
	s, co := gomath.Sincos(float64(mgl32.DegToRad(deg)))
	return float32(s), float32(co)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
