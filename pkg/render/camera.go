package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a first-person camera driven by yaw and pitch angles
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	fov float32
}

// NewCamera creates a camera at position looking down -Z
func NewCamera(position mgl32.Vec3) *Camera {
	return &Camera{
		position: position,
		worldUp:  mgl32.Vec3{0, 1, 0}, // Y-up coordinate system
		yaw:      DefaultYaw,
		pitch:    DefaultPitch,
		fov:      DefaultFOV,
	}
}

// Forward returns the unit view direction. Yaw 0 looks down -Z and grows
// counter-clockwise about the world up axis.
func (c *Camera) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	return mgl32.Vec3{
		float32(-math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Right returns the unit vector pointing to the camera's right
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(c.worldUp).Normalize()
}

// Up returns the camera's unit up vector
func (c *Camera) Up() mgl32.Vec3 {
	forward := c.Forward()
	right := forward.Cross(c.worldUp).Normalize()
	return right.Cross(forward).Normalize()
}

// Rotate adds yaw and pitch offsets in degrees. Pitch is constrained to
// avoid flipping over the poles; yaw is left unbounded.
func (c *Camera) Rotate(yawDelta, pitchDelta float32) {
	c.yaw += yawDelta
	c.pitch = mgl32.Clamp(c.pitch+pitchDelta, MinPitch, MaxPitch)
}

// Move translates the camera by a world-space displacement
func (c *Camera) Move(displacement mgl32.Vec3) {
	c.position = c.position.Add(displacement)
}

// ViewMatrix returns the current view matrix
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.Forward()), c.worldUp)
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.fov
}

// SetFOV sets the field of view. Callers clamp with ClampFOV.
func (c *Camera) SetFOV(fov float32) {
	c.fov = fov
}

// ClampFOV limits a field of view to [MinFOV, MaxFOV]
func ClampFOV(fov float64) float32 {
	return float32(math.Max(MinFOV, math.Min(fov, MaxFOV)))
}
