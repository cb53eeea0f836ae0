package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit tracks the angle of the light circling the scene
type Orbit struct {
	angle float32 // degrees, grows without bound
}

// Advance moves the orbit forward by dt seconds
func (o *Orbit) Advance(dt float32) {
	o.angle += dt * OrbitDegreesPerSecond
}

// Angle returns the accumulated angle in degrees
func (o *Orbit) Angle() float32 {
	return o.angle
}

// Position places the light relative to the camera: X and Z come from the
// ellipse alone, while Y is the camera height lowered by OrbitDrop and
// raised by OrbitLift.
func (o *Orbit) Position(cameraPos mgl32.Vec3) mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(o.angle))

	pos := cameraPos
	pos[1] -= OrbitDrop
	pos[0] = OrbitRadiusX * float32(math.Sin(rad))
	pos[2] = OrbitCenterZ + OrbitRadiusZ*float32(math.Cos(rad))
	pos[1] += OrbitLift
	return pos
}
