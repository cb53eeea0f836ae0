package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], eps, "component %d of %v", i, actual)
	}
}

func TestCamera_DefaultLooksDownNegativeZ(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 2, 10})

	assertVec3(t, mgl32.Vec3{0, 0, -1}, cam.Forward())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, cam.Right())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, cam.Up())

	// A point straight ahead lands on the view-space -Z axis
	ahead := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 2, 0, 1})
	assertVec3(t, mgl32.Vec3{0, 0, -10}, ahead.Vec3())
}

func TestCamera_RotateYaw90(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 2, 10})
	cam.Rotate(90, 0)

	assertVec3(t, mgl32.Vec3{-1, 0, 0}, cam.Forward())
	assertVec3(t, mgl32.Vec3{0, 0, -1}, cam.Right())

	yaw, pitch := cam.Orientation()
	assert.Equal(t, float32(90), yaw)
	assert.Equal(t, float32(0), pitch)
}

func TestCamera_PitchClamped(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})

	cam.Rotate(0, 1000)
	_, pitch := cam.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)

	for range 50 {
		cam.Rotate(3, -30)
		_, pitch = cam.Orientation()
		assert.GreaterOrEqual(t, pitch, float32(MinPitch))
		assert.LessOrEqual(t, pitch, float32(MaxPitch))
	}
	assert.Equal(t, float32(MinPitch), pitch)
}

func TestCamera_YawUnbounded(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.Rotate(720+45, 0)

	yaw, _ := cam.Orientation()
	assert.Equal(t, float32(765), yaw)

	ref := NewCamera(mgl32.Vec3{})
	ref.Rotate(45, 0)
	assertVec3(t, ref.Forward(), cam.Forward())
}

func TestCamera_OrthonormalBasis(t *testing.T) {
	for yaw := float32(-360); yaw <= 360; yaw += 37 {
		for pitch := float32(-120); pitch <= 120; pitch += 13 {
			cam := NewCamera(mgl32.Vec3{1, 2, 3})
			cam.Rotate(yaw, pitch)

			f, r, u := cam.Forward(), cam.Right(), cam.Up()

			assert.InDelta(t, 1, f.Len(), eps)
			assert.InDelta(t, 1, r.Len(), eps)
			assert.InDelta(t, 1, u.Len(), eps)
			assert.InDelta(t, 0, f.Dot(r), eps)
			assert.InDelta(t, 0, f.Dot(u), eps)
			assert.InDelta(t, 0, r.Dot(u), eps)
			// right-handed: right x up points backwards
			assertVec3(t, f.Mul(-1), r.Cross(u))

			view := cam.ViewMatrix()
			rot := view.Mat3()
			assert.True(t, rot.Mul3(rot.Transpose()).ApproxEqualThreshold(mgl32.Ident3(), 1e-4),
				"view rotation not orthonormal for yaw=%v pitch=%v", yaw, pitch)
		}
	}
}

func TestCamera_Move(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 2, 10})
	cam.Move(cam.Forward().Mul(2))
	cam.Move(cam.Right().Mul(1))

	assertVec3(t, mgl32.Vec3{1, 2, 8}, cam.Position())
}

func TestClampFOV(t *testing.T) {
	assert.Equal(t, float32(120), ClampFOV(200))
	assert.Equal(t, float32(1), ClampFOV(-50))
	assert.Equal(t, float32(45), ClampFOV(45))
	assert.Equal(t, float32(1), ClampFOV(45+1000*DefaultZoomSensitivity))
}

func TestCamera_ProjectionUsesFOV(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.SetFOV(90)

	expected := mgl32.Perspective(mgl32.DegToRad(90), 2, NearPlane, FarPlane)
	assert.Equal(t, expected, cam.ProjectionMatrix(2))
	assert.Equal(t, float32(90), cam.FOV())
}
