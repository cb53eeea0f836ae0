package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyW        = glfw.KeyW
	KeyA        = glfw.KeyA
	KeyS        = glfw.KeyS
	KeyD        = glfw.KeyD
	KeyZ        = glfw.KeyZ
	KeyX        = glfw.KeyX
	KeyQ        = glfw.KeyQ
	KeyF        = glfw.KeyF
	KeyEscape   = glfw.KeyEscape
	KeyLeftCtrl = glfw.KeyLeftControl
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed        = 5.0
	DefaultMouseSensitivity = 0.1
	DefaultZoomSensitivity  = -3.0

	// Default orientation
	DefaultYaw   = 0.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 120.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0
)

// Projection constants
const (
	NearPlane = 0.1
	FarPlane  = 200.0
)

// Orbiting light constants. The light sweeps an ellipse in the XZ plane
// while its height follows the camera.
const (
	OrbitDegreesPerSecond = 50.0
	OrbitRadiusX          = 3.0
	OrbitRadiusZ          = 10.0
	OrbitCenterZ          = 14.0
	OrbitDrop             = 0.5
	OrbitLift             = 4.8
)

// Frame statistics refresh interval in seconds
const StatsInterval = 0.25
