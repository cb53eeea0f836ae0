package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Attenuation holds the coefficients of 1 / (constant + linear*d + exponent*d²).
type Attenuation struct {
	Constant float32
	Linear   float32
	Exponent float32
}

func (a Attenuation) apply(p Program, name string) {
	p.SetFloat(name+".constant", a.Constant)
	p.SetFloat(name+".linear", a.Linear)
	p.SetFloat(name+".exponent", a.Exponent)
}

// DirectionalLight is a light at infinity, such as the sun
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Apply uploads the light to the struct uniform called name
func (l DirectionalLight) Apply(p Program, name string) {
	p.SetVec3(name+".direction", l.Direction)
	p.SetVec3(name+".ambient", l.Ambient)
	p.SetVec3(name+".diffuse", l.Diffuse)
	p.SetVec3(name+".specular", l.Specular)
}

// PointLight radiates in all directions from Position and fades with distance
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Attenuation
}

// Apply uploads the light to the struct uniform called name
func (l PointLight) Apply(p Program, name string) {
	p.SetVec3(name+".ambient", l.Ambient)
	p.SetVec3(name+".diffuse", l.Diffuse)
	p.SetVec3(name+".specular", l.Specular)
	p.SetVec3(name+".position", l.Position)
	l.Attenuation.apply(p, name)
}

// SpotLight is a point light restricted to a cone around Direction.
// Inner and outer cone bounds are stored as cosines.
type SpotLight struct {
	Position     mgl32.Vec3
	Direction    mgl32.Vec3
	Ambient      mgl32.Vec3
	Diffuse      mgl32.Vec3
	Specular     mgl32.Vec3
	CosInnerCone float32
	CosOuterCone float32
	On           bool
	Attenuation
}

// Apply uploads the light to the struct uniform called name
func (l SpotLight) Apply(p Program, name string) {
	p.SetVec3(name+".ambient", l.Ambient)
	p.SetVec3(name+".diffuse", l.Diffuse)
	p.SetVec3(name+".specular", l.Specular)
	p.SetVec3(name+".position", l.Position)
	p.SetVec3(name+".direction", l.Direction)
	p.SetFloat(name+".cosInnerCone", l.CosInnerCone)
	p.SetFloat(name+".cosOuterCone", l.CosOuterCone)
	l.Attenuation.apply(p, name)
	p.SetBool(name+".on", l.On)
}

// Lighting is everything the lighting shader needs for one frame
type Lighting struct {
	Sun    DirectionalLight
	Points [3]PointLight
	Spot   SpotLight
}

// Apply uploads sunLight, pointLights[i] and spotLight
func (l Lighting) Apply(p Program) {
	l.Sun.Apply(p, "sunLight")
	for i, point := range l.Points {
		point.Apply(p, fmt.Sprintf("pointLights[%d]", i))
	}
	l.Spot.Apply(p, "spotLight")
}

var pointAttenuation = Attenuation{Constant: 1.0, Linear: 0.22, Exponent: 0.20}

// Fixed lamp positions above the outer lamp posts
var (
	LeftLampPosition  = mgl32.Vec3{-5.0, 3.8, 0.0}
	RightLampPosition = mgl32.Vec3{5.0, 3.8, 0.0}
)

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}

// SceneLighting builds the frame's lights: a fixed sun, a green and a blue
// lamp, a white light at orbitPos and a flashlight held just below the
// camera and aimed along its view.
func SceneLighting(camera *Camera, orbitPos mgl32.Vec3, flashlightOn bool) Lighting {
	lampAmbient := mgl32.Vec3{0.2, 0.2, 0.2}
	white := mgl32.Vec3{1.0, 1.0, 1.0}

	return Lighting{
		Sun: DirectionalLight{
			Direction: mgl32.Vec3{0.0, -0.9, -0.17},
			Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:   white,
			Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		},
		Points: [3]PointLight{
			{
				Position:    LeftLampPosition,
				Ambient:     lampAmbient,
				Diffuse:     mgl32.Vec3{0.0, 3.0, 0.0},
				Specular:    white,
				Attenuation: pointAttenuation,
			},
			{
				Position:    orbitPos,
				Ambient:     lampAmbient,
				Diffuse:     mgl32.Vec3{10.0, 10.0, 10.0},
				Specular:    white,
				Attenuation: pointAttenuation,
			},
			{
				Position:    RightLampPosition,
				Ambient:     lampAmbient,
				Diffuse:     mgl32.Vec3{0.0, 0.0, 3.0},
				Specular:    white,
				Attenuation: pointAttenuation,
			},
		},
		Spot: SpotLight{
			Position:     camera.Position().Sub(mgl32.Vec3{0, 0.5, 0}),
			Direction:    camera.Forward(),
			Ambient:      mgl32.Vec3{2.1, 2.1, 2.1},
			Diffuse:      mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:     white,
			CosInnerCone: cosDeg(15.0),
			CosOuterCone: cosDeg(20.0),
			On:           flashlightOn,
			Attenuation:  Attenuation{Constant: 1.0, Linear: 0.07, Exponent: 0.017},
		},
	}
}
