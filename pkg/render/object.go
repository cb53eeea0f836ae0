package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program that accepts uniforms by name
type Program interface {
	Use()
	SetBool(name string, value bool)
	SetFloat(name string, value float32)
	SetVec3(name string, vec mgl32.Vec3)
	SetMat4(name string, mat mgl32.Mat4)
	SetSampler(name string, unit int32)
}

// Drawable is uploaded geometry that can issue its own draw call
type Drawable interface {
	Draw()
}

// Texture can be attached to and detached from a texture unit
type Texture interface {
	Bind(unit uint32)
	Unbind(unit uint32)
}

// Material describes how a surface responds to light
type Material struct {
	Ambient    mgl32.Vec3
	DiffuseMap int32 // texture unit sampled for the diffuse color
	Specular   mgl32.Vec3
	Shininess  float32
}

// DefaultMaterial is shared by every object in the scene
var DefaultMaterial = Material{
	Ambient:    mgl32.Vec3{0.1, 0.1, 0.1},
	DiffuseMap: 0,
	Specular:   mgl32.Vec3{0.5, 0.5, 0.5},
	Shininess:  32.0,
}

// Apply uploads the material to the struct uniform called name
func (m Material) Apply(p Program, name string) {
	p.SetVec3(name+".ambient", m.Ambient)
	p.SetSampler(name+".diffuseMap", m.DiffuseMap)
	p.SetVec3(name+".specular", m.Specular)
	p.SetFloat(name+".shininess", m.Shininess)
}

// Object is a textured mesh placed in the world
type Object struct {
	Name     string
	Mesh     Drawable
	Texture  Texture
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

// Model returns translate(Position) * scale(Scale)
func (o Object) Model() mgl32.Mat4 {
	return ModelMatrix(o.Position, o.Scale)
}

// ModelMatrix builds a translate-then-scale transform
func ModelMatrix(position, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Scene is the fixed content drawn every frame
type Scene struct {
	// Objects are drawn opaque, in order
	Objects []Object
	// Marker is the object whose mesh and texture visualise the orbiting light
	Marker int
	// Blocks are drawn after everything else with increasing opacity
	Blocks []Object
}

// DrawParams carries the per-draw state for DrawObject
type DrawParams struct {
	Model    mgl32.Mat4
	Material Material
	// Blend, when set, is uploaded as the draw's alpha factor
	Blend *float32
}

// DrawObject uploads the model matrix, material and optional blend factor,
// then draws mesh with texture bound to the material's diffuse unit.
func DrawObject(p Program, mesh Drawable, texture Texture, params DrawParams) {
	if params.Blend != nil {
		p.SetFloat("blend", *params.Blend)
	}
	p.SetMat4("model", params.Model)
	params.Material.Apply(p, "material")

	unit := uint32(params.Material.DiffuseMap)
	texture.Bind(unit)
	mesh.Draw()
	texture.Unbind(unit)
}
