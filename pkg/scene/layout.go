package scene

import "github.com/go-gl/mathgl/mgl32"

// ObjectSpec places one model in the world
type ObjectSpec struct {
	Name     string
	Model    string
	Texture  string
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

var unitScale = mgl32.Vec3{1.0, 1.0, 1.0}

// Objects is the fixed list of opaque models, in draw order
var Objects = []ObjectSpec{
	{Name: "barrel", Model: "models/barrel.obj", Texture: "textures/barrel_diffuse.png", Position: mgl32.Vec3{-3.5, 0.0, 0.0}, Scale: unitScale},
	{Name: "crate", Model: "models/woodcrate.obj", Texture: "textures/woodcrate_diffuse.jpg", Position: mgl32.Vec3{3.5, 0.0, 0.0}, Scale: unitScale},
	{Name: "spruce", Model: "models/Spurce.obj", Texture: "textures/Texture.png", Position: mgl32.Vec3{0.0, 0.0, -2.0}, Scale: unitScale},
	{Name: "floor", Model: "models/floor.obj", Texture: "textures/tile_floor.jpg", Position: mgl32.Vec3{0.0, 0.0, 0.0}, Scale: mgl32.Vec3{10.0, 1.0, 10.0}},
	{Name: "pin", Model: "models/bowling_pin.obj", Texture: "textures/AMF.tga", Position: mgl32.Vec3{0.0, 0.0, 2.0}, Scale: mgl32.Vec3{0.1, 0.1, 0.1}},
	{Name: "bunny", Model: "models/bunny.obj", Texture: "textures/bunny_diffuse.jpg", Position: mgl32.Vec3{-2.0, 0.0, 2.0}, Scale: mgl32.Vec3{0.7, 0.7, 0.7}},
	{Name: "lamp-left", Model: "models/lampPost.obj", Texture: "textures/lamp_post_diffuse.png", Position: mgl32.Vec3{-5.0, 0.0, 0.0}, Scale: unitScale},
	{Name: "lamp-center", Model: "models/lampPost.obj", Texture: "textures/lamp_post_diffuse.png", Position: mgl32.Vec3{0.5, 0.0, 0.0}, Scale: unitScale},
	{Name: "lamp-right", Model: "models/lampPost.obj", Texture: "textures/lamp_post_diffuse.png", Position: mgl32.Vec3{5.5, 0.0, 0.0}, Scale: unitScale},
}

// MarkerIndex is the object whose mesh follows the orbiting light
var MarkerIndex = len(Objects) - 2

// BlockTexture is the index into Objects of the texture shared by all blocks
const BlockTexture = 2

// FlipTextures selects bottom-up row order for every texture in the scene
const FlipTextures = true
