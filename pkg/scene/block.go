package scene

import "github.com/go-gl/mathgl/mgl32"

// BlockKind identifies one of the translucent blocks floating over the scene
type BlockKind uint8

const (
	Rock BlockKind = iota
	Grass
	Clay
	Snow
)

// BlockProperties describes where a block sits and what it is built from
type BlockProperties struct {
	Name     string
	Model    string
	Position mgl32.Vec3
}

var blockProperties = map[BlockKind]BlockProperties{
	Rock:  {Name: "rock", Model: "models/rock.obj", Position: mgl32.Vec3{20.0, 8.0, 0.0}},
	Grass: {Name: "grass", Model: "models/grass.obj", Position: mgl32.Vec3{-10.0, 5.0, 0.0}},
	Clay:  {Name: "clay", Model: "models/clay.obj", Position: mgl32.Vec3{10.0, -9.0, -2.0}},
	Snow:  {Name: "snow", Model: "models/snow.obj", Position: mgl32.Vec3{3.0, 3.0, 0.0}},
}

// BlockKinds lists the blocks in draw order. Later blocks are drawn more opaque.
var BlockKinds = []BlockKind{Rock, Grass, Clay, Snow}

// GetBlockProperties returns properties for a specific block kind
func GetBlockProperties(kind BlockKind) (BlockProperties, bool) {
	props, exists := blockProperties[kind]
	return props, exists
}

// String returns the block's name
func (b BlockKind) String() string {
	if props, ok := blockProperties[b]; ok {
		return props.Name
	}
	return "unknown"
}

// ModelPath returns the OBJ file for the block, relative to the asset root
func (b BlockKind) ModelPath() string {
	return blockProperties[b].Model
}
