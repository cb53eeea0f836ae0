package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-lighting/pkg/render"
)

// Build loads every model and texture of the scene through loader. It stops
// at the first asset that fails to load.
func Build(loader Loader) (*render.Scene, error) {
	s := &render.Scene{
		Objects: make([]render.Object, 0, len(Objects)),
		Marker:  MarkerIndex,
		Blocks:  make([]render.Object, 0, len(BlockKinds)),
	}

	for _, o := range Objects {
		mesh, err := loader.LoadMesh(o.Model)
		if err != nil {
			return nil, err
		}
		tex, err := loader.LoadTexture(o.Texture, FlipTextures)
		if err != nil {
			return nil, err
		}
		s.Objects = append(s.Objects, render.Object{
			Name:     o.Name,
			Mesh:     mesh,
			Texture:  tex,
			Position: o.Position,
			Scale:    o.Scale,
		})
	}

	blockTexture := s.Objects[BlockTexture].Texture
	for _, kind := range BlockKinds {
		props, _ := GetBlockProperties(kind)
		mesh, err := loader.LoadMesh(props.Model)
		if err != nil {
			return nil, err
		}
		s.Blocks = append(s.Blocks, render.Object{
			Name:     props.Name,
			Mesh:     mesh,
			Texture:  blockTexture,
			Position: props.Position,
			Scale:    mgl32.Vec3{1.0, 1.0, 1.0},
		})
	}

	return s, nil
}
