package scene

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/leterax/go-lighting/internal/logging"
	"github.com/leterax/go-lighting/internal/openglhelper"
	"github.com/leterax/go-lighting/pkg/render"
)

// ErrAsset is wrapped by every mesh or texture loading failure
var ErrAsset = errors.New("asset load failed")

// Loader turns asset paths into GPU resources
type Loader interface {
	LoadMesh(path string) (render.Drawable, error)
	LoadTexture(path string, flip bool) (render.Texture, error)
}

type textureKey struct {
	path string
	flip bool
}

// GLLoader loads assets from disk relative to Root. Meshes are cached by
// path and textures by path and flip, so shared assets are uploaded once.
type GLLoader struct {
	Root string

	meshes   map[string]*openglhelper.Mesh
	textures map[textureKey]*openglhelper.Texture
	log      logging.Logger
}

// NewGLLoader creates a loader rooted at root. A GL context must be current.
func NewGLLoader(root string, log logging.Logger) *GLLoader {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &GLLoader{
		Root:     root,
		meshes:   make(map[string]*openglhelper.Mesh),
		textures: make(map[textureKey]*openglhelper.Texture),
		log:      log,
	}
}

func (l *GLLoader) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}

// LoadMesh loads an OBJ model
func (l *GLLoader) LoadMesh(path string) (render.Drawable, error) {
	if mesh, ok := l.meshes[path]; ok {
		return mesh, nil
	}

	mesh, err := openglhelper.LoadOBJ(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("%w: mesh %s: %w", ErrAsset, path, err)
	}
	l.log.Debugf("loaded mesh %s", path)

	l.meshes[path] = mesh
	return mesh, nil
}

// LoadTexture loads a PNG, JPEG or TGA image
func (l *GLLoader) LoadTexture(path string, flip bool) (render.Texture, error) {
	key := textureKey{path: path, flip: flip}
	if tex, ok := l.textures[key]; ok {
		return tex, nil
	}

	tex, err := openglhelper.LoadTexture(l.resolve(path), flip)
	if err != nil {
		return nil, fmt.Errorf("%w: texture %s: %w", ErrAsset, path, err)
	}
	l.log.Debugf("loaded texture %s (%dx%d)", path, tex.Width, tex.Height)

	l.textures[key] = tex
	return tex, nil
}

// Close releases every mesh and texture the loader created
func (l *GLLoader) Close() {
	for path, mesh := range l.meshes {
		mesh.Delete()
		delete(l.meshes, path)
	}
	for key, tex := range l.textures {
		tex.Delete()
		delete(l.textures, key)
	}
}
