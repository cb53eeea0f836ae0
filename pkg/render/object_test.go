package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestModelMatrix(t *testing.T) {
	m := ModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{10, 1, 10})

	// scale applies before translation
	p := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec4{11, 3, 13, 1}, p)
}

func TestDrawObject_Sequence(t *testing.T) {
	log := &drawLog{}
	p := newRecordingProgram()
	mesh := &fakeMesh{name: "barrel", log: log, program: p}
	tex := &fakeTexture{name: "barrel_diffuse", log: log}
	model := ModelMatrix(mgl32.Vec3{-3.5, 0, 0}, mgl32.Vec3{1, 1, 1})

	DrawObject(p, mesh, tex, DrawParams{Model: model, Material: DefaultMaterial})

	assert.Equal(t, []string{"bind barrel_diffuse", "draw barrel", "unbind barrel_diffuse"}, log.events)
	assert.Equal(t, []mgl32.Mat4{model}, mesh.models)
	assert.False(t, tex.bound)

	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, p.values["material.ambient"])
	assert.Equal(t, int32(0), p.values["material.diffuseMap"])
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, p.values["material.specular"])
	assert.Equal(t, float32(32), p.values["material.shininess"])
	assert.NotContains(t, p.values, "blend")
}

func TestDrawObject_Blend(t *testing.T) {
	log := &drawLog{}
	p := newRecordingProgram()
	blend := float32(0.5)

	DrawObject(p, &fakeMesh{name: "rock", log: log}, &fakeTexture{name: "tex", log: log}, DrawParams{
		Model:    mgl32.Ident4(),
		Material: DefaultMaterial,
		Blend:    &blend,
	})

	assert.Equal(t, []float32{0.5}, p.floats("blend"))
}
