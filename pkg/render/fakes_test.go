package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type uniformCall struct {
	name  string
	value any
}

// recordingProgram keeps every upload in order and the latest value per name
type recordingProgram struct {
	calls  []uniformCall
	values map[string]any
	uses   int
}

func newRecordingProgram() *recordingProgram {
	return &recordingProgram{values: make(map[string]any)}
}

func (p *recordingProgram) set(name string, value any) {
	p.calls = append(p.calls, uniformCall{name, value})
	p.values[name] = value
}

func (p *recordingProgram) Use()                                { p.uses++ }
func (p *recordingProgram) SetBool(name string, value bool)     { p.set(name, value) }
func (p *recordingProgram) SetFloat(name string, value float32) { p.set(name, value) }
func (p *recordingProgram) SetVec3(name string, vec mgl32.Vec3) { p.set(name, vec) }
func (p *recordingProgram) SetMat4(name string, mat mgl32.Mat4) { p.set(name, mat) }
func (p *recordingProgram) SetSampler(name string, unit int32)  { p.set(name, unit) }

// floats returns every value uploaded to name, in order
func (p *recordingProgram) floats(name string) []float32 {
	var out []float32
	for _, c := range p.calls {
		if c.name == name {
			out = append(out, c.value.(float32))
		}
	}
	return out
}

// drawLog is shared by meshes and textures to check bind/draw/unbind ordering
type drawLog struct {
	events []string
}

type fakeMesh struct {
	name string
	log  *drawLog
	// program, when set, captures the model matrix current at draw time
	program *recordingProgram
	models  []mgl32.Mat4
}

func (m *fakeMesh) Draw() {
	m.log.events = append(m.log.events, "draw "+m.name)
	if m.program != nil {
		m.models = append(m.models, m.program.values["model"].(mgl32.Mat4))
	}
}

type fakeTexture struct {
	name  string
	log   *drawLog
	bound bool
}

func (t *fakeTexture) Bind(unit uint32) {
	t.bound = true
	t.log.events = append(t.log.events, "bind "+t.name)
}

func (t *fakeTexture) Unbind(unit uint32) {
	t.bound = false
	t.log.events = append(t.log.events, "unbind "+t.name)
}

type fakeWindow struct {
	now         float64
	shouldClose bool
	closeAfter  int
	frames      int
	keys        map[glfw.Key]bool
	cursorX     float64
	cursorY     float64
	titles      []string
	viewport    [2]int
	wireframe   bool
	fullscreen  bool
	native      [2]int
	clears      int
	swaps       int
	polls       int
	// step advances now on every swap
	step float64
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{
		keys:    make(map[glfw.Key]bool),
		cursorX: float64(width) / 2,
		cursorY: float64(height) / 2,
		native:  [2]int{2560, 1440},
	}
}

func (w *fakeWindow) ShouldClose() bool {
	if w.closeAfter > 0 && w.frames >= w.closeAfter {
		return true
	}
	return w.shouldClose
}
func (w *fakeWindow) SetShouldClose(value bool) { w.shouldClose = value }
func (w *fakeWindow) PollEvents()               { w.polls++ }
func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	w.frames++
	w.now += w.step
}
func (w *fakeWindow) Clear()                        { w.clears++ }
func (w *fakeWindow) Time() float64                 { return w.now }
func (w *fakeWindow) SetTitle(title string)         { w.titles = append(w.titles, title) }
func (w *fakeWindow) KeyDown(key glfw.Key) bool     { return w.keys[key] }
func (w *fakeWindow) CursorPos() (x, y float64)     { return w.cursorX, w.cursorY }
func (w *fakeWindow) SetCursorPos(x, y float64)     { w.cursorX, w.cursorY = x, y }
func (w *fakeWindow) SetViewport(width, height int) { w.viewport = [2]int{width, height} }
func (w *fakeWindow) SetWireframe(enabled bool)     { w.wireframe = enabled }
func (w *fakeWindow) SetFullscreen(enabled bool, windowedWidth, windowedHeight int) (int, int) {
	w.fullscreen = enabled
	if enabled {
		return w.native[0], w.native[1]
	}
	return windowedWidth, windowedHeight
}
