package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-lighting/internal/logging"
)

// Window is the windowing and GL surface the renderer drives
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)
	PollEvents()
	SwapBuffers()
	Clear()
	Time() float64
	SetTitle(title string)
	KeyDown(key glfw.Key) bool
	CursorPos() (x, y float64)
	SetCursorPos(x, y float64)
	SetViewport(width, height int)
	SetWireframe(enabled bool)
	SetFullscreen(enabled bool, windowedWidth, windowedHeight int) (width, height int)
}

// Options tunes the renderer. Zero values select the package defaults.
type Options struct {
	Title string
	// Windowed size, restored when leaving fullscreen
	Width  int
	Height int
	// Fullscreen reports that the window was created on the primary monitor
	Fullscreen bool

	MoveSpeed        float32
	MouseSensitivity float32
	ZoomSensitivity  float32

	Logger logging.Logger
}

func (o Options) withDefaults() Options {
	if o.MoveSpeed == 0 {
		o.MoveSpeed = DefaultMoveSpeed
	}
	if o.MouseSensitivity == 0 {
		o.MouseSensitivity = DefaultMouseSensitivity
	}
	if o.ZoomSensitivity == 0 {
		o.ZoomSensitivity = DefaultZoomSensitivity
	}
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	return o
}

// Renderer owns the per-frame state of the viewer: the camera, the input
// toggles and the current window size. It drives one scene through one
// lighting program.
type Renderer struct {
	window  Window
	program Program
	camera  *Camera
	scene   *Scene
	opts    Options
	log     logging.Logger

	orbit Orbit
	stats *FrameStats

	width  int
	height int

	wireframe  bool
	flashlight bool
	fullscreen bool

	// Timing
	lastFrameTime float64
	deltaTime     float32
}

// NewRenderer wires a window, program, scene and camera together.
// width and height are the window's current framebuffer size.
func NewRenderer(window Window, program Program, scene *Scene, camera *Camera, width, height int, opts Options) *Renderer {
	opts = opts.withDefaults()

	return &Renderer{
		window:     window,
		program:    program,
		camera:     camera,
		scene:      scene,
		opts:       opts,
		log:        opts.Logger,
		stats:      NewFrameStats(opts.Title, StatsInterval),
		width:      width,
		height:     height,
		fullscreen: opts.Fullscreen,
	}
}

// Run renders frames until the window is asked to close
func (r *Renderer) Run() {
	r.log.Infof("render loop started (%dx%d, %d objects, %d blocks)", r.width, r.height, len(r.scene.Objects), len(r.scene.Blocks))

	r.lastFrameTime = r.window.Time()
	frames := 0
	for !r.window.ShouldClose() {
		r.Frame()
		frames++
	}

	r.log.Infof("render loop stopped after %d frames", frames)
}

// Frame runs one iteration of the loop: input, upload, draw, present
func (r *Renderer) Frame() {
	currentTime := r.window.Time()
	if title, ok := r.stats.Tick(currentTime); ok {
		r.window.SetTitle(title)
	}
	r.deltaTime = float32(currentTime - r.lastFrameTime)

	r.window.PollEvents()
	r.processInput(r.deltaTime)

	r.window.Clear()
	r.render(r.deltaTime)

	r.window.SwapBuffers()
	r.lastFrameTime = currentTime
}

// processInput turns the cursor offset from the window centre into rotation
// and held keys into movement. The cursor is re-centred every frame.
func (r *Renderer) processInput(dt float32) {
	centerX, centerY := float64(r.width)/2.0, float64(r.height)/2.0
	mouseX, mouseY := r.window.CursorPos()

	r.camera.Rotate(
		float32(centerX-mouseX)*r.opts.MouseSensitivity,
		float32(centerY-mouseY)*r.opts.MouseSensitivity,
	)
	r.window.SetCursorPos(centerX, centerY)

	step := r.opts.MoveSpeed * dt
	worldUp := mgl32.Vec3{0, 1, 0}

	// Forward/Backward
	if r.window.KeyDown(KeyW) {
		r.camera.Move(r.camera.Forward().Mul(step))
	} else if r.window.KeyDown(KeyS) {
		r.camera.Move(r.camera.Forward().Mul(-step))
	}

	// Left/Right
	if r.window.KeyDown(KeyA) {
		r.camera.Move(r.camera.Right().Mul(-step))
	} else if r.window.KeyDown(KeyD) {
		r.camera.Move(r.camera.Right().Mul(step))
	}

	// Up/Down
	if r.window.KeyDown(KeyZ) {
		r.camera.Move(worldUp.Mul(step))
	} else if r.window.KeyDown(KeyX) {
		r.camera.Move(worldUp.Mul(-step))
	}
}

func (r *Renderer) aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// render uploads the frame uniforms and draws the scene
func (r *Renderer) render(dt float32) {
	view := r.camera.ViewMatrix()
	projection := r.camera.ProjectionMatrix(r.aspect())

	r.orbit.Advance(dt)
	orbitPos := r.orbit.Position(r.camera.Position())

	p := r.program
	p.Use()
	p.SetMat4("model", mgl32.Ident4())
	p.SetMat4("view", view)
	p.SetMat4("projection", projection)
	p.SetVec3("viewPos", r.camera.Position())
	p.SetFloat("blend", 1.0)

	SceneLighting(r.camera, orbitPos, r.flashlight).Apply(p)

	for _, obj := range r.scene.Objects {
		DrawObject(p, obj.Mesh, obj.Texture, DrawParams{
			Model:    obj.Model(),
			Material: DefaultMaterial,
		})
	}

	// The orbiting light is visualised with one of the scene's own meshes
	if marker := r.scene.Marker; marker >= 0 && marker < len(r.scene.Objects) {
		obj := r.scene.Objects[marker]
		DrawObject(p, obj.Mesh, obj.Texture, DrawParams{
			Model:    ModelMatrix(orbitPos, obj.Scale),
			Material: DefaultMaterial,
		})
	}

	blend := float32(0.25)
	for _, block := range r.scene.Blocks {
		b := blend
		DrawObject(p, block.Mesh, block.Texture, DrawParams{
			Model:    block.Model(),
			Material: DefaultMaterial,
			Blend:    &b,
		})
		blend += 0.25
	}
}

// OnKey handles key presses delivered by the window
func (r *Renderer) OnKey(key glfw.Key, action glfw.Action) {
	if action != Press {
		return
	}

	switch key {
	case KeyEscape:
		r.window.SetShouldClose(true)
	case KeyQ:
		r.ToggleWireframe()
	case KeyF:
		r.ToggleFlashlight()
	case KeyLeftCtrl:
		r.ToggleFullscreen()
	}
}

// OnScroll zooms by changing the field of view
func (r *Renderer) OnScroll(_, yoffset float64) {
	fov := float64(r.camera.FOV()) + yoffset*float64(r.opts.ZoomSensitivity)
	r.camera.SetFOV(ClampFOV(fov))
}

// OnResize follows framebuffer size changes
func (r *Renderer) OnResize(width, height int) {
	r.width = width
	r.height = height
	r.window.SetViewport(width, height)
}

// ToggleWireframe switches between line and fill rasterization
func (r *Renderer) ToggleWireframe() {
	r.wireframe = !r.wireframe
	r.window.SetWireframe(r.wireframe)
	r.log.Debugf("wireframe=%t", r.wireframe)
}

// ToggleFlashlight switches the camera spotlight
func (r *Renderer) ToggleFlashlight() {
	r.flashlight = !r.flashlight
	r.log.Debugf("flashlight=%t", r.flashlight)
}

// ToggleFullscreen moves between the monitor's native mode and the windowed size
func (r *Renderer) ToggleFullscreen() {
	r.fullscreen = !r.fullscreen
	r.width, r.height = r.window.SetFullscreen(r.fullscreen, r.opts.Width, r.opts.Height)
	r.log.Debugf("fullscreen=%t size=%dx%d", r.fullscreen, r.width, r.height)
}

// Camera returns the controlled camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Size returns the size the projection is computed for
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Wireframe reports whether wireframe rendering is on
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Flashlight reports whether the spotlight is on
func (r *Renderer) Flashlight() bool {
	return r.flashlight
}

// Fullscreen reports whether the window is on the primary monitor
func (r *Renderer) Fullscreen() bool {
	return r.fullscreen
}

// OrbitAngle returns the orbiting light's accumulated angle in degrees
func (r *Renderer) OrbitAngle() float32 {
	return r.orbit.Angle()
}
