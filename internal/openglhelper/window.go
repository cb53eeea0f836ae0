package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// InputHandler receives the window's input events. The window forwards the
// GLFW callbacks to it unchanged.
type InputHandler interface {
	OnKey(key glfw.Key, action glfw.Action)
	OnScroll(xoffset, yoffset float64)
	OnResize(width, height int)
}

// WindowOptions configures NewWindow.
type WindowOptions struct {
	Width      int
	Height     int
	Title      string
	VSync      bool
	Fullscreen bool
	ClearColor mgl32.Vec4
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
	wireframe  bool
	fullscreen bool
}

// NewWindow creates a new GLFW window with OpenGL context
func NewWindow(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	glfwWindow, err := glfw.CreateWindow(width, height, opts.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Configure global OpenGL state
	gl.ClearColor(opts.ClearColor.X(), opts.ClearColor.Y(), opts.ClearColor.Z(), opts.ClearColor.W())
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      opts.Title,
		fullscreen: opts.Fullscreen,
	}

	glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	w.SetCursorPos(float64(width)/2, float64(height)/2)

	return w, nil
}

// GLVersion reports the version string of the current context.
func (w *Window) GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// SetInputHandler routes key, scroll and framebuffer-size events to h.
func (w *Window) SetInputHandler(h InputHandler) {
	w.glfwWindow.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		h.OnKey(key, action)
	})
	w.glfwWindow.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		h.OnScroll(xoff, yoff)
	})
	w.glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		h.OnResize(width, height)
	})
}

// Clear clears the color and depth buffers
func (w *Window) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose requests (or cancels) closing the window
func (w *Window) SetShouldClose(value bool) {
	w.glfwWindow.SetShouldClose(value)
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Size returns the window dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// SetViewport records a new framebuffer size and resizes the GL viewport
func (w *Window) SetViewport(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// KeyDown reports whether key is currently held
func (w *Window) KeyDown(key glfw.Key) bool {
	return w.glfwWindow.GetKey(key) == glfw.Press
}

// CursorPos returns the cursor position in screen coordinates
func (w *Window) CursorPos() (x, y float64) {
	return w.glfwWindow.GetCursorPos()
}

// SetCursorPos moves the cursor
func (w *Window) SetCursorPos(x, y float64) {
	w.glfwWindow.SetCursorPos(x, y)
}

// SetWireframe switches polygon rasterization between lines and fill
func (w *Window) SetWireframe(enabled bool) {
	w.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetFullscreen moves the window onto the primary monitor at its native
// resolution, or back to a windowed surface of the given size. It returns
// the resulting dimensions.
func (w *Window) SetFullscreen(enabled bool, windowedWidth, windowedHeight int) (width, height int) {
	if enabled {
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		if mode == nil {
			return w.width, w.height
		}
		w.glfwWindow.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		w.width, w.height = mode.Width, mode.Height
	} else {
		w.glfwWindow.SetMonitor(nil, 100, 100, windowedWidth, windowedHeight, 0)
		w.width, w.height = windowedWidth, windowedHeight
	}
	w.fullscreen = enabled
	return w.width, w.height
}

// GLFWWindow returns the underlying GLFW window
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}

// Wireframe reports whether polygons are drawn as lines
func (w *Window) Wireframe() bool {
	return w.wireframe
}

// Fullscreen reports whether the window occupies the primary monitor
func (w *Window) Fullscreen() bool {
	return w.fullscreen
}
