package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-lighting/internal/config"
	"github.com/leterax/go-lighting/internal/logging"
	"github.com/leterax/go-lighting/internal/openglhelper"
	"github.com/leterax/go-lighting/pkg/render"
	"github.com/leterax/go-lighting/pkg/scene"
)

const (
	vertexShader   = "lighting_dir_point_spot.vert"
	fragmentShader = "lighting_dir_point_spot.frag"
)

var clearColor = mgl32.Vec4{0.23, 0.38, 0.47, 1.0}

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewDefaultLogger("lighting", cfg.Debug)
	if err := run(cfg, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

func run(cfg config.Config, logger logging.Logger) error {
	window, err := openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
		ClearColor: clearColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Close()
	logger.Infof("OpenGL %s", window.GLVersion())

	shader, err := openglhelper.LoadShaderFromFiles(
		filepath.Join(cfg.Shaders, vertexShader),
		filepath.Join(cfg.Shaders, fragmentShader),
	)
	if err != nil {
		return fmt.Errorf("failed to load lighting shader: %w", err)
	}
	defer shader.Delete()

	loader := scene.NewGLLoader(cfg.Assets, logger)
	defer loader.Close()

	s, err := scene.Build(loader)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	logger.Infof("scene loaded from %s", cfg.Assets)

	camera := render.NewCamera(mgl32.Vec3(cfg.Camera.Start))
	camera.SetFOV(render.ClampFOV(float64(cfg.Camera.FOV)))

	width, height := window.Size()
	renderer := render.NewRenderer(window, shader, s, camera, width, height, render.Options{
		Title:            cfg.Window.Title,
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		Fullscreen:       cfg.Window.Fullscreen,
		MoveSpeed:        cfg.Camera.MoveSpeed,
		MouseSensitivity: cfg.Camera.MouseSensitivity,
		ZoomSensitivity:  cfg.Camera.ZoomSensitivity,
		Logger:           logger,
	})
	window.SetInputHandler(renderer)

	renderer.Run()
	return nil
}
