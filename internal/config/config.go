// Package config holds the viewer settings. Values start from the built-in
// defaults, are overlaid by an optional YAML file and finally by command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the windowed-mode surface.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
	// Fullscreen starts the viewer on the primary monitor.
	Fullscreen bool `yaml:"fullscreen"`
}

// CameraConfig tunes the first-person controller.
type CameraConfig struct {
	Start            [3]float32 `yaml:"start"`
	MoveSpeed        float32    `yaml:"move_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	ZoomSensitivity  float32    `yaml:"zoom_sensitivity"`
	FOV              float32    `yaml:"fov"`
}

// Config is the complete set of viewer settings.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Camera  CameraConfig `yaml:"camera"`
	Assets  string       `yaml:"assets"`
	Shaders string       `yaml:"shaders"`
	Debug   bool         `yaml:"debug"`
}

// Default returns the settings the viewer uses when nothing is overridden.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "OpenGL Lighting",
			Width:  1920,
			Height: 1080,
			VSync:  true,
		},
		Camera: CameraConfig{
			Start:            [3]float32{0, 2, 10},
			MoveSpeed:        5.0,
			MouseSensitivity: 0.1,
			ZoomSensitivity:  -3.0,
			FOV:              45.0,
		},
		Assets:  "assets",
		Shaders: "assets/shaders",
	}
}

// LoadFile overlays the YAML document at path onto cfg.
func LoadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(cfg, data)
}

// Parse overlays a YAML document onto cfg. Keys absent from the document keep their value.
func Parse(cfg Config, data []byte) (Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 120 {
		return fmt.Errorf("camera fov %.1f outside [1, 120]", c.Camera.FOV)
	}
	return nil
}

// FromArgs builds the configuration for a process invocation.
func FromArgs(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML settings file")
	assets := fs.String("assets", "", "Asset root directory (models/, textures/)")
	shaders := fs.String("shaders", "", "Shader source directory")
	width := fs.Int("width", 0, "Windowed width")
	height := fs.Int("height", 0, "Windowed height")
	vsync := fs.Bool("vsync", true, "Synchronize presentation with the display")
	fullscreen := fs.Bool("fullscreen", false, "Start on the primary monitor")
	debug := fs.Bool("debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *configPath != "" {
		var err error
		if cfg, err = LoadFile(cfg, *configPath); err != nil {
			return Config{}, err
		}
	}

	// Only flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.Assets = *assets
		case "shaders":
			cfg.Shaders = *shaders
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "vsync":
			cfg.Window.VSync = *vsync
		case "fullscreen":
			cfg.Window.Fullscreen = *fullscreen
		case "debug":
			cfg.Debug = *debug
		}
	})

	return cfg, cfg.Validate()
}
