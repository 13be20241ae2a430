// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// ViewerConfig holds camera, navigation and sphere settings.
type ViewerConfig struct {
	FOV              float32       `yaml:"fov"`
	MinFOV           float32       `yaml:"min_fov"`
	MaxFOV           float32       `yaml:"max_fov"`
	PitchLimit       float32       `yaml:"pitch_limit"`
	MouseSensitivity float32       `yaml:"mouse_sensitivity"`
	MoveSpeed        float32       `yaml:"move_speed"` // Units per tick
	ZoomStep         float32       `yaml:"zoom_step"`  // Degrees per tick
	TickInterval     time.Duration `yaml:"tick_interval"`
	SphereRadius     float32       `yaml:"sphere_radius"`
	SphereSegments   int           `yaml:"sphere_segments"`
	Near             float32       `yaml:"near"`
	Far              float32       `yaml:"far"`

	// RecenterOnZoomOut resets the camera position to the origin on every
	// zoom-out tick.
	RecenterOnZoomOut bool `yaml:"recenter_on_zoom_out"`
}

// ScreenshotConfig holds screenshot capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "360 VR Image Viewer",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			FOV:               100,
			MinFOV:            30,
			MaxFOV:            120,
			PitchLimit:        89,
			MouseSensitivity:  0.2,
			MoveSpeed:         0.2,
			ZoomStep:          1,
			TickInterval:      16 * time.Millisecond,
			SphereRadius:      500,
			SphereSegments:    64,
			Near:              0.1,
			Far:               1000,
			RecenterOnZoomOut: true,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "panoview",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
