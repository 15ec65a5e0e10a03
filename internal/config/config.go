// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics" toml:"graphics"`
	Viewer      ViewerConfig      `yaml:"viewer" toml:"viewer"`
	Camera      CameraConfig      `yaml:"camera" toml:"camera"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
	Screenshots ScreenshotsConfig `yaml:"screenshots" toml:"screenshots"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Fullscreen bool    `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool    `yaml:"vsync" toml:"vsync"`
	MSAA       int     `yaml:"msaa" toml:"msaa"`
	FPSLimit   int     `yaml:"fps_limit" toml:"fps_limit"`
	UIScale    float32 `yaml:"ui_scale" toml:"ui_scale"`
	ShowStats  bool    `yaml:"show_stats" toml:"show_stats"`
}

// ViewerConfig holds what is shown and how it animates.
type ViewerConfig struct {
	Subject        string  `yaml:"subject" toml:"subject"`
	StartInDemo    bool    `yaml:"start_in_demo" toml:"start_in_demo"`
	AnimationSpeed float64 `yaml:"animation_speed" toml:"animation_speed"`
	Paused         bool    `yaml:"paused" toml:"paused"`
	Outlines       bool    `yaml:"outlines" toml:"outlines"`
}

// CameraConfig holds orbit control settings.
type CameraConfig struct {
	DragSensitivity float32 `yaml:"drag_sensitivity" toml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity" toml:"zoom_sensitivity"`
	InvertY         bool    `yaml:"invert_y" toml:"invert_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// ScreenshotsConfig holds where F12 captures go.
type ScreenshotsConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Prefix string `yaml:"prefix" toml:"prefix"`
}

// Subjects that can be opened in the demo section.
var Subjects = []string{"geometry", "biology", "history"}

var levels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
			FPSLimit:   0,
			UIScale:    1,
		},
		Viewer: ViewerConfig{
			Subject:        "geometry",
			AnimationSpeed: 1,
			Outlines:       true,
		},
		Camera: CameraConfig{
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshots: ScreenshotsConfig{
			Dir:    "screenshots",
			Prefix: "learn3d",
		},
	}
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width < 0 || c.Graphics.Height < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.MSAA < 0 || c.Graphics.MSAA > 16 {
		errs = append(errs, fmt.Errorf("graphics: msaa %d out of range [0, 16]", c.Graphics.MSAA))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative fps_limit %d", c.Graphics.FPSLimit))
	}
	if c.Graphics.UIScale < 1 || c.Graphics.UIScale > 4 {
		errs = append(errs, fmt.Errorf("graphics: ui_scale %g out of range [1, 4]", c.Graphics.UIScale))
	}
	if !slices.Contains(Subjects, c.Viewer.Subject) {
		errs = append(errs, fmt.Errorf("viewer: unknown subject %q", c.Viewer.Subject))
	}
	if c.Viewer.AnimationSpeed <= 0 || c.Viewer.AnimationSpeed > 10 {
		errs = append(errs, fmt.Errorf("viewer: animation_speed %g out of range (0, 10]", c.Viewer.AnimationSpeed))
	}
	if c.Camera.DragSensitivity <= 0 || c.Camera.ZoomSensitivity <= 0 {
		errs = append(errs, errors.New("camera: sensitivities must be positive"))
	}
	if !slices.Contains(levels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}
