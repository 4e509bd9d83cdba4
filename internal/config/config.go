// Package config handles renderer configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Config holds all renderer settings.
type Config struct {
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// CameraConfig holds the pinhole camera parameters.
type CameraConfig struct {
	FocalLength    float64    `yaml:"focal_length"`    // mm
	FieldOfView    float64    `yaml:"field_of_view"`   // degrees, overrides focal_length when > 0
	ApertureWidth  float64    `yaml:"aperture_width"`  // inches
	ApertureHeight float64    `yaml:"aperture_height"` // inches
	Near           float64    `yaml:"near"`
	Far            float64    `yaml:"far"`
	Width          int        `yaml:"width"`
	Height         int        `yaml:"height"`
	AspectRatio    string     `yaml:"aspect_ratio"` // free, 4:3, 5:3, 5:4, 1:1, 16:9
	Gate           string     `yaml:"gate"`         // overscan or fill
	Projection     string     `yaml:"projection"`   // perspective or orthographic
	Position       [3]float64 `yaml:"position"`
	Target         [3]float64 `yaml:"target"`
	Up             [3]float64 `yaml:"up"`
}

// RenderConfig holds per-frame render settings.
type RenderConfig struct {
	Yaw              float64 `yaml:"yaw"`
	Pitch            float64 `yaml:"pitch"`
	Roll             float64 `yaml:"roll"`
	Faces            bool    `yaml:"faces"`
	Wireframe        bool    `yaml:"wireframe"`
	BoundingBoxes    bool    `yaml:"bounding_boxes"`
	Background       string  `yaml:"background"`         // #rrggbb
	BoundingBoxColor string  `yaml:"bounding_box_color"` // #rrggbb
}

// SceneConfig selects the model to render.
type SceneConfig struct {
	Model   string `yaml:"model"`   // path to an .obj file
	Builtin string `yaml:"builtin"` // cube or pyramid, used when model is empty
	Color   string `yaml:"color"`   // face color for imported models
}

// OutputConfig controls where rendered frames are written.
type OutputConfig struct {
	Path   string `yaml:"path"`   // explicit file path
	Dir    string `yaml:"dir"`    // directory for timestamped files when path is empty
	Format string `yaml:"format"` // png or bmp
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	Scale      int     `yaml:"scale"`       // window pixels per rendered pixel
	RotateStep float64 `yaml:"rotate_step"` // degrees per key press
	FPSLimit   int     `yaml:"fps_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			FocalLength:    20,
			ApertureWidth:  0.825,
			ApertureHeight: 0.446,
			Near:           1,
			Far:            1000,
			Width:          512,
			Height:         512,
			AspectRatio:    "free",
			Gate:           "overscan",
			Projection:     "perspective",
			Position:       [3]float64{0, 0, 20},
			Up:             [3]float64{0, 1, 0},
		},
		Render: RenderConfig{
			Yaw:              30,
			Pitch:            20,
			Faces:            true,
			Background:       "#000000",
			BoundingBoxColor: "#ff0000",
		},
		Scene: SceneConfig{
			Builtin: "cube",
			Color:   "#ffffff",
		},
		Output: OutputConfig{
			Dir:    ".",
			Format: "png",
		},
		Viewer: ViewerConfig{
			Scale:      1,
			RotateStep: 5,
			FPSLimit:   60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor is the inverse of ParseColor for opaque colors.
func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
