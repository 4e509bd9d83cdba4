package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/pinhole/internal/camera"
	"github.com/Faultbox/pinhole/internal/logger"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks every section and returns all problems found.
func (c *Config) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	cam := c.Camera
	if cam.FieldOfView > 0 {
		if cam.FieldOfView >= 180 {
			invalid("camera.field_of_view %g must be below 180", cam.FieldOfView)
		}
	} else if !(cam.FocalLength > 0) {
		invalid("camera.focal_length %g must be positive", cam.FocalLength)
	}
	if !(cam.ApertureWidth > 0) || !(cam.ApertureHeight > 0) {
		invalid("camera aperture %gx%g must be positive", cam.ApertureWidth, cam.ApertureHeight)
	}
	if !(cam.Near > 0) || !(cam.Far > cam.Near) {
		invalid("camera clipping planes %g..%g need 0 < near < far", cam.Near, cam.Far)
	}
	if cam.Width <= 0 || cam.Height <= 0 {
		invalid("camera image size %dx%d must be positive", cam.Width, cam.Height)
	}
	if _, e := camera.ParseAspectRatio(cam.AspectRatio); e != nil {
		invalid("camera.aspect_ratio %q", cam.AspectRatio)
	}
	if _, e := camera.ParseResolutionGate(cam.Gate); e != nil {
		invalid("camera.gate %q", cam.Gate)
	}
	if _, e := camera.ParseProjection(cam.Projection); e != nil {
		invalid("camera.projection %q", cam.Projection)
	}
	if cam.Position == cam.Target {
		invalid("camera.position equals camera.target")
	}

	for name, v := range map[string]string{
		"render.background":         c.Render.Background,
		"render.bounding_box_color": c.Render.BoundingBoxColor,
		"scene.color":               c.Scene.Color,
	} {
		if _, e := ParseColor(v); e != nil {
			invalid("%s: %v", name, e)
		}
	}

	if c.Scene.Model == "" && c.Scene.Builtin == "" {
		invalid("scene needs a model or a builtin")
	}

	switch strings.ToLower(c.Output.Format) {
	case "png", "bmp":
	default:
		invalid("output.format %q must be png or bmp", c.Output.Format)
	}

	if c.Viewer.Scale < 1 {
		invalid("viewer.scale %d must be at least 1", c.Viewer.Scale)
	}
	if c.Viewer.FPSLimit < 0 {
		invalid("viewer.fps_limit %d must not be negative", c.Viewer.FPSLimit)
	}

	if _, e := logger.ParseLevel(c.Logging.Level); e != nil {
		invalid("logging.level: %v", e)
	}

	return err
}
