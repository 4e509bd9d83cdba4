package config

import (
	gomath "math"

	"github.com/Faultbox/pinhole/internal/camera"
	"github.com/Faultbox/pinhole/internal/logger"
	"github.com/Faultbox/pinhole/internal/raster"
	"github.com/Faultbox/pinhole/pkg/math"
)

// Build creates a camera from the section. The first rejected parameter
// aborts the build.
func (c CameraConfig) Build() (*camera.Pinhole, error) {
	gate, err := camera.ParseResolutionGate(c.Gate)
	if err != nil {
		return nil, err
	}
	proj, err := camera.ParseProjection(c.Projection)
	if err != nil {
		return nil, err
	}
	ratio, err := camera.ParseAspectRatio(c.AspectRatio)
	if err != nil {
		return nil, err
	}

	height := int(gomath.Round(ratio.HeightForWidth(float64(c.Width), float64(c.Height))))

	cam := camera.New()
	steps := []func() error{
		func() error { return cam.SetFilmAperture(c.ApertureWidth, c.ApertureHeight) },
		func() error {
			if c.FieldOfView > 0 {
				return cam.SetFieldOfView(c.FieldOfView)
			}
			return cam.SetFocalLength(c.FocalLength)
		},
		func() error { return cam.SetClippingPlanes(c.Near, c.Far) },
		func() error { return cam.SetImageSize(c.Width, height) },
		func() error { return cam.SetResolutionGate(gate) },
		func() error { return cam.SetProjection(proj) },
		func() error { return cam.LookAt(vec(c.Position), vec(c.Target), vec(c.Up)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return cam, nil
}

func vec(v [3]float64) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Options converts the section to rasterizer options.
func (r RenderConfig) Options() (raster.Options, error) {
	bg, err := ParseColor(r.Background)
	if err != nil {
		return raster.Options{}, err
	}
	box, err := ParseColor(r.BoundingBoxColor)
	if err != nil {
		return raster.Options{}, err
	}
	return raster.Options{
		ShowFaces:         r.Faces,
		ShowWireframe:     r.Wireframe,
		ShowBoundingBoxes: r.BoundingBoxes,
		Background:        bg,
		BoundingBoxColor:  box,
	}, nil
}

// Orientation returns the object rotation.
func (r RenderConfig) Orientation() raster.Orientation {
	return raster.Orientation{Yaw: r.Yaw, Pitch: r.Pitch, Roll: r.Roll}
}

// Options converts the section to logger options. Console output is always
// on; the file is added when log_file is set.
func (l LoggingConfig) Options() logger.Options {
	opts := logger.Options{Level: l.Level, Console: true, JSON: l.JSON}
	if l.LogFile != "" {
		opts.File = logger.DefaultFileConfig(l.LogFile)
	}
	return opts
}
