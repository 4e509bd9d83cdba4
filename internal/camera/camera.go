// Package camera provides the pinhole camera model used by the rasterizer.
package camera

import (
	"errors"
	"fmt"
	gomath "math"
	"sync"

	"github.com/Faultbox/pinhole/pkg/math"
)

// MMPerInch converts film aperture inches to millimetres.
const MMPerInch = 25.4

// Camera errors.
var (
	ErrInvalidParameter  = errors.New("invalid camera parameter")
	ErrNotAffine4x4      = errors.New("world transform must be a 4x4 matrix")
	ErrSingularTransform = errors.New("world transform is not invertible")
)

// Default camera settings: a 35mm-style film back with a 20mm lens.
const (
	DefaultFocalLength    = 20.0  // mm
	DefaultApertureWidth  = 0.825 // inches
	DefaultApertureHeight = 0.446 // inches
	DefaultNear           = 1.0
	DefaultFar            = 1000.0
	DefaultImageWidth     = 512
	DefaultImageHeight    = 512
)

// params is the full mutable camera state. Derived values are recomputed
// from it on every change.
type params struct {
	focalLength    float64
	fieldOfView    float64
	apertureWidth  float64
	apertureHeight float64
	near, far      float64
	width, height  int
	gate           ResolutionGate
	projection     Projection
	cameraToWorld  math.Matrix
	worldToCamera  math.Matrix
	canvas         Canvas
}

// Pinhole is an idealised pinhole camera described by photographic
// parameters: lens focal length, film aperture, clipping planes, output
// resolution and a camera-to-world transform.
//
// All setters validate their input and commit the new state, including the
// derived canvas, under a single lock; a rejected call leaves the camera
// unchanged. Pinhole is safe for concurrent use.
type Pinhole struct {
	mu sync.RWMutex
	p  params
}

// New creates a camera with the default settings, placed at (0, 0, 20)
// looking down -Z.
func New() *Pinhole {
	p := params{
		focalLength:    DefaultFocalLength,
		apertureWidth:  DefaultApertureWidth,
		apertureHeight: DefaultApertureHeight,
		near:           DefaultNear,
		far:            DefaultFar,
		width:          DefaultImageWidth,
		height:         DefaultImageHeight,
		gate:           Overscan,
		projection:     Perspective,
		cameraToWorld:  math.Translation(0, 0, 20),
	}
	p.fieldOfView = fieldOfView(p.apertureWidth, p.focalLength)
	p.worldToCamera = math.Must(p.cameraToWorld.Inverse())
	p.canvas = computeCanvas(&p)
	return &Pinhole{p: p}
}

// fieldOfView returns the horizontal angle of view in degrees.
func fieldOfView(apertureWidth, focalLength float64) float64 {
	return 2 * gomath.Atan((apertureWidth*MMPerInch/2)/focalLength) * 180 / gomath.Pi
}

// focalLength is the inverse of fieldOfView.
func focalLength(apertureWidth, fovDegrees float64) float64 {
	return apertureWidth * MMPerInch / (2 * gomath.Tan(fovDegrees*gomath.Pi/180/2))
}

// computeCanvas derives the near-plane canvas, applying the resolution gate.
func computeCanvas(p *params) Canvas {
	top := (p.apertureHeight * MMPerInch / 2 / p.focalLength) * p.near
	right := (p.apertureWidth * MMPerInch / 2 / p.focalLength) * p.near

	filmAspect := p.apertureWidth / p.apertureHeight
	deviceAspect := float64(p.width) / float64(p.height)

	xScale, yScale := 1.0, 1.0
	switch p.gate {
	case Fill:
		if filmAspect > deviceAspect {
			xScale = deviceAspect / filmAspect
		} else {
			yScale = filmAspect / deviceAspect
		}
	case Overscan:
		if filmAspect > deviceAspect {
			yScale = filmAspect / deviceAspect
		} else {
			xScale = deviceAspect / filmAspect
		}
	}

	top *= yScale
	right *= xScale
	return Canvas{Top: top, Bottom: -top, Left: -right, Right: right}
}

// update applies fn to a copy of the state and commits it only if fn
// succeeds. The canvas is always recomputed.
func (c *Pinhole) update(fn func(p *params) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.p
	if err := fn(&next); err != nil {
		return err
	}
	next.canvas = computeCanvas(&next)
	c.p = next
	return nil
}

func positive(name string, v float64) error {
	if !(v > 0) || gomath.IsInf(v, 0) {
		return fmt.Errorf("%s must be positive and finite, got %g: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

// SetFocalLength sets the lens focal length in millimetres and recomputes
// the field of view.
func (c *Pinhole) SetFocalLength(mm float64) error {
	if err := positive("focal length", mm); err != nil {
		return err
	}
	return c.update(func(p *params) error {
		p.focalLength = mm
		p.fieldOfView = fieldOfView(p.apertureWidth, mm)
		return nil
	})
}

// SetFieldOfView sets the horizontal angle of view in degrees, which must lie
// in (0, 180), and recomputes the focal length.
func (c *Pinhole) SetFieldOfView(degrees float64) error {
	if !(degrees > 0 && degrees < 180) {
		return fmt.Errorf("field of view must be in (0, 180), got %g: %w", degrees, ErrInvalidParameter)
	}
	return c.update(func(p *params) error {
		p.fieldOfView = degrees
		p.focalLength = focalLength(p.apertureWidth, degrees)
		return nil
	})
}

// SetFilmAperture sets the film back size in inches. The focal length is
// kept and the field of view follows.
func (c *Pinhole) SetFilmAperture(width, height float64) error {
	if err := positive("film aperture width", width); err != nil {
		return err
	}
	if err := positive("film aperture height", height); err != nil {
		return err
	}
	return c.update(func(p *params) error {
		p.apertureWidth = width
		p.apertureHeight = height
		p.fieldOfView = fieldOfView(width, p.focalLength)
		return nil
	})
}

// SetClippingPlanes sets the near and far clipping distances (0 < near < far).
func (c *Pinhole) SetClippingPlanes(near, far float64) error {
	if err := positive("near clipping plane", near); err != nil {
		return err
	}
	if err := positive("far clipping plane", far); err != nil {
		return err
	}
	if near >= far {
		return fmt.Errorf("near %g must be less than far %g: %w", near, far, ErrInvalidParameter)
	}
	return c.update(func(p *params) error {
		p.near = near
		p.far = far
		return nil
	})
}

// SetImageSize sets the output resolution in pixels.
func (c *Pinhole) SetImageSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive: %w", width, height, ErrInvalidParameter)
	}
	return c.update(func(p *params) error {
		p.width = width
		p.height = height
		return nil
	})
}

// SetResolutionGate sets the film/image fit policy.
func (c *Pinhole) SetResolutionGate(g ResolutionGate) error {
	if g != Fill && g != Overscan {
		return fmt.Errorf("resolution gate %d: %w", int(g), ErrInvalidParameter)
	}
	return c.update(func(p *params) error {
		p.gate = g
		return nil
	})
}

// SetProjection selects perspective or orthographic projection.
func (c *Pinhole) SetProjection(proj Projection) error {
	if proj != Perspective && proj != Orthographic {
		return fmt.Errorf("projection %d: %w", int(proj), ErrInvalidParameter)
	}
	return c.update(func(p *params) error {
		p.projection = proj
		return nil
	})
}

// SetWorldTransform sets the camera-to-world matrix. It must be 4x4 and
// invertible; the world-to-camera matrix is cached as its inverse.
func (c *Pinhole) SetWorldTransform(m math.Matrix) error {
	if m.Rows() != 4 || m.Cols() != 4 {
		return fmt.Errorf("got %dx%d: %w", m.Rows(), m.Cols(), ErrNotAffine4x4)
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSingularTransform, err)
	}
	return c.update(func(p *params) error {
		p.cameraToWorld = m
		p.worldToCamera = inv
		return nil
	})
}

// LookAt places the camera at eye facing target.
func (c *Pinhole) LookAt(eye, target, up math.Vec3) error {
	m, err := math.LookAt(eye, target, up)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return c.SetWorldTransform(m)
}

// FocalLength returns the focal length in millimetres.
func (c *Pinhole) FocalLength() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.focalLength
}

// FieldOfView returns the horizontal angle of view in degrees.
func (c *Pinhole) FieldOfView() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.fieldOfView
}

// FilmAperture returns the film back width and height in inches.
func (c *Pinhole) FilmAperture() (width, height float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.apertureWidth, c.p.apertureHeight
}

// ClippingPlanes returns the near and far clipping distances.
func (c *Pinhole) ClippingPlanes() (near, far float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.near, c.p.far
}

// ImageSize returns the output resolution in pixels.
func (c *Pinhole) ImageSize() (width, height int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.width, c.p.height
}

// ResolutionGate returns the fit policy.
func (c *Pinhole) ResolutionGate() ResolutionGate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.gate
}

// Projection returns the projection mode.
func (c *Pinhole) Projection() Projection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.projection
}

// Canvas returns the near-plane canvas rectangle.
func (c *Pinhole) Canvas() Canvas {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.canvas
}

// CameraToWorld returns the camera-to-world matrix.
func (c *Pinhole) CameraToWorld() math.Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.cameraToWorld
}

// WorldToCamera returns the world-to-camera matrix.
func (c *Pinhole) WorldToCamera() math.Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.p.worldToCamera
}

// Snapshot returns an immutable copy of everything a render needs.
func (c *Pinhole) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		near:          c.p.near,
		far:           c.p.far,
		width:         c.p.width,
		height:        c.p.height,
		canvas:        c.p.canvas,
		projection:    c.p.projection,
		worldToCamera: c.p.worldToCamera,
	}
}
