package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/pinhole/pkg/math"
)

// ErrInvalidSnapshot is returned for a Snapshot that was not taken from a camera.
var ErrInvalidSnapshot = errors.New("invalid camera snapshot")

// Snapshot is a read-only copy of the camera state used for one render.
// The zero value is invalid; obtain one from Pinhole.Snapshot.
type Snapshot struct {
	near, far     float64
	width, height int
	canvas        Canvas
	projection    Projection
	worldToCamera math.Matrix
}

// Near returns the near clipping distance.
func (s Snapshot) Near() float64 { return s.near }

// Far returns the far clipping distance.
func (s Snapshot) Far() float64 { return s.far }

// ImageWidth returns the output width in pixels.
func (s Snapshot) ImageWidth() int { return s.width }

// ImageHeight returns the output height in pixels.
func (s Snapshot) ImageHeight() int { return s.height }

// Canvas returns the near-plane canvas.
func (s Snapshot) Canvas() Canvas { return s.canvas }

// Projection returns the projection mode.
func (s Snapshot) Projection() Projection { return s.projection }

// Validate reports whether the snapshot can drive a render.
func (s Snapshot) Validate() error {
	switch {
	case s.width <= 0 || s.height <= 0:
		return fmt.Errorf("image size %dx%d: %w", s.width, s.height, ErrInvalidSnapshot)
	case !(s.near > 0) || !(s.far > s.near):
		return fmt.Errorf("clipping planes %g..%g: %w", s.near, s.far, ErrInvalidSnapshot)
	case s.worldToCamera.Rows() != 4 || s.worldToCamera.Cols() != 4:
		return fmt.Errorf("no world-to-camera transform: %w", ErrInvalidSnapshot)
	}
	return nil
}

// WorldToCamera returns the world-to-camera matrix.
func (s Snapshot) WorldToCamera() (math.Matrix, error) {
	if err := s.Validate(); err != nil {
		return math.Matrix{}, err
	}
	return s.worldToCamera, nil
}

// ProjectionMatrix returns the perspective or orthographic projection built
// from the clipping planes and canvas.
func (s Snapshot) ProjectionMatrix() (math.Matrix, error) {
	if err := s.Validate(); err != nil {
		return math.Matrix{}, err
	}
	c := s.canvas
	switch s.projection {
	case Perspective:
		return math.Perspective(c.Left, c.Right, c.Bottom, c.Top, s.near, s.far)
	case Orthographic:
		return math.Orthographic(c.Left, c.Right, c.Bottom, c.Top, s.near, s.far)
	}
	return math.Matrix{}, fmt.Errorf("projection %v: %w", s.projection, ErrInvalidSnapshot)
}
