package raster

import (
	"image/color"

	"github.com/Faultbox/pinhole/pkg/math"
)

// Orientation is the object rotation applied before the camera transform,
// in degrees. Any real value is accepted.
type Orientation struct {
	Yaw   float64 // rotation in the XZ plane (about Y)
	Pitch float64 // rotation in the YZ plane (about X)
	Roll  float64 // rotation in the XY plane (about Z)
}

// Matrix returns RotationXZ(yaw) * RotationYZ(pitch) * RotationXY(roll).
func (o Orientation) Matrix() math.Matrix {
	m := math.Must(math.RotationXZ(o.Yaw).Mul(math.RotationYZ(o.Pitch)))
	return math.Must(m.Mul(math.RotationXY(o.Roll)))
}

// Options selects what a render draws. Fill, wireframe and bounding boxes
// are independent of each other.
type Options struct {
	ShowFaces         bool
	ShowWireframe     bool
	ShowBoundingBoxes bool
	Background        color.RGBA
	BoundingBoxColor  color.RGBA
}

// DefaultOptions draws filled faces on black with no overlays.
func DefaultOptions() Options {
	return Options{
		ShowFaces:        true,
		Background:       color.RGBA{A: 255},
		BoundingBoxColor: color.RGBA{R: 255, A: 255},
	}
}

// Stats counts what happened to each triangle during a render.
type Stats struct {
	Triangles     int // submitted
	Drawn         int // reached scan conversion
	Culled        int // bounding box entirely off screen
	Degenerate    int // zero raster area or non-finite coordinates
	BehindEye     int // a vertex at or behind the eye plane
	PixelsWritten int // depth tests passed
}
