// Package raster implements the scan-conversion pipeline: object rotation,
// camera transform, projection, raster mapping, culling, edge-function
// coverage with a deterministic shared-edge rule, and depth testing.
package raster

import (
	"errors"
	"fmt"
	"image/color"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/pinhole/internal/camera"
	"github.com/Faultbox/pinhole/internal/framebuffer"
	"github.com/Faultbox/pinhole/internal/logger"
	"github.com/Faultbox/pinhole/pkg/math"
	"github.com/Faultbox/pinhole/pkg/scene"
)

// ErrSetup is returned when the camera cannot produce the matrices a render
// needs. No triangle is processed in that case.
var ErrSetup = errors.New("render setup failed")

// vertex is a raster-space position with its camera-space depth.
type vertex struct {
	p math.Vec2
	z float64
}

// pipeline holds the per-frame matrices.
type pipeline struct {
	rotation      math.Matrix
	worldToCamera math.Matrix
	projection    math.Matrix
	perspective   bool
	width, height float64
}

func newPipeline(cam camera.Snapshot, o Orientation) (*pipeline, error) {
	w2c, err := cam.WorldToCamera()
	if err != nil {
		return nil, err
	}
	proj, err := cam.ProjectionMatrix()
	if err != nil {
		return nil, err
	}
	return &pipeline{
		rotation:      o.Matrix(),
		worldToCamera: w2c,
		projection:    proj,
		perspective:   cam.Projection() == camera.Perspective,
		width:         float64(cam.ImageWidth()),
		height:        float64(cam.ImageHeight()),
	}, nil
}

// toRaster runs one object-space point through rotation, camera transform,
// projection and raster mapping. ok is false when the point is at or behind
// the eye and cannot be projected.
func (p *pipeline) toRaster(v math.Vec3) (vertex, bool, error) {
	obj, err := v.Transform(p.rotation)
	if err != nil {
		return vertex{}, false, err
	}
	cam4, err := obj.Vec4().Transform(p.worldToCamera)
	if err != nil {
		return vertex{}, false, err
	}
	cam, err := cam4.ToVec3()
	if err != nil {
		return vertex{}, false, nil
	}

	clip, err := cam.Vec4().Transform(p.projection)
	if err != nil {
		return vertex{}, false, err
	}
	if p.perspective && clip.W <= 0 {
		return vertex{}, false, nil
	}
	ndc, err := clip.ToVec3()
	if err != nil {
		return vertex{}, false, nil
	}

	xy := ndc.XY()
	return vertex{
		p: math.Vec2{X: (xy.X + 1) / 2 * p.width, Y: (1 - xy.Y) / 2 * p.height},
		z: -cam.Z,
	}, true, nil
}

// overlay is a wireframe or bounding-box outline queued until the fill pass
// is finished.
type overlay struct {
	tri   [3]vertex
	box   [4]int
	color color.RGBA
}

// Render draws s as seen through cam with the object rotated by o.
//
// The returned framebuffer belongs to the caller. Triangles with zero raster
// area are skipped and counted in Stats; a camera that cannot provide its
// world-to-camera or projection matrix fails with ErrSetup before any
// triangle is touched.
func Render(s scene.Scene, cam camera.Snapshot, o Orientation, opts Options) (*framebuffer.Framebuffer, Stats, error) {
	p, err := newPipeline(cam, o)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	fb, err := framebuffer.New(cam.ImageWidth(), cam.ImageHeight(), opts.Background, cam.Far())
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	r := &rasterizer{
		fb:          fb,
		near:        cam.Near(),
		perspective: p.perspective,
	}
	stats := Stats{Triangles: len(s)}
	var overlays []overlay

	for _, tri := range s {
		var rv [3]vertex
		visible := true
		for i, v := range tri.Vertices() {
			out, ok, err := p.toRaster(v)
			if err != nil {
				return nil, stats, fmt.Errorf("transforming vertex %v: %w", v, err)
			}
			if !ok {
				visible = false
				break
			}
			rv[i] = out
		}
		if !visible {
			stats.BehindEye++
			continue
		}

		v0, v1, v2, ok := normalizeWinding(rv[0], rv[1], rv[2])
		if !ok {
			stats.Degenerate++
			continue
		}

		box, onScreen := boundingBox(v0, v1, v2, fb.Width(), fb.Height())
		if !onScreen {
			stats.Culled++
			continue
		}

		stats.Drawn++
		if opts.ShowFaces {
			stats.PixelsWritten += r.fill(v0, v1, v2, box, tri.Color)
		}
		if opts.ShowWireframe || opts.ShowBoundingBoxes {
			overlays = append(overlays, overlay{tri: rv, box: box, color: tri.Color})
		}
	}

	for _, ov := range overlays {
		if opts.ShowBoundingBoxes {
			fb.DrawRect(ov.box[0], ov.box[1], ov.box[2], ov.box[3], opts.BoundingBoxColor)
		}
		if opts.ShowWireframe {
			drawWireframe(fb, ov.tri, ov.color)
		}
	}

	logger.Log.Debug("frame rendered",
		zap.Int("width", fb.Width()),
		zap.Int("height", fb.Height()),
		zap.Int("triangles", stats.Triangles),
		zap.Int("drawn", stats.Drawn),
		zap.Int("culled", stats.Culled),
		zap.Int("degenerate", stats.Degenerate),
		zap.Int("behind_eye", stats.BehindEye),
		zap.Int("pixels", stats.PixelsWritten),
	)

	return fb, stats, nil
}

// normalizeWinding orders the vertices counter-clockwise as seen on screen.
// The shoelace area is positive for clockwise order because raster y points
// down. ok is false for zero-area or non-finite triangles.
func normalizeWinding(v0, v1, v2 vertex) (vertex, vertex, vertex, bool) {
	area := signedArea(v0, v1, v2)
	if area == 0 || gomath.IsNaN(area) || gomath.IsInf(area, 0) {
		return v0, v1, v2, false
	}
	if area > 0 {
		v1, v2 = v2, v1
	}
	return v0, v1, v2, true
}

// signedArea is the shoelace area of the triangle, measured from v0.
func signedArea(v0, v1, v2 vertex) float64 {
	return 0.5 * v1.p.Sub(v0.p).Cross(v2.p.Sub(v0.p))
}

// boundingBox returns the pixel box [x0, y0, x1, y1] (inclusive) of the
// triangle clamped to the viewport. onScreen is false if the unclamped box
// lies entirely outside [0,width) x [0,height).
func boundingBox(v0, v1, v2 vertex, width, height int) (box [4]int, onScreen bool) {
	minX := gomath.Min(v0.p.X, gomath.Min(v1.p.X, v2.p.X))
	maxX := gomath.Max(v0.p.X, gomath.Max(v1.p.X, v2.p.X))
	minY := gomath.Min(v0.p.Y, gomath.Min(v1.p.Y, v2.p.Y))
	maxY := gomath.Max(v0.p.Y, gomath.Max(v1.p.Y, v2.p.Y))

	w, h := float64(width), float64(height)
	if maxX < 0 || minX >= w || maxY < 0 || minY >= h {
		return box, false
	}

	clamp := func(v, hi float64) int {
		return int(gomath.Max(0, gomath.Min(gomath.Floor(v), hi-1)))
	}
	return [4]int{clamp(minX, w), clamp(minY, h), clamp(maxX, w), clamp(maxY, h)}, true
}

func drawWireframe(fb *framebuffer.Framebuffer, tri [3]vertex, c color.RGBA) {
	for i := 0; i < 3; i++ {
		a, b := tri[i], tri[(i+1)%3]
		fb.DrawLine(pixel(a.p.X), pixel(a.p.Y), pixel(b.p.X), pixel(b.p.Y), c)
	}
}

// pixel converts a raster coordinate to a pixel index, saturating far
// outside the viewport so line drawing stays bounded.
func pixel(v float64) int {
	const limit = 1 << 20
	return int(gomath.Max(-limit, gomath.Min(limit, gomath.Floor(v))))
}
