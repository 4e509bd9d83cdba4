package raster

import (
	"image/color"

	"github.com/Faultbox/pinhole/internal/framebuffer"
	"github.com/Faultbox/pinhole/pkg/math"
)

// rasterizer fills triangles into a framebuffer.
type rasterizer struct {
	fb          *framebuffer.Framebuffer
	near        float64
	perspective bool
}

// fill scan-converts a counter-clockwise triangle over box and returns the
// number of pixels that passed the depth test.
func (r *rasterizer) fill(v0, v1, v2 vertex, box [4]int, c color.RGBA) int {
	written := 0
	scan(v0, v1, v2, box, func(x, y int, w0, w1, w2 float64) {
		z := r.depth(v0, v1, v2, w0, w1, w2)
		if z < r.near {
			return
		}
		if r.fb.DepthTest(x, y, z, c) {
			written++
		}
	})
	return written
}

// depth interpolates camera-space depth at the given barycentric weights.
// Perspective projection interpolates 1/z; orthographic interpolates z.
func (r *rasterizer) depth(v0, v1, v2 vertex, w0, w1, w2 float64) float64 {
	if !r.perspective {
		return w0*v0.z + w1*v1.z + w2*v2.z
	}
	return 1 / (w0/v0.z + w1/v1.z + w2/v2.z)
}

// scan calls visit for every pixel centre in box covered by the triangle.
// The triangle must already be counter-clockwise on screen. A pixel centre on
// an edge shared by two triangles is visited for exactly one of them.
func scan(v0, v1, v2 vertex, box [4]int, visit func(x, y int, w0, w1, w2 float64)) {
	area := edgeFn(v0.p, v1.p, v2.p)
	if area <= 0 {
		return
	}
	own0, own1, own2 := owns(v1.p, v2.p), owns(v2.p, v0.p), owns(v0.p, v1.p)

	for y := box[1]; y <= box[3]; y++ {
		for x := box[0]; x <= box[2]; x++ {
			p := math.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}

			e0 := edgeFn(v1.p, v2.p, p)
			e1 := edgeFn(v2.p, v0.p, p)
			e2 := edgeFn(v0.p, v1.p, p)
			if !inside(e0, own0) || !inside(e1, own1) || !inside(e2, own2) {
				continue
			}
			visit(x, y, e0/area, e1/area, e2/area)
		}
	}
}

func inside(e float64, owned bool) bool {
	return e > 0 || (e == 0 && owned)
}

// edgeFn is the signed edge function of point p against edge a->b.
// It is evaluated with the endpoints in a fixed order so that
// edgeFn(a, b, p) == -edgeFn(b, a, p) holds exactly in floating point.
func edgeFn(a, b, p math.Vec2) float64 {
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		return -p.Sub(b).Cross(a.Sub(b))
	}
	return p.Sub(a).Cross(b.Sub(a))
}

// owns reports whether samples exactly on edge a->b belong to the triangle.
// Of two triangles sharing an edge, they traverse it in opposite directions,
// so exactly one of them owns it.
func owns(a, b math.Vec2) bool {
	d := b.Sub(a)
	return d.Y > 0 || (d.Y == 0 && d.X > 0)
}
