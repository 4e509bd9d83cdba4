package raster

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/pinhole/pkg/math"
)

// coverage scan-converts tris into a size x size grid and returns how often
// each pixel was visited.
func coverage(t *testing.T, size int, tris ...[3]vertex) []int {
	t.Helper()
	counts := make([]int, size*size)
	for _, tri := range tris {
		v0, v1, v2, ok := normalizeWinding(tri[0], tri[1], tri[2])
		if !ok {
			t.Fatalf("degenerate test triangle %v", tri)
		}
		box, onScreen := boundingBox(v0, v1, v2, size, size)
		if !onScreen {
			continue
		}
		scan(v0, v1, v2, box, func(x, y int, w0, w1, w2 float64) {
			if gomath.Abs(w0+w1+w2-1) > 1e-9 {
				t.Errorf("weights at (%d,%d) sum to %v", x, y, w0+w1+w2)
			}
			counts[y*size+x]++
		})
	}
	return counts
}

func v(x, y float64) vertex { return vertex{p: math.Vec2{X: x, Y: y}, z: 1} }

func TestSharedDiagonalDrawnOnce(t *testing.T) {
	// The diagonal passes exactly through pixel centres.
	a, b, c, d := v(10, 10), v(50, 10), v(50, 50), v(10, 50)

	for _, order := range [][2][3]vertex{
		{{a, b, c}, {a, c, d}},
		{{c, b, a}, {d, c, a}},
		{{b, c, a}, {c, a, d}},
	} {
		counts := coverage(t, 64, order[0], order[1])
		total := 0
		for i, n := range counts {
			if n > 1 {
				t.Fatalf("pixel (%d,%d) drawn %d times", i%64, i/64, n)
			}
			total += n
		}
		if total != 40*40 {
			t.Errorf("covered %d pixels, want %d", total, 40*40)
		}
	}
}

func TestFanCentreDrawnOnce(t *testing.T) {
	centre := v(32.5, 32.5)
	ring := []vertex{
		v(42.5, 32.5), v(37.5, 42.5), v(27.5, 42.5),
		v(22.5, 32.5), v(27.5, 22.5), v(37.5, 22.5),
	}
	var tris [][3]vertex
	for i := range ring {
		tris = append(tris, [3]vertex{centre, ring[i], ring[(i+1)%len(ring)]})
	}

	counts := coverage(t, 64, tris...)
	if n := counts[32*64+32]; n != 1 {
		t.Errorf("fan centre drawn %d times, want 1", n)
	}
	for i, n := range counts {
		if n > 1 {
			t.Fatalf("pixel (%d,%d) drawn %d times", i%64, i/64, n)
		}
	}
}

func TestEdgeFunctionAntisymmetric(t *testing.T) {
	a, b := math.Vec2{X: 0.1, Y: 0.7}, math.Vec2{X: 13.3, Y: 5.9}
	for _, p := range []math.Vec2{{X: 3.3, Y: 2.2}, {X: 7.7, Y: 3.3}, {X: -1, Y: 20}} {
		if edgeFn(a, b, p) != -edgeFn(b, a, p) {
			t.Errorf("edgeFn not antisymmetric at %v", p)
		}
	}
}

func TestOwnsExactlyOneDirection(t *testing.T) {
	pairs := [][2]vertex{
		{v(0, 0), v(0, 5)},
		{v(0, 0), v(5, 0)},
		{v(0, 0), v(5, 5)},
		{v(0, 0), v(-5, 5)},
	}
	for _, p := range pairs {
		if owns(p[0].p, p[1].p) == owns(p[1].p, p[0].p) {
			t.Errorf("edge %v: ownership not exclusive", p)
		}
	}
}

func TestNormalizeWinding(t *testing.T) {
	// Clockwise on screen (y down) has positive shoelace area.
	v0, v1, v2, ok := normalizeWinding(v(0, 0), v(10, 0), v(0, 10))
	if !ok {
		t.Fatal("unexpected degenerate")
	}
	if signedArea(v0, v1, v2) >= 0 {
		t.Errorf("winding not normalized: area %v", signedArea(v0, v1, v2))
	}
	if edgeFn(v0.p, v1.p, v2.p) <= 0 {
		t.Error("normalized triangle has non-positive edge area")
	}

	if _, _, _, ok := normalizeWinding(v(0, 0), v(1, 1), v(2, 2)); ok {
		t.Error("collinear triangle not rejected")
	}
	if _, _, _, ok := normalizeWinding(v(0, 0), v(gomath.NaN(), 1), v(2, 0)); ok {
		t.Error("NaN triangle not rejected")
	}
}

func TestBoundingBoxClamp(t *testing.T) {
	box, ok := boundingBox(v(-5, -5), v(70, 3), v(3, 70), 64, 32)
	if !ok {
		t.Fatal("expected on screen")
	}
	if box != [4]int{0, 0, 63, 31} {
		t.Errorf("box = %v", box)
	}

	if _, ok := boundingBox(v(64, 0), v(80, 0), v(70, 10), 64, 64); ok {
		t.Error("box starting at width should be culled")
	}
}
