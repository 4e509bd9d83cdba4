package scene

import (
	"image/color"

	"github.com/Faultbox/pinhole/pkg/math"
)

// Palette used by the built-in models. Fixed so renders are reproducible.
var Palette = []color.RGBA{
	{R: 230, G: 57, B: 70, A: 255},
	{R: 241, G: 250, B: 238, A: 255},
	{R: 168, G: 218, B: 220, A: 255},
	{R: 69, G: 123, B: 157, A: 255},
	{R: 29, G: 53, B: 87, A: 255},
	{R: 244, G: 162, B: 97, A: 255},
}

// Cube returns an axis-aligned cube of the given edge length centred on the
// origin: 12 triangles, one palette color per face.
func Cube(size float64) Scene {
	h := size / 2
	p := [8]math.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}

	s := make(Scene, 0, 12)
	for i, f := range faces {
		c := Palette[i%len(Palette)]
		s = append(s,
			Triangle{V0: p[f[0]], V1: p[f[1]], V2: p[f[2]], Color: c},
			Triangle{V0: p[f[0]], V1: p[f[2]], V2: p[f[3]], Color: c},
		)
	}
	return s
}

// Pyramid returns a square-based pyramid with its base on y = 0.
func Pyramid(base, height float64) Scene {
	h := base / 2
	apex := math.Vec3{Y: height}
	b := [4]math.Vec3{
		{X: -h, Z: h}, {X: h, Z: h}, {X: h, Z: -h}, {X: -h, Z: -h},
	}

	s := make(Scene, 0, 6)
	for i := 0; i < 4; i++ {
		s = append(s, Triangle{V0: b[i], V1: b[(i+1)%4], V2: apex, Color: Palette[i]})
	}
	c := Palette[4]
	s = append(s,
		Triangle{V0: b[0], V1: b[3], V2: b[2], Color: c},
		Triangle{V0: b[0], V1: b[2], V2: b[1], Color: c},
	)
	return s
}

// Builtin returns a named built-in model.
func Builtin(name string) (Scene, bool) {
	switch name {
	case "cube":
		return Cube(10), true
	case "pyramid":
		return Pyramid(10, 12), true
	}
	return nil, false
}
