// Package scene holds the triangle lists consumed by the rasterizer.
package scene

import (
	"image/color"
	"sync/atomic"

	"github.com/Faultbox/pinhole/pkg/math"
)

// DefaultColor is the material used when a model carries no color.
var DefaultColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Triangle is three object-space vertices and a flat color.
type Triangle struct {
	V0, V1, V2 math.Vec3
	Color      color.RGBA
}

// Vertices returns the three vertices in order.
func (t Triangle) Vertices() [3]math.Vec3 {
	return [3]math.Vec3{t.V0, t.V1, t.V2}
}

// Normal returns the unnormalized face normal (v1-v0) x (v2-v1).
func (t Triangle) Normal() math.Vec3 {
	return t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V1))
}

// Scene is an ordered list of triangles.
type Scene []Triangle

// Bounds returns the object-space axis-aligned bounding box.
// ok is false for an empty scene.
func (s Scene) Bounds() (min, max math.Vec3, ok bool) {
	if len(s) == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}
	min = s[0].V0
	max = s[0].V0
	for _, t := range s {
		for _, v := range t.Vertices() {
			min = math.Vec3{X: minf(min.X, v.X), Y: minf(min.Y, v.Y), Z: minf(min.Z, v.Z)}
			max = math.Vec3{X: maxf(max.X, v.X), Y: maxf(max.Y, v.Y), Z: maxf(max.Z, v.Z)}
		}
	}
	return min, max, true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Store holds the current scene. Loading a new model replaces the whole
// scene in one atomic swap; a render in progress keeps the scene it read.
type Store struct {
	current atomic.Pointer[Scene]
}

// NewStore creates a store holding s.
func NewStore(s Scene) *Store {
	st := &Store{}
	st.Swap(s)
	return st
}

// Load returns the current scene (nil if none was stored).
func (st *Store) Load() Scene {
	p := st.current.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Swap replaces the current scene and returns the previous one.
func (st *Store) Swap(s Scene) Scene {
	old := st.current.Swap(&s)
	if old == nil {
		return nil
	}
	return *old
}
