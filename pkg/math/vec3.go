package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector in object, world or camera space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
// A zero vector has no direction and yields ErrZeroLength.
func (v Vec3) Normalize() (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, ErrZeroLength
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}, nil
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// Vec4 returns the homogeneous point (x, y, z, 1).
func (v Vec3) Vec4() Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Transform multiplies v as a row vector by m.
//
// A 3-row matrix is applied directly. A 4-row matrix is treated as affine:
// w = 1 is appended and the first three result columns are kept, without a
// perspective divide (use Vec4 for that).
func (v Vec3) Transform(m Matrix) (Vec3, error) {
	if m.cols < 3 || (m.rows != 3 && m.rows != 4) {
		return Vec3{}, fmt.Errorf("vec3 x %dx%d: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	in := [4]float64{v.X, v.Y, v.Z, 1}
	var out [3]float64
	for c := 0; c < 3; c++ {
		var sum float64
		for r := 0; r < m.rows; r++ {
			sum += in[r] * m.At(r, c)
		}
		out[c] = sum
	}
	return Vec3{out[0], out[1], out[2]}, nil
}

// String formats the vector as [x, y, z].
func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}
