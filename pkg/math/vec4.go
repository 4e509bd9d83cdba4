package math

import "fmt"

// Vec4 is a homogeneous 4-component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Transform multiplies v as a row vector by a 4x4 matrix.
func (v Vec4) Transform(m Matrix) (Vec4, error) {
	if m.rows != 4 || m.cols != 4 {
		return Vec4{}, fmt.Errorf("vec4 x %dx%d: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	in := [4]float64{v.X, v.Y, v.Z, v.W}
	var out [4]float64
	for c := 0; c < 4; c++ {
		out[c] = in[0]*m.At(0, c) + in[1]*m.At(1, c) + in[2]*m.At(2, c) + in[3]*m.At(3, c)
	}
	return Vec4{out[0], out[1], out[2], out[3]}, nil
}

// ToVec3 performs the perspective divide.
func (v Vec4) ToVec3() (Vec3, error) {
	if v.W == 0 {
		return Vec3{}, ErrZeroW
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}, nil
}

// String formats the vector as [x, y, z, w].
func (v Vec4) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", v.X, v.Y, v.Z, v.W)
}
