package math

import "math"

// radians reduces deg modulo a full turn before converting, so very large
// inputs keep their precision.
func radians(deg float64) float64 {
	return math.Mod(deg, 360) * math.Pi / 180
}

func sincos(deg float64) (s, c float64) {
	return math.Sincos(radians(deg))
}

// RotationXY returns the right-handed 3x3 rotation in the XY plane (about Z).
// angle is in degrees.
func RotationXY(angle float64) Matrix {
	s, c := sincos(angle)
	return MustMatrix([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}, 3, 3)
}

// RotationYZ returns the right-handed 3x3 rotation in the YZ plane (about X).
// angle is in degrees.
func RotationYZ(angle float64) Matrix {
	s, c := sincos(angle)
	return MustMatrix([]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}, 3, 3)
}

// RotationXZ returns the right-handed 3x3 rotation in the XZ plane (about Y).
// angle is in degrees.
func RotationXZ(angle float64) Matrix {
	s, c := sincos(angle)
	return MustMatrix([]float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}, 3, 3)
}

// RotationXYLeft is the left-handed counterpart of RotationXY.
func RotationXYLeft(angle float64) Matrix {
	return RotationXY(angle).Transpose()
}

// RotationYZLeft is the left-handed counterpart of RotationYZ.
func RotationYZLeft(angle float64) Matrix {
	return RotationYZ(angle).Transpose()
}

// RotationXZLeft is the left-handed counterpart of RotationXZ.
func RotationXZLeft(angle float64) Matrix {
	return RotationXZ(angle).Transpose()
}

// Rotation4 embeds a 3x3 rotation into an affine 4x4 matrix.
func Rotation4(r Matrix) (Matrix, error) {
	if r.rows != 3 || r.cols != 3 {
		return Matrix{}, ErrDimensionMismatch
	}
	return MustMatrix([]float64{
		r.At(0, 0), r.At(0, 1), r.At(0, 2), 0,
		r.At(1, 0), r.At(1, 1), r.At(1, 2), 0,
		r.At(2, 0), r.At(2, 1), r.At(2, 2), 0,
		0, 0, 0, 1,
	}, 4, 4), nil
}
