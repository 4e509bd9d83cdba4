package math

import "fmt"

// Translation returns an affine 4x4 translation matrix.
func Translation(x, y, z float64) Matrix {
	return MustMatrix([]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}, 4, 4)
}

// Scaling returns an affine 4x4 scale matrix.
func Scaling(x, y, z float64) Matrix {
	return MustMatrix([]float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}, 4, 4)
}

// LookAt returns a camera-to-world matrix for a camera at eye looking at
// target. The camera looks down its own -Z axis with +Y up.
func LookAt(eye, target, up Vec3) (Matrix, error) {
	forward, err := target.Sub(eye).Normalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("look at: eye and target coincide: %w", err)
	}
	right, err := forward.Cross(up).Normalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("look at: up is parallel to view direction: %w", err)
	}
	u := right.Cross(forward)

	return MustMatrix([]float64{
		right.X, right.Y, right.Z, 0,
		u.X, u.Y, u.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		eye.X, eye.Y, eye.Z, 1,
	}, 4, 4), nil
}

func checkFrustum(l, r, b, t, n, f float64) error {
	switch {
	case r == l:
		return fmt.Errorf("left == right (%g): %w", l, ErrInvalidFrustum)
	case t == b:
		return fmt.Errorf("bottom == top (%g): %w", b, ErrInvalidFrustum)
	case f == n:
		return fmt.Errorf("near == far (%g): %w", n, ErrInvalidFrustum)
	}
	return nil
}

// Perspective returns an OpenGL-style frustum projection matrix in
// row-vector form. The resulting w is the negated camera-space z.
func Perspective(l, r, b, t, n, f float64) (Matrix, error) {
	if err := checkFrustum(l, r, b, t, n, f); err != nil {
		return Matrix{}, err
	}
	if n <= 0 {
		return Matrix{}, fmt.Errorf("near plane %g must be positive: %w", n, ErrInvalidFrustum)
	}

	return MustMatrix([]float64{
		2 * n / (r - l), 0, 0, 0,
		0, 2 * n / (t - b), 0, 0,
		(r + l) / (r - l), (t + b) / (t - b), -(f + n) / (f - n), -1,
		0, 0, -2 * f * n / (f - n), 0,
	}, 4, 4), nil
}

// Orthographic returns an OpenGL-style orthographic projection matrix in
// row-vector form.
func Orthographic(l, r, b, t, n, f float64) (Matrix, error) {
	if err := checkFrustum(l, r, b, t, n, f); err != nil {
		return Matrix{}, err
	}

	return MustMatrix([]float64{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}, 4, 4), nil
}
