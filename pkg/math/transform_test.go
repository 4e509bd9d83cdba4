package math

import (
	"errors"
	"math"
	"testing"
)

func TestRotationDeterminant(t *testing.T) {
	factories := map[string]func(float64) Matrix{
		"XY":     RotationXY,
		"YZ":     RotationYZ,
		"XZ":     RotationXZ,
		"XYLeft": RotationXYLeft,
		"YZLeft": RotationYZLeft,
		"XZLeft": RotationXZLeft,
	}
	angles := []float64{0, 17, 45, 90, 180, 271.5, 359, -720.25, 1e6}

	for name, f := range factories {
		for _, a := range angles {
			det, err := f(a).Determinant()
			if err != nil {
				t.Fatalf("%s(%v): %v", name, a, err)
			}
			if math.Abs(det-1) > tolerance {
				t.Errorf("det(%s(%v)) = %v, want 1", name, a, det)
			}
		}
	}
}

func TestRotationPeriodic(t *testing.T) {
	a := RotationXZ(30)
	b := RotationXZ(30 + 360*5)
	if !a.ApproxEqual(b, tolerance) {
		t.Errorf("RotationXZ(30) != RotationXZ(1830)")
	}
}

func TestRotationLeftIsInverse(t *testing.T) {
	prod, _ := RotationYZ(33).Mul(RotationYZLeft(33))
	if !prod.ApproxEqual(Identity(3), tolerance) {
		t.Errorf("right * left = \n%v\nwant identity", prod)
	}
}

func TestRotation4(t *testing.T) {
	m, err := Rotation4(RotationXY(90))
	if err != nil {
		t.Fatalf("Rotation4: %v", err)
	}
	if m.Rows() != 4 || m.At(3, 3) != 1 || m.At(3, 0) != 0 {
		t.Errorf("Rotation4 = \n%v", m)
	}
	if _, err := Rotation4(Identity(4)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestLookAt(t *testing.T) {
	m, err := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("LookAt: %v", err)
	}
	if !m.ApproxEqual(Translation(0, 0, 10), tolerance) {
		t.Errorf("LookAt = \n%v\nwant translation (0, 0, 10)", m)
	}

	if _, err := LookAt(Vec3{1, 1, 1}, Vec3{1, 1, 1}, Vec3{0, 1, 0}); !errors.Is(err, ErrZeroLength) {
		t.Errorf("eye == target: expected ErrZeroLength, got %v", err)
	}
	if _, err := LookAt(Vec3{0, 5, 0}, Vec3{}, Vec3{0, 1, 0}); !errors.Is(err, ErrZeroLength) {
		t.Errorf("up parallel: expected ErrZeroLength, got %v", err)
	}
}

func TestPerspective(t *testing.T) {
	n, f := 1.0, 100.0
	m, err := Perspective(-2, 2, -1, 1, n, f)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}

	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"near centre", Vec3{0, 0, -n}, Vec3{0, 0, -1}},
		{"far centre", Vec3{0, 0, -f}, Vec3{0, 0, 1}},
		{"near top right", Vec3{2, 1, -n}, Vec3{1, 1, -1}},
		{"far bottom left", Vec3{-200, -100, -f}, Vec3{-1, -1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip, err := tt.in.Vec4().Transform(m)
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if math.Abs(clip.W+tt.in.Z) > tolerance {
				t.Errorf("w = %v, want %v", clip.W, -tt.in.Z)
			}
			got, err := clip.ToVec3()
			if err != nil {
				t.Fatalf("ToVec3: %v", err)
			}
			if got.Sub(tt.want).Length() > 1e-9 {
				t.Errorf("NDC = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrthographic(t *testing.T) {
	m, err := Orthographic(-2, 2, -1, 1, 1, 11)
	if err != nil {
		t.Fatalf("Orthographic: %v", err)
	}
	clip, _ := Vec3{2, -1, -11}.Vec4().Transform(m)
	got, err := clip.ToVec3()
	if err != nil {
		t.Fatalf("ToVec3: %v", err)
	}
	if got.Sub(Vec3{1, -1, 1}).Length() > 1e-9 {
		t.Errorf("NDC = %v, want (1, -1, 1)", got)
	}
	if clip.W != 1 {
		t.Errorf("orthographic w = %v, want 1", clip.W)
	}
}

func TestProjectionInvalidFrustum(t *testing.T) {
	tests := []struct {
		name               string
		l, r, b, top, n, f float64
		perspectiveOnly    bool
	}{
		{"flat width", 1, 1, -1, 1, 1, 10, false},
		{"flat height", -1, 1, 2, 2, 1, 10, false},
		{"no depth", -1, 1, -1, 1, 5, 5, false},
		{"near at eye", -1, 1, -1, 1, 0, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Perspective(tt.l, tt.r, tt.b, tt.top, tt.n, tt.f); !errors.Is(err, ErrInvalidFrustum) {
				t.Errorf("Perspective: expected ErrInvalidFrustum, got %v", err)
			}
			_, err := Orthographic(tt.l, tt.r, tt.b, tt.top, tt.n, tt.f)
			if tt.perspectiveOnly {
				if err != nil {
					t.Errorf("Orthographic: unexpected error %v", err)
				}
			} else if !errors.Is(err, ErrInvalidFrustum) {
				t.Errorf("Orthographic: expected ErrInvalidFrustum, got %v", err)
			}
		})
	}
}
