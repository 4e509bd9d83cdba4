package math

import (
	"fmt"
	"math"
	"strings"
)

// MaxCofactorOrder bounds the recursive cofactor expansion used by
// Determinant and Inverse. The rasterizer only ever needs 2x2 edge
// determinants and 4x4 camera transforms; the expansion is O(n!) so it is
// deliberately not offered for anything larger.
const MaxCofactorOrder = 4

// Matrix is a dense row-major matrix of float64.
// Layout for a 4x4: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Vectors are rows and multiply on the left (v * M), so affine translation
// lives in the last row. A Matrix is never modified after construction.
type Matrix struct {
	rows, cols int
	values     []float64
}

// NewMatrix creates a rows x cols matrix from row-major values.
// The slice is copied.
func NewMatrix(values []float64, rows, cols int) (Matrix, error) {
	if rows < 1 || cols < 1 {
		return Matrix{}, fmt.Errorf("matrix %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}
	if len(values) != rows*cols {
		return Matrix{}, fmt.Errorf("matrix %dx%d given %d values: %w", rows, cols, len(values), ErrDimensionMismatch)
	}
	v := make([]float64, len(values))
	copy(v, values)
	return Matrix{rows: rows, cols: cols, values: v}, nil
}

// MustMatrix is like NewMatrix but panics on error.
// Intended for literal matrices whose shape is known at compile time.
func MustMatrix(values []float64, rows, cols int) Matrix {
	m, err := NewMatrix(values, rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Must returns m, panicking if err is non-nil. It wraps matrix operations
// whose operand shapes are fixed by the caller.
func Must(m Matrix, err error) Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	v := make([]float64, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}
	return Matrix{rows: n, cols: n, values: v}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// IsSquare reports whether rows == cols.
func (m Matrix) IsSquare() bool { return m.rows == m.cols && m.rows > 0 }

// IsZero reports whether m is the zero Matrix value (no shape).
func (m Matrix) IsZero() bool { return m.rows == 0 && m.cols == 0 }

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m.values[r*m.cols+c]
}

// Row returns a copy of row r.
func (m Matrix) Row(r int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.values[r*m.cols:(r+1)*m.cols])
	return out
}

// Add returns m + other.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return Matrix{}, fmt.Errorf("add %dx%d + %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	v := make([]float64, len(m.values))
	for i := range v {
		v[i] = m.values[i] + other.values[i]
	}
	return Matrix{rows: m.rows, cols: m.cols, values: v}, nil
}

// Scale returns m * scalar.
func (m Matrix) Scale(s float64) Matrix {
	v := make([]float64, len(m.values))
	for i := range v {
		v[i] = m.values[i] * s
	}
	return Matrix{rows: m.rows, cols: m.cols, values: v}
}

// Mul multiplies this matrix by another (m * other).
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.cols != other.rows {
		return Matrix{}, fmt.Errorf("multiply %dx%d * %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	v := make([]float64, m.rows*other.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < other.cols; c++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.values[r*m.cols+k] * other.values[k*other.cols+c]
			}
			v[r*other.cols+c] = sum
		}
	}
	return Matrix{rows: m.rows, cols: other.cols, values: v}, nil
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	v := make([]float64, len(m.values))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			v[c*m.rows+r] = m.values[r*m.cols+c]
		}
	}
	return Matrix{rows: m.cols, cols: m.rows, values: v}
}

// Determinant returns the determinant by cofactor expansion along the first row.
func (m Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("determinant of %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	if m.rows > MaxCofactorOrder {
		return 0, fmt.Errorf("determinant of %dx%d: %w", m.rows, m.cols, ErrMatrixTooLarge)
	}
	return m.determinant(), nil
}

// determinant assumes a square matrix within MaxCofactorOrder.
func (m Matrix) determinant() float64 {
	switch m.rows {
	case 1:
		return m.values[0]
	case 2:
		return m.values[0]*m.values[3] - m.values[1]*m.values[2]
	}
	var det float64
	for c := 0; c < m.cols; c++ {
		if m.values[c] == 0 {
			continue
		}
		det += m.values[c] * m.cofactor(0, c)
	}
	return det
}

// minor returns m with row r and column c removed.
func (m Matrix) minor(r, c int) Matrix {
	n := m.rows - 1
	v := make([]float64, 0, n*n)
	for i := 0; i < m.rows; i++ {
		if i == r {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j != c {
				v = append(v, m.values[i*m.cols+j])
			}
		}
	}
	return Matrix{rows: n, cols: n, values: v}
}

func (m Matrix) cofactor(r, c int) float64 {
	d := m.minor(r, c).determinant()
	if (r+c)%2 == 1 {
		return -d
	}
	return d
}

// Inverse returns adjugate(m) / det(m).
// A singular matrix yields ErrSingular rather than a matrix of infinities.
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, fmt.Errorf("inverse: %w", err)
	}
	if det == 0 {
		return Matrix{}, ErrSingular
	}
	if m.rows == 1 {
		return Matrix{rows: 1, cols: 1, values: []float64{1 / det}}, nil
	}

	cof := make([]float64, len(m.values))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			cof[r*m.cols+c] = m.cofactor(r, c)
		}
	}
	adj := Matrix{rows: m.rows, cols: m.cols, values: cof}.Transpose()
	return adj.Scale(1 / det), nil
}

// ApproxEqual reports whether m and other have the same shape and every
// element differs by at most eps.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.values {
		if math.Abs(m.values[i]-other.values[i]) > eps {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range m.Row(r) {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", v)
		}
	}
	return b.String()
}
