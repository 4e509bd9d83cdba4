package math

import "errors"

// Linear algebra errors.
var (
	ErrDimensionMismatch = errors.New("matrix dimensions do not match")
	ErrNotSquare         = errors.New("matrix is not square")
	ErrMatrixTooLarge    = errors.New("matrix exceeds cofactor expansion bound")
	ErrSingular          = errors.New("matrix is singular")
	ErrZeroLength        = errors.New("vector has zero length")
	ErrZeroW             = errors.New("homogeneous vector has w = 0")
	ErrInvalidFrustum    = errors.New("invalid frustum bounds")
)
