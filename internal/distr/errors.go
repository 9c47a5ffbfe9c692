package distr

import "errors"

var (
	// ErrSingularCovariance indicates a covariance matrix that cannot be inverted.
	ErrSingularCovariance = errors.New("distr: covariance matrix is singular")

	// ErrDimension indicates a mean or covariance of the wrong shape.
	ErrDimension = errors.New("distr: expected 2-dimensional mean and 2x2 covariance")
)
