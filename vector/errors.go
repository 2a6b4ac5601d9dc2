package vector

import "github.com/pkg/errors"

// Errors returned (wrapped) by BigVector operations. Test for them with
// errors.Is.
var (
	// ErrEmptyVector indicates a vector with no components.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrDimensionMismatch indicates operands of a binary operation with
	// different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDimensionUnsupported indicates an operation that is only defined for
	// one dimension (cross: 3, polar coordinates: 2).
	ErrDimensionUnsupported = errors.New("vector: dimension unsupported")

	// ErrUndefinedResult indicates a mathematically undefined result, such as
	// the angle against a zero vector.
	ErrUndefinedResult = errors.New("vector: undefined result")
)

func mismatch(op string, a, b int) error {
	return errors.Wrapf(ErrDimensionMismatch, "%s: %d vs %d", op, a, b)
}

func unsupported(op string, want, got int) error {
	return errors.Wrapf(ErrDimensionUnsupported, "%s: requires dimension %d, got %d", op, want, got)
}
