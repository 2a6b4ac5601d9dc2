package vector

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/CK6170/bigvector-go/numeric"
)

// BigVector is a fixed-length vector of decimals. Build one with New or one of
// the From* constructors; the zero value has no components and is rejected by
// every operation.
type BigVector struct {
	values []decimal.Decimal
}

// New returns a vector holding a copy of components. At least one component
// is required.
func New(components ...decimal.Decimal) (BigVector, error) {
	if len(components) == 0 {
		return BigVector{}, errors.WithStack(ErrEmptyVector)
	}
	values := make([]decimal.Decimal, len(components))
	copy(values, components)
	return BigVector{values: values}, nil
}

// MustNew is like New but panics on error.
func MustNew(components ...decimal.Decimal) BigVector {
	v, err := New(components...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInts returns a vector of integer components.
func FromInts(components ...int64) (BigVector, error) {
	values := make([]decimal.Decimal, len(components))
	for i, c := range components {
		values[i] = decimal.NewFromInt(c)
	}
	return New(values...)
}

// FromStrings returns a vector from decimal literals such as "1.25" or
// "-3e-7".
func FromStrings(components ...string) (BigVector, error) {
	values := make([]decimal.Decimal, len(components))
	for i, c := range components {
		d, err := decimal.NewFromString(c)
		if err != nil {
			return BigVector{}, errors.Wrapf(err, "vector: component %d", i)
		}
		values[i] = d
	}
	return New(values...)
}

// FromFloat64s returns a vector whose components are the shortest decimals
// that round-trip to the given floats.
func FromFloat64s(components ...float64) (BigVector, error) {
	values := make([]decimal.Decimal, len(components))
	for i, c := range components {
		values[i] = decimal.NewFromFloat(c)
	}
	return New(values...)
}

// Zero returns the zero vector of dimension n.
func Zero(n int) (BigVector, error) {
	if n < 1 {
		return BigVector{}, errors.Wrapf(ErrEmptyVector, "zero vector of dimension %d", n)
	}
	values := make([]decimal.Decimal, n)
	for i := range values {
		values[i] = decimal.Zero
	}
	return BigVector{values: values}, nil
}

// Dimension returns the number of components.
func (v BigVector) Dimension() int { return len(v.values) }

// At returns the i-th component. It panics if i is out of range.
func (v BigVector) At(i int) decimal.Decimal { return v.values[i] }

// Components returns a copy of the components in order.
func (v BigVector) Components() []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.values))
	copy(out, v.values)
	return out
}

// Equal reports whether v and other have the same dimension and numerically
// equal components (1.0 equals 1).
func (v BigVector) Equal(other BigVector) bool {
	if len(v.values) != len(other.values) {
		return false
	}
	for i := range v.values {
		if !v.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every component is exactly zero.
func (v BigVector) IsZero() bool {
	for _, c := range v.values {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// String formats v as "(c0, c1, ...)".
func (v BigVector) String() string {
	sb := &strings.Builder{}
	sb.WriteString("(")
	for i, c := range v.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Magnitude returns the Euclidean norm sqrt(sum of c_i^2). The sum of squares
// is exact; only the square root is rounded, to the configured scale. A
// nonzero vector whose norm is below half a unit of that scale therefore has
// a magnitude of zero; use IsZero to test for the null vector. It panics on
// the zero value BigVector.
func (v BigVector) Magnitude() decimal.Decimal {
	return v.magnitudeIn(numeric.Current())
}

func (v BigVector) magnitudeIn(ctx *numeric.Context) decimal.Decimal {
	v.mustHaveComponents("magnitude")
	sum := decimal.Zero
	for _, c := range v.values {
		sum = sum.Add(c.Mul(c))
	}
	// sum is never negative, so Sqrt cannot fail.
	m, _ := ctx.Sqrt(sum)
	return m
}

// Direction returns v scaled to unit magnitude. The second result is false
// when every component of v is zero, since a null vector has no direction.
//
// The components are first shifted by a power of ten so the largest lies in
// [1, 10). The shift is exact and leaves the direction unchanged, so the
// result carries the full configured scale however small or large v is.
func (v BigVector) Direction() (BigVector, bool) {
	if len(v.values) == 0 || v.IsZero() {
		return BigVector{}, false
	}
	ctx := numeric.Current()
	s := v.normalized()
	m := s.magnitudeIn(ctx)
	out := make([]decimal.Decimal, len(s.values))
	for i, c := range s.values {
		q, err := ctx.Quo(c, m)
		if err != nil {
			return BigVector{}, false
		}
		out[i] = q
	}
	return BigVector{values: out}, true
}

// normalized returns v multiplied by the power of ten that brings its largest
// nonzero component into [1, 10). The zero vector is returned unchanged.
func (v BigVector) normalized() BigVector {
	lead, found := int32(0), false
	for _, c := range v.values {
		if c.IsZero() {
			continue
		}
		digits := len(new(big.Int).Abs(c.Coefficient()).String())
		if e := c.Exponent() + int32(digits) - 1; !found || e > lead {
			lead, found = e, true
		}
	}
	if !found || lead == 0 {
		return v
	}
	out := make([]decimal.Decimal, len(v.values))
	for i, c := range v.values {
		out[i] = c.Shift(-lead)
	}
	return BigVector{values: out}
}

// Plus returns v + other.
func (v BigVector) Plus(other BigVector) (BigVector, error) {
	if err := v.sameDimension("plus", other); err != nil {
		return BigVector{}, err
	}
	out := make([]decimal.Decimal, len(v.values))
	for i := range v.values {
		out[i] = v.values[i].Add(other.values[i])
	}
	return BigVector{values: out}, nil
}

// Minus returns v - other.
func (v BigVector) Minus(other BigVector) (BigVector, error) {
	if err := v.sameDimension("minus", other); err != nil {
		return BigVector{}, err
	}
	out := make([]decimal.Decimal, len(v.values))
	for i := range v.values {
		out[i] = v.values[i].Sub(other.values[i])
	}
	return BigVector{values: out}, nil
}

// Scale returns v multiplied componentwise by factor. It panics on the zero
// value BigVector.
func (v BigVector) Scale(factor decimal.Decimal) BigVector {
	v.mustHaveComponents("scale")
	out := make([]decimal.Decimal, len(v.values))
	for i, c := range v.values {
		out[i] = c.Mul(factor)
	}
	return BigVector{values: out}
}

// Dot returns the exact dot product of v and other.
func (v BigVector) Dot(other BigVector) (decimal.Decimal, error) {
	if err := v.sameDimension("dot", other); err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for i := range v.values {
		sum = sum.Add(v.values[i].Mul(other.values[i]))
	}
	return sum, nil
}

// Distance returns the Euclidean distance between v and other, i.e. the
// magnitude of v - other.
func (v BigVector) Distance(other BigVector) (decimal.Decimal, error) {
	diff, err := v.Minus(other)
	if err != nil {
		return decimal.Zero, errors.WithMessage(err, "distance")
	}
	return diff.Magnitude(), nil
}

// Cross returns the cross product v × other. Both vectors must have
// dimension 3.
func (v BigVector) Cross(other BigVector) (BigVector, error) {
	if err := v.sameDimension("cross", other); err != nil {
		return BigVector{}, err
	}
	if len(v.values) != 3 {
		return BigVector{}, unsupported("cross", 3, len(v.values))
	}
	a, b := v.values, other.values
	return BigVector{values: []decimal.Decimal{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}}, nil
}

func (v BigVector) sameDimension(op string, other BigVector) error {
	if len(v.values) == 0 || len(other.values) == 0 {
		return errors.Wrap(ErrEmptyVector, op)
	}
	if len(v.values) != len(other.values) {
		return mismatch(op, len(v.values), len(other.values))
	}
	return nil
}

func (v BigVector) mustHaveComponents(op string) {
	if len(v.values) == 0 {
		panic(errors.Wrap(ErrEmptyVector, op))
	}
}
