// Package numeric owns the precision policy for every inexact decimal
// operation in the module.
//
// Addition, subtraction and multiplication of decimal.Decimal values are
// exact and need no policy. Division and square root are not: a Context
// computes them to a fixed number of digits after the decimal point (the
// scale) and resolves the discarded tail with a RoundingMode. Both results are
// correctly rounded, i.e. identical to rounding the exact mathematical value.
//
// A single process-wide Context is returned by Current. It may be replaced
// once with Configure before first use and is frozen from then on, so every
// result computed in the process is reproducible.
package numeric

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrDivisionByZero is returned by Quo for a zero divisor.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrNegativeSqrt is returned by Sqrt for a negative operand.
	ErrNegativeSqrt = errors.New("numeric: square root of negative value")
)

var (
	two  = decimal.NewFromInt(2)
	four = decimal.NewFromInt(4)
)

// Context performs inexact decimal operations at a fixed scale and rounding
// mode. The zero value is not usable; build one with NewContext.
type Context struct {
	scale int32
	mode  RoundingMode
	ulp   decimal.Decimal
}

// NewContext validates cfg and returns a Context for it.
func NewContext(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Context{
		scale: cfg.Scale,
		mode:  cfg.Rounding,
		ulp:   decimal.New(1, -cfg.Scale),
	}, nil
}

// Scale returns the number of digits kept after the decimal point.
func (c *Context) Scale() int32 { return c.scale }

// Rounding returns the rounding mode.
func (c *Context) Rounding() RoundingMode { return c.mode }

// Config returns the configuration the context was built from.
func (c *Context) Config() Config {
	return Config{Scale: c.scale, Rounding: c.mode}
}

// Quo returns a / b rounded to the context scale.
func (c *Context) Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, errors.WithStack(ErrDivisionByZero)
	}
	// q is truncated towards zero and |r| < |b| * 10^-scale.
	q, r := a.QuoRem(b, c.scale)
	if r.IsZero() {
		return q, nil
	}
	half := r.Abs().Shift(c.scale).Mul(two).Cmp(b.Abs())
	odd := new(big.Int).Abs(q.Shift(c.scale).BigInt()).Bit(0) == 1
	return c.settle(q, a.Sign()*b.Sign(), half, odd), nil
}

// Sqrt returns the square root of d rounded to the context scale.
func (c *Context) Sqrt(d decimal.Decimal) (decimal.Decimal, error) {
	switch d.Sign() {
	case -1:
		return decimal.Zero, errors.Wrapf(ErrNegativeSqrt, "sqrt(%s)", d)
	case 0:
		return decimal.Zero, nil
	}

	// sqrt(d) * 10^scale == sqrt(x), with x = d * 10^(2*scale).
	x := d.Shift(2 * c.scale)
	n := x.BigInt()
	root := new(big.Int).Sqrt(n)
	q := decimal.NewFromBigInt(root, -c.scale)
	if x.IsInteger() && new(big.Int).Mul(root, root).Cmp(n) == 0 {
		return q, nil
	}

	// The midpoint between root and root+1 is exceeded iff 4x > (2*root+1)^2.
	mid := new(big.Int).Lsh(root, 1)
	mid.Add(mid, big.NewInt(1))
	mid.Mul(mid, mid)
	half := x.Mul(four).Cmp(decimal.NewFromBigInt(mid, 0))
	return c.settle(q, 1, half, root.Bit(0) == 1), nil
}

// Round rounds an exact value to the context scale. Values that already fit
// are returned unchanged.
func (c *Context) Round(d decimal.Decimal) decimal.Decimal {
	q, _ := c.Quo(d, decimal.NewFromInt(1))
	return q
}

// settle resolves an inexact result. q is the result truncated towards zero,
// sign the sign of the exact result, half the comparison of the discarded
// tail against half an ulp and odd the parity of q's last kept digit.
func (c *Context) settle(q decimal.Decimal, sign, half int, odd bool) decimal.Decimal {
	away := q.Add(c.ulp.Mul(decimal.NewFromInt(int64(sign))))
	switch c.mode {
	case Down:
		return q
	case Up:
		return away
	case Ceiling:
		if sign > 0 {
			return away
		}
		return q
	case Floor:
		if sign < 0 {
			return away
		}
		return q
	case HalfUp:
		if half >= 0 {
			return away
		}
		return q
	default:
		if half > 0 || (half == 0 && odd) {
			return away
		}
		return q
	}
}
