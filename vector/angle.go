package vector

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/CK6170/bigvector-go/numeric"
)

var (
	one    = decimal.NewFromInt(1)
	negOne = decimal.NewFromInt(-1)
	unitX  = BigVector{values: []decimal.Decimal{one, decimal.Zero}}
)

// Angle returns the angle between v and other in radians, in [0, π].
//
// This is the one operation that is not carried out entirely in decimal
// arithmetic. The cosine dot/(|v|·|other|) is computed at the configured
// precision, then converted to float64 for math.Acos, and the float result is
// wrapped back into a decimal. Expect float64 accuracy (about 1e-15), with the
// usual acos loss for angles within ~1e-8 of 0 or π.
//
// It returns ErrUndefinedResult if either vector is the null vector.
func (v BigVector) Angle(other BigVector) (decimal.Decimal, error) {
	theta, err := v.angleIn(numeric.Current(), other)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(theta), nil
}

func (v BigVector) angleIn(ctx *numeric.Context, other BigVector) (float64, error) {
	if err := v.sameDimension("angle", other); err != nil {
		return 0, err
	}
	if v.IsZero() || other.IsZero() {
		return 0, errors.Wrap(ErrUndefinedResult, "angle: null vector operand")
	}
	// The cosine does not depend on the operands' scale; normalizing keeps
	// the rounded magnitudes near 1, where the context scale is all precision.
	a, b := v.normalized(), other.normalized()
	dot, err := a.Dot(b)
	if err != nil {
		return 0, errors.WithMessage(err, "angle")
	}
	cos, err := ctx.Quo(dot, a.magnitudeIn(ctx).Mul(b.magnitudeIn(ctx)))
	if err != nil {
		return 0, errors.Wrap(err, "angle")
	}
	// Rounded magnitudes can push parallel vectors a few ulps past ±1.
	switch {
	case cos.GreaterThan(one):
		log.WithField("cos", cos.String()).Debug("vector: angle cosine clamped to 1")
		cos = one
	case cos.LessThan(negOne):
		log.WithField("cos", cos.String()).Debug("vector: angle cosine clamped to -1")
		cos = negOne
	}
	return math.Acos(cos.InexactFloat64()), nil
}

// PolarCoords returns the magnitude of a 2-dimensional vector and its angle
// from the positive x axis, in [0, 2π). The angle of the null vector is
// exactly zero.
//
// The angle comes from Angle against (1, 0), which only spans [0, π]; vectors
// below the x axis (negative y) are mapped to 2π - θ, and a result that lands
// on 2π in float64 wraps to 0. Like Angle, the angle has float64 accuracy.
func (v BigVector) PolarCoords() (magnitude, angle decimal.Decimal, err error) {
	if len(v.values) != 2 {
		return decimal.Zero, decimal.Zero, unsupported("polar coordinates", 2, len(v.values))
	}
	ctx := numeric.Current()
	magnitude = v.magnitudeIn(ctx)
	if v.IsZero() {
		return magnitude, decimal.Zero, nil
	}
	theta, err := v.angleIn(ctx, unitX)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if v.values[1].IsNegative() {
		theta = 2*math.Pi - theta
	}
	if theta >= 2*math.Pi {
		theta = 0
	}
	return magnitude, decimal.NewFromFloat(theta), nil
}
