package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Equal(dec(want)), "got %s, want %s", got, want)
}

func mustContext(t *testing.T, scale int32, mode RoundingMode) *Context {
	t.Helper()
	ctx, err := NewContext(Config{Scale: scale, Rounding: mode})
	require.NoError(t, err)
	return ctx
}

func TestQuo(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		scale int32
		mode  RoundingMode
		want  string
	}{
		{"third half even", "1", "3", 4, HalfEven, "0.3333"},
		{"third up", "1", "3", 4, Up, "0.3334"},
		{"two thirds half up", "2", "3", 4, HalfUp, "0.6667"},
		{"two thirds down", "2", "3", 4, Down, "0.6666"},
		{"negative floor", "-2", "3", 4, Floor, "-0.6667"},
		{"negative ceiling", "-2", "3", 4, Ceiling, "-0.6666"},
		{"negative up", "-2", "3", 4, Up, "-0.6667"},
		{"tie half even rounds to even", "1", "8", 2, HalfEven, "0.12"},
		{"tie half even odd neighbour", "3", "8", 2, HalfEven, "0.38"},
		{"tie half up", "1", "8", 2, HalfUp, "0.13"},
		{"negative tie half up", "-1", "8", 2, HalfUp, "-0.13"},
		{"negative tie half even", "-1", "8", 2, HalfEven, "-0.12"},
		{"tiny negative floor", "-0.001", "1", 2, Floor, "-0.01"},
		{"tiny positive ceiling", "0.001", "1", 2, Ceiling, "0.01"},
		{"exact", "1", "4", 2, Up, "0.25"},
		{"exact integer", "12", "-4", 2, HalfEven, "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := mustContext(t, tt.scale, tt.mode)
			got, err := ctx.Quo(dec(tt.a), dec(tt.b))
			require.NoError(t, err)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestQuoByZero(t *testing.T) {
	ctx := mustContext(t, 4, HalfEven)
	_, err := ctx.Quo(dec("1"), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		scale int32
		mode  RoundingMode
		want  string
	}{
		{"perfect square", "25", 32, HalfEven, "5"},
		{"decimal square", "0.0001", 10, HalfEven, "0.01"},
		{"zero", "0", 8, HalfEven, "0"},
		{"two half even", "2", 10, HalfEven, "1.4142135624"},
		{"two down", "2", 10, Down, "1.4142135623"},
		{"two floor", "2", 10, Floor, "1.4142135623"},
		{"two up", "2", 10, Up, "1.4142135624"},
		{"midpoint half even", "0.0025", 1, HalfEven, "0"},
		{"midpoint half up", "0.0025", 1, HalfUp, "0.1"},
		{"fractional input", "6.25", 4, HalfEven, "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := mustContext(t, tt.scale, tt.mode)
			got, err := ctx.Sqrt(dec(tt.in))
			require.NoError(t, err)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestSqrtNegative(t *testing.T) {
	ctx := mustContext(t, 4, HalfEven)
	_, err := ctx.Sqrt(dec("-4"))
	assert.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestSqrtSquaresBack(t *testing.T) {
	ctx := mustContext(t, 40, HalfEven)
	root, err := ctx.Sqrt(dec("3"))
	require.NoError(t, err)
	diff := root.Mul(root).Sub(dec("3")).Abs()
	assert.True(t, diff.LessThan(dec("1e-38")), "sqrt(3)^2 off by %s", diff)
}

func TestRound(t *testing.T) {
	ctx := mustContext(t, 2, HalfEven)
	assertDecimal(t, "1.23", ctx.Round(dec("1.23456")))
	assertDecimal(t, "1.2", ctx.Round(dec("1.2")))
	assertDecimal(t, "-1.24", ctx.Round(dec("-1.235")))
}

func TestNewContextRejectsBadConfig(t *testing.T) {
	_, err := NewContext(Config{Scale: 0, Rounding: HalfEven})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewContext(Config{Scale: 4, Rounding: RoundingMode(42)})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
