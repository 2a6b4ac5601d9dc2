package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var samplePairs = [][2][]float64{
	{{1, 2, 3}, {4, 5, 6}},
	{{0.5, -1.25, 8}, {-3, 0.125, 2.5}},
	{{1e-3, 7, -7}, {2, 2, 2}},
	{{-4.75, 0, 9.5}, {0, -1, 0}},
}

// The float64 algebra in gonum is the reference for the decimal results.
func TestAgainstGonum(t *testing.T) {
	for _, pair := range samplePairs {
		a, err := FromFloat64s(pair[0]...)
		require.NoError(t, err)
		b, err := FromFloat64s(pair[1]...)
		require.NoError(t, err)

		cross, err := a.Cross(b)
		require.NoError(t, err)
		ra, err := a.R3()
		require.NoError(t, err)
		rb, err := b.R3()
		require.NoError(t, err)
		want := r3.Cross(ra, rb)
		assert.True(t, floats.EqualApprox(cross.Float64s(), []float64{want.X, want.Y, want.Z}, 1e-12), "cross %s x %s", a, b)

		dot, err := a.Dot(b)
		require.NoError(t, err)
		assert.InDelta(t, floats.Dot(pair[0], pair[1]), dot.InexactFloat64(), 1e-12)
		assert.InDelta(t, mat.Dot(a.VecDense(), b.VecDense()), dot.InexactFloat64(), 1e-12)

		assert.InDelta(t, floats.Norm(pair[0], 2), a.Magnitude().InexactFloat64(), 1e-12)
		assert.InDelta(t, r3.Norm(ra), a.Magnitude().InexactFloat64(), 1e-12)

		dist, err := a.Distance(b)
		require.NoError(t, err)
		assert.InDelta(t, floats.Distance(pair[0], pair[1], 2), dist.InexactFloat64(), 1e-12)
	}
}

func TestVecDenseRoundTrip(t *testing.T) {
	v := strs(t, "0.25", "-8", "1024.5")
	dense := v.VecDense()
	require.Equal(t, 3, dense.Len())
	assert.Equal(t, -8.0, dense.AtVec(1))

	back, err := FromVecDense(dense)
	require.NoError(t, err)
	assertVector(t, v, back)
}

func TestR2R3(t *testing.T) {
	p, err := ints(t, 3, 4).R2()
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 3, Y: 4}, p)
	assert.Equal(t, 5.0, r2.Norm(p))

	_, err = ints(t, 3, 4).R3()
	assert.ErrorIs(t, err, ErrDimensionUnsupported)
	_, err = ints(t, 3, 4, 5).R2()
	assert.ErrorIs(t, err, ErrDimensionUnsupported)
}
