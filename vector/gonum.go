package vector

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// The conversions below hand vectors to gonum. Going to float64 is lossy:
// each component becomes the nearest float64.

// Float64s returns the components as float64 values.
func (v BigVector) Float64s() []float64 {
	out := make([]float64, len(v.values))
	for i, c := range v.values {
		out[i] = c.InexactFloat64()
	}
	return out
}

// VecDense returns v as a gonum column vector.
func (v BigVector) VecDense() *mat.VecDense {
	v.mustHaveComponents("vecdense")
	return mat.NewVecDense(len(v.values), v.Float64s())
}

// FromVecDense converts a gonum vector.
func FromVecDense(src mat.Vector) (BigVector, error) {
	values := make([]float64, src.Len())
	for i := range values {
		values[i] = src.AtVec(i)
	}
	return FromFloat64s(values...)
}

// R2 returns a 2-dimensional v as a gonum r2.Vec.
func (v BigVector) R2() (r2.Vec, error) {
	if len(v.values) != 2 {
		return r2.Vec{}, unsupported("r2", 2, len(v.values))
	}
	f := v.Float64s()
	return r2.Vec{X: f[0], Y: f[1]}, nil
}

// R3 returns a 3-dimensional v as a gonum r3.Vec.
func (v BigVector) R3() (r3.Vec, error) {
	if len(v.values) != 3 {
		return r3.Vec{}, unsupported("r3", 3, len(v.values))
	}
	f := v.Float64s()
	return r3.Vec{X: f[0], Y: f[1], Z: f[2]}, nil
}
