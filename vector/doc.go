// Package vector implements BigVector, an immutable vector of arbitrary
// precision decimals (github.com/shopspring/decimal) with the usual vector
// algebra:
//   - Magnitude, Direction, Scale
//   - Plus, Minus, Dot, Distance, Cross
//   - Angle and PolarCoords
//   - conversions to gonum types and a printable listing
//
// Sums, differences and products are exact. Division and square roots are
// rounded by the process-wide numeric.Context (see package numeric), so every
// result is reproducible for a given precision configuration. Angle and
// PolarCoords are the exception: their arc-cosine step runs in float64.
//
// Every operation returns a new value; no BigVector is modified after
// construction, so values can be shared freely between goroutines.
package vector
