package affine

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float constrains the scalar types the package operates on.
// It covers float32, float64, and any named type with one of those
// underlying types, so callers can thread custom float types (e.g.
// derivative-tracking numbers) through the whole algebra.
type Float = constraints.Float

// The math package only speaks float64; these helpers round-trip
// through it so the rest of the package can stay generic.

func sqrt[T Float](v T) T { return T(math.Sqrt(float64(v))) }

func atan[T Float](v T) T { return T(math.Atan(float64(v))) }

func sincos[T Float](angle T) (sin, cos T) {
	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
