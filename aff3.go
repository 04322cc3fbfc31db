package affine

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the golang.org/x/image affine types, which
// share the same row-major 2x3 layout with an implicit [0 0 1] bottom
// row. These are the interchange forms for image and rendering
// packages in the wider ecosystem.

// Aff3 returns the matrix as an f64.Aff3.
func (m Matrix[T]) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}
}

// FromAff3 builds a matrix from an f64.Aff3.
func FromAff3[T Float](a f64.Aff3) Matrix[T] {
	return Matrix[T]{
		A: T(a[0]), B: T(a[1]), C: T(a[2]),
		D: T(a[3]), E: T(a[4]), F: T(a[5]),
	}
}

// Aff3f returns the matrix as an f32.Aff3. Components outside float32
// range overflow to infinity as usual for the conversion.
func (m Matrix[T]) Aff3f() f32.Aff3 {
	return f32.Aff3{
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	}
}

// FromAff3f builds a matrix from an f32.Aff3.
func FromAff3f[T Float](a f32.Aff3) Matrix[T] {
	return Matrix[T]{
		A: T(a[0]), B: T(a[1]), C: T(a[2]),
		D: T(a[3]), E: T(a[4]), F: T(a[5]),
	}
}
