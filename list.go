package affine

import (
	"errors"
	"fmt"
)

// ErrInvalidArity is returned by FromList when the input does not hold
// exactly the six matrix components.
var ErrInvalidArity = errors.New("affine: matrix list form requires exactly 6 elements")

// List returns the matrix in its canonical ordered form, row-major:
// [a, b, c, d, e, f]. This is the serialization form; FromList is its
// inverse.
func (m Matrix[T]) List() []T {
	return []T{m.A, m.B, m.C, m.D, m.E, m.F}
}

// FromList builds a matrix from its canonical 6-element ordered form.
// Any other length fails with ErrInvalidArity; the input is never
// truncated or padded.
func FromList[T Float](elems []T) (Matrix[T], error) {
	if len(elems) != 6 {
		return Matrix[T]{}, fmt.Errorf("affine: list form has %d elements: %w", len(elems), ErrInvalidArity)
	}
	return Matrix[T]{
		A: elems[0], B: elems[1], C: elems[2],
		D: elems[3], E: elems[4], F: elems[5],
	}, nil
}

// Distance returns the Euclidean norm of the componentwise difference
// between the two matrices' ordered forms. It compares
// parameterizations, not geometric effect: two different matrices can
// describe similar mappings yet be far apart, and vice versa. Useful
// for near-equality checks and as an optimization residual.
func (m Matrix[T]) Distance(other Matrix[T]) T {
	da := m.A - other.A
	db := m.B - other.B
	dc := m.C - other.C
	dd := m.D - other.D
	de := m.E - other.E
	df := m.F - other.F
	return sqrt(da*da + db*db + dc*dc + dd*dd + de*de + df*df)
}
