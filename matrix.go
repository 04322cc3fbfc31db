package affine

// Matrix represents a 2D affine transformation matrix over the float
// scalar type T. It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The bottom row of the full 3x3 homogeneous matrix is implicitly
// [0 0 1] and is never stored.
//
// Matrices are immutable values: every operation returns a new Matrix
// and no method mutates its receiver. Two matrices are equal exactly
// when their six components are equal (==); use Approx or Distance for
// tolerance-based comparison.
type Matrix[T Float] struct {
	A, B, C T
	D, E, F T
}

// Identity returns the identity transformation matrix.
// It is the neutral element of Multiply and Compose.
func Identity[T Float]() Matrix[T] {
	return Matrix[T]{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate[T Float](x, y T) Matrix[T] {
	return Matrix[T]{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix. Factors are not checked: zero or
// negative factors are valid and produce degenerate or flipped
// transforms.
func Scale[T Float](x, y T) Matrix[T] {
	return Matrix[T]{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians,
// counter-clockwise).
func Rotate[T Float](angle T) Matrix[T] {
	sin, cos := sincos(angle)
	return Matrix[T]{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear[T Float](x, y T) Matrix[T] {
	return Matrix[T]{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// RotateAbout creates a rotation of angle radians around center:
// center is moved to the origin, rotated, and moved back, so center is
// a fixed point of the resulting transform.
func RotateAbout[T Float](angle T, center Point[T]) Matrix[T] {
	return Compose(
		Translate(center.X, center.Y),
		Rotate(angle),
		Translate(-center.X, -center.Y),
	)
}

// Multiply multiplies two matrices (m * other). In application order
// other applies first and m applies second, matching standard matrix
// multiplication on homogeneous coordinates.
func (m Matrix[T]) Multiply(other Matrix[T]) Matrix[T] {
	return Matrix[T]{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Compose multiplies a chain of matrices into one. The chain is read
// in application order from outermost to innermost: the last argument
// applies first and the first argument applies last, so
//
//	Compose(a, b, c).TransformPoint(p)
//
// equals applying c, then b, then a to p. Composition is not
// commutative; the fold starts from Identity and combines from the
// rightmost element inward.
func Compose[T Float](ms ...Matrix[T]) Matrix[T] {
	result := Identity[T]()
	for i := len(ms) - 1; i >= 0; i-- {
		result = ms[i].Multiply(result)
	}
	return result
}

// TransformPoint applies the transformation to a point.
func (m Matrix[T]) TransformPoint(p Point[T]) Point[T] {
	return Point[T]{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector, ignoring
// translation.
func (m Matrix[T]) TransformVector(p Point[T]) Point[T] {
	return Point[T]{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformPolygon applies the transformation to every point of a
// polygon, preserving order and length. A nil slice transforms to nil.
func (m Matrix[T]) TransformPolygon(pts []Point[T]) []Point[T] {
	if pts == nil {
		return nil
	}
	out := make([]Point[T], len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix[T]) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix[T]) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Approx returns true if two matrices are componentwise equal within
// epsilon.
func (m Matrix[T]) Approx(other Matrix[T], epsilon T) bool {
	return abs(m.A-other.A) < epsilon &&
		abs(m.B-other.B) < epsilon &&
		abs(m.C-other.C) < epsilon &&
		abs(m.D-other.D) < epsilon &&
		abs(m.E-other.E) < epsilon &&
		abs(m.F-other.F) < epsilon
}
