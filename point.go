package affine

// Point represents a 2D point or vector over the float scalar type T.
type Point[T Float] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

// Neg returns the negation of the point.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point[T]) Cross(q Point[T]) T {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point[T]) Length() T {
	return sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length of the vector.
func (p Point[T]) LengthSquared() T {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two points.
func (p Point[T]) Distance(q Point[T]) T {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (p Point[T]) Normalize() Point[T] {
	length := p.Length()
	if length == 0 {
		return Point[T]{}
	}
	return Point[T]{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point[T]) Rotate(angle T) Point[T] {
	sin, cos := sincos(angle)
	return Point[T]{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point[T]) Lerp(q Point[T], t T) Point[T] {
	return Point[T]{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Approx returns true if two points are approximately equal within
// epsilon.
func (p Point[T]) Approx(q Point[T], epsilon T) bool {
	return abs(p.X-q.X) < epsilon && abs(p.Y-q.Y) < epsilon
}
