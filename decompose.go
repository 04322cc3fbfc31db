package affine

// decomposeEpsilon pads the arctangent denominator in Decompose so a
// zero A component does not produce a 0/0 indeterminate form.
const decomposeEpsilon = 1e-10

// Decompose extracts similarity-transform parameters from the matrix:
// scale factors, rotation angle, and translation. It is the inverse of
// Recompose for pure similarity transforms built from positive scale
// factors and an angle in (-pi/2, pi/2].
//
// The scale factors are always non-negative; the sign of a negative
// scale factor is folded into the other components and cannot be
// recovered. The angle comes from a one-argument arctangent and falls
// in (-pi/2, pi/2]: rotations outside that half-plane decompose to an
// angle that does not reproduce the original rotation. Matrices with
// independent shear have no exact similarity decomposition at all;
// Decompose still returns values, but they only approximate the
// transform.
//
// Decompose always succeeds. Precision degrades when A is near zero
// because of the epsilon padding in the angle denominator.
func (m Matrix[T]) Decompose() (scaleX, scaleY, angle, dx, dy T) {
	scaleX = sqrt(m.A*m.A + m.D*m.D)
	scaleY = sqrt(m.B*m.B + m.E*m.E)
	angle = atan(m.D / (m.A + decomposeEpsilon))
	return scaleX, scaleY, angle, m.C, m.F
}

// Recompose builds a matrix from similarity-transform parameters in
// the canonical order: scale first, then rotate, then translate.
// It is total; any real inputs produce a valid matrix.
func Recompose[T Float](scaleX, scaleY, angle, dx, dy T) Matrix[T] {
	return Compose(
		Translate(dx, dy),
		Rotate(angle),
		Scale(scaleX, scaleY),
	)
}

// Lerp interpolates between two transforms through their decomposed
// parameters: both matrices are decomposed, the five parameters are
// interpolated linearly, and the result is recomposed. t=0 returns the
// decomposition of m, t=1 that of other.
//
// Interpolating parameters rather than matrix components keeps
// intermediate transforms rigid-looking for similarity inputs; it
// inherits every limitation of Decompose for anything else.
func (m Matrix[T]) Lerp(other Matrix[T], t T) Matrix[T] {
	msx, msy, ma, mdx, mdy := m.Decompose()
	osx, osy, oa, odx, ody := other.Decompose()
	return Recompose(
		msx+(osx-msx)*t,
		msy+(osy-msy)*t,
		ma+(oa-ma)*t,
		mdx+(odx-mdx)*t,
		mdy+(ody-mdy)*t,
	)
}
