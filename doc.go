// Package affine provides 2D affine transform algebra for Go.
//
// # Overview
//
// affine is a small transform kernel for building, composing, applying,
// and decomposing 2D affine transformations. It is designed for the
// GoGPU ecosystem but has no rendering surface of its own: callers hand
// it points and matrices and get points and matrices back.
//
// All types are generic over the float scalar, so the same algebra runs
// on float64, float32, or any named float type (for example a type used
// to track derivatives in a gradient-based optimizer).
//
// # Quick Start
//
//	import "github.com/gogpu/affine"
//
//	// Scale, then rotate, then move. The first argument of Compose
//	// applies last.
//	m := affine.Compose(
//	    affine.Translate(100.0, 50.0),
//	    affine.Rotate(math.Pi/4),
//	    affine.Scale(2.0, 2.0),
//	)
//
//	p := m.TransformPoint(affine.Pt(1.0, 0.0))
//
// # Matrix Layout
//
// Matrix is a 2x3 matrix in row-major order with an implicit [0 0 1]
// bottom row:
//
//	| a  b  c |
//	| d  e  f |
//
// a and e are the axis scale factors, b and d the shear/rotation
// components, c and f the translation.
//
// # Coordinate System
//
// Angles are in radians and rotate counter-clockwise in the standard
// mathematical convention (y up). The package does not adjust for
// screen coordinate systems; callers targeting y-down coordinates
// negate the angle themselves.
package affine

// Version is the current version of the library.
const Version = "0.1.0"
