// Command affinedemo demonstrates the affine transform algebra:
// it builds a transform from command-line parameters, applies it to
// the unit square, and round-trips it through decomposition.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/gogpu/affine"
)

func main() {
	var (
		angle = flag.Float64("angle", 45, "rotation angle in degrees (counter-clockwise)")
		sx    = flag.Float64("sx", 1, "x scale factor")
		sy    = flag.Float64("sy", 1, "y scale factor")
		dx    = flag.Float64("dx", 0, "x translation")
		dy    = flag.Float64("dy", 0, "y translation")
	)
	flag.Parse()

	radians := *angle * math.Pi / 180
	m := affine.Recompose(*sx, *sy, radians, *dx, *dy)

	fmt.Println("matrix:")
	printMatrix(m)

	fmt.Println("unit square:")
	square := []affine.Point[float64]{
		affine.Pt(0.0, 0.0),
		affine.Pt(1.0, 0.0),
		affine.Pt(1.0, 1.0),
		affine.Pt(0.0, 1.0),
	}
	for i, p := range m.TransformPolygon(square) {
		fmt.Printf("  %v -> (%.4f, %.4f)\n", square[i], p.X, p.Y)
	}

	gsx, gsy, gangle, gdx, gdy := m.Decompose()
	fmt.Printf("decomposed: scale=(%.4f, %.4f) angle=%.4f rad translation=(%.4f, %.4f)\n",
		gsx, gsy, gangle, gdx, gdy)

	rebuilt := affine.Recompose(gsx, gsy, gangle, gdx, gdy)
	if d := m.Distance(rebuilt); d > 1e-9 {
		log.Printf("decomposition is lossy for this transform (distance %.3g); "+
			"expected for rotations outside (-pi/2, pi/2]", d)
	}
}

func printMatrix(m affine.Matrix[float64]) {
	fmt.Printf("  | %8.4f %8.4f %8.4f |\n", m.A, m.B, m.C)
	fmt.Printf("  | %8.4f %8.4f %8.4f |\n", m.D, m.E, m.F)
}
