package affine_test

import (
	"fmt"

	"github.com/gogpu/affine"
)

func ExampleCompose() {
	// The last argument applies first: scale, then translate.
	m := affine.Compose(
		affine.Translate(3.0, 4.0),
		affine.Scale(2.0, 2.0),
	)
	p := m.TransformPoint(affine.Pt(1.0, 1.0))
	fmt.Printf("%.0f %.0f\n", p.X, p.Y)
	// Output: 5 6
}

func ExampleMatrix_Decompose() {
	m := affine.Recompose(2.0, 3.0, 0.0, 5.0, 7.0)
	sx, sy, angle, dx, dy := m.Decompose()
	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", sx, sy, angle, dx, dy)
	// Output: 2 3 0 5 7
}

func ExampleFromList() {
	m, err := affine.FromList([]float64{1, 0, 10, 0, 1, 20})
	if err != nil {
		panic(err)
	}
	fmt.Println(m.IsTranslation())

	_, err = affine.FromList([]float64{1, 2, 3})
	fmt.Println(err)
	// Output:
	// true
	// affine: list form has 3 elements: affine: matrix list form requires exactly 6 elements
}
