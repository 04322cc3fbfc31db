package affine

import "testing"

// BenchmarkMatrix_Multiply benchmarks a single matrix product.
func BenchmarkMatrix_Multiply(b *testing.B) {
	m := Translate(10.0, 20.0)
	n := Rotate(0.7).Multiply(Scale(2.0, 3.0))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMatrix = m.Multiply(n)
	}
}

// BenchmarkCompose benchmarks folding chains of various lengths.
func BenchmarkCompose(b *testing.B) {
	chains := []struct {
		name string
		n    int
	}{
		{"2", 2},
		{"4", 4},
		{"8", 8},
		{"32", 32},
	}

	for _, chain := range chains {
		b.Run(chain.name, func(b *testing.B) {
			ms := make([]Matrix[float64], chain.n)
			for i := range ms {
				ms[i] = Rotate(float64(i) * 0.1).Multiply(Translate(float64(i), 1.0))
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkMatrix = Compose(ms...)
			}
		})
	}
}

// BenchmarkDecompose benchmarks parameter extraction.
func BenchmarkDecompose(b *testing.B) {
	m := Recompose(2.0, 3.0, 0.5, 10.0, 20.0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sx, sy, angle, dx, dy := m.Decompose()
		sinkScalar = sx + sy + angle + dx + dy
	}
}

// BenchmarkTransformPolygon benchmarks elementwise point application.
func BenchmarkTransformPolygon(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"4", 4},
		{"64", 64},
		{"1024", 1024},
	}

	m := Compose(Translate(1.0, 2.0), Rotate(0.3), Scale(2.0, 2.0))
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			pts := make([]Point[float64], size.n)
			for i := range pts {
				pts[i] = Pt(float64(i), float64(i%7))
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkPolygon = m.TransformPolygon(pts)
			}
		})
	}
}

// Sinks keep the compiler from eliminating benchmark bodies.
var (
	sinkMatrix  Matrix[float64]
	sinkScalar  float64
	sinkPolygon []Point[float64]
)
