package field_test

import (
	"testing"

	"github.com/katalvlaran/flowfield/field"
	"github.com/katalvlaran/flowfield/grid"
)

// BenchmarkBuild2D measures a 256×256 grid with 20% random obstacles.
// Complexity: O(N·8·log N) for the priority strategy.
func BenchmarkBuild2D(b *testing.B) {
	target := grid.XY(128, 128)
	g := randomGrid(b, 2, grid.XY(256, 256), 0.2, 42, target)
	for _, s := range []field.Strategy{field.StrategyPriority, field.StrategyFIFO} {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := field.Build(g, target, field.WithStrategy(s)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkBuild3D measures a 48³ volume with 20% random obstacles.
func BenchmarkBuild3D(b *testing.B) {
	target := grid.XYZ(24, 24, 24)
	g := randomGrid(b, 3, grid.XYZ(48, 48, 48), 0.2, 42, target)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := field.Build(g, target); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDirection measures the per-agent lookup.
func BenchmarkDirection(b *testing.B) {
	g, _ := grid.New2D(128, 128)
	f, err := field.Build(g, grid.XY(0, 0))
	if err != nil {
		b.Fatal(err)
	}
	c := grid.XY(127, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Direction(c)
	}
}
