package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/grid"
)

// BenchmarkRegions measures Regions on a random 500×500 maze with ~30% walls.
// Complexity: O(R×C×4)
func BenchmarkRegions(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if r.Intn(10) < 3 {
				values[y][x] = 1
			}
		}
	}
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Regions()
	}
}
