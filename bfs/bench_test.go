package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
)

// BenchmarkFindPath_Open measures corner-to-corner search on an open 500×500 grid.
// Complexity: O(R×C)
func BenchmarkFindPath_Open(b *testing.B) {
	const n = 500
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
	}
	benchmarkFindPath(b, values, grid.Coord{Row: n - 1, Col: n - 1})
}

// BenchmarkFindPath_Random measures search on a random 500×500 maze with ~25% walls.
func BenchmarkFindPath_Random(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			if r.Intn(4) == 0 {
				values[y][x] = 1
			}
		}
	}
	values[0][0] = 0
	benchmarkFindPath(b, values, grid.Coord{Row: n - 1, Col: n - 1})
}

func benchmarkFindPath(b *testing.B, values [][]int, target grid.Coord) {
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.FindPath(g, grid.Coord{}, target)
	}
}
