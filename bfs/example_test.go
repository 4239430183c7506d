// File: bfs/example_test.go
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
)

// ExampleFindPath finds the shortest route through the demo maze.
func ExampleFindPath() {
	g, _ := grid.New([][]int{
		{0, 1, 0, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
	})
	path, err := bfs.FindPath(g, grid.Coord{Row: 0, Col: 2}, grid.Coord{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", path)
	fmt.Println("moves:", path.Len())

	// Output:
	// path: [(0, 2) (1, 2) (2, 2) (3, 2) (4, 2) (4, 3) (4, 4)]
	// moves: 6
}

// ExampleFindPath_unreachable shows that a missing route is a nil path,
// not an error.
func ExampleFindPath_unreachable() {
	g, _ := grid.New([][]int{
		{0, 1, 0},
	})
	path, err := bfs.FindPath(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 2})
	fmt.Println(path == nil, err)

	// Output:
	// true <nil>
}
