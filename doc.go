// Package mazepath finds and renders routes through small 2D mazes of
// open and blocked cells.
//
// What is inside?
//
//	grid/     — immutable maze grid, coordinates, visited sets, open regions
//	dfs/      — depth-first pathfinder (first path found, explicit stack)
//	bfs/      — breadth-first pathfinder (shortest path by edge count)
//	render/   — coordinate sequence and annotated maze output
//	mazefile/ — YAML maze documents and the embedded sample maze
//	config/   — environment configuration of the demo driver
//
// Quick ASCII example (0 = open, 1 = wall, 8 = path):
//
//	0 1 8 0 0
//	0 1 8 1 0
//	0 0 8 1 0
//	1 1 8 1 0
//	0 0 8 8 8
//
// Run the demo driver with:
//
//	go run ./cmd/mazepath
package mazepath
