// Package bfs finds a shortest path (by edge count) through a maze grid
// with breadth-first search.
//
// What
//
//   - FindPath(g, start, target, opts...) explores cells in non-decreasing
//     distance from start and returns the route to target with the fewest
//     moves.
//   - Cells are marked visited when enqueued, so no cell enters the queue
//     twice; the first time target is dequeued it was reached by a shortest
//     route.
//   - The route is rebuilt by following parent links back from target.
//   - Hooks at two stages:
//     OnEnqueue (when a cell is discovered),
//     OnDequeue (when a cell is taken off the frontier).
//
// Determinism
//
//	Neighbors are enqueued in the fixed order up, down, left, right, so among
//	several shortest routes the same one is always returned.
//
// Complexity (R×C = grid size)
//
//   - Time:   O(R×C)
//   - Memory: O(R×C)   (queue, visited set, parent links)
//
// Usage
//
//	path, err := bfs.FindPath(g, start, target)
//	if err != nil {
//		// ErrGridNil or grid.ErrOutOfBounds
//	}
//	if path == nil {
//		// target unreachable
//	}
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - grid.ErrOutOfBounds if start or target lies outside the grid.
package bfs
