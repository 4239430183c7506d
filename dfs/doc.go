// Package dfs finds a path through a maze grid with depth-first search
// and explicit backtracking.
//
// What
//
//   - FindPath(g, start, target, opts...) returns the first path found,
//     exploring neighbors in the fixed order up, down, left, right.
//   - The path is simple (no cell repeats) but not necessarily shortest.
//   - Hooks: OnVisit when a cell is entered, OnBacktrack when a dead end is
//     popped off the path.
//
// Determinism
//
//	The direction order is the only tie-break, so identical inputs always
//	yield the identical path.
//
// Edge cases
//
//	The target check runs before the validity check: when start == target
//	the single-cell path is returned even if that cell is a wall.
//
// Complexity (R×C = grid size)
//
//   - Time:   O(R×C)   (each cell entered at most once)
//   - Memory: O(R×C)   (visited set and explicit stack; no recursion)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - grid.ErrOutOfBounds if start or target lies outside the grid.
//
// "No path" is not an error: FindPath returns a nil path and a nil error.
package dfs
