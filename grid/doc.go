// Package grid models a maze as an immutable 2D grid of open and blocked
// cells, and provides the move-validity check shared by the pathfinders.
//
// What:
//
//   - Grid wraps a rectangular [][]int maze (0 = open, anything else = blocked).
//   - Coord identifies a cell by (Row, Col) and doubles as a graph node.
//   - Visited is a dense, traversal-scoped set of coordinates.
//   - Regions labels 4-connected areas of open cells.
//
// Why:
//
//   - One authoritative cell-state lookup for every traversal.
//   - Dense row-major storage: O(1) lookups, no per-cell allocation.
//
// Complexity:
//
//   - New:          O(R×C) time and memory (deep copy).
//   - State, IsValidMove, InBounds: O(1).
//   - Regions:      O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside [0,rows)×[0,cols).
package grid
