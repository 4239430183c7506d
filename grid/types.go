// Package grid defines core types and sentinel errors for maze grids.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidPath indicates a path that is not a simple 4-connected route.
	ErrInvalidPath = errors.New("grid: invalid path")
)

// State is the state of a single maze cell.
type State uint8

const (
	// Open cells can be walked through.
	Open State = iota
	// Blocked cells are walls.
	Blocked
)

// String returns "open" or "blocked".
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "blocked"
}

// Coord is a (Row, Col) pair, used both as a grid index and as node identity.
type Coord struct {
	Row, Col int
}

// Add returns c moved by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String formats c as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// directions lists the 4 unit moves in traversal order: up, down, left, right.
// The order is the tie-break between equally valid routes.
var directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Directions returns a copy of the unit moves in traversal order:
// up, down, left, right. Changing the copy has no effect on the package.
func Directions() [4]Coord {
	return directions
}

// Path is an ordered route from start to target, both inclusive.
// A nil Path means no route exists.
type Path []Coord

// Len reports the number of edges (moves) in p; 0 for an empty path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c lies on p.
func (p Path) Contains(c Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}
