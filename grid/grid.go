// Package grid provides an immutable maze grid of open and blocked cells.
// Cells with value 0 are open; every other value is a wall.
package grid

import "fmt"

// Grid is a rectangular maze. It is immutable once built.
// cells holds the states in row-major order: cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []State
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It copies the input, so later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	cells := make([]State, rows*cols)
	for r, row := range values {
		for c, v := range row {
			if v != 0 {
				cells[r*cols+c] = Blocked
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Check returns ErrOutOfBounds, wrapped with c, if c is outside the grid.
func (g *Grid) Check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return nil
}

// State returns the state of the cell at c.
func (g *Grid) State(c Coord) (State, error) {
	if err := g.Check(c); err != nil {
		return Blocked, err
	}
	return g.cells[g.index(c)], nil
}

// IsValidMove reports whether c is in bounds, open and not yet in visited.
// It never mutates g or visited.
func (g *Grid) IsValidMove(c Coord, visited *Visited) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	return g.cells[i] == Open && !visited.seen[i]
}

// Values returns a fresh [][]int copy of the grid: 0 for open, 1 for blocked.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.cells[r*g.cols+c])
		}
	}
	return out
}

// Index maps c to its row-major offset. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return g.index(c)
}

// Coordinate converts a row-major offset back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Size returns rows*cols.
func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}
