package grid

// Visited is a dense set of coordinates sized to one Grid.
// Each traversal allocates its own; a Visited is never shared between runs.
type Visited struct {
	g    *Grid
	seen []bool
	n    int
}

// NewVisited returns an empty visited set for g.
func NewVisited(g *Grid) *Visited {
	return &Visited{g: g, seen: make([]bool, len(g.cells))}
}

// Mark records c as visited. c must be in bounds.
func (v *Visited) Mark(c Coord) {
	i := v.g.index(c)
	if !v.seen[i] {
		v.seen[i] = true
		v.n++
	}
}

// Seen reports whether c has been visited. Out-of-bounds coordinates are never seen.
func (v *Visited) Seen(c Coord) bool {
	return v.g.InBounds(c) && v.seen[v.g.index(c)]
}

// Count returns the number of visited coordinates.
func (v *Visited) Count() int {
	return v.n
}
