package grid

import "fmt"

// ValidatePath checks that p is a simple route from start to target on g:
// first and last cells match, consecutive cells are one unit move apart,
// no cell repeats, and every cell after the first is open.
// The first cell is exempt from the open check because the pathfinders
// never test the state of the cell they start from.
// Returns ErrInvalidPath (wrapped with the reason) or ErrOutOfBounds.
func (g *Grid) ValidatePath(p Path, start, target Coord) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != start {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p[0], start)
	}
	if last := p[len(p)-1]; last != target {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, target)
	}

	seen := NewVisited(g)
	for i, c := range p {
		s, err := g.State(c)
		if err != nil {
			return err
		}
		if i > 0 && s != Open {
			return fmt.Errorf("%w: step %d %v is blocked", ErrInvalidPath, i, c)
		}
		if seen.Seen(c) {
			return fmt.Errorf("%w: step %d %v repeats", ErrInvalidPath, i, c)
		}
		seen.Mark(c)
		if i > 0 && !adjacent(p[i-1], c) {
			return fmt.Errorf("%w: step %d %v -> %v is not a unit move", ErrInvalidPath, i, p[i-1], c)
		}
	}
	return nil
}

func adjacent(a, b Coord) bool {
	for _, d := range directions {
		if a.Add(d) == b {
			return true
		}
	}
	return false
}
