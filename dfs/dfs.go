// Package dfs implements depth-first pathfinding on a grid.Grid.
// Recursion is replaced by an explicit stack of frames, so deep mazes cannot
// exhaust the goroutine stack; the visit order matches the recursive form.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// frame is one cell on the current path together with the index of the
// next direction still to try from it.
type frame struct {
	at   grid.Coord
	next int
}

// walker encapsulates the state of a single FindPath call.
type walker struct {
	g       *grid.Grid
	opts    Options
	target  grid.Coord
	dirs    [4]grid.Coord
	visited *grid.Visited
	stack   []frame
}

// FindPath searches g from start to target depth-first and returns the first
// path found, or nil when target is unreachable through open cells.
// Returns ErrGridNil for a nil grid and grid.ErrOutOfBounds when start or
// target lies outside the grid.
func FindPath(g *grid.Grid, start, target grid.Coord, opts ...Option) (grid.Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.Check(start); err != nil {
		return nil, fmt.Errorf("dfs: start: %w", err)
	}
	if err := g.Check(target); err != nil {
		return nil, fmt.Errorf("dfs: target: %w", err)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Walk with call-scoped state
	w := &walker{
		g:       g,
		opts:    o,
		target:  target,
		dirs:    grid.Directions(),
		visited: grid.NewVisited(g),
	}

	return w.run(start), nil
}

// run drives the explicit stack until the target is entered or every
// reachable cell has been exhausted.
func (w *walker) run(start grid.Coord) grid.Path {
	if w.enter(start) {
		return w.path(start)
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next == len(w.dirs) {
			// dead end: backtrack
			at := top.at
			w.stack = w.stack[:len(w.stack)-1]
			if w.opts.OnBacktrack != nil {
				w.opts.OnBacktrack(at, len(w.stack))
			}
			continue
		}
		nb := top.at.Add(w.dirs[top.next])
		top.next++
		if w.g.IsValidMove(nb, w.visited) && w.enter(nb) {
			return w.path(nb)
		}
	}

	return nil
}

// enter reports true if c is the target. Otherwise it marks c visited and
// pushes it onto the path. The target is matched before anything else.
func (w *walker) enter(c grid.Coord) bool {
	depth := len(w.stack)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(c, depth)
	}
	if c == w.target {
		return true
	}
	w.visited.Mark(c)
	w.stack = append(w.stack, frame{at: c})

	return false
}

// path copies the current stack and appends last.
func (w *walker) path(last grid.Coord) grid.Path {
	p := make(grid.Path, 0, len(w.stack)+1)
	for _, f := range w.stack {
		p = append(p, f.at)
	}

	return append(p, last)
}
