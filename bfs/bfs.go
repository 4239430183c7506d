// Package bfs provides breadth-first pathfinding over a grid.Grid,
// returning a route with the minimum number of moves.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// noParent marks the start cell in the parent links.
const noParent = -1

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state. It lives for one FindPath call.
type walker struct {
	g       *grid.Grid
	opts    Options
	dirs    [4]grid.Coord
	queue   []queueItem
	head    int
	visited *grid.Visited
	parent  []int // row-major offset of the predecessor, noParent for start
}

// FindPath runs breadth-first search on g from start and returns a shortest
// path to target, or nil when target cannot be reached.
// Returns ErrGridNil for a nil grid and grid.ErrOutOfBounds when start or
// target lies outside the grid.
func FindPath(g *grid.Grid, start, target grid.Coord, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if err := g.Check(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}
	if err := g.Check(target); err != nil {
		return nil, fmt.Errorf("bfs: target: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Prepare walker
	parent := make([]int, g.Size())
	for i := range parent {
		parent[i] = noParent
	}
	w := &walker{
		g:       g,
		opts:    o,
		dirs:    grid.Directions(),
		queue:   make([]queueItem, 0, g.Size()),
		visited: grid.NewVisited(g),
		parent:  parent,
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, noParent)
	if !w.loop(target) {
		return nil, nil
	}

	return w.pathTo(target), nil
}

// enqueue marks c visited, records its parent, calls OnEnqueue and appends it
// to the frontier.
func (w *walker) enqueue(c grid.Coord, depth, parent int) {
	w.visited.Mark(c)
	w.parent[w.g.Index(c)] = parent
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(c, depth)
	}
	w.queue = append(w.queue, queueItem{at: c, depth: depth})
}

// loop processes the frontier until target is dequeued (true) or the
// frontier is empty (false).
func (w *walker) loop(target grid.Coord) bool {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++
		if w.opts.OnDequeue != nil {
			w.opts.OnDequeue(item.at, item.depth)
		}
		if item.at == target {
			return true
		}

		from := w.g.Index(item.at)
		for _, d := range w.dirs {
			nb := item.at.Add(d)
			if w.g.IsValidMove(nb, w.visited) {
				w.enqueue(nb, item.depth+1, from)
			}
		}
	}

	return false
}

// pathTo follows parent links from target back to start, then reverses them.
func (w *walker) pathTo(target grid.Coord) grid.Path {
	var path grid.Path
	for at := w.g.Index(target); at != noParent; at = w.parent[at] {
		path = append(path, w.g.Coordinate(at))
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
