// Package bfs provides tunable options and error definitions
// for breadth-first pathfinding over a grid.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("bfs: grid is nil")

// Option configures FindPath behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to observe a BFS run.
type Options struct {
	// OnEnqueue is called when a cell is discovered and enqueued.
	// Receives the cell and its distance (moves) from start.
	OnEnqueue func(c grid.Coord, depth int)

	// OnDequeue is called when a cell is taken off the frontier,
	// including the target itself.
	OnDequeue func(c grid.Coord, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Coord, int) {},
		OnDequeue: func(grid.Coord, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
