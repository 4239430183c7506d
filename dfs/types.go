// Package dfs defines options and errors for depth-first pathfinding.
package dfs

import (
	"errors"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrGridNil is returned when a nil *grid.Grid is passed to FindPath.
var ErrGridNil = errors.New("dfs: grid is nil")

// Option configures optional behavior of FindPath.
type Option func(*Options)

// Options holds the hooks of a depth-first search.
type Options struct {
	// OnVisit, if non-nil, is invoked when a cell is entered (pre-order);
	// non-target cells are then marked visited. The target is reported too.
	OnVisit func(c grid.Coord, depth int)

	// OnBacktrack, if non-nil, is invoked when a cell with no way forward
	// is removed from the path.
	OnBacktrack func(c grid.Coord, depth int)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the backtrack hook.
func WithOnBacktrack(fn func(c grid.Coord, depth int)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}
