package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrEmptyPath is returned by Write when there is nothing to render.
var ErrEmptyPath = errors.New("render: empty path")

// ANSI escape codes used by WithColor.
const (
	ColorPath  = "\033[32m"
	ColorReset = "\033[0m"
)

// Options controls how cells are drawn.
type Options struct {
	Open    string // marker for open cells
	Blocked string // marker for walls
	Path    string // marker for cells on the path
	Color   bool   // wrap path markers in ColorPath/ColorReset
}

// Option configures rendering via functional arguments.
type Option func(*Options)

// DefaultOptions returns the classic markers 0, 1 and 8 without color.
func DefaultOptions() Options {
	return Options{Open: "0", Blocked: "1", Path: "8"}
}

// WithMarkers replaces the open, blocked and path markers.
// Empty strings keep the current marker.
func WithMarkers(open, blocked, path string) Option {
	return func(o *Options) {
		if open != "" {
			o.Open = open
		}
		if blocked != "" {
			o.Blocked = blocked
		}
		if path != "" {
			o.Path = path
		}
	}
}

// WithColor enables or disables ANSI highlighting of path cells.
func WithColor(on bool) Option {
	return func(o *Options) {
		o.Color = on
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Sequence formats p as space-separated "(row, col)" pairs.
func Sequence(p grid.Path) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Annotate draws g with the cells of p marked, one string per row and
// cells separated by a single space. Path coordinates outside g are ignored.
func Annotate(g *grid.Grid, p grid.Path, opts ...Option) []string {
	o := buildOptions(opts)
	onPath := make([]bool, g.Size())
	for _, c := range p {
		if g.InBounds(c) {
			onPath[g.Index(c)] = true
		}
	}

	pathMark := o.Path
	if o.Color {
		pathMark = ColorPath + o.Path + ColorReset
	}
	lines := make([]string, g.Rows())
	cells := make([]string, g.Cols())
	for r := range lines {
		for c := range cells {
			at := grid.Coord{Row: r, Col: c}
			switch s, _ := g.State(at); {
			case onPath[g.Index(at)]:
				cells[c] = pathMark
			case s == grid.Open:
				cells[c] = o.Open
			default:
				cells[c] = o.Blocked
			}
		}
		lines[r] = strings.Join(cells, " ")
	}
	return lines
}

// Write renders the "Path found" report for p on g to w.
// Returns ErrEmptyPath for an empty path, or the first write error.
func Write(w io.Writer, g *grid.Grid, p grid.Path, opts ...Option) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	o := buildOptions(opts)

	var b strings.Builder
	b.WriteString("Path found:\n")
	b.WriteString(Sequence(p))
	fmt.Fprintf(&b, "\n\nMaze with path (%s = path):\n", o.Path)
	for _, line := range Annotate(g, p, opts...) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
