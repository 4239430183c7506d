package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/render"
)

// solver runs one pathfinder and reports how many cells it explored.
type solver func(g *grid.Grid, start, target grid.Coord) (grid.Path, int, error)

var solvers = map[string]solver{
	config.DFS: func(g *grid.Grid, start, target grid.Coord) (grid.Path, int, error) {
		explored := 0
		p, err := dfs.FindPath(g, start, target,
			dfs.WithOnVisit(func(grid.Coord, int) { explored++ }))
		return p, explored, err
	},
	config.BFS: func(g *grid.Grid, start, target grid.Coord) (grid.Path, int, error) {
		explored := 0
		p, err := bfs.FindPath(g, start, target,
			bfs.WithOnDequeue(func(grid.Coord, int) { explored++ }))
		return p, explored, err
	},
}

// run loads the configured maze and writes one report per algorithm to out.
func run(cfg config.Config, out io.Writer, logger *log.Logger) error {
	m, err := loadMaze(cfg.MazeFile)
	if err != nil {
		return err
	}
	g := m.Grid()
	entry := logger.WithFields(log.Fields{
		"run":  uuid.NewString(),
		"maze": m.Name,
	})

	_, regions := g.Regions()
	connected, err := g.Connected(m.Start, m.Target)
	if err != nil {
		return err
	}
	entry.WithFields(log.Fields{
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"regions":   regions,
		"connected": connected,
		"start":     m.Start.String(),
		"target":    m.Target.String(),
	}).Info("maze loaded")

	opts := []render.Option{render.WithColor(useColor(cfg.Color, out))}
	for i, name := range cfg.Algorithms {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := solve(out, entry, m, name, opts); err != nil {
			return err
		}
	}
	return nil
}

// solve runs the named algorithm and prints its section of the report.
func solve(out io.Writer, entry *log.Entry, m *mazefile.Maze, name string, opts []render.Option) error {
	find, ok := solvers[name]
	if !ok {
		return fmt.Errorf("unknown algorithm %q", name)
	}
	label := strings.ToUpper(name)
	entry = entry.WithField("algorithm", name)
	g := m.Grid()

	fmt.Fprintf(out, "=== %s Maze Solver ===\n", label)
	path, explored, err := find(g, m.Start, m.Target)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if path == nil {
		entry.WithField("explored", explored).Warn("no path")
		_, err = fmt.Fprintf(out, "No path exists using %s.\n", label)
		return err
	}
	if err := g.ValidatePath(path, m.Start, m.Target); err != nil {
		return fmt.Errorf("%s returned a broken path: %w", name, err)
	}

	entry.WithFields(log.Fields{
		"explored": explored,
		"moves":    path.Len(),
	}).Info("path found")
	return render.Write(out, g, path, opts...)
}

func loadMaze(path string) (*mazefile.Maze, error) {
	if path == "" {
		return mazefile.Sample(), nil
	}
	return mazefile.Load(path)
}

// useColor resolves the color mode; auto colors only real terminals.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
