// Package mazefile reads maze documents: a grid of 0 (open) and 1 (wall)
// cells plus a start and a target coordinate, encoded as YAML.
//
//	name: sample
//	grid:
//	  - [0, 1, 0]
//	  - [0, 0, 0]
//	start: [0, 0]
//	target: [1, 2]
package mazefile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrInvalidMaze is returned for documents that cannot describe a maze.
var ErrInvalidMaze = errors.New("mazefile: invalid maze")

//go:embed sample.yaml
var sampleDoc []byte

// Maze is one decoded, validated maze document.
type Maze struct {
	Name   string
	Start  grid.Coord
	Target grid.Coord

	g *grid.Grid
}

// document mirrors the YAML layout; pointers detect missing keys.
type document struct {
	Name   string  `yaml:"name"`
	Grid   [][]int `yaml:"grid"`
	Start  *point  `yaml:"start"`
	Target *point  `yaml:"target"`
}

// point is a [row, col] pair in YAML.
type point grid.Coord

// UnmarshalYAML accepts exactly two integers.
func (p *point) UnmarshalYAML(node *yaml.Node) error {
	var v []int
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%w: line %d: point: %v", ErrInvalidMaze, node.Line, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("%w: line %d: point needs [row, col], got %d values", ErrInvalidMaze, node.Line, len(v))
	}
	*p = point{Row: v[0], Col: v[1]}
	return nil
}

// Parse decodes and validates a maze document.
// The grid must be non-empty and rectangular, and start and target must be
// present and lie inside it; either may be a wall.
func Parse(data []byte) (*Maze, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, ErrInvalidMaze) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidMaze, err)
	}
	if doc.Start == nil || doc.Target == nil {
		return nil, fmt.Errorf("%w: start and target are required", ErrInvalidMaze)
	}
	g, err := grid.New(doc.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}
	m := &Maze{
		Name:   doc.Name,
		Start:  grid.Coord(*doc.Start),
		Target: grid.Coord(*doc.Target),
		g:      g,
	}
	if err := g.Check(m.Start); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalidMaze, err)
	}
	if err := g.Check(m.Target); err != nil {
		return nil, fmt.Errorf("%w: target: %w", ErrInvalidMaze, err)
	}

	return m, nil
}

// Load reads and parses the maze document at path.
func Load(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = path
	}
	return m, nil
}

// Sample returns the built-in 5×5 demo maze.
func Sample() *Maze {
	m, err := Parse(sampleDoc)
	if err != nil {
		panic("mazefile: embedded sample: " + err.Error())
	}
	return m
}

// Grid returns the validated grid of m.
func (m *Maze) Grid() *grid.Grid {
	return m.g
}
