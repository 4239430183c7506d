package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/config"
)

const sampleReport = `=== DFS Maze Solver ===
Path found:
(0, 2) (1, 2) (2, 2) (3, 2) (4, 2) (4, 3) (4, 4)

Maze with path (8 = path):
0 1 8 0 0
0 1 8 1 0
0 0 8 1 0
1 1 8 1 0
0 0 8 8 8

=== BFS Maze Solver ===
Path found:
(0, 2) (1, 2) (2, 2) (3, 2) (4, 2) (4, 3) (4, 4)

Maze with path (8 = path):
0 1 8 0 0
0 1 8 1 0
0 0 8 1 0
1 1 8 1 0
0 0 8 8 8
`

func TestRun_Sample(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer

	cfg := config.Config{Algorithms: []string{config.DFS, config.BFS}, Color: config.ColorNever}
	require.NoError(t, run(cfg, &out, logger))
	assert.Equal(t, sampleReport, out.String())

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "maze loaded", entries[0].Message)
	assert.Equal(t, 1, entries[0].Data["regions"])
	assert.Equal(t, "path found", entries[1].Message)
	assert.Equal(t, "dfs", entries[1].Data["algorithm"])
	assert.Equal(t, 9, entries[1].Data["explored"])
	assert.Equal(t, 6, entries[2].Data["moves"])
	assert.Equal(t, entries[0].Data["run"], entries[2].Data["run"])
}

func TestRun_NoPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "walled.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
name: walled
grid:
  - [1, 1, 1]
  - [1, 0, 1]
  - [1, 1, 0]
start: [1, 1]
target: [2, 2]
`), 0o600))

	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	cfg := config.Config{MazeFile: file, Algorithms: []string{config.BFS, config.DFS}, Color: config.ColorNever}
	require.NoError(t, run(cfg, &out, logger))

	assert.Equal(t, "=== BFS Maze Solver ===\nNo path exists using BFS.\n\n"+
		"=== DFS Maze Solver ===\nNo path exists using DFS.\n", out.String())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, false, hook.AllEntries()[0].Data["connected"])
}

func TestRun_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	err := run(config.Config{MazeFile: filepath.Join(t.TempDir(), "nope.yaml")}, &bytes.Buffer{}, logger)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run(config.Config{Algorithms: []string{"astar"}}, &bytes.Buffer{}, logger)
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestUseColor(t *testing.T) {
	assert.True(t, useColor(config.ColorAlways, &bytes.Buffer{}))
	assert.False(t, useColor(config.ColorNever, os.Stdout))
	assert.False(t, useColor(config.ColorAuto, &bytes.Buffer{}))
}
