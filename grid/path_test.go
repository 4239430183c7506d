package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

func TestValidatePath(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	start, target := grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 2, Col: 2}

	cases := []struct {
		name string
		path grid.Path
		err  error
	}{
		{"Valid", grid.Path{{0, 1}, {0, 2}, {1, 2}, {2, 2}}, nil},
		{"Empty", nil, grid.ErrInvalidPath},
		{"WrongStart", grid.Path{{0, 2}, {1, 2}, {2, 2}}, grid.ErrInvalidPath},
		{"WrongEnd", grid.Path{{0, 1}, {0, 2}, {1, 2}}, grid.ErrInvalidPath},
		{"Jump", grid.Path{{0, 1}, {0, 2}, {2, 2}}, grid.ErrInvalidPath},
		{"Diagonal", grid.Path{{0, 1}, {0, 2}, {1, 2}, {2, 1}, {2, 2}}, grid.ErrInvalidPath},
		{"ThroughWall", grid.Path{{0, 1}, {1, 1}, {2, 1}, {2, 2}}, grid.ErrInvalidPath},
		{"Repeats", grid.Path{{0, 1}, {0, 2}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, grid.ErrInvalidPath},
		{"OutOfBounds", grid.Path{{0, 1}, {-1, 1}, {2, 2}}, grid.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.ValidatePath(tc.path, start, target)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestValidatePath_BlockedStart accepts a wall as the first cell only.
func TestValidatePath_BlockedStart(t *testing.T) {
	g, err := grid.New([][]int{{1, 0}})
	require.NoError(t, err)
	wall := grid.Coord{Row: 0, Col: 0}

	assert.NoError(t, g.ValidatePath(grid.Path{wall}, wall, wall))
	assert.NoError(t, g.ValidatePath(grid.Path{wall, {0, 1}}, wall, grid.Coord{Row: 0, Col: 1}))
	assert.ErrorIs(t, g.ValidatePath(grid.Path{{0, 1}, wall}, grid.Coord{Row: 0, Col: 1}, wall), grid.ErrInvalidPath)
}
