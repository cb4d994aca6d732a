package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeGrid builds a single-step, single-layer grid from rows of cell
// strings.
func makeGrid(rows ...[]string) Grid {
	layer := make([][]Stack, len(rows))
	for y, row := range rows {
		layer[y] = make([]Stack, len(row))
		for x, cell := range row {
			layer[y][x] = ParseCell(cell)
		}
	}
	return Grid{{layer}}
}

func TestGridStack_InBounds(t *testing.T) {
	g := makeGrid(
		[]string{"baba", "wall"},
		[]string{"rock", "-"},
	)

	stack, ok := g.Stack(Position{X: 1, Y: 0})
	require.True(t, ok)
	require.Len(t, stack, 1)
	assert.Equal(t, "wall", stack[0].Name)
}

func TestGridStack_OutOfBounds(t *testing.T) {
	g := makeGrid([]string{"baba"})

	positions := []Position{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{Step: 1},
		{Layer: 1},
	}
	for _, p := range positions {
		_, ok := g.Stack(p)
		assert.False(t, ok, "position %+v should be out of bounds", p)
	}
}

func TestGridNames_Distinct(t *testing.T) {
	g := makeGrid(
		[]string{"baba", "wall&baba"},
		[]string{"wall", "rock"},
	)
	assert.Equal(t, []string{"baba", "wall", "rock"}, g.Names())
}

func TestPositionHelpers(t *testing.T) {
	p := Position{Step: 1, Layer: 2, X: 3, Y: 4}
	assert.Equal(t, Position{Step: 1, Layer: 2, X: 4, Y: 4}, p.Right())
	assert.Equal(t, Position{Step: 1, Layer: 2, X: 3, Y: 3}, p.Up())
	assert.Equal(t, Position{Step: 1, Layer: 2, X: 2, Y: 4}, p.Left())
	assert.Equal(t, Position{Step: 1, Layer: 2, X: 3, Y: 5}, p.Down())
	// Helpers return copies.
	assert.Equal(t, Position{Step: 1, Layer: 2, X: 3, Y: 4}, p)
}
