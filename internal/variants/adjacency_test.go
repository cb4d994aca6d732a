package variants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

// makeLayer builds a single-step, single-layer grid from rows of
// space-separated cell strings.
func makeLayer(rows ...string) tile.Grid {
	layer := make([][]tile.Stack, len(rows))
	for y, row := range rows {
		var cells []tile.Stack
		for _, cell := range strings.Fields(row) {
			cells = append(cells, tile.ParseCell(cell))
		}
		layer[y] = cells
	}
	return tile.Grid{{layer}}
}

func TestJoins_SameName(t *testing.T) {
	g := makeLayer("wall wall")
	origin := tile.Raw{Name: "wall"}

	assert.True(t, Joins(g, origin, tile.Position{X: 1, Y: 0}, false))
}

func TestJoins_DifferentName(t *testing.T) {
	g := makeLayer("wall rock")
	origin := tile.Raw{Name: "wall"}

	assert.False(t, Joins(g, origin, tile.Position{X: 1, Y: 0}, false))
}

func TestJoins_ReservedMarkers(t *testing.T) {
	g := makeLayer("wall level border")
	origin := tile.Raw{Name: "wall"}

	assert.True(t, Joins(g, origin, tile.Position{X: 1, Y: 0}, false))
	assert.True(t, Joins(g, origin, tile.Position{X: 2, Y: 0}, false))
}

func TestJoins_StackOccupant(t *testing.T) {
	g := makeLayer("wall rock&wall")
	origin := tile.Raw{Name: "wall"}

	assert.True(t, Joins(g, origin, tile.Position{X: 1, Y: 0}, false))
}

func TestJoins_OutOfBounds_BorderFlag(t *testing.T) {
	g := makeLayer("wall")
	origin := tile.Raw{Name: "wall"}
	outside := tile.Position{X: -1, Y: 0}

	assert.False(t, Joins(g, origin, outside, false))
	assert.True(t, Joins(g, origin, outside, true))
}

func TestAutoTileVariant_Isolated(t *testing.T) {
	g := makeLayer("wall")
	variant, fallback := autoTileVariant(g, tile.Raw{Name: "wall"}, tile.Position{}, false)
	assert.Equal(t, 0, variant)
	assert.Equal(t, 0, fallback)
}

func TestAutoTileVariant_CardinalMaskIsVariant(t *testing.T) {
	// Plus shape: center has all four cardinal neighbors but no
	// diagonals, so the refined and fallback variants agree at 15.
	g := makeLayer(
		"-    wall -",
		"wall wall wall",
		"-    wall -",
	)
	variant, fallback := autoTileVariant(g, tile.Raw{Name: "wall"}, tile.Position{X: 1, Y: 1}, false)
	assert.Equal(t, 15, variant)
	assert.Equal(t, 15, fallback)
}

func TestAutoTileVariant_FullyEnclosed(t *testing.T) {
	g := makeLayer(
		"wall wall wall",
		"wall wall wall",
		"wall wall wall",
	)
	variant, fallback := autoTileVariant(g, tile.Raw{Name: "wall"}, tile.Position{X: 1, Y: 1}, false)
	assert.Equal(t, 46, variant)
	assert.Equal(t, 15, fallback)
}

func TestAutoTileVariant_DiagonalNeedsFlankingCardinals(t *testing.T) {
	// The right-up diagonal neighbor is present but its flanking
	// cardinals are not, so the diagonal bit never sets.
	g := makeLayer(
		"-    wall",
		"wall -",
	)
	variant, fallback := autoTileVariant(g, tile.Raw{Name: "wall"}, tile.Position{X: 0, Y: 1}, false)
	assert.Equal(t, 0, variant)
	assert.Equal(t, 0, fallback)
}

func TestAutoTileVariant_DiagonalRefinement(t *testing.T) {
	// Right, up and the right-up diagonal join: mask 3 refined by the
	// RU bit maps to variant 16, falling back to 3.
	g := makeLayer(
		"- wall wall",
		"- wall wall",
	)
	variant, fallback := autoTileVariant(g, tile.Raw{Name: "wall"}, tile.Position{X: 1, Y: 1}, false)
	assert.Equal(t, 16, variant)
	assert.Equal(t, 3, fallback)
}

func TestAutoTileVariant_BordersJoinWithFlag(t *testing.T) {
	g := makeLayer("wall")
	variant, fallback := autoTileVariant(g, tile.Raw{Name: "wall"}, tile.Position{}, true)
	assert.Equal(t, 46, variant)
	assert.Equal(t, 15, fallback)
}

func TestTilingVariants_CardinalTableTotal(t *testing.T) {
	for mask := uint8(0); mask < 16; mask++ {
		v, ok := tilingVariants[mask]
		require.True(t, ok, "mask %d missing", mask)
		assert.Equal(t, int(mask), v)
	}
}
