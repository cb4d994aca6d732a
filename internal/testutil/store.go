// Package testutil provides shared fixtures for resolution tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// Fixtures covers every tiling category plus a text tile, so rule
// tests can pick a record with exactly the gating they need.
var Fixtures = []tiledata.Tile{
	{
		Name: "baba", Source: "vanilla", Sprite: "baba",
		Tiling:      tiledata.TilingCharacter,
		ActiveColor: tile.PaletteIndex{X: 0, Y: 3}, InactiveColor: tile.PaletteIndex{X: 0, Y: 1},
	},
	{
		Name: "keke", Source: "vanilla", Sprite: "keke",
		Tiling:      tiledata.TilingCharacter,
		ActiveColor: tile.PaletteIndex{X: 2, Y: 2}, InactiveColor: tile.PaletteIndex{X: 2, Y: 1},
	},
	{
		Name: "wall", Source: "vanilla", Sprite: "wall",
		Tiling:      tiledata.TilingAutotiled,
		ActiveColor: tile.PaletteIndex{X: 1, Y: 1}, InactiveColor: tile.PaletteIndex{X: 1, Y: 1},
	},
	{
		Name: "belt", Source: "vanilla", Sprite: "belt",
		Tiling:      tiledata.TilingAnimDirectional,
		ActiveColor: tile.PaletteIndex{X: 1, Y: 3}, InactiveColor: tile.PaletteIndex{X: 1, Y: 2},
	},
	{
		Name: "skull", Source: "vanilla", Sprite: "skull",
		Tiling:      tiledata.TilingDirectional,
		ActiveColor: tile.PaletteIndex{X: 2, Y: 1}, InactiveColor: tile.PaletteIndex{X: 2, Y: 0},
	},
	{
		Name: "bubble", Source: "vanilla", Sprite: "bubble",
		Tiling:      tiledata.TilingAnimated,
		ActiveColor: tile.PaletteIndex{X: 1, Y: 4}, InactiveColor: tile.PaletteIndex{X: 1, Y: 2},
	},
	{
		Name: "rock", Source: "vanilla", Sprite: "rock",
		Tiling:      tiledata.TilingNone,
		ActiveColor: tile.PaletteIndex{X: 6, Y: 2}, InactiveColor: tile.PaletteIndex{X: 6, Y: 1},
	},
	{
		Name: "text_baba", Source: "vanilla", Sprite: "text_baba",
		Tiling:      tiledata.TilingNone,
		ActiveColor: tile.PaletteIndex{X: 4, Y: 1}, InactiveColor: tile.PaletteIndex{X: 4, Y: 0},
		TextType:    tiledata.TextNoun,
	},
	{
		Name: "text_arrow", Source: "vanilla", Sprite: "text_arrow",
		Tiling:      tiledata.TilingDirectional,
		ActiveColor: tile.PaletteIndex{X: 4, Y: 1}, InactiveColor: tile.PaletteIndex{X: 4, Y: 0},
		TextType:    tiledata.TextNoun,
	},
	{
		Name: "text_you", Source: "vanilla", Sprite: "text_you",
		Tiling:      tiledata.TilingNone,
		ActiveColor: tile.PaletteIndex{X: 4, Y: 1}, InactiveColor: tile.PaletteIndex{X: 4, Y: 0},
		TextType:    tiledata.TextProperty,
	},
}

// OpenStore opens an in-memory tile store seeded with the fixture
// records. The store is closed when the test finishes.
func OpenStore(t *testing.T) *tiledata.Store {
	t.Helper()
	st, err := tiledata.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	for _, rec := range Fixtures {
		require.NoError(t, st.Upsert(ctx, rec))
	}
	return st
}

// Cache returns the fixture records keyed by name, for tests that
// bypass the store and feed the resolver directly.
func Cache() map[string]*tiledata.Tile {
	out := make(map[string]*tiledata.Tile, len(Fixtures))
	for i := range Fixtures {
		rec := Fixtures[i]
		out[rec.Name] = &rec
	}
	return out
}
