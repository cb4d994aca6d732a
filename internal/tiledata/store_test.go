package tiledata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func makeTile(name string, version int) Tile {
	return Tile{
		Name:          name,
		Version:       version,
		Source:        "vanilla",
		Sprite:        name,
		Tiling:        TilingCharacter,
		ActiveColor:   tile.PaletteIndex{X: 0, Y: 3},
		InactiveColor: tile.PaletteIndex{X: 0, Y: 1},
	}
}

func TestOpen_Idempotent(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Close())
}

func TestFetch_Roundtrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	rec := makeTile("baba", 0)
	rec.Tags = []string{"character", "vanilla"}
	require.NoError(t, st.Upsert(ctx, rec))

	got, err := st.Fetch(ctx, []string{"baba"}, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestFetch_UnknownNamesAbsent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, makeTile("baba", 0)))

	got, err := st.Fetch(ctx, []string{"baba", "nonexistent"}, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "baba", got[0].Name)
}

func TestFetch_EmptyNames(t *testing.T) {
	st := openTestStore(t)

	got, err := st.Fetch(context.Background(), nil, 1000)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetch_MaxVersionCutoff(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	v0 := makeTile("baba", 0)
	v2 := makeTile("baba", 2)
	v2.Sprite = "baba_override"
	v5 := makeTile("baba", 5)
	v5.Sprite = "baba_latest"
	for _, rec := range []Tile{v0, v2, v5} {
		require.NoError(t, st.Upsert(ctx, rec))
	}

	tests := []struct {
		name       string
		maxVersion int
		sprite     string
	}{
		{"cutoff below overrides", 1, "baba"},
		{"cutoff admits middle", 2, "baba_override"},
		{"cutoff between versions", 4, "baba_override"},
		{"cutoff admits all", 1000, "baba_latest"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := st.Fetch(ctx, []string{"baba"}, tc.maxVersion)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tc.sprite, got[0].Sprite)
		})
	}
}

func TestUpsert_Overwrites(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, makeTile("baba", 0)))

	updated := makeTile("baba", 0)
	updated.ActiveColor = tile.PaletteIndex{X: 2, Y: 2}
	require.NoError(t, st.Upsert(ctx, updated))

	got, err := st.Fetch(ctx, []string{"baba"}, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tile.PaletteIndex{X: 2, Y: 2}, got[0].ActiveColor)
}
