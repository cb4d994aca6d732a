package tiledata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

const validPack = `
source: vanilla
tiles:
  - name: baba
    sprite: baba
    tiling: 2
    active_color: [0, 3]
    inactive_color: [0, 1]
  - name: wall
    sprite: wall
    tiling: 1
    tags: [solid]
`

func decodeYAML(t *testing.T, doc string) any {
	t.Helper()
	var out any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &out))
	return out
}

func TestValidatePack_Valid(t *testing.T) {
	violations := ValidatePack(decodeYAML(t, validPack))
	assert.Empty(t, violations)
}

func TestValidatePack_Violations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"palette x out of range",
			`
tiles:
  - name: baba
    sprite: baba
    active_color: [7, 0]
`,
		},
		{
			"palette y out of range",
			`
tiles:
  - name: baba
    sprite: baba
    inactive_color: [0, 5]
`,
		},
		{
			"missing sprite",
			`
tiles:
  - name: baba
`,
		},
		{
			"empty name",
			`
tiles:
  - name: ""
    sprite: baba
`,
		},
		{
			"unknown tiling category",
			`
tiles:
  - name: baba
    sprite: baba
    tiling: 9
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			violations := ValidatePack(decodeYAML(t, tc.doc))
			assert.NotEmpty(t, violations)
		})
	}
}

func TestLoadPack_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validPack), 0o644))

	pack, err := LoadPack(path)
	require.NoError(t, err)
	assert.Equal(t, "vanilla", pack.Source)
	require.Len(t, pack.Tiles, 2)
	assert.Equal(t, "baba", pack.Tiles[0].Name)
	assert.Equal(t, []string{"solid"}, pack.Tiles[1].Tags)
}

func TestLoadPack_DefaultsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tiles:
  - name: baba
    sprite: baba
`), 0o644))

	pack, err := LoadPack(path)
	require.NoError(t, err)
	assert.Equal(t, "vanilla", pack.Source)
}

func TestLoadPack_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tiles:
  - name: baba
    sprite: baba
    active_color: [9, 9]
`), 0o644))

	_, err := LoadPack(path)
	assert.Error(t, err)
}

func TestImport_WritesRecords(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	character, autotiled := 2, 1
	pack := &Pack{
		Source: "modded",
		Tiles: []PackTile{
			{Name: "baba", Sprite: "baba", Tiling: &character, ActiveColor: []int{4, 1}, InactiveColor: []int{4, 0}},
			{Name: "wall", Sprite: "wall", Tiling: &autotiled},
			{Name: "rock", Sprite: "rock"},
		},
	}
	n, err := st.Import(ctx, pack)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := st.Fetch(ctx, []string{"baba", "wall", "rock"}, 1000)
	require.NoError(t, err)
	require.Len(t, got, 3)

	byName := map[string]Tile{}
	for _, rec := range got {
		byName[rec.Name] = rec
	}
	assert.Equal(t, "modded", byName["baba"].Source)
	assert.Equal(t, TilingCharacter, byName["baba"].Tiling)
	assert.Equal(t, tile.PaletteIndex{X: 4, Y: 1}, byName["baba"].ActiveColor)
	// Colors and tiling omitted from the pack fall back to the schema
	// defaults.
	assert.Equal(t, tile.PaletteIndex{X: 0, Y: 3}, byName["wall"].ActiveColor)
	assert.Equal(t, tile.PaletteIndex{X: 0, Y: 1}, byName["wall"].InactiveColor)
	assert.Equal(t, TilingNone, byName["rock"].Tiling)
}
