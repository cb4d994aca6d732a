package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RocketRace/robot-is-chill/internal/variants"
)

const sampleScene = `
grid:
  - - - "baba:up wall"
      - "- keke&rock"
flags:
  tile_borders: true
  max_version: 2
`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene(writeScene(t, sampleScene))
	require.NoError(t, err)

	require.Len(t, scene.Grid, 1)
	require.Len(t, scene.Grid[0], 1)
	assert.Len(t, scene.Grid[0][0], 2)
	assert.True(t, scene.Flags.TileBorders)
	assert.Equal(t, 2, scene.Flags.MaximumVersion)
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var sceneErr *SceneError
	require.ErrorAs(t, err, &sceneErr)
	assert.Contains(t, sceneErr.Message, "not found")
}

func TestLoadSceneBadYAML(t *testing.T) {
	_, err := LoadScene(writeScene(t, "grid: [1, 2,"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scene")
}

func TestLoadSceneEmptyGrid(t *testing.T) {
	_, err := LoadScene(writeScene(t, "flags: {}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no grid")
}

func TestBuildGrid(t *testing.T) {
	scene, err := LoadScene(writeScene(t, sampleScene))
	require.NoError(t, err)

	grid := scene.BuildGrid()
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)
	require.Len(t, grid[0][0], 2)

	row := grid[0][0][0]
	require.Len(t, row, 2)
	require.Len(t, row[0], 1)
	assert.Equal(t, "baba", row[0][0].Name)
	assert.Equal(t, []string{"up"}, row[0][0].Variants)
	assert.Equal(t, "wall", row[1][0].Name)

	row = grid[0][0][1]
	require.Len(t, row, 2)
	assert.Equal(t, "-", row[0][0].Name)
	require.Len(t, row[1], 2)
	assert.Equal(t, "keke", row[1][0].Name)
	assert.Equal(t, "rock", row[1][1].Name)
}

func TestResolveFlags(t *testing.T) {
	scene := &Scene{Flags: SceneFlags{
		RawOutput:        true,
		DefaultToLetters: true,
		MaximumVersion:   3,
	}}

	assert.Equal(t, variants.Flags{
		RawOutput:        true,
		DefaultToLetters: true,
		MaximumVersion:   3,
	}, scene.ResolveFlags())
}
