package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/variants"
)

// Scene is the YAML shape of a scene file. The grid nests
// step > layer > row; each row is a line of space-separated cells,
// where a cell stacks tiles with "&" and attaches variants with ":".
// "-" marks an empty cell.
type Scene struct {
	Grid  [][][]string `yaml:"grid"`
	Flags SceneFlags   `yaml:"flags"`
}

// SceneFlags are the per-scene resolution toggles.
type SceneFlags struct {
	TileBorders      bool `yaml:"tile_borders"`
	RawOutput        bool `yaml:"raw_output"`
	DefaultToLetters bool `yaml:"letters"`
	MaximumVersion   int  `yaml:"max_version"`
}

// SceneError reports a scene file that could not be parsed.
type SceneError struct {
	Path    string
	Message string
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &SceneError{Path: path, Message: "scene file not found"}
		}
		return nil, &SceneError{Path: path, Message: err.Error()}
	}

	var scene Scene
	if err := yaml.Unmarshal(raw, &scene); err != nil {
		return nil, &SceneError{Path: path, Message: fmt.Sprintf("parsing scene: %v", err)}
	}
	if len(scene.Grid) == 0 {
		return nil, &SceneError{Path: path, Message: "scene has no grid"}
	}
	return &scene, nil
}

// BuildGrid converts the scene's row strings into a tile grid. Rows
// may be ragged; the resolver bounds-checks its neighbor lookups.
func (s *Scene) BuildGrid() tile.Grid {
	grid := make(tile.Grid, len(s.Grid))
	for d, step := range s.Grid {
		grid[d] = make([][][]tile.Stack, len(step))
		for l, layer := range step {
			grid[d][l] = make([][]tile.Stack, len(layer))
			for y, row := range layer {
				cells := strings.Fields(row)
				grid[d][l][y] = make([]tile.Stack, len(cells))
				for x, cell := range cells {
					grid[d][l][y][x] = tile.ParseCell(cell)
				}
			}
		}
	}
	return grid
}

// ResolveFlags maps the scene toggles onto resolver flags.
func (s *Scene) ResolveFlags() variants.Flags {
	return variants.Flags{
		TileBorders:      s.Flags.TileBorders,
		RawOutput:        s.Flags.RawOutput,
		DefaultToLetters: s.Flags.DefaultToLetters,
		MaximumVersion:   s.Flags.MaximumVersion,
	}
}
