package tiledata

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

// packSchema constrains tile pack documents before they reach the
// database. Palette indices are bounded by the 7x5 palette; tiling and
// text_type values must name known categories.
const packSchema = `
#Color: [int & >=0 & <=6, int & >=0 & <=4]

#Tile: {
	name:           string & !=""
	sprite:         string & !=""
	version:        int & >=0 | *0
	tiling:         int & >=-1 & <=4 | *-1
	active_color:   #Color | *[0, 3]
	inactive_color: #Color | *[0, 1]
	text_type:      int & >=0 & <=2 | *0
	tags: [...string]
}

source: string & !="" | *"vanilla"
tiles: [...#Tile]
`

// PackTile is one tile definition of a pack file.
type PackTile struct {
	Name          string   `yaml:"name"`
	Sprite        string   `yaml:"sprite"`
	Version       int      `yaml:"version"`
	Tiling        *int     `yaml:"tiling"`
	ActiveColor   []int    `yaml:"active_color"`
	InactiveColor []int    `yaml:"inactive_color"`
	TextType      int      `yaml:"text_type"`
	Tags          []string `yaml:"tags"`
}

// Pack is a decoded tile pack: a named source plus its tile records.
type Pack struct {
	Source string     `yaml:"source"`
	Tiles  []PackTile `yaml:"tiles"`
}

// ValidationError describes one schema violation in a pack document.
type ValidationError struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidatePack checks a decoded YAML document against the pack schema.
// Returns every violation found, not just the first.
func ValidatePack(doc any) []ValidationError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(packSchema)
	if err := schema.Err(); err != nil {
		// The schema is a compile-time constant; failing to compile it
		// is a programming error, not an input error.
		panic(fmt.Sprintf("pack schema does not compile: %v", err))
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return []ValidationError{{Message: err.Error()}}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var out []ValidationError
		for _, e := range cueerrors.Errors(err) {
			out = append(out, ValidationError{
				Path:    strings.Join(cueerrors.Path(e), "."),
				Message: e.Error(),
			})
		}
		return out
	}
	return nil
}

// LoadPack reads, validates and decodes a tile pack YAML file.
func LoadPack(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}

	// First decode generically for schema validation, then strictly
	// into the typed pack.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if violations := ValidatePack(doc); len(violations) > 0 {
		return nil, fmt.Errorf("pack %s: %w", path, violations[0])
	}

	var pack Pack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if pack.Source == "" {
		pack.Source = "vanilla"
	}
	return &pack, nil
}

// Import upserts every tile of a pack into the store, returning the
// number of records written.
func (s *Store) Import(ctx context.Context, pack *Pack) (int, error) {
	for _, pt := range pack.Tiles {
		t := Tile{
			Name:          tile.Normalize(pt.Name),
			Version:       pt.Version,
			Source:        pack.Source,
			Sprite:        pt.Sprite,
			Tiling:        TilingNone,
			ActiveColor:   tile.PaletteIndex{X: 0, Y: 3},
			InactiveColor: tile.PaletteIndex{X: 0, Y: 1},
			TextType:      TextType(pt.TextType),
			Tags:          pt.Tags,
		}
		if pt.Tiling != nil {
			t.Tiling = Tiling(*pt.Tiling)
		}
		if len(pt.ActiveColor) == 2 {
			t.ActiveColor = tile.PaletteIndex{X: pt.ActiveColor[0], Y: pt.ActiveColor[1]}
		}
		if len(pt.InactiveColor) == 2 {
			t.InactiveColor = tile.PaletteIndex{X: pt.InactiveColor[0], Y: pt.InactiveColor[1]}
		}
		if err := s.Upsert(ctx, t); err != nil {
			return 0, err
		}
	}
	return len(pack.Tiles), nil
}
