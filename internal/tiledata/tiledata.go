// Package tiledata is the static tile metadata store.
//
// Each tile name maps to per-version records describing its sprite,
// tiling category and colors. Records are read-only during resolution
// and fetched in a single batch keyed by the distinct names in a grid,
// with a maximum-version cutoff selecting among competing overrides of
// the same name.
package tiledata

import (
	"fmt"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

// Tiling classifies a tile's sprite set. The category gates which
// modifier tokens are valid for the tile.
type Tiling int

const (
	// TilingNone tiles have a single sprite.
	TilingNone Tiling = -1
	// TilingDirectional tiles have one sprite per facing direction.
	TilingDirectional Tiling = 0
	// TilingAutotiled tiles connect visually with joining neighbors.
	TilingAutotiled Tiling = 1
	// TilingCharacter tiles have directions, walk cycles and a sleep
	// frame.
	TilingCharacter Tiling = 2
	// TilingAnimDirectional tiles have directions and walk cycles but
	// no sleep frame.
	TilingAnimDirectional Tiling = 3
	// TilingAnimated tiles cycle through frames with no direction.
	TilingAnimated Tiling = 4
)

func (t Tiling) String() string {
	switch t {
	case TilingNone:
		return "none"
	case TilingDirectional:
		return "directional"
	case TilingAutotiled:
		return "autotiled"
	case TilingCharacter:
		return "character"
	case TilingAnimDirectional:
		return "animated_directional"
	case TilingAnimated:
		return "animated"
	default:
		return fmt.Sprintf("tiling(%d)", int(t))
	}
}

// Category sets consulted by the resolution rules.
var (
	DirectionTilings = map[Tiling]bool{
		TilingDirectional:     true,
		TilingCharacter:       true,
		TilingAnimDirectional: true,
	}
	AnimationTilings = map[Tiling]bool{
		TilingCharacter:       true,
		TilingAnimDirectional: true,
		TilingAnimated:        true,
	}
	SleepTilings = map[Tiling]bool{
		TilingCharacter: true,
	}
	AutoTilings = map[Tiling]bool{
		TilingAutotiled: true,
	}
)

// TextType classifies what part of speech a text tile is.
type TextType int

const (
	TextNoun TextType = iota
	TextProperty
	TextLetter
)

func (t TextType) String() string {
	switch t {
	case TextNoun:
		return "noun"
	case TextProperty:
		return "property"
	case TextLetter:
		return "letter"
	default:
		return fmt.Sprintf("text_type(%d)", int(t))
	}
}

// Tile is one static metadata record.
type Tile struct {
	Name          string
	Version       int
	Source        string
	Sprite        string
	Tiling        Tiling
	ActiveColor   tile.PaletteIndex
	InactiveColor tile.PaletteIndex
	TextType      TextType
	Tags          []string
}
