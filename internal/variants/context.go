package variants

import (
	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// DefaultMaximumVersion is the version cutoff applied when Flags leaves
// MaximumVersion unset: high enough to admit every ordinary record.
const DefaultMaximumVersion = 1000

// Flags control grid-wide resolution behavior.
type Flags struct {
	// TileBorders treats out-of-bounds neighbors as joining, so tiles
	// at the level edge auto-tile against the border.
	TileBorders bool

	// RawOutput forces the fixed default color instead of each
	// record's active color.
	RawOutput bool

	// DisallowCustomDirections rejects direction tokens that would
	// only set a custom text direction. The valid-variant probe sets
	// this to keep context-dependent directions out of listings.
	DisallowCustomDirections bool

	// IgnoreBadDirections silently drops direction tokens the tile
	// cannot honor instead of failing.
	IgnoreBadDirections bool

	// DefaultToLetters renders two-character custom words in letter
	// style when no explicit style was requested.
	DefaultToLetters bool

	// MaximumVersion is the inclusive metadata version cutoff.
	// Zero means DefaultMaximumVersion.
	MaximumVersion int

	// ExtraNames, when non-nil, receives the canonical render-cache
	// key for the resolved tile. A pre-populated list is overwritten
	// with the fixed "render" key instead.
	ExtraNames *[]string
}

func (f Flags) maximumVersion() int {
	if f.MaximumVersion == 0 {
		return DefaultMaximumVersion
	}
	return f.MaximumVersion
}

// Env bundles the read-only state shared by every rule invocation
// during one grid resolution: the grid itself for adjacency queries,
// the batch-fetched metadata cache, and the active flags.
type Env struct {
	Grid  tile.Grid
	Cache map[string]*tiledata.Tile
	Flags Flags
}

// Data returns the metadata record for a tile name, or nil.
func (e *Env) Data(name string) *tiledata.Tile {
	return e.Cache[name]
}

// DefaultContext is what the default-field factory runs against.
type DefaultContext struct {
	Env  *Env
	Tile tile.Raw
	Pos  tile.Position
}

// Data returns the metadata record for the tile being resolved.
func (c *DefaultContext) Data() *tiledata.Tile {
	return c.Env.Data(c.Tile.Name)
}

// Context is what a rule transform runs against. Fields is the mutable
// accumulator for the tile being resolved; Extras is a scratch map
// scoped to this one tile's resolution, letting a rule leave notes for
// later rules of the same tile (and nothing else).
type Context struct {
	Env    *Env
	Tile   tile.Raw
	Pos    tile.Position
	Fields *tile.Fields
	Token  string
	Groups []string
	Extras map[string]any
}

// Data returns the metadata record for the tile being resolved.
func (c *Context) Data() *tiledata.Tile {
	return c.Env.Data(c.Tile.Name)
}

// Group returns the i'th captured submatch, or "" when the group did
// not participate in the match.
func (c *Context) Group(i int) string {
	if i < 0 || i >= len(c.Groups) {
		return ""
	}
	return c.Groups[i]
}
