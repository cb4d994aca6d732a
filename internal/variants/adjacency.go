package variants

import (
	"github.com/RocketRace/robot-is-chill/internal/tile"
)

// Neighbor join bits for the auto-tiling bitmask. Cardinal bits form
// the low nibble; diagonal bits are only ever set when both flanking
// cardinals and the diagonal cell itself join.
const (
	adjRight uint8 = 1 << iota
	adjUp
	adjLeft
	adjDown
	adjRightUp
	adjUpLeft
	adjLeftDown
	adjDownRight
)

// Joins reports whether the cell at p joins with origin for tiling
// purposes. Out-of-bounds positions join only when tileBorders is set,
// so level edges can optionally auto-tile against the grid border.
// In bounds, a cell joins when any of its occupants shares the origin's
// name or is one of the always-joining level/border markers.
func Joins(grid tile.Grid, origin tile.Raw, p tile.Position, tileBorders bool) bool {
	stack, ok := grid.Stack(p)
	if !ok {
		return tileBorders
	}
	for _, t := range stack {
		if t.Name == origin.Name || t.Name == tile.Level || t.Name == tile.Border {
			return true
		}
	}
	return false
}

// autoTileVariant computes the auto-tiling variant for origin at p.
//
// The first return value uses the full 8-neighbor mask; since not every
// diagonal refinement has a sprite, the second is the cardinal-only
// fallback the renderer reverts to when the refined sprite is missing.
func autoTileVariant(grid tile.Grid, origin tile.Raw, p tile.Position, tileBorders bool) (variant, fallback int) {
	joins := func(q tile.Position) bool {
		return Joins(grid, origin, q, tileBorders)
	}

	right := joins(p.Right())
	up := joins(p.Up())
	left := joins(p.Left())
	down := joins(p.Down())

	var mask uint8
	if right {
		mask |= adjRight
	}
	if up {
		mask |= adjUp
	}
	if left {
		mask |= adjLeft
	}
	if down {
		mask |= adjDown
	}
	fallback = tilingVariants[mask]

	// A diagonal is never considered joining on its own: both flanking
	// cardinal neighbors have to join before the diagonal cell counts.
	if right && up && joins(p.Right().Up()) {
		mask |= adjRightUp
	}
	if up && left && joins(p.Up().Left()) {
		mask |= adjUpLeft
	}
	if left && down && joins(p.Left().Down()) {
		mask |= adjLeftDown
	}
	if down && right && joins(p.Down().Right()) {
		mask |= adjDownRight
	}

	if v, ok := tilingVariants[mask]; ok {
		return v, fallback
	}
	return fallback, fallback
}

// tilingVariants maps neighbor bitmasks to sprite variant ids.
//
// The 16 cardinal-only masks are total and map to variants 0..15 (the
// mask doubles as the variant id). The diagonal refinements 16..46 are
// sparse; lookups fall back to the cardinal-only entry.
var tilingVariants = map[uint8]int{
	0:  0,
	1:  1,
	2:  2,
	3:  3,
	4:  4,
	5:  5,
	6:  6,
	7:  7,
	8:  8,
	9:  9,
	10: 10,
	11: 11,
	12: 12,
	13: 13,
	14: 14,
	15: 15,

	3 | adjRightUp:                                          16,
	6 | adjUpLeft:                                           17,
	7 | adjRightUp:                                          18,
	7 | adjUpLeft:                                           19,
	7 | adjRightUp | adjUpLeft:                              20,
	9 | adjDownRight:                                        21,
	11 | adjRightUp:                                         22,
	11 | adjDownRight:                                       23,
	11 | adjRightUp | adjDownRight:                          24,
	12 | adjLeftDown:                                        25,
	13 | adjLeftDown:                                        26,
	13 | adjDownRight:                                       27,
	13 | adjLeftDown | adjDownRight:                         28,
	14 | adjUpLeft:                                          29,
	14 | adjLeftDown:                                        30,
	14 | adjUpLeft | adjLeftDown:                            31,
	15 | adjRightUp:                                         32,
	15 | adjUpLeft:                                          33,
	15 | adjRightUp | adjUpLeft:                             34,
	15 | adjLeftDown:                                        35,
	15 | adjRightUp | adjLeftDown:                           36,
	15 | adjUpLeft | adjLeftDown:                            37,
	15 | adjRightUp | adjUpLeft | adjLeftDown:               38,
	15 | adjDownRight:                                       39,
	15 | adjRightUp | adjDownRight:                          40,
	15 | adjUpLeft | adjDownRight:                           41,
	15 | adjRightUp | adjUpLeft | adjDownRight:              42,
	15 | adjLeftDown | adjDownRight:                         43,
	15 | adjRightUp | adjLeftDown | adjDownRight:            44,
	15 | adjUpLeft | adjLeftDown | adjDownRight:             45,
	15 | adjRightUp | adjUpLeft | adjLeftDown | adjDownRight: 46,
}

// maxAutoTilingVariant is the highest variant id an autotiled sprite
// set carries.
const maxAutoTilingVariant = 46
