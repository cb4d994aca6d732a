package variants

import (
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// registerSpriteRules installs the rules selecting among a tile's
// alternate sprites: directions, walk-cycle frames, the sleep frame,
// auto-tiling overrides and raw variant numbers.
func registerSpriteRules(h *Handlers) {
	h.Register(Rule{
		Pattern: `r|right|u|up|l|left|d|down`,
		Group:   "Alternate sprites",
		Hints: []Hint{
			{"right", "`right` / `r` (Facing right)"},
			{"up", "`up` / `u` (Facing up)"},
			{"left", "`left` / `l` (Facing left)"},
			{"down", "`down` / `d` (Facing down)"},
		},
		Apply: func(ctx *Context) error {
			dir := directionTokens[ctx.Token]
			_, anim := SplitVariant(ctx.Fields.VariantNumber)
			data := ctx.Data()
			if data != nil && tiledata.DirectionTilings[data.Tiling] {
				ctx.Fields.VariantNumber = JoinVariant(dir, anim)
				d := dir
				ctx.Fields.CustomDirection = &d
				return nil
			}
			if ctx.Env.Flags.IgnoreBadDirections {
				return nil
			}
			// Custom text has no sprite sheet to pick from, but the
			// text renderer can still honor a facing direction.
			if ctx.Tile.IsText && !ctx.Env.Flags.DisallowCustomDirections {
				d := dir
				ctx.Fields.CustomDirection = &d
				return nil
			}
			return errBadTilingVariant(ctx.Tile.Name, ctx.Token, tilingName(data))
		},
	})

	h.Register(Rule{
		Pattern: `a0|a1|a2|a3`,
		Group:   "Alternate sprites",
		Hints: []Hint{
			{"a0", "`a0` (Animation frame 0)"},
			{"a1", "`a1` (Animation frame 1)"},
			{"a2", "`a2` (Animation frame 2)"},
			{"a3", "`a3` (Animation frame 3)"},
		},
		Apply: func(ctx *Context) error {
			anim := animationTokens[ctx.Token]
			dir, _ := SplitVariant(ctx.Fields.VariantNumber)
			data := ctx.Data()
			if data != nil && tiledata.AnimationTilings[data.Tiling] {
				ctx.Fields.VariantNumber = JoinVariant(dir, anim)
				return nil
			}
			return errBadTilingVariant(ctx.Tile.Name, ctx.Token, tilingName(data))
		},
	})

	h.Register(Rule{
		Pattern: `s|sleep`,
		Group:   "Alternate sprites",
		Hints: []Hint{
			{"sleep", "`sleep` / `s` (Sleeping sprite)"},
		},
		Apply: func(ctx *Context) error {
			anim := sleepTokens[ctx.Token]
			dir, _ := SplitVariant(ctx.Fields.VariantNumber)
			data := ctx.Data()
			if data != nil && tiledata.SleepTilings[data.Tiling] {
				ctx.Fields.VariantNumber = JoinVariant(dir, anim)
				return nil
			}
			return errBadTilingVariant(ctx.Tile.Name, ctx.Token, tilingName(data))
		},
	})

	h.Register(Rule{
		Pattern: `tr|tu|tl|td`,
		Group:   "Alternate sprites",
		Hints: []Hint{
			{"tr", "`tr` (Force a joined tile to the right)"},
			{"tu", "`tu` (Force a joined tile above)"},
			{"tl", "`tl` (Force a joined tile to the left)"},
			{"td", "`td` (Force a joined tile below)"},
		},
		Apply: func(ctx *Context) error {
			data := ctx.Data()
			if data == nil || !tiledata.AutoTilings[data.Tiling] {
				return errBadTilingVariant(ctx.Tile.Name, ctx.Token, tilingName(data))
			}
			bit := autoTokens[ctx.Token]
			// The first auto override replaces whatever auto-tiling
			// computed; subsequent ones combine with it.
			if ctx.Extras["auto_override"] == true {
				ctx.Fields.VariantNumber |= bit
			} else {
				ctx.Extras["auto_override"] = true
				ctx.Fields.VariantNumber = bit
			}
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `\d{1,2}`,
		Group:   "Alternate sprites",
		Hints: []Hint{
			{"0", "`raw variant number` (e.g. `8`, `17`, `31`)"},
		},
		Apply: func(ctx *Context) error {
			variant, err := ruleInt(ctx, ctx.Token)
			if err != nil {
				return err
			}
			data := ctx.Data()
			if data == nil {
				return errVariant(ctx.Tile.Name, ctx.Token, "tile has no metadata for a raw variant")
			}
			if !rawVariantValid(data.Tiling, variant) {
				// Out-of-range raw variants degrade to the sentinel
				// sprite instead of failing.
				ctx.Fields.VariantNumber = -1
				return nil
			}
			ctx.Fields.VariantNumber = variant
			return nil
		},
	})
}

// rawVariantValid reports whether a raw variant number exists for a
// tiling category.
func rawVariantValid(tiling tiledata.Tiling, variant int) bool {
	if tiledata.AutoTilings[tiling] {
		return variant <= maxAutoTilingVariant
	}
	dir, anim := SplitVariant(variant)
	if dir != 0 {
		if !tiledata.DirectionTilings[tiling] || !validDirection(dir) {
			return false
		}
	}
	if anim != 0 {
		if anim == -1 {
			if !tiledata.SleepTilings[tiling] {
				return false
			}
		} else if !tiledata.AnimationTilings[tiling] || anim > 3 {
			return false
		}
	}
	return true
}

func validDirection(dir int) bool {
	switch dir {
	case DirRight, DirUp, DirLeft, DirDown:
		return true
	}
	return false
}
