package variants

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// defaultFields is the default-field factory: default color, facing
// right, and auto-tiling.
func defaultFields(ctx *DefaultContext) (tile.Fields, error) {
	if ctx.Tile.Name == tile.Empty {
		return tile.Fields{Empty: true}, nil
	}

	data := ctx.Data()
	if data == nil {
		if !ctx.Tile.IsText {
			return tile.Fields{}, errTileNotFound(ctx.Tile.Name)
		}
		color := defaultColor
		return tile.Fields{
			Custom:     true,
			ColorIndex: &color,
		}, nil
	}

	color := data.ActiveColor
	variant, fallback := 0, 0
	if tiledata.AutoTilings[data.Tiling] {
		variant, fallback = autoTileVariant(ctx.Env.Grid, ctx.Tile, ctx.Pos, ctx.Env.Flags.TileBorders)
	}
	if ctx.Env.Flags.RawOutput {
		color = defaultColor
	}
	return tile.Fields{
		VariantNumber:   variant,
		VariantFallback: fallback,
		ColorIndex:      &color,
		Sprite:          &tile.SpriteRef{Source: data.Source, Name: data.Sprite},
	}, nil
}

// finalize derives defaults not settleable earlier: the canonical
// render-cache key and the custom text style.
func finalize(full *tile.Full, flags Flags) {
	if flags.ExtraNames != nil {
		if len(*flags.ExtraNames) > 0 {
			(*flags.ExtraNames)[0] = "render"
		} else {
			name := strings.ReplaceAll(tile.Normalize(full.Name), "/", "")
			key := strings.Repeat("meta_", full.MetaLevel) +
				fmt.Sprintf("%s_%d", name, full.VariantNumber)
			*flags.ExtraNames = append(*flags.ExtraNames, key)
		}
	}

	if full.Custom && full.CustomStyle == "" {
		if utf8.RuneCountInString(full.TextContent()) == 2 && flags.DefaultToLetters {
			full.CustomStyle = "letter"
		} else {
			full.CustomStyle = "noun"
		}
	}
}
