package variants

import (
	"unicode/utf8"

	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// registerTextRules installs the custom text styling rules. These re-
// render a word tile's text in a given style; applying one to a text
// tile whose record already uses the other style just flips the style
// of the stock sprite.
func registerTextRules(h *Handlers) {
	h.Register(Rule{
		Pattern: `noun`,
		Group:   "Custom text",
		Hints: []Hint{
			{"noun", "`noun` (Noun-style text)"},
		},
		Apply: func(ctx *Context) error {
			if !ctx.Tile.IsText {
				return errTileNotText(ctx.Tile.Name, ctx.Token)
			}
			data := ctx.Data()
			if data != nil && data.TextType == tiledata.TextProperty {
				ctx.Fields.StyleFlip = true
				ctx.Fields.CustomStyle = "noun"
				return nil
			}
			ctx.Fields.Custom = true
			ctx.Fields.CustomStyle = "noun"
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `letter|let`,
		Group:   "Custom text",
		Hints: []Hint{
			{"let", "`letter` / `let` (Letter-style text)"},
		},
		Apply: func(ctx *Context) error {
			if !ctx.Tile.IsText {
				return errTileNotText(ctx.Tile.Name, ctx.Token)
			}
			if utf8.RuneCountInString(ctx.Tile.TextContent()) > 2 {
				return errBadLetterVariant(ctx.Tile.Name, ctx.Token)
			}
			ctx.Fields.Custom = true
			ctx.Fields.CustomStyle = "letter"
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `property|prop`,
		Group:   "Custom text",
		Hints: []Hint{
			{"prop", "`property` / `prop` (Property-style text)"},
		},
		Apply: func(ctx *Context) error {
			data := ctx.Data()
			if !ctx.Tile.IsText {
				if data != nil {
					// Plastering a property plate over an object
					// sprite. This will be funny.
					ctx.Fields.StyleFlip = true
					ctx.Fields.CustomStyle = "property"
					return nil
				}
				return errVariant(ctx.Tile.Name, ctx.Token, "cannot style a tile with no metadata as a property")
			}
			if data != nil && data.TextType == tiledata.TextNoun {
				ctx.Fields.StyleFlip = true
				ctx.Fields.CustomStyle = "property"
				return nil
			}
			ctx.Fields.Custom = true
			ctx.Fields.CustomStyle = "property"
			return nil
		},
	})
}
