package variants

import (
	"strconv"

	"github.com/RocketRace/robot-is-chill/internal/tile"
)

// registerColorRules installs the rules recoloring a tile: palette
// colors by name or index, direct RGB, and the active/inactive text
// color machinery.
func registerColorRules(h *Handlers) {
	h.Register(Rule{
		Pattern: `red|orange|yellow|lime|green|cyan|blue|purple|pink|rosy|grey|gray|black|silver|white|brown`,
		Group:   "Colors",
		Hints: []Hint{
			{"red", "`red`"},
			{"orange", "`orange`"},
			{"yellow", "`yellow`"},
			{"lime", "`lime`"},
			{"green", "`green`"},
			{"cyan", "`cyan`"},
			{"blue", "`blue`"},
			{"purple", "`purple`"},
			{"pink", "`pink`"},
			{"rosy", "`rosy`"},
			{"grey", "`grey` / `gray`"},
			{"black", "`black`"},
			{"silver", "`silver`"},
			{"white", "`white`"},
			{"brown", "`brown`"},
		},
		Apply: func(ctx *Context) error {
			c := colorNames[ctx.Token]
			ctx.Fields.ColorIndex = &c
			ctx.Fields.ColorRGB = nil
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(\d)/(\d)`,
		Group:   "Colors",
		Hints: []Hint{
			{"0/0", "`palette_x/palette_y` (Color palette index, e.g. `0/3`)"},
		},
		Apply: func(ctx *Context) error {
			x, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			y, err := ruleInt(ctx, ctx.Group(1))
			if err != nil {
				return err
			}
			if x > 6 || y > 4 {
				return errBadPaletteIndex(ctx.Tile.Name, ctx.Token)
			}
			ctx.Fields.ColorIndex = &tile.PaletteIndex{X: x, Y: y}
			ctx.Fields.ColorRGB = nil
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `#([0-9a-fA-F]{6})`,
		Group:   "Colors",
		Hints: []Hint{
			{"#ffffff", "`#hex_code` (Color hex code, e.g. `#f055ee`)"},
		},
		Apply: func(ctx *Context) error {
			n, err := strconv.ParseUint(ctx.Group(0), 16, 32)
			if err != nil {
				return errVariant(ctx.Tile.Name, ctx.Token, "malformed hex code")
			}
			ctx.Fields.ColorRGB = &tile.RGB{
				R: uint8(n >> 16),
				G: uint8(n >> 8 & 0xff),
				B: uint8(n & 0xff),
			}
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `#([0-9a-fA-F]{3})`,
		Group:   "Colors",
		Hints: []Hint{
			{"#fff", "`#hex_code` (Color hex code, e.g. `#f5e`)"},
		},
		Apply: func(ctx *Context) error {
			s := ctx.Group(0)
			var rgb [3]uint8
			for i := 0; i < 3; i++ {
				n, err := strconv.ParseUint(string([]byte{s[i], s[i]}), 16, 8)
				if err != nil {
					return errVariant(ctx.Tile.Name, ctx.Token, "malformed hex code")
				}
				rgb[i] = uint8(n)
			}
			ctx.Fields.ColorRGB = &tile.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `mint|lavender|peach|maroon|gold`,
		Group:   "Custom Colors",
		Hints: []Hint{
			{"mint", "`mint`"},
			{"lavender", "`lavender`"},
			{"peach", "`peach`"},
			{"maroon", "`maroon`"},
			{"gold", "`gold`"},
		},
		Apply: func(ctx *Context) error {
			c := customColorNames[ctx.Token]
			ctx.Fields.ColorRGB = &c
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `random`,
		Group:   "Custom Colors",
		Hints: []Hint{
			{"random", "`random` (Recolors the sprite to a random color.)"},
		},
		Apply: func(ctx *Context) error {
			ctx.Fields.ColorRGB = &tile.RGB{
				R: uint8(h.rng.Intn(256)),
				G: uint8(h.rng.Intn(256)),
				B: uint8(h.rng.Intn(256)),
			}
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `inactive|in|off`,
		Group:   "Colors",
		Hints: []Hint{
			{"in", "`inactive` / `in` / `off` (Inactive text color)"},
		},
		Apply: func(ctx *Context) error {
			color := defaultColor
			if ctx.Fields.ColorIndex != nil {
				color = *ctx.Fields.ColorIndex
			}
			data := ctx.Data()
			// Only the first application maps the record's active
			// color to its inactive partner; later ones walk the
			// generic darkening table.
			if data != nil && ctx.Tile.IsText && color == data.ActiveColor {
				c := data.InactiveColor
				ctx.Fields.ColorIndex = &c
				return nil
			}
			c := inactiveColor(color)
			ctx.Fields.ColorIndex = &c
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `randpal`,
		Group:   "Custom Colors",
		Hints: []Hint{
			{"randpal", "`randpal` (Color with a random palette color.)"},
		},
		Apply: func(ctx *Context) error {
			ctx.Fields.ColorIndex = &tile.PaletteIndex{
				X: h.rng.Intn(7),
				Y: h.rng.Intn(5),
			}
			return nil
		},
	})
}
