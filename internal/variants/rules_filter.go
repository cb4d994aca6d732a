package variants

import (
	"strings"
)

// Argument shapes for parameterized filters.
type rotationArgs struct {
	Angle  float64 `json:"angle"`
	Expand bool    `json:"expand"`
}

type glitchArgs struct {
	Distance int     `json:"distance"`
	Chance   float64 `json:"chance"`
}

type cropArgs struct {
	X        int  `json:"x"`
	Y        int  `json:"y"`
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	TrueCrop bool `json:"true_crop"`
}

type mirrorArgs struct {
	AxisX bool `json:"axis_x"`
	Front bool `json:"front"`
}

// sliceArgs selects a run of colors the way a Python-style slice
// would; nil bounds are open.
type sliceArgs struct {
	Start *int `json:"start"`
	Stop  *int `json:"stop"`
	Step  *int `json:"step"`
}

func clampScale(v float64) float64 {
	return max(min(v, 8), 0.01)
}

// registerFilterRules installs the post-processing filter rules. Most
// of them append to the filters pipeline; a handful set dedicated
// scalar attributes the rasterizer reads directly.
func registerFilterRules(h *Handlers) {
	h.Register(Rule{
		Pattern: `hide`,
		Group:   "Filters",
		Hints:   []Hint{{"hide", "`hide` (It's a mystery)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.Empty = true
			return nil
		},
	})

	// Bare m followed by digits belongs to the depth rule below, which
	// wins by registration order; full-token matching keeps this one
	// from swallowing it.
	h.Register(Rule{
		Pattern: `meta|m`,
		Group:   "Filters",
		Hints:   []Hint{{"m", "`meta` / `m` (1 meta layer)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.MetaLevel++
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `m(-?\d+)`,
		Group:   "Filters",
		Hints:   []Hint{{"m1", "`mX` (A specific meta depth, e.g. `m1`, `m3`)"}},
		Apply: func(ctx *Context) error {
			level, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			if level > MaxMetaDepth || level < -MaxMetaDepth {
				return errBadMetaVariant(ctx.Tile.Name, ctx.Token, level)
			}
			ctx.Fields.MetaLevel = level
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `mask`,
		Group:   "Filters",
		Hints:   []Hint{{"mask", "`mask` (Tiles below get cut to this)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.MaskAlpha = true
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `cut`,
		Group:   "Filters",
		Hints:   []Hint{{"cut", "`cut` (Tiles below get this cut from them)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.CutAlpha = true
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:channelswap|cswap|cs)` + strings.Repeat(`\((\d+(?:\.\d+)?)\/(\d+(?:\.\d+)?)\/(\d+(?:\.\d+)?)\/(\d+(?:\.\d+)?)\)`, 4),
		Group:   "Filters",
		Hints: []Hint{
			{"channelswap(1/0/0/0)(0/1/0/0)(0/0/1/0)(0/0/0/1)", "`channelswap(<float>/<float>/<float>/<float>)` ×4 (Remixes the sprite's channels through a 4x4 RGBA matrix; each group is one output channel's weights.)"},
		},
		Apply: func(ctx *Context) error {
			var m [4][4]float64
			for i := 0; i < 16; i++ {
				f, err := ruleFloat(ctx, ctx.Group(i))
				if err != nil {
					return err
				}
				m[i/4][i%4] = f
			}
			ctx.Fields.ChannelSwap = &m
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `neon(?:(-?\d+(?:\.\d+)?))?`,
		Group:   "Filters",
		Hints:   []Hint{{"neon", "`neon[float]` (Pixels surrounded by identical pixels get their alpha divided by n; n defaults to 1.4.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloatOr(ctx, ctx.Group(0), 1.4)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("neon", f)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `pixelate(\d+)(?:\/(\d+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"pixelate2", "`pixelate<int>[/<int>]` (Pixelates the sprite with a radius of n.)"}},
		Apply: func(ctx *Context) error {
			px, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			px = max(px, 1)
			py := px
			if ctx.Group(1) != "" {
				py, err = ruleInt(ctx, ctx.Group(1))
				if err != nil {
					return err
				}
				py = max(py, 1)
			}
			ctx.Fields.PushFilter("pixelate", [2]int{px, py})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `opacity(?:([\d.]+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"opacity0.5", "`opacity<float>` (The image gets less opaque by n.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloatOr(ctx, ctx.Group(0), 1)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("opacity", f)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `blank`,
		Group:   "Filters",
		Hints:   []Hint{{"blank", "`blank` (Makes all of the sprite its palette-defined color.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("blank", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `face|eyes`,
		Group:   "Filters",
		Hints:   []Hint{{"face", "`face` (Extracts the face of a sprite by keeping only the least used color.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("colselect", []int{-1})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `main`,
		Group:   "Filters",
		Hints:   []Hint{{"main", "`main` (Removes all but the most used color.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("colselect", []int{0})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `land`,
		Group:   "Filters",
		Hints:   []Hint{{"land", "`land` (Displaces the sprite to the floor.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("land", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `flipx`,
		Group:   "Filters",
		Hints:   []Hint{{"flipx", "`flipx` (Flips sprite horizontally.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("flipx", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `reverse|rev`,
		Group:   "Filters",
		Hints:   []Hint{{"rev", "`reverse` (Swaps a sprite's colors based off of frequency.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("reverse", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `flipy`,
		Group:   "Filters",
		Hints:   []Hint{{"flipy", "`flipy` (Flips sprite vertically.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("flipy", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `scanx(?:(\d+?)\/(\d+?)\/(\d+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"scanx", "`scanx[<visible>/<invisible>/<offset>]` (Applies a horizontal scanline effect.)"}},
		Apply:   scanRule("scanx"),
	})

	h.Register(Rule{
		Pattern: `scany(?:(\d+?)\/(\d+?)\/(\d+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"scany", "`scany[<visible>/<invisible>/<offset>]` (Applies a vertical scanline effect.)"}},
		Apply:   scanRule("scany"),
	})

	h.Register(Rule{
		Pattern: `invert|inv`,
		Group:   "Filters",
		Hints:   []Hint{{"invert", "`invert` (Inverts sprite color.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("invert", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `ng|noglobal`,
		Group:   "Filters",
		Hints:   []Hint{{"noglobal", "`noglobal` (Removes this tile from the scope of the -global flag.)"}},
		Apply: func(ctx *Context) error {
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `normalize|norm([xy])?`,
		Group:   "Filters",
		Hints:   []Hint{{"norm", "`norm[x/y]` (Moves the sprite to the center of its bounding box.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("normalize", [2]bool{
				ctx.Group(0) != "x",
				ctx.Group(0) != "y",
			})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:grayscale|gscale)(?:(-?[\d.]+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"grayscale", "`grayscale` (Forces raw sprite to be grayscale.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloatOr(ctx, ctx.Group(0), 1)
			if err != nil {
				return err
			}
			ctx.Fields.Grayscale = &f
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:floodfill|flood|fill)([01]\.\d+)?`,
		Group:   "Filters",
		Hints:   []Hint{{"floodfill", "`floodfill[n]` (Fills in all open pockets in the sprite; n sets the fill brightness.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloatOr(ctx, ctx.Group(0), 0)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("floodfill", f)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:surround|surr|sr)([01]\.\d+)?`,
		Group:   "Filters",
		Hints:   []Hint{{"surround", "`surround[n]` (Fills in all but the open pockets in the sprite; n sets the fill brightness.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloatOr(ctx, ctx.Group(0), 0)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("surround", f)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `fisheye(-?\d+(?:\.\d+)?)?`,
		Group:   "Filters",
		Hints:   []Hint{{"fisheye", "`fisheye[n]` (Applies fisheye effect; n is intensity, defaulting to 0.5.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloatOr(ctx, ctx.Group(0), 0.5)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("fisheye", f)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:glitch|g)(\d+)(?:\/(\d+(?:\.\d+)?))?`,
		Group:   "Filters",
		Hints:   []Hint{{"glitch1", "`glitch<int>[/float]` (Displaces some pixels: max distance n, displacement chance m.)"}},
		Apply: func(ctx *Context) error {
			distance, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			chance, err := ruleFloatOr(ctx, ctx.Group(1), 1)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("glitch", glitchArgs{Distance: distance, Chance: chance})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `blur(\d)`,
		Group:   "Filters",
		Hints:   []Hint{{"blur1", "`blur<int>` (Gaussian blurs the sprite with a radius of n.)"}},
		Apply: func(ctx *Context) error {
			radius, err := ruleFloat(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("blur_radius", radius)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `rot(?:ate)?(-?\d+(?:\.\d+)?)(?:\/(true|false))?`,
		Group:   "Filters",
		Hints:   []Hint{{"rotate90", "`rot|rotate<float>[/<bool>]` (Rotates the sprite n degrees counterclockwise; the bool, default true, expands the bounding box.)"}},
		Apply: func(ctx *Context) error {
			angle, err := ruleFloat(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("angle", rotationArgs{
				Angle:  angle,
				Expand: ctx.Group(1) != "false",
			})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `rotaterand(?:\/(true|false))?`,
		Group:   "Filters",
		Hints:   []Hint{{"rotaterand", "`rotaterand[/<bool>]` (Rotates the sprite a random number of degrees counterclockwise.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("angle", rotationArgs{
				Angle:  h.rng.Float64() * 360,
				Expand: ctx.Group(0) != "false",
			})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `scale([\d.]+)(?:\/([\d.]+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"scale2", "`scale<float>[/<float>]` (Scales the sprite by n1 on the x axis and n2 on the y axis, or n1 for both.)"}},
		Apply: func(ctx *Context) error {
			sx, err := ruleFloat(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			sy, err := ruleFloatOr(ctx, ctx.Group(1), sx)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("scale", [2]float64{clampScale(sx), clampScale(sy)})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `scale\((\d+)\/(\d+)\)(?:\((\d+)\/(\d+)\))?`,
		Group:   "Filters",
		Hints:   []Hint{{"scale(1/2)", "`scale(<int>/<int>)[(<int>/<int>)]` (Overload for scale with fractions.)"}},
		Apply: func(ctx *Context) error {
			sx, err := ruleFraction(ctx, ctx.Group(0), ctx.Group(1))
			if err != nil {
				return err
			}
			sy := sx
			if ctx.Group(2) != "" {
				sy, err = ruleFraction(ctx, ctx.Group(2), ctx.Group(3))
				if err != nil {
					return err
				}
			}
			ctx.Fields.PushFilter("scale", [2]float64{clampScale(sx), clampScale(sy)})
			return nil
		},
	})

	registerBlendingRules(h)

	h.Register(Rule{
		Pattern: `displace(-?\d{1,3})\/(-?\d{1,3})`,
		Group:   "Filters",
		Hints:   []Hint{{"displace1/1", "`displace<int>/<int>` (Displaces the sprite by x pixels to the right and y pixels downwards.)"}},
		Apply: func(ctx *Context) error {
			dx, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			dy, err := ruleInt(ctx, ctx.Group(1))
			if err != nil {
				return err
			}
			ctx.Fields.AddDisplace(float64(-dx), float64(-dy))
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `displace\((-?\d+)\/(\d+)\)(?:\((-?\d+)\/(\d+)\))?`,
		Group:   "Filters",
		Hints:   []Hint{{"displace(1/2)(0/1)", "`displace(<int>/<int>)[(<int>/<int>)]` (Overload for displace that works with fractions of a tile.)"}},
		Apply: func(ctx *Context) error {
			fx, err := ruleFraction(ctx, ctx.Group(0), ctx.Group(1))
			if err != nil {
				return err
			}
			fy := 0.0
			if ctx.Group(2) != "" {
				fy, err = ruleFraction(ctx, ctx.Group(2), ctx.Group(3))
				if err != nil {
					return err
				}
			}
			ctx.Fields.AddDisplace(-fx*DefaultSpriteSize, -fy*DefaultSpriteSize)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `warp` + strings.Repeat(`\((-?[\d.]+)\/(-?[\d.]+)\)`, 4),
		Group:   "Filters",
		Hints:   []Hint{{"warp(0/0)(0/0)(0/0)(0/0)", "`warp(<x>/<y>)` ×4 (Offsets the sprite's corners: top left, top right, bottom right, bottom left.)"}},
		Apply: func(ctx *Context) error {
			var corners [4][2]float64
			for i := 0; i < 8; i++ {
				f, err := ruleFloat(ctx, ctx.Group(i))
				if err != nil {
					return err
				}
				corners[i/2][i%2] = f
			}
			ctx.Fields.PushFilter("warp", corners)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `freeze([123])?`,
		Group:   "Filters",
		Hints:   []Hint{{"freeze", "`freeze[1,2,3]` (Freezes the specified wobble frame of the tile, defaulting to the first.)"}},
		Apply: func(ctx *Context) error {
			frame, err := ruleIntOr(ctx, ctx.Group(0), 1)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("freeze", frame)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `melt`,
		Group:   "Filters",
		Hints:   []Hint{{"melt", "`melt` (Melts the tile by displacing every column to the bottom of the sprite.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("melt", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `liquify`,
		Group:   "Filters",
		Hints:   []Hint{{"liquify", "`liquify` (Melts every color except the main one and turns the main color into liquid.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("liquify", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `planet`,
		Group:   "Filters",
		Hints:   []Hint{{"planet", "`planet` (Attempts to make a planet from any tile.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("planet", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:lockhue|huelock|hl)(\d+)`,
		Group:   "Filters",
		Hints:   []Hint{{"lockhue180", "`lockhue<int>` (Locks the hue of the sprite's pixels to the specified degrees.)"}},
		Apply: func(ctx *Context) error {
			deg, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("lockhue", float64(deg)/2)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `lockhue_before`,
		Group:   "Filters",
		Hints:   []Hint{{"lockhue_before", "`lockhue_before` (Locks hue before recoloring.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("lockhue_before", true)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:locksat|satlock)(\d+)`,
		Group:   "Filters",
		Hints:   []Hint{{"locksat100", "`locksat<int>` (Locks the saturation of the sprite's pixels to the specified amount.)"}},
		Apply: func(ctx *Context) error {
			sat, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("locksat", sat)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `negative|neg`,
		Group:   "Filters",
		Hints:   []Hint{{"negative", "`negative` (RGB color inversion.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.Negative = true
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `complement|comp`,
		Group:   "Filters",
		Hints:   []Hint{{"complement", "`complement` (HSL hue inversion.)"}},
		Apply: func(ctx *Context) error {
			shift := 180.0
			ctx.Fields.HueShift = &shift
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:hueshift|hs)(-?[\d.]+)`,
		Group:   "Filters",
		Hints:   []Hint{{"hueshift30", "`hueshift<float>` (HSL hue shift.)"}},
		Apply: func(ctx *Context) error {
			shift, err := ruleFloat(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.HueShift = &shift
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `normalizelightness|norml|nl`,
		Group:   "Filters",
		Hints:   []Hint{{"nl", "`normalizelightness` / `norml` / `nl` (Normalizes HSL lightness, making the brightest color fully white.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.NormalizeLightness = true
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:palette\/|p!)(.+)`,
		Group:   "Filters",
		Hints:   []Hint{{"palette/default", "`(palette/ | p!)<palettename>` (Applies a different color palette to the tile.)"}},
		Apply: func(ctx *Context) error {
			name := ctx.Group(0)
			if err := rejectPathSeparators(ctx, name); err != nil {
				return err
			}
			ctx.Fields.Palette = name
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:overlay\/|o!)([^ ]+)`,
		Group:   "Filters",
		Hints:   []Hint{{"overlay/lava", "`(o!|overlay/)<overlayname>` (Applies an overlay on the tile.)"}},
		Apply: func(ctx *Context) error {
			name := ctx.Group(0)
			if err := rejectPathSeparators(ctx, name); err != nil {
				return err
			}
			ctx.Fields.Overlay = name
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `palettesnap|palsnap|ps`,
		Group:   "Filters",
		Hints:   []Hint{{"ps", "`palettesnap` (Snaps the tile's colors to the nearest color of the active palette.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PaletteSnap = true
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:brightness|bright)([\d.]*)`,
		Group:   "Filters",
		Hints:   []Hint{{"brightness0.5", "`brightness<factor>` (Darkens or brightens the tile by multiplying it by factor.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloat(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.Brightness = &f
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `wavex([\d.]*)\/([\d.]*)\/([\d.]*)`,
		Group:   "Filters",
		Hints:   []Hint{{"wavex1/1/1", "`wavex<offset>/<amplitude>/<speed>` (Waves the sprite's rows, top to bottom.)"}},
		Apply:   waveRule("wavex"),
	})

	h.Register(Rule{
		Pattern: `wrap(-?\d{1,3})\/(-?\d{1,3})`,
		Group:   "Filters",
		Hints:   []Hint{{"wrap1/1", "`wrap<int>/<int>` (Displaces the sprite, wrapping pixels around its borders.)"}},
		Apply: func(ctx *Context) error {
			dx, err := ruleInt(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			dy, err := ruleInt(ctx, ctx.Group(1))
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("wrap", [2]int{dx, dy})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `wavey([\d.]*)\/([\d.]*)\/([\d.]*)`,
		Group:   "Filters",
		Hints:   []Hint{{"wavey1/1/1", "`wavey<offset>/<amplitude>/<speed>` (Waves the sprite's columns, left to right.)"}},
		Apply:   waveRule("wavey"),
	})

	h.Register(Rule{
		Pattern: `gradientx([\d.]*)\/([\d.]*)\/([\d.]*)\/([\d.]*)`,
		Group:   "Filters",
		Hints:   []Hint{{"gradientx0/1/0/1", "`gradientx<start>/<end>/<startvalue>/<endvalue>` (Horizontal gradient, left to right.)"}},
		Apply:   gradientRule("gradientx"),
	})

	h.Register(Rule{
		Pattern: `gradienty([\d.]*)\/([\d.]*)\/([\d.]*)\/([\d.]*)`,
		Group:   "Filters",
		Hints:   []Hint{{"gradienty0/1/0/1", "`gradienty<start>/<end>/<startvalue>/<endvalue>` (Vertical gradient, top to bottom.)"}},
		Apply:   gradientRule("gradienty"),
	})

	h.Register(Rule{
		Pattern: `(abs)?(?:filterimage\/|fi!|filterimage=|fi=)(.+)`,
		Group:   "Filters",
		Hints:   []Hint{{"filterimage/example.com/mask.png", "`[abs](filterimage/ | fi!)<url>` (Applies a filter image; `db!<name>` reads one from the database.)"}},
		Apply: func(ctx *Context) error {
			prefix := ctx.Group(0)
			url := ctx.Group(1)
			if strings.HasPrefix(url, "db!") {
				ctx.Fields.FilterImage = prefix + url
				return nil
			}
			url = strings.ReplaceAll(url, "localhost", "")
			if hostIsNumeric(url) {
				url = ""
			}
			ctx.Fields.FilterImage = prefix + "https://" + url
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `crop(-?\d+?)\/(-?\d+?)\/(-?\d+?)\/(-?\d+?)(?:\/(true|false))?`,
		Group:   "Filters",
		Hints:   []Hint{{"crop0/0/8/8", "`crop<x>/<y>/<width>/<height>[/<true_crop>]` (Crops the sprite to a rectangle; the bool truly shrinks the bounding box.)"}},
		Apply: func(ctx *Context) error {
			var n [4]int
			for i := range n {
				v, err := ruleInt(ctx, ctx.Group(i))
				if err != nil {
					return err
				}
				n[i] = v
			}
			ctx.Fields.PushFilter("crop", cropArgs{
				X: n[0], Y: n[1], Width: n[2], Height: n[3],
				TrueCrop: ctx.Group(4) == "true",
			})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `snip(-?\d+?)\/(-?\d+?)\/(-?\d+?)\/(-?\d+?)`,
		Group:   "Filters",
		Hints:   []Hint{{"snip0/0/8/8", "`snip<x>/<y>/<width>/<height>` (Removes a rectangle from the sprite.)"}},
		Apply: func(ctx *Context) error {
			var n [4]int
			for i := range n {
				v, err := ruleInt(ctx, ctx.Group(i))
				if err != nil {
					return err
				}
				n[i] = v
			}
			ctx.Fields.PushFilter("snip", n)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `mirror\/([xy])\/(front|back)`,
		Group:   "Filters",
		Hints:   []Hint{{"mirror/x/front", "`mirror/<x|y>/<front|back>` (Mirrors the specified half of the sprite over the axis.)"}},
		Apply: func(ctx *Context) error {
			ctx.Fields.PushFilter("mirror", mirrorArgs{
				AxisX: ctx.Group(0) == "x",
				Front: ctx.Group(1) == "front",
			})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `pad(\d+?)\/(\d+?)\/(\d+?)\/(\d+?)`,
		Group:   "Filters",
		Hints:   []Hint{{"pad1/1/1/1", "`pad<left>/<top>/<right>/<bottom>` (Pads the sprite with transparency on each side.)"}},
		Apply: func(ctx *Context) error {
			var n [4]int
			for i := range n {
				v, err := ruleInt(ctx, ctx.Group(i))
				if err != nil {
					return err
				}
				n[i] = v
			}
			ctx.Fields.PushFilter("pad", n)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:3oo|3ooskul|skul)(\d+(?:\.\d+)?)`,
		Group:   "Filters",
		Hints:   []Hint{{"3oo2", "`3oo<n>` (Content-aware-scales the sprite down by n, then back up.)"}},
		Apply: func(ctx *Context) error {
			f, err := ruleFloat(ctx, ctx.Group(0))
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("threeoo", f)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `nothing|none|n|-`,
		Group:   "Filters",
		Hints:   []Hint{{"nothing", "`nothing` (Does nothing.)"}},
		Apply: func(ctx *Context) error {
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:color|col|c)(-?\d+)*(?:\/(-?\d+)*(?:\/(-?\d+)*)?)?`,
		Group:   "Filters",
		Hints:   []Hint{{"color1/2", "`color<start>[/<stop>[/<step>]]` (Keeps only the selected slice of colors, sorted by frequency.)"}},
		Apply: func(ctx *Context) error {
			var bounds [3]*int
			for i := range bounds {
				s := ctx.Group(i)
				if s == "" {
					continue
				}
				v, err := ruleInt(ctx, s)
				if err != nil {
					return err
				}
				bounds[i] = &v
			}
			ctx.Fields.PushFilter("colselect", sliceArgs{
				Start: bounds[0], Stop: bounds[1], Step: bounds[2],
			})
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:color|col|c)(-?\d+(?:\+-?\d+)*)`,
		Group:   "Filters",
		Hints:   []Hint{{"color0+1", "`color<n>[+<n>...]` (Keeps only the specified colors.)"}},
		Apply: func(ctx *Context) error {
			parts := strings.Split(ctx.Group(0), "+")
			picks := make([]int, 0, len(parts))
			for _, p := range parts {
				v, err := ruleInt(ctx, p)
				if err != nil {
					return err
				}
				picks = append(picks, v)
			}
			ctx.Fields.PushFilter("colselect", picks)
			return nil
		},
	})

	h.Register(Rule{
		Pattern: `(?:aberrate|abberate|chrome|ca)(-?\d+)?(?:\/(-?\d+))?`,
		Group:   "Filters",
		Hints:   []Hint{{"aberrate", "`aberrate[int]` (Performs chromatic aberration.)"}},
		Apply: func(ctx *Context) error {
			dist, err := ruleIntOr(ctx, ctx.Group(0), 1)
			if err != nil {
				return err
			}
			angle, err := ruleIntOr(ctx, ctx.Group(1), 0)
			if err != nil {
				return err
			}
			ctx.Fields.PushFilter("aberrate", [2]int{dist, angle})
			return nil
		},
	})
}

// registerBlendingRules installs the rules blending a tile's color
// channels with the tiles below it. These set the scalar blending mode
// rather than appending to the pipeline.
func registerBlendingRules(h *Handlers) {
	blends := []struct {
		pattern string
		mode    string
		hint    Hint
	}{
		{`add`, "add", Hint{"add", "`add` (Makes the tile's RGB add to the tiles below.)"}},
		// The stored modes for xor and xora are deliberately crossed:
		// the compositor's "xora" mode is the RGB-only one.
		{`xor`, "xora", Hint{"xor", "`xor` (Makes the tile's RGB XOR with the tiles below.)"}},
		{`xora`, "xor", Hint{"xora", "`xora` (Makes the tile's RGBA XOR with the tiles below.)"}},
		{`subtract`, "subtract", Hint{"subtract", "`subtract` (Makes the tile's RGB subtract from the tiles below.)"}},
		{`maximum`, "maximum", Hint{"maximum", "`maximum` (Keeps the per-channel maximum of this tile and the tiles below.)"}},
		{`minimum`, "minimum", Hint{"minimum", "`minimum` (Keeps the per-channel minimum of this tile and the tiles below.)"}},
		{`multiply`, "multiply", Hint{"multiply", "`multiply` (Makes the tile's RGB multiply with the tiles below.)"}},
	}
	for _, b := range blends {
		mode := b.mode
		h.Register(Rule{
			Pattern: b.pattern,
			Group:   "Filters",
			Hints:   []Hint{b.hint},
			Apply: func(ctx *Context) error {
				ctx.Fields.Blending = mode
				return nil
			},
		})
	}
}

// scanRule builds the shared transform for the scanline rules.
func scanRule(name string) HandlerFunc {
	return func(ctx *Context) error {
		args := [3]int{1, 1, 0}
		if ctx.Group(0) != "" && ctx.Group(1) != "" && ctx.Group(2) != "" {
			for i := range args {
				v, err := ruleInt(ctx, ctx.Group(i))
				if err != nil {
					return err
				}
				args[i] = v
			}
		}
		ctx.Fields.PushFilter(name, args)
		return nil
	}
}

// waveRule builds the shared transform for the wave rules.
func waveRule(name string) HandlerFunc {
	return func(ctx *Context) error {
		var args [3]float64
		for i := range args {
			f, err := ruleFloat(ctx, ctx.Group(i))
			if err != nil {
				return err
			}
			args[i] = f
		}
		ctx.Fields.PushFilter(name, args)
		return nil
	}
}

// gradientRule builds the shared transform for the gradient rules.
func gradientRule(name string) HandlerFunc {
	return func(ctx *Context) error {
		var args [4]float64
		for i := range args {
			f, err := ruleFloat(ctx, ctx.Group(i))
			if err != nil {
				return err
			}
			args[i] = f
		}
		ctx.Fields.PushFilter(name, args)
		return nil
	}
}

// ruleFraction parses a numerator/denominator group pair.
func ruleFraction(ctx *Context, num, den string) (float64, error) {
	n, err := ruleInt(ctx, num)
	if err != nil {
		return 0, err
	}
	d, err := ruleInt(ctx, den)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, errVariant(ctx.Tile.Name, ctx.Token, "zero denominator")
	}
	return float64(n) / float64(d), nil
}

// rejectPathSeparators guards names that end up in asset lookups.
func rejectPathSeparators(ctx *Context, name string) error {
	if strings.ContainsAny(name, `/\`) {
		return errVariant(ctx.Tile.Name, ctx.Token, "no looking at the host's hard drive, thank you very much")
	}
	return nil
}

// hostIsNumeric reports whether everything before the first slash is
// digits and dots, which is how raw-IP filter image URLs get rejected.
func hostIsNumeric(url string) bool {
	host, _, _ := strings.Cut(url, "/")
	if host == "" {
		return false
	}
	host = strings.ReplaceAll(host, ".", "")
	if host == "" {
		return false
	}
	for _, r := range host {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
