package tile

// PaletteIndex addresses one color of the 7-column, 5-row game palette.
type PaletteIndex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RGB is a direct color override, bypassing the palette.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// SpriteRef names a sprite and the mod ("source") it comes from.
type SpriteRef struct {
	Source string `json:"source"`
	Name   string `json:"name"`
}

// Filter is one entry of the ordered post-processing pipeline. Args is
// filter-specific: a bool for toggles, numbers or small vectors for
// parameterized effects.
type Filter struct {
	Name string `json:"name"`
	Args any    `json:"args"`
}

// Fields is the attribute accumulator built up while resolving one
// tile. Rule applications assign scalar fields directly (later tokens
// override earlier ones); the one list-accumulating field, Filters, is
// only ever extended through PushFilter so nothing can silently drop
// entries.
type Fields struct {
	Empty bool `json:"empty,omitempty"`

	VariantNumber   int        `json:"variant_number"`
	VariantFallback int        `json:"variant_fallback,omitempty"`
	Sprite          *SpriteRef `json:"sprite,omitempty"`

	ColorIndex *PaletteIndex `json:"color_index,omitempty"`
	ColorRGB   *RGB          `json:"color_rgb,omitempty"`

	MetaLevel int `json:"meta_level"`

	Custom          bool   `json:"custom,omitempty"`
	CustomStyle     string `json:"custom_style,omitempty"`
	CustomDirection *int   `json:"custom_direction,omitempty"`
	StyleFlip       bool   `json:"style_flip,omitempty"`

	MaskAlpha bool   `json:"mask_alpha,omitempty"`
	CutAlpha  bool   `json:"cut_alpha,omitempty"`
	Blending  string `json:"blending,omitempty"`

	Palette     string `json:"palette,omitempty"`
	Overlay     string `json:"overlay,omitempty"`
	PaletteSnap bool   `json:"palette_snap,omitempty"`

	Grayscale          *float64 `json:"grayscale,omitempty"`
	Brightness         *float64 `json:"brightness,omitempty"`
	HueShift           *float64 `json:"hueshift,omitempty"`
	NormalizeLightness bool     `json:"normalize_lightness,omitempty"`
	Negative           bool     `json:"negative,omitempty"`

	Displace    *[2]float64     `json:"displace,omitempty"`
	FilterImage string          `json:"filterimage,omitempty"`
	ChannelSwap *[4][4]float64  `json:"channelswap,omitempty"`

	Filters []Filter `json:"filters,omitempty"`
}

// PushFilter appends one entry to the post-processing pipeline,
// starting the list if this is the first entry.
func (f *Fields) PushFilter(name string, args any) {
	f.Filters = append(f.Filters, Filter{Name: name, Args: args})
}

// AddDisplace accumulates a displacement. Unlike scalar attributes,
// repeated displacements sum instead of overwriting.
func (f *Fields) AddDisplace(dx, dy float64) {
	if f.Displace == nil {
		f.Displace = &[2]float64{dx, dy}
		return
	}
	f.Displace[0] += dx
	f.Displace[1] += dy
}

// Full is the immutable render descriptor produced at the end of
// per-tile resolution: the original tile plus its fully resolved
// attributes. Everything a rasterizer might consult is settled; no
// further business-rule interpretation is required downstream.
type Full struct {
	Raw
	Fields
}

// NewFull pairs a tile with its completed attribute set.
func NewFull(r Raw, f Fields) Full {
	return Full{Raw: r, Fields: f}
}
