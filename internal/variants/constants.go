package variants

import "github.com/RocketRace/robot-is-chill/internal/tile"

// MaxMetaDepth bounds how many times a tile may be nested inside
// itself.
const MaxMetaDepth = 24

// DefaultSpriteSize is the pixel size of one sprite cell, used by
// fraction-based displacement.
const DefaultSpriteSize = 24

// directionTokens maps direction modifier tokens to their
// variant-number direction component.
var directionTokens = map[string]int{
	"r": DirRight, "right": DirRight,
	"u": DirUp, "up": DirUp,
	"l": DirLeft, "left": DirLeft,
	"d": DirDown, "down": DirDown,
}

// animationTokens maps walk-cycle tokens to animation frames.
var animationTokens = map[string]int{
	"a0": 0,
	"a1": 1,
	"a2": 2,
	"a3": 3,
}

// sleepTokens maps sleep-frame tokens to the sleep animation frame.
var sleepTokens = map[string]int{
	"s": -1, "sleep": -1,
}

// autoTokens maps auto-tiling override tokens to the neighbor bit they
// force on.
var autoTokens = map[string]int{
	"tr": int(adjRight),
	"tu": int(adjUp),
	"tl": int(adjLeft),
	"td": int(adjDown),
}

// colorNames maps named palette colors to their palette coordinates.
var colorNames = map[string]tile.PaletteIndex{
	"red":    {X: 2, Y: 2},
	"orange": {X: 2, Y: 3},
	"yellow": {X: 2, Y: 4},
	"lime":   {X: 5, Y: 3},
	"green":  {X: 5, Y: 2},
	"cyan":   {X: 1, Y: 4},
	"blue":   {X: 1, Y: 3},
	"purple": {X: 3, Y: 1},
	"pink":   {X: 4, Y: 1},
	"rosy":   {X: 4, Y: 2},
	"grey":   {X: 0, Y: 1},
	"gray":   {X: 0, Y: 1},
	"black":  {X: 0, Y: 4},
	"silver": {X: 0, Y: 2},
	"white":  {X: 0, Y: 3},
	"brown":  {X: 6, Y: 1},
}

// customColorNames are extra named colors that bypass the palette.
var customColorNames = map[string]tile.RGB{
	"mint":     {R: 0x6e, G: 0xd6, B: 0xa5},
	"lavender": {R: 0xb5, G: 0x9c, B: 0xe0},
	"peach":    {R: 0xf0, G: 0xa8, B: 0x90},
	"maroon":   {R: 0x82, G: 0x24, B: 0x33},
	"gold":     {R: 0xe0, G: 0xbb, B: 0x4c},
}

// inactiveColor maps a palette color to its inactive (darkened)
// counterpart, used for text that is not part of an active rule.
func inactiveColor(c tile.PaletteIndex) tile.PaletteIndex {
	out, ok := inactiveColors[c]
	if !ok {
		return c
	}
	return out
}

var inactiveColors = map[tile.PaletteIndex]tile.PaletteIndex{
	{X: 0, Y: 0}: {X: 0, Y: 0},
	{X: 0, Y: 1}: {X: 0, Y: 0},
	{X: 0, Y: 2}: {X: 0, Y: 0},
	{X: 0, Y: 3}: {X: 0, Y: 1},
	{X: 0, Y: 4}: {X: 0, Y: 2},
	{X: 1, Y: 0}: {X: 1, Y: 0},
	{X: 1, Y: 1}: {X: 1, Y: 0},
	{X: 1, Y: 2}: {X: 1, Y: 0},
	{X: 1, Y: 3}: {X: 1, Y: 1},
	{X: 1, Y: 4}: {X: 1, Y: 2},
	{X: 2, Y: 0}: {X: 2, Y: 0},
	{X: 2, Y: 1}: {X: 2, Y: 0},
	{X: 2, Y: 2}: {X: 2, Y: 0},
	{X: 2, Y: 3}: {X: 2, Y: 1},
	{X: 2, Y: 4}: {X: 2, Y: 2},
	{X: 3, Y: 0}: {X: 3, Y: 0},
	{X: 3, Y: 1}: {X: 3, Y: 0},
	{X: 3, Y: 2}: {X: 3, Y: 0},
	{X: 3, Y: 3}: {X: 3, Y: 1},
	{X: 3, Y: 4}: {X: 3, Y: 2},
	{X: 4, Y: 0}: {X: 4, Y: 0},
	{X: 4, Y: 1}: {X: 4, Y: 0},
	{X: 4, Y: 2}: {X: 4, Y: 0},
	{X: 4, Y: 3}: {X: 4, Y: 1},
	{X: 4, Y: 4}: {X: 4, Y: 2},
	{X: 5, Y: 0}: {X: 5, Y: 0},
	{X: 5, Y: 1}: {X: 5, Y: 0},
	{X: 5, Y: 2}: {X: 5, Y: 0},
	{X: 5, Y: 3}: {X: 5, Y: 1},
	{X: 5, Y: 4}: {X: 5, Y: 2},
	{X: 6, Y: 0}: {X: 6, Y: 0},
	{X: 6, Y: 1}: {X: 6, Y: 0},
	{X: 6, Y: 2}: {X: 6, Y: 0},
	{X: 6, Y: 3}: {X: 6, Y: 1},
	{X: 6, Y: 4}: {X: 6, Y: 2},
}

// defaultColor is the palette color tiles get with no metadata, and
// the color forced by the raw-output flag.
var defaultColor = tile.PaletteIndex{X: 0, Y: 3}
