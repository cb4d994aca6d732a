package variants

import (
	"strconv"

	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// registerBuiltins installs the built-in rule set. Registration order
// is priority order: later rules shadow earlier ones wherever patterns
// overlap, which several rules rely on (specific meta depths over the
// bare meta token, color lists over color slices).
func registerBuiltins(h *Handlers) {
	registerSpriteRules(h)
	registerColorRules(h)
	registerTextRules(h)
	registerFilterRules(h)
}

// tilingName renders a record's tiling category for error messages,
// with a placeholder for tiles that have no record at all.
func tilingName(data *tiledata.Tile) string {
	if data == nil {
		return "<missing>"
	}
	return data.Tiling.String()
}

// ruleInt parses a captured integer group, rejecting the token when
// the capture does not parse.
func ruleInt(ctx *Context, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errVariant(ctx.Tile.Name, ctx.Token, "malformed number %q", s)
	}
	return n, nil
}

// ruleIntOr is ruleInt with a default for unmatched optional groups.
func ruleIntOr(ctx *Context, s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return ruleInt(ctx, s)
}

// ruleFloat parses a captured float group. Patterns like [\d.]+ admit
// strings such as "1.2.3" that are not numbers, so this can fail on a
// matched token.
func ruleFloat(ctx *Context, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errVariant(ctx.Tile.Name, ctx.Token, "malformed number %q", s)
	}
	return f, nil
}

// ruleFloatOr is ruleFloat with a default for unmatched optional
// groups.
func ruleFloatOr(ctx *Context, s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return ruleFloat(ctx, s)
}
