package tile

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Reserved tile names with engine-level meaning.
const (
	// Empty marks a cell position with nothing in it. Resolving it
	// short-circuits to an empty descriptor.
	Empty = "-"
	// Level and Border are placeholder tiles that join with every
	// neighbor for auto-tiling purposes.
	Level  = "level"
	Border = "border"
)

// textPrefix marks a tile as a text (word) tile rather than an object tile.
const textPrefix = "text_"

// Raw is a parsed but unresolved tile: an identifier plus the ordered
// modifier tokens ("variants") the user attached to it.
//
// Raw values are constructed once when a grid is built and never
// mutated afterwards.
type Raw struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants,omitempty"`
	IsText   bool     `json:"is_text,omitempty"`
}

// TextContent returns the portion of a text tile's name after the
// "text_" prefix. Returns "" for names too short to carry one.
func (r Raw) TextContent() string {
	if len(r.Name) <= len(textPrefix) {
		return ""
	}
	return r.Name[len(textPrefix):]
}

// Normalize returns the canonical NFC form of a tile name.
//
// All names entering the engine are normalized so that cache keys and
// store lookups agree on a single byte representation.
func Normalize(name string) string {
	return norm.NFC.String(name)
}

// Parse splits one scene token such as "baba:right:red" into a Raw
// tile. The first segment is the (normalized) tile name; the remaining
// segments are modifier tokens applied in order.
func Parse(s string) Raw {
	parts := strings.Split(s, ":")
	name := Normalize(parts[0])
	var variants []string
	if len(parts) > 1 {
		variants = parts[1:]
	}
	return Raw{
		Name:     name,
		Variants: variants,
		IsText:   strings.HasPrefix(name, textPrefix),
	}
}

// ParseCell splits a cell token into its visual stack. Tiles stacked in
// the same cell are separated by "&": "tile&text_baba:red".
func ParseCell(s string) Stack {
	parts := strings.Split(s, "&")
	stack := make(Stack, 0, len(parts))
	for _, p := range parts {
		stack = append(stack, Parse(p))
	}
	return stack
}
