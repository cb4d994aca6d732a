package variants

import (
	"fmt"
	"regexp"
)

// Hint documents one canonical token a rule accepts, paired with its
// user-facing description. Hints double as probe inputs when
// enumerating the variants valid for a specific tile.
type Hint struct {
	Token string
	Doc   string
}

// HandlerFunc applies one matched rule to the accumulator in ctx.
// Scalar attributes are assigned directly; pipeline entries go through
// Fields.PushFilter so they append instead of overwriting.
type HandlerFunc func(ctx *Context) error

// Rule declares one matching rule for registration: a pattern over the
// whole modifier token, the transform to run on a match, and its
// documentation.
type Rule struct {
	// Pattern is an uncompiled regular expression. It must match the
	// full token, not a substring; anchoring is added at registration.
	Pattern string

	// Group labels the rule for categorized documentation.
	Group string

	// Hints list the rule's canonical tokens with descriptions.
	Hints []Hint

	// Apply is the transform invoked when Pattern matches.
	Apply HandlerFunc
}

// Handler is one registered matching rule.
type Handler struct {
	pattern *regexp.Regexp
	apply   HandlerFunc

	// Hints and Group are exposed for the documentation surface.
	Hints []Hint
	Group string
}

func newHandler(r Rule) *Handler {
	// Wrap the pattern so the whole token has to match.
	re, err := regexp.Compile(`\A(?:` + r.Pattern + `)\z`)
	if err != nil {
		// Rule patterns are declared statically; a bad one is a
		// programming error.
		panic(fmt.Sprintf("variant rule pattern %q does not compile: %v", r.Pattern, err))
	}
	return &Handler{
		pattern: re,
		apply:   r.Apply,
		Hints:   r.Hints,
		Group:   r.Group,
	}
}

// Match attempts the rule's pattern against the full token. On success
// it returns the captured submatches (unmatched optional groups are
// empty strings).
func (h *Handler) Match(token string) ([]string, bool) {
	m := h.pattern.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// Handle runs the rule's transform.
func (h *Handler) Handle(ctx *Context) error {
	return h.apply(ctx)
}
