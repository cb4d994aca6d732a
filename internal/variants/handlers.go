// Package variants resolves textual tile descriptions into
// fully-specified render descriptors.
//
// A description is a tile name plus an ordered list of modifier tokens
// ("variants"). Resolution runs a default-field factory, folds each
// token through an ordered rule registry, and finishes with a
// finalizer, consulting neighboring grid cells for auto-tiling and the
// static metadata store for per-tile validity.
package variants

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// MetadataSource is the static metadata store boundary. Fetch returns
// at most one record per name, honoring maxVersion as an inclusive
// cutoff, and omits names it knows nothing about.
type MetadataSource interface {
	Fetch(ctx context.Context, names []string, maxVersion int) ([]tiledata.Tile, error)
}

// DefaultFunc produces the base attribute set for a tile before any
// modifier tokens apply.
type DefaultFunc func(ctx *DefaultContext) (tile.Fields, error)

// FinalizeFunc runs once per tile after all modifiers are applied,
// deriving defaults not settleable earlier.
type FinalizeFunc func(full *tile.Full, flags Flags)

// Handlers owns the ordered rule list, the default-field factory and
// the finalizer, and exposes the per-tile and whole-grid resolution
// entry points.
//
// The rule list is populated at construction and treated as immutable
// afterwards; concurrent resolutions need no synchronization beyond
// the read-only metadata cache they share.
type Handlers struct {
	rules     []*Handler
	defaults  DefaultFunc
	finalizer FinalizeFunc

	store  MetadataSource
	log    *slog.Logger
	tokens TokenGenerator
	rng    *rand.Rand
}

// Option configures a Handlers instance.
type Option func(*Handlers)

// WithLogger attaches a logger for per-batch diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handlers) { h.log = log }
}

// WithTokenGenerator overrides the batch token source. Tests use
// FixedGenerator for deterministic output.
func WithTokenGenerator(gen TokenGenerator) Option {
	return func(h *Handlers) { h.tokens = gen }
}

// WithRand overrides the randomness source used by the random-color
// and random-rotation rules.
func WithRand(rng *rand.Rand) Option {
	return func(h *Handlers) { h.rng = rng }
}

// New creates a Handlers with the built-in rule set registered.
// store may be nil when only ResolveTile with a caller-built cache is
// used.
func New(store MetadataSource, opts ...Option) *Handlers {
	h := &Handlers{
		store:  store,
		log:    slog.Default(),
		tokens: UUIDv7Generator{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.Default(defaultFields)
	h.Finalize(finalize)
	registerBuiltins(h)
	return h
}

// Register appends a rule to the ordered list. Later registrations
// take priority: matching scans the list in reverse registration
// order, so a new rule intentionally shadows earlier, more general
// ones.
func (h *Handlers) Register(r Rule) *Handler {
	handler := newHandler(r)
	h.rules = append(h.rules, handler)
	return handler
}

// RegisterAt inserts a rule at an explicit position. Lower positions
// are tried later; position 0 is the lowest priority.
func (h *Handlers) RegisterAt(pos int, r Rule) *Handler {
	handler := newHandler(r)
	if pos < 0 {
		pos = 0
	}
	if pos > len(h.rules) {
		pos = len(h.rules)
	}
	h.rules = append(h.rules[:pos], append([]*Handler{handler}, h.rules[pos:]...)...)
	return handler
}

// Default registers the default-field factory. There is exactly one;
// successive registrations replace the previous factory.
func (h *Handlers) Default(fn DefaultFunc) {
	h.defaults = fn
}

// Finalize registers the finalizer. There is exactly one; successive
// registrations replace the previous finalizer.
func (h *Handlers) Finalize(fn FinalizeFunc) {
	h.finalizer = fn
}

// ResolveTile applies a tile's modifier tokens to it, yielding the
// immutable render descriptor.
//
// The default factory runs first (short-circuiting the empty marker
// and computing auto-tiling variants). Each token is then matched
// against the registry in reverse registration order; the first rule
// whose pattern fully matches is applied. A token matching no rule
// fails with UNKNOWN_VARIANT. Rule failures propagate unwrapped.
func (h *Handlers) ResolveTile(t tile.Raw, grid tile.Grid, pos tile.Position, cache map[string]*tiledata.Tile, flags Flags) (tile.Full, error) {
	env := &Env{Grid: grid, Cache: cache, Flags: flags}

	fields, err := h.defaults(&DefaultContext{Env: env, Tile: t, Pos: pos})
	if err != nil {
		return tile.Full{}, err
	}

	// Scratch space scoped to this one tile's resolution, discarded
	// afterwards.
	extras := map[string]any{}

	for _, token := range t.Variants {
		matched := false
		for i := len(h.rules) - 1; i >= 0; i-- {
			rule := h.rules[i]
			groups, ok := rule.Match(token)
			if !ok {
				continue
			}
			matched = true
			ctx := &Context{
				Env:    env,
				Tile:   t,
				Pos:    pos,
				Fields: &fields,
				Token:  token,
				Groups: groups,
				Extras: extras,
			}
			if err := rule.Handle(ctx); err != nil {
				return tile.Full{}, err
			}
			break
		}
		if !matched {
			return tile.Full{}, errUnknownVariant(t.Name, token)
		}
	}

	full := tile.NewFull(t, fields)
	h.finalizer(&full, flags)
	return full, nil
}

// ResolveGrid resolves every cell of a grid against a single
// batch-fetched metadata cache, returning the resolved grid and the
// batch token identifying this resolution.
//
// Cells are independent: none mutates another cell's input, and all
// share the same read-only cache and adjacency view. Any cell's error
// aborts the whole grid with no partial results.
func (h *Handlers) ResolveGrid(ctx context.Context, grid tile.Grid, flags Flags) (tile.FullGrid, string, error) {
	token := h.tokens.Generate()

	names := grid.Names()
	records, err := h.store.Fetch(ctx, names, flags.maximumVersion())
	if err != nil {
		return nil, token, err
	}
	cache := make(map[string]*tiledata.Tile, len(records))
	for i := range records {
		cache[records[i].Name] = &records[i]
	}

	h.log.Debug("resolving grid",
		slog.String("batch", token),
		slog.Int("steps", len(grid)),
		slog.Int("tiles", len(names)),
	)

	out := make(tile.FullGrid, len(grid))
	for d, step := range grid {
		outStep := make([][][][]tile.Full, len(step))
		for l, layer := range step {
			outLayer := make([][][]tile.Full, len(layer))
			for y, row := range layer {
				outRow := make([][]tile.Full, len(row))
				for x, stack := range row {
					outStack := make([]tile.Full, len(stack))
					for z, t := range stack {
						pos := tile.Position{Step: d, Layer: l, X: x, Y: y}
						full, err := h.ResolveTile(t, grid, pos, cache, flags)
						if err != nil {
							return nil, token, err
						}
						outStack[z] = full
					}
					outRow[x] = outStack
				}
				outLayer[y] = outRow
			}
			outStep[l] = outLayer
		}
		out[d] = outStep
	}
	return out, token, nil
}

// VariantGroup is one documentation group with the variant
// descriptions valid under it, in registration order.
type VariantGroup struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

// AllVariants lists every documented variant description across all
// rules.
func (h *Handlers) AllVariants() []string {
	var out []string
	for _, rule := range h.rules {
		for _, hint := range rule.Hints {
			out = append(out, hint.Doc)
		}
	}
	return out
}

// ValidVariants probes which documented variants this specific tile
// accepts, grouped by rule group.
//
// Each hint token is applied against a throwaway single-cell grid with
// custom directions disallowed. Only engine Errors mark a variant as
// invalid for the tile; any other error is a programming error and
// propagates. Probing never touches real engine state.
func (h *Handlers) ValidVariants(t tile.Raw, cache map[string]*tiledata.Tile) ([]VariantGroup, error) {
	probe := tile.Grid{{{{tile.Stack{t}}}}}
	env := &Env{
		Grid:  probe,
		Cache: cache,
		Flags: Flags{DisallowCustomDirections: true},
	}

	var groups []VariantGroup
	index := map[string]int{}
	for _, rule := range h.rules {
		for _, hint := range rule.Hints {
			captured, ok := rule.Match(hint.Token)
			if !ok {
				continue
			}
			fields := tile.Fields{}
			ctx := &Context{
				Env:    env,
				Tile:   t,
				Pos:    tile.Position{},
				Fields: &fields,
				Token:  hint.Token,
				Groups: captured,
				Extras: map[string]any{},
			}
			if err := rule.Handle(ctx); err != nil {
				if IsVariantError(err) {
					continue // variant not possible for this tile
				}
				return nil, err
			}
			i, ok := index[rule.Group]
			if !ok {
				i = len(groups)
				index[rule.Group] = i
				groups = append(groups, VariantGroup{Name: rule.Group})
			}
			groups[i].Variants = append(groups[i].Variants, hint.Doc)
		}
	}
	return groups, nil
}
