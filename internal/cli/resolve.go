package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
	"github.com/RocketRace/robot-is-chill/internal/variants"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	*RootOptions
	Database    string
	TileBorders bool
	RawOutput   bool
	Letters     bool
	MaxVersion  int

	// TokenGenerator allows overriding the batch token generator (for
	// testing). If nil, defaults to UUIDv7Generator.
	TokenGenerator variants.TokenGenerator
}

// ResolveResult is the success payload of the resolve command.
type ResolveResult struct {
	Token string        `json:"token"`
	Grid  tile.FullGrid `json:"grid"`
	Names []string      `json:"names,omitempty"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "resolve <scene-file>",
		Short: "Resolve a scene's tile variants",
		Long: `Resolve every tile in a scene file against the tile database.

The scene file is YAML: a grid nested step > layer > row, each row a
line of space-separated cells. Cells stack tiles with "&" and attach
variants with ":", and "-" marks an empty cell.

Example:
  ric resolve --db tiles.db scene.yaml
  ric resolve --db tiles.db scene.yaml --tile-borders --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite tile database (required)")
	cmd.Flags().BoolVar(&opts.TileBorders, "tile-borders", false, "tiles join with the grid border")
	cmd.Flags().BoolVar(&opts.RawOutput, "raw-output", false, "skip palette recoloring defaults")
	cmd.Flags().BoolVar(&opts.Letters, "letters", false, "default two-letter custom text to letter style")
	cmd.Flags().IntVar(&opts.MaxVersion, "max-version", 0, "highest tile data version to read")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runResolve(opts *ResolveOptions, scenePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	scene, err := LoadScene(scenePath)
	if err != nil {
		_ = formatter.Error(ErrCodeBadScene, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load scene", err)
	}
	grid := scene.BuildGrid()
	formatter.VerboseLog("scene loaded: %d step(s)", len(grid))

	st, err := tiledata.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	handlerOpts := []variants.Option{variants.WithLogger(log)}
	if opts.TokenGenerator != nil {
		handlerOpts = append(handlerOpts, variants.WithTokenGenerator(opts.TokenGenerator))
	}
	handlers := variants.New(st, handlerOpts...)

	flags := scene.ResolveFlags()
	flags.TileBorders = flags.TileBorders || opts.TileBorders
	flags.RawOutput = flags.RawOutput || opts.RawOutput
	flags.DefaultToLetters = flags.DefaultToLetters || opts.Letters
	if opts.MaxVersion > 0 {
		flags.MaximumVersion = opts.MaxVersion
	}
	var names []string
	flags.ExtraNames = &names

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	full, token, err := handlers.ResolveGrid(ctx, grid, flags)
	if err != nil {
		if variants.IsVariantError(err) {
			_ = formatter.Error(ErrCodeResolve, err.Error(), string(variants.CodeOf(err)))
			return WrapExitError(ExitFailure, "resolution failed", err)
		}
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolution failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ResolveResult{Token: token, Grid: full, Names: names})
	}

	fmt.Fprintf(formatter.Writer, "batch %s\n", token)
	for d, step := range full {
		for l, layer := range step {
			for y, row := range layer {
				for x, stack := range row {
					for _, t := range stack {
						if t.Fields.Empty {
							continue
						}
						fmt.Fprintf(formatter.Writer, "  [%d.%d %d,%d] %s variant %d\n",
							d, l, x, y, t.Name, t.Fields.VariantNumber)
					}
				}
			}
		}
	}
	return nil
}
