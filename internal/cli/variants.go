package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RocketRace/robot-is-chill/internal/tile"
	"github.com/RocketRace/robot-is-chill/internal/tiledata"
	"github.com/RocketRace/robot-is-chill/internal/variants"
)

// VariantsOptions holds flags for the variants command.
type VariantsOptions struct {
	*RootOptions
	Database string
	All      bool
}

// NewVariantsCommand creates the variants command.
func NewVariantsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VariantsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "variants <tile>",
		Short: "List the variants a tile accepts",
		Long: `List the documented variants a tile accepts, grouped by category.

Each documented variant is probed against the tile's database record,
so a directional tile lists direction words while a static one does
not. With --all, every documented variant is listed without probing
and no tile argument or database is needed.

Example:
  ric variants --db tiles.db baba
  ric variants --all`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite tile database")
	cmd.Flags().BoolVar(&opts.All, "all", false, "list every documented variant without probing")

	return cmd
}

func runVariants(opts *VariantsOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.All {
		handlers := variants.New(nil)
		if formatter.Format == "json" {
			return formatter.Success(handlers.AllVariants())
		}
		for _, doc := range handlers.AllVariants() {
			fmt.Fprintln(formatter.Writer, doc)
		}
		return nil
	}

	if len(args) != 1 {
		err := NewExitError(ExitCommandError, "a tile name is required unless --all is set")
		_ = formatter.Error(ErrCodeGeneric, err.Message, nil)
		return err
	}
	if opts.Database == "" {
		err := NewExitError(ExitCommandError, "--db is required unless --all is set")
		_ = formatter.Error(ErrCodeGeneric, err.Message, nil)
		return err
	}
	probe := tile.Parse(args[0])

	st, err := tiledata.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := st.Fetch(ctx, []string{probe.Name}, variants.DefaultMaximumVersion)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read tile data", err)
	}
	cache := map[string]*tiledata.Tile{}
	for i := range records {
		cache[records[i].Name] = &records[i]
	}
	formatter.VerboseLog("probing %q against %d record(s)", probe.Name, len(records))

	handlers := variants.New(st)
	groups, err := handlers.ValidVariants(probe, cache)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "probe failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(groups)
	}
	for _, g := range groups {
		fmt.Fprintf(formatter.Writer, "%s:\n", g.Name)
		for _, v := range g.Variants {
			fmt.Fprintf(formatter.Writer, "  %s\n", v)
		}
	}
	return nil
}
