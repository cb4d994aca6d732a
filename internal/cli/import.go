package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Database string
}

// ImportResult is the success payload of the import command.
type ImportResult struct {
	Source   string `json:"source"`
	Imported int    `json:"imported"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <pack-file>",
		Short: "Import a tile pack into the database",
		Long: `Validate a YAML tile pack against the pack schema and upsert its
tiles into the database, creating the database if needed.

Re-importing a pack overwrites existing records with the same name and
version.

Example:
  ric import --db tiles.db vanilla.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite tile database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *ImportOptions, packPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	pack, err := tiledata.LoadPack(packPath)
	if err != nil {
		_ = formatter.Error(ErrCodeBadPack, err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid pack", err)
	}
	formatter.VerboseLog("pack %q: %d tile(s)", pack.Source, len(pack.Tiles))

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
	n, err := st.Import(ctx, pack)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "import failed", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ImportResult{Source: pack.Source, Imported: n})
	}
	fmt.Fprintf(formatter.Writer, "imported %d tile(s) from %q\n", n, pack.Source)
	return nil
}
