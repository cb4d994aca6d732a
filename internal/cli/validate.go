package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RocketRace/robot-is-chill/internal/tiledata"
)

// ValidationResult holds pack validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Errors []tiledata.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <pack-file>",
		Short: "Validate a tile pack without importing it",
		Long: `Validate a YAML tile pack against the pack schema without touching
any database.

Reports every schema violation found, not just the first. Faster than
import for iterating on pack files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, packPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	raw, err := os.ReadFile(packPath)
	if err != nil {
		if os.IsNotExist(err) {
			_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("pack file not found: %s", packPath), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("pack file not found: %s", packPath))
		}
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read pack", err)
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		_ = formatter.Error(ErrCodeBadPack, fmt.Sprintf("decoding pack: %v", err), nil)
		return WrapExitError(ExitFailure, "invalid pack", err)
	}

	violations := tiledata.ValidatePack(doc)
	if len(violations) > 0 {
		return outputValidationErrors(formatter, violations)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ pack valid")
	return nil
}

// outputValidationErrors outputs schema violations in the configured
// format and maps them to the validation-failure exit code.
func outputValidationErrors(formatter *OutputFormatter, errs []tiledata.ValidationError) error {
	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeBadPack, errs[0].Error(), ValidationResult{
			Valid:  false,
			Errors: errs,
		})
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		if err.Path != "" {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", err.Path, err.Message)
			continue
		}
		fmt.Fprintf(formatter.Writer, "  %s\n", err.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
