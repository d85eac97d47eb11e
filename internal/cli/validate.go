package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results for one file.
type ValidationResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.yaml> [more files...]",
		Short: "Validate snapshot files against the schema",
		Long: `Validate snapshot YAML files against the embedded CUE schema without
diffing or storing them. Faster feedback than diff for hand-edited files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command, paths []string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	results := make([]ValidationResult, 0, len(paths))
	invalid := 0
	for _, path := range paths {
		result := ValidationResult{Path: path, Valid: true}

		raw, err := os.ReadFile(path)
		if err != nil {
			result.Valid = false
			result.Error = err.Error()
		} else if err := ValidateSnapshotYAML(raw); err != nil {
			result.Valid = false
			result.Error = err.Error()
		}
		if !result.Valid {
			invalid++
		}
		formatter.VerboseLog("validated %s: valid=%t", path, result.Valid)
		results = append(results, result)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			if result.Valid {
				fmt.Fprintf(formatter.Writer, "ok: %s\n", result.Path)
			} else {
				fmt.Fprintf(formatter.Writer, "invalid: %s\n  %s\n", result.Path, result.Error)
			}
		}
	}

	if invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d file(s) invalid", invalid, len(results)))
	}
	return nil
}
