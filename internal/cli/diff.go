package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/snapdiff/internal/diff"
	"github.com/roach88/snapdiff/internal/snapshot"
	"github.com/roach88/snapdiff/internal/store"
)

// DiffReport is the success payload of the diff command.
type DiffReport struct {
	Kind    string   `json:"kind"`
	A       string   `json:"a"` // snapshot id or file path
	B       string   `json:"b"`
	Changed []string `json:"changed"` // field names, sorted; empty = no drift
	Drift   bool     `json:"drift"`
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "diff [<a.yaml> <b.yaml>]",
		Short: "Report fields that drifted between two snapshots",
		Long: `Compare two snapshots of the same kind and report the names of the fields
whose values differ. With two file arguments the snapshots are read from
YAML; with --name the latest two stored snapshots of that series are
compared.

Exit codes: 0 no drift, 1 drift detected, 2 command error.`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(rootOpts, cmd, args, dbPath, name)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "snapdiff.db", "history database path")
	cmd.Flags().StringVar(&name, "name", "", "compare the latest two stored snapshots of this series")

	return cmd
}

func runDiff(opts *RootOptions, cmd *cobra.Command, args []string, dbPath, name string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var snapA, snapB *snapshot.Snapshot
	var labelA, labelB string

	switch {
	case len(args) == 2 && name == "":
		var err error
		if snapA, err = LoadSnapshotFile(args[0]); err != nil {
			return outputDiffError(formatter, err)
		}
		if snapB, err = LoadSnapshotFile(args[1]); err != nil {
			return outputDiffError(formatter, err)
		}
		labelA, labelB = args[0], args[1]

	case len(args) == 0 && name != "":
		db, err := store.Open(dbPath)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "open history database", err)
		}
		defer db.Close()

		entries, err := db.Latest(cmd.Context(), name, 2)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "read history", err)
		}
		if len(entries) < 2 {
			msg := fmt.Sprintf("series %q has %d snapshot(s), need 2", name, len(entries))
			formatter.Error(ErrCodeNotFound, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		// Latest returns newest first; diff older against newer.
		snapA, snapB = entries[1].Snapshot, entries[0].Snapshot
		labelA, labelB = snapA.ID, snapB.ID

	default:
		msg := "diff takes either two snapshot files or --name, not both"
		formatter.Error(ErrCodeBadInput, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	if snapA.Kind != snapB.Kind {
		msg := fmt.Sprintf("cannot diff %s snapshot against %s snapshot", snapA.Kind, snapB.Kind)
		formatter.Error(ErrCodeBadInput, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	recA, err := snapA.Record()
	if err != nil {
		return outputDiffError(formatter, err)
	}
	recB, err := snapB.Record()
	if err != nil {
		return outputDiffError(formatter, err)
	}

	changed, err := diff.Compare(recA, recB)
	if err != nil {
		var ce *diff.CompareError
		if errors.As(err, &ce) {
			formatter.Error(ErrCodeCompare, ce.Error(), map[string]string{"code": string(ce.Code), "field": ce.Field})
		} else {
			formatter.Error(ErrCodeCompare, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "compare snapshots", err)
	}

	report := DiffReport{
		Kind:    snapA.Kind,
		A:       labelA,
		B:       labelB,
		Changed: changed,
		Drift:   len(changed) > 0,
	}
	if report.Changed == nil {
		report.Changed = []string{}
	}
	if err := outputDiffReport(formatter, report); err != nil {
		return err
	}
	if report.Drift {
		return NewExitError(ExitFailure, fmt.Sprintf("drift detected in %d field(s)", len(changed)))
	}
	return nil
}

func outputDiffReport(f *OutputFormatter, report DiffReport) error {
	if f.Format == "json" {
		return f.Success(report)
	}
	if !report.Drift {
		fmt.Fprintf(f.Writer, "no drift: %s == %s\n", report.A, report.B)
		return nil
	}
	fmt.Fprintf(f.Writer, "drift: %s -> %s (%d field(s))\n", report.A, report.B, len(report.Changed))
	for _, field := range report.Changed {
		fmt.Fprintf(f.Writer, "  changed: %s\n", field)
	}
	return nil
}

func outputDiffError(f *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		f.Error(loadErr.Code, loadErr.Message, map[string]string{"path": loadErr.Path})
		return WrapExitError(ExitCommandError, "load snapshot", err)
	}
	f.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "diff", err)
}
