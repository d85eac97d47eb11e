package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/snapdiff/internal/store"
)

// HistoryEntry is one row of the history command's payload.
type HistoryEntry struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	CapturedAt string `json:"captured_at"`
	Hash       string `json:"hash"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:           "history <name>",
		Short:         "List stored snapshots for a series",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, cmd, dbPath, args[0])
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "snapdiff.db", "history database path")

	return cmd
}

func runHistory(opts *RootOptions, cmd *cobra.Command, dbPath, name string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	db, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer db.Close()

	entries, err := db.List(cmd.Context(), name)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read history", err)
	}

	rows := make([]HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, HistoryEntry{
			ID:         entry.Snapshot.ID,
			Kind:       entry.Snapshot.Kind,
			CapturedAt: entry.Snapshot.CapturedAt.Format(time.RFC3339),
			Hash:       entry.Hash,
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(rows)
	}
	if len(rows) == 0 {
		fmt.Fprintf(formatter.Writer, "no snapshots for %q\n", name)
		return nil
	}
	for _, row := range rows {
		fmt.Fprintf(formatter.Writer, "%s  %s  %s  %s\n", row.ID, row.CapturedAt, row.Kind, shortHash(row.Hash))
	}
	return nil
}
