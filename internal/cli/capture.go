package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/snapdiff/internal/snapshot"
	"github.com/roach88/snapdiff/internal/store"
)

// CaptureResult is the success payload of the capture command.
type CaptureResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Hash       string `json:"hash"`
	CapturedAt string `json:"captured_at"`
	Skipped    bool   `json:"skipped"` // true when the host was unchanged
	Out        string `json:"out,omitempty"`
}

// NewCaptureCommand creates the capture command.
func NewCaptureCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name    string
		dbPath  string
		outPath string
		tags    []string
	)

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a host snapshot",
		Long: `Capture a descriptor of the running host and append it to the snapshot
history. With --out the snapshot is written to a YAML file instead of the
database. A capture whose content matches the latest stored snapshot is
skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(rootOpts, cmd, name, dbPath, outPath, tags)
		},
	}

	cmd.Flags().StringVar(&name, "name", "host", "snapshot series name")
	cmd.Flags().StringVar(&dbPath, "db", "snapdiff.db", "history database path")
	cmd.Flags().StringVar(&outPath, "out", "", "write snapshot to YAML file instead of the database")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to attach to the snapshot (repeatable)")

	return cmd
}

func runCapture(opts *RootOptions, cmd *cobra.Command, name, dbPath, outPath string, tags []string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	snap := snapshot.Capture(snapshot.SystemClock{}, name, tags)
	hash, err := snapshot.Fingerprint(snap.Host)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "fingerprint snapshot", err)
	}
	formatter.VerboseLog("captured %s (hash %s)", snap.ID, hash)

	result := CaptureResult{
		ID:         snap.ID,
		Name:       snap.Name,
		Hash:       hash,
		CapturedAt: snap.CapturedAt.Format(time.RFC3339),
	}

	if outPath != "" {
		if err := snapshot.SaveFile(outPath, snap); err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitCommandError, "write snapshot file", err)
		}
		result.Out = outPath
		return outputCaptureResult(formatter, result)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer db.Close()

	// Skip the insert when nothing changed since the last capture.
	latest, err := db.Latest(cmd.Context(), name, 1)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read history", err)
	}
	if len(latest) > 0 && latest[0].Hash == hash {
		formatter.VerboseLog("unchanged since %s, skipping", latest[0].Snapshot.ID)
		result.Skipped = true
		return outputCaptureResult(formatter, result)
	}

	if err := db.SaveSnapshot(cmd.Context(), snap, hash); err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "save snapshot", err)
	}
	return outputCaptureResult(formatter, result)
}

func outputCaptureResult(f *OutputFormatter, result CaptureResult) error {
	if f.Format == "json" {
		return f.Success(result)
	}
	if result.Skipped {
		fmt.Fprintf(f.Writer, "unchanged: %s (hash %s)\n", result.Name, shortHash(result.Hash))
		return nil
	}
	if result.Out != "" {
		fmt.Fprintf(f.Writer, "captured %s -> %s\n", result.Name, result.Out)
		return nil
	}
	fmt.Fprintf(f.Writer, "captured %s as %s (hash %s)\n", result.Name, result.ID, shortHash(result.Hash))
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
