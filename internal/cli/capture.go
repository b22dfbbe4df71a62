package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagelift/pagelift/internal/builder"
	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/snapshot"
	"github.com/pagelift/pagelift/internal/store"
)

// CaptureOptions holds flags for the capture command.
type CaptureOptions struct {
	*RootOptions
	Output        string // output file path, "-" or empty for stdout
	ConfigPath    string // optional builder config YAML
	Archive       string // optional sqlite archive path
	IncludeHidden bool
}

// CaptureSummary is the JSON payload for a successful capture.
type CaptureSummary struct {
	CaptureID   string `json:"capture_id"`
	ContentHash string `json:"content_hash"`
	Source      string `json:"source"`
	LayerCount  int    `json:"layer_count"`
	Output      string `json:"output,omitempty"`
	Archived    bool   `json:"archived,omitempty"`
}

// NewCaptureCommand creates the capture command.
func NewCaptureCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CaptureOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "capture <snapshot.json>",
		Short: "Build a design document from a page snapshot",
		Long: `Build a design layer document from a captured page snapshot.

Reads a snapshot (computed styles + geometry per element), infers the
layer tree, and writes the document as canonical JSON. The same snapshot
always produces byte-identical output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "builder config YAML")
	cmd.Flags().StringVar(&opts.Archive, "archive", "", "also store the document in a capture archive (SQLite)")
	cmd.Flags().BoolVar(&opts.IncludeHidden, "include-hidden", false, "emit hidden layers with visible=false")

	return cmd
}

func runCapture(opts *CaptureOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg := builder.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := builder.LoadConfig(opts.ConfigPath)
		if err != nil {
			formatter.Failure(ErrCodeConfig, err.Error())
			return WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}
	cfg.IncludeHidden = cfg.IncludeHidden || opts.IncludeHidden

	snap, err := loadSnapshot(path)
	if err != nil {
		var cErr *snapshot.ContractError
		if errors.As(err, &cErr) {
			formatter.Failure(ErrCodeContract, cErr.Error())
			return WrapExitError(ExitFailure, "invalid snapshot", err)
		}
		formatter.Failure(ErrCodeRead, err.Error())
		return WrapExitError(ExitCommandError, "read snapshot", err)
	}

	log := newLogger(opts.RootOptions)
	defer log.Sync() //nolint:errcheck

	b := builder.New(cfg, builder.WithLogger(log))
	doc, err := b.BuildDocument(snap)
	if err != nil {
		formatter.Failure(ErrCodeBuild, err.Error())
		return WrapExitError(ExitFailure, "build document", err)
	}

	data, err := ir.MarshalCanonical(doc)
	if err != nil {
		formatter.Failure(ErrCodeEncode, err.Error())
		return WrapExitError(ExitFailure, "encode document", err)
	}
	hash, err := ir.ContentHash(doc.Root)
	if err != nil {
		formatter.Failure(ErrCodeEncode, err.Error())
		return WrapExitError(ExitFailure, "hash document", err)
	}

	wroteTo := "stdout"
	switch {
	case opts.Output == "" && opts.Format == "json":
		// JSON mode without -o embeds the document in the response envelope.
	case opts.Output == "" || opts.Output == "-":
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		if err := os.WriteFile(opts.Output, append(data, '\n'), 0o644); err != nil {
			formatter.Failure(ErrCodeWrite, err.Error())
			return WrapExitError(ExitCommandError, "write output", err)
		}
		wroteTo = opts.Output
	}

	archived := false
	if opts.Archive != "" {
		st, err := store.Open(opts.Archive)
		if err != nil {
			formatter.Failure(ErrCodeArchive, err.Error())
			return WrapExitError(ExitCommandError, "open archive", err)
		}
		defer st.Close()
		if err := st.SaveDocument(cmd.Context(), doc); err != nil {
			formatter.Failure(ErrCodeArchive, err.Error())
			return WrapExitError(ExitCommandError, "archive document", err)
		}
		archived = true
	}

	summary := CaptureSummary{
		CaptureID:   doc.CaptureID,
		ContentHash: hash,
		Source:      doc.Source,
		LayerCount:  doc.Root.Count(),
		Archived:    archived,
	}
	if opts.Output != "" && opts.Output != "-" {
		summary.Output = opts.Output
	}

	if opts.Format == "json" {
		payload := map[string]any{"summary": summary}
		if opts.Output == "" {
			payload["document"] = doc
		}
		return formatter.Success(payload)
	}

	formatter.OK("capture %s (%d layers) → %s", doc.CaptureID, summary.LayerCount, wroteTo)
	if archived {
		formatter.OK("archived to %s", opts.Archive)
	}
	return nil
}

func loadSnapshot(path string) (*snapshot.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return snapshot.Decode(f)
}
