package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagelift/pagelift/internal/snapshot"
)

// SnapshotOptions holds flags for the snapshot command.
type SnapshotOptions struct {
	*RootOptions
	Output string
	Source string
}

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SnapshotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "snapshot <fixture.html>",
		Short: "Build a snapshot from an annotated HTML fixture",
		Long: `Build a snapshot from an HTML fixture for local development.

Fixture elements carry inline styles and data-x/y/w/h geometry
attributes in place of a real browser capture. The resulting snapshot
feeds directly into the capture command.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Source, "source", "", "source identifier recorded in the snapshot (default file path)")

	return cmd
}

func runSnapshot(opts *SnapshotOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	f, err := os.Open(path)
	if err != nil {
		formatter.Failure(ErrCodeRead, err.Error())
		return WrapExitError(ExitCommandError, "read fixture", err)
	}
	defer f.Close()

	source := opts.Source
	if source == "" {
		source = "file://" + path
	}

	snap, err := snapshot.FromHTML(f, source)
	if err != nil {
		formatter.Failure(ErrCodeDecode, err.Error())
		return WrapExitError(ExitFailure, "parse fixture", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		formatter.Failure(ErrCodeEncode, err.Error())
		return WrapExitError(ExitFailure, "encode snapshot", err)
	}

	if opts.Output != "" && opts.Output != "-" {
		if err := os.WriteFile(opts.Output, append(data, '\n'), 0o644); err != nil {
			formatter.Failure(ErrCodeWrite, err.Error())
			return WrapExitError(ExitCommandError, "write output", err)
		}
		if opts.Format == "json" {
			return formatter.Success(map[string]any{"output": opts.Output})
		}
		formatter.OK("snapshot written to %s", opts.Output)
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"snapshot": snap})
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
