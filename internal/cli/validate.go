package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pagelift/pagelift/internal/snapshot"
)

// ValidationResult holds validation results for a snapshot file.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <snapshot.json>",
		Short: "Validate a snapshot against the input contract",
		Long: `Validate a page snapshot without building a document.

Checks that every element carries a tag, computed style map and border
box, and reports the path of the first violation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	snap, err := loadSnapshot(path)
	if err != nil {
		var cErr *snapshot.ContractError
		if errors.As(err, &cErr) {
			if opts.Format == "json" {
				formatter.Success(ValidationResult{Valid: false, Errors: []string{cErr.Error()}}) //nolint:errcheck
			} else {
				formatter.Failure(ErrCodeContract, cErr.Error()) //nolint:errcheck
			}
			return WrapExitError(ExitFailure, "invalid snapshot", err)
		}
		formatter.Failure(ErrCodeRead, err.Error()) //nolint:errcheck
		return WrapExitError(ExitCommandError, "read snapshot", err)
	}

	formatter.VerboseLog("snapshot %s: root <%s>", path, snap.Root.Tag)

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	formatter.OK("%s is a valid snapshot", path)
	return nil
}
