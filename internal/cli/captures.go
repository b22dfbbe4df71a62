package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pagelift/pagelift/internal/store"
)

// CapturesOptions holds flags for the captures command.
type CapturesOptions struct {
	*RootOptions
	Archive string
}

// NewCapturesCommand creates the captures command.
func NewCapturesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CapturesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "captures",
		Short:         "List captures in an archive",
		Long:          "List the captures stored in a capture archive, newest first.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaptures(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Archive, "archive", "", "capture archive (SQLite)")
	cmd.MarkFlagRequired("archive") //nolint:errcheck

	return cmd
}

func runCaptures(opts *CapturesOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Archive)
	if err != nil {
		formatter.Failure(ErrCodeArchive, err.Error())
		return WrapExitError(ExitCommandError, "open archive", err)
	}
	defer st.Close()

	infos, err := st.ListCaptures(cmd.Context())
	if err != nil {
		formatter.Failure(ErrCodeArchive, err.Error())
		return WrapExitError(ExitCommandError, "list captures", err)
	}

	if opts.Format == "json" {
		return formatter.Success(map[string]any{"captures": infos, "count": len(infos)})
	}

	if len(infos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no captures")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CAPTURE ID\tSOURCE\tCAPTURED AT\tVIEWPORT")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%gx%g\n",
			info.CaptureID, info.Source,
			info.CapturedAt.Format("2006-01-02 15:04:05"),
			info.Viewport.Width, info.Viewport.Height)
	}
	return w.Flush()
}
