package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/pagelift/pagelift/internal/ir"
	"github.com/pagelift/pagelift/internal/store"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Archive string // read the document from an archive instead of a file
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <document.json | capture-id>",
		Short: "Print a document's layer tree",
		Long: `Print the layer tree of a design document.

The argument is a document file, or a capture ID when --archive is set.
Text mode renders the tree with types, names and geometry; JSON mode
emits the full document.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Archive, "archive", "", "capture archive (SQLite) to read from")

	return cmd
}

func runInspect(opts *InspectOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var doc *ir.Document
	if opts.Archive != "" {
		st, err := store.Open(opts.Archive)
		if err != nil {
			formatter.Failure(ErrCodeArchive, err.Error())
			return WrapExitError(ExitCommandError, "open archive", err)
		}
		defer st.Close()
		doc, err = st.GetDocument(cmd.Context(), arg)
		if err != nil {
			formatter.Failure(ErrCodeNotFound, err.Error())
			return WrapExitError(ExitFailure, "load capture", err)
		}
	} else {
		data, err := os.ReadFile(arg)
		if err != nil {
			formatter.Failure(ErrCodeRead, err.Error())
			return WrapExitError(ExitCommandError, "read document", err)
		}
		var d ir.Document
		if err := json.Unmarshal(data, &d); err != nil {
			formatter.Failure(ErrCodeDecode, err.Error())
			return WrapExitError(ExitFailure, "decode document", err)
		}
		doc = &d
	}

	if opts.Format == "json" {
		return formatter.Success(doc)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "capture %s  source %s  viewport %gx%g  layers %d\n",
		color.CyanString(doc.CaptureID), doc.Source,
		doc.Viewport.Width, doc.Viewport.Height, doc.Root.Count())

	tree := treeprint.NewWithRoot(layerLabel(doc.Root))
	addLayerBranches(tree, doc.Root)
	fmt.Fprint(cmd.OutOrStdout(), tree.String())
	return nil
}

func addLayerBranches(branch treeprint.Tree, node *ir.LayerNode) {
	for _, child := range node.Children {
		b := branch.AddBranch(layerLabel(child))
		addLayerBranches(b, child)
	}
}

// layerLabel renders one tree line: type, name, geometry and the flags
// that change paint order or positioning.
func layerLabel(n *ir.LayerNode) string {
	var sb strings.Builder
	sb.WriteString(color.YellowString(string(n.Type)))
	sb.WriteString(" " + n.Name)
	fmt.Fprintf(&sb, "  [%g,%g %gx%g]", n.X, n.Y, n.W, n.H)
	if n.Type == ir.LayerText && n.Characters != "" {
		fmt.Fprintf(&sb, " %q", truncate(n.Characters, 24))
	}
	if n.AbsolutePositioned {
		sb.WriteString(color.MagentaString(" abs"))
	}
	if n.ZIndex != 0 {
		fmt.Fprintf(&sb, " z=%d", n.ZIndex)
	}
	if n.AutoLayout != nil {
		fmt.Fprintf(&sb, " auto(%s)", n.AutoLayout.Direction)
	}
	if !n.Visible {
		sb.WriteString(color.RedString(" hidden"))
	}
	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
