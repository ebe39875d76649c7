package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framecode/pkg/errors"
	pkgio "github.com/matzehuels/framecode/pkg/io"
	"github.com/matzehuels/framecode/pkg/pipeline"
	"github.com/matzehuels/framecode/pkg/treeviz"
)

// Tree output formats.
const (
	treeFormatText = "text"
	treeFormatDOT  = "dot"
	treeFormatSVG  = "svg"
)

var treeFormats = []string{treeFormatText, treeFormatDOT, treeFormatSVG}

// treeCommand creates the tree command for inspecting the styled tree.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format   string
		output   string
		resolver string
		viz      treeviz.Options
	)

	cmd := &cobra.Command{
		Use:   "tree [document]",
		Short: "Show the styled tree built from a design document",
		Long: `Show the styled tree built from a design document.

The tree command runs only the build stage and prints the resulting element
tree with each node's class id and inferred layout. Use -f dot or -f svg
for a Graphviz diagram.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateOneOf(errors.ErrCodeInvalidInput, "tree format", format, treeFormats...); err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := cfg.Options()
			if resolver != "" {
				opts.Resolver = resolver
			}
			out, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer out.Close()
			return c.runTree(cmd.Context(), args[0], opts, format, viz, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", treeFormatText, "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&resolver, "resolver", "", "style resolver: host (default), geometry")
	cmd.Flags().BoolVar(&viz.Styles, "styles", false, "include every declaration of each node")

	return cmd
}

// runTree builds the styled forest and writes it in the requested format.
func (c *CLI) runTree(ctx context.Context, input string, opts pipeline.Options, format string, viz treeviz.Options, w io.Writer) error {
	doc, err := pkgio.ImportDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	nodes, _, err := doc.Select()
	if err != nil {
		return err
	}

	opts.Logger = c.Logger
	forest, stats, err := c.newRunner().Build(ctx, nodes, opts)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	c.Logger.Debug("tree built", "nodes", stats.Nodes, "dropped", stats.Dropped)

	switch format {
	case treeFormatDOT:
		_, err = io.WriteString(w, treeviz.ToDOT(forest, viz))
	case treeFormatSVG:
		var svg []byte
		svg, err = treeviz.RenderSVG(ctx, treeviz.ToDOT(forest, viz))
		if err == nil {
			_, err = w.Write(svg)
		}
	default:
		_, err = fmt.Fprintln(w, treeviz.Print(forest, viz))
	}
	return err
}
