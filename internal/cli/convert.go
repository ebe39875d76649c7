package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/framecode/pkg/io"
	"github.com/matzehuels/framecode/pkg/pipeline"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	optionFlags
	output    string   // output directory, "-" for stdout
	name      string   // base name of the written files
	selection []string // node ids overriding the document selection
}

// convertCommand creates the convert command for generating markup and styles.
func (c *CLI) convertCommand() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [document]",
		Short: "Generate markup and a stylesheet from a design document",
		Long: `Generate markup and a stylesheet from a design document.

The document is a JSON or YAML export of a design tree. Its selection (or
every top-level node when none is recorded) is converted into two files,
<name>.<markup> and <name>.<stylesheet>, written to the output directory.
Use -o - to print both to stdout instead.

Flags override values from the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts, err := opts.options(cmd, cfg)
			if err != nil {
				return err
			}
			return c.runConvert(cmd.Context(), args[0], popts, opts, cmd.OutOrStdout())
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory, or - for stdout")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "base name of the output files (default: document file name)")
	cmd.Flags().StringSliceVar(&opts.selection, "select", nil, "node ids to convert, overriding the document selection (comma-separated)")

	return cmd
}

// runConvert loads the document, runs the pipeline and writes the artifacts.
func (c *CLI) runConvert(ctx context.Context, input string, popts pipeline.Options, opts convertOpts, stdout io.Writer) error {
	prog := newProgress(c.Logger)

	doc, err := pkgio.ImportDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}
	if len(opts.selection) > 0 {
		doc.Selection = opts.selection
	}
	nodes, parentID, err := doc.Select()
	if err != nil {
		return err
	}
	c.Logger.Debug("selection", "nodes", len(nodes), "parent", parentID)

	popts.Logger = c.Logger
	result, err := c.newRunner().Execute(ctx, nodes, popts)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	prog.done(fmt.Sprintf("Converted %d nodes", result.Stats.Nodes))

	if opts.output == "-" {
		fmt.Fprintln(stdout, result.Markup)
		fmt.Fprintln(stdout, result.Stylesheet)
		return nil
	}

	base := opts.name
	if base == "" {
		base = baseName(input, doc.Name)
	}
	paths, err := pkgio.WriteArtifacts(opts.output, base, pkgio.Artifacts{
		Markup:        result.Markup,
		MarkupExt:     popts.MarkupExt(),
		Stylesheet:    result.Stylesheet,
		StylesheetExt: popts.StylesheetExt(),
	})
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	printSuccess("Generated %s + %s", popts.Markup, popts.Stylesheet)
	printStats(result.Stats)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// baseName derives the output base name from the input file, falling back
// to the document name and then the app name.
func baseName(input, docName string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	for _, candidate := range []string{stem, slug(docName)} {
		if candidate != "" && candidate != "." && !strings.HasPrefix(candidate, ".") {
			return candidate
		}
	}
	return appName
}

// slug lowercases s and replaces anything but letters and digits with '-'.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// openOutput opens path for writing, or returns stdout when path is empty
// or "-".
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
