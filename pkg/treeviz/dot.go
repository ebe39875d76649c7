package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/styled"
)

// ToDOT converts a forest to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Containers are drawn as boxes, text nodes as notes. Absolutely positioned
// nodes get a dashed outline; flow members are linked to their container
// with solid edges, absolute children with dashed ones.
func ToDOT(forest []*styled.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	styled.Walk(forest, func(n *styled.Node, _ int) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ClassID, strings.Join(fmtAttrs(n, opts), ", "))
		for _, c := range n.Children {
			edge := fmt.Sprintf("  %q -> %q", n.ClassID, c.ClassID)
			if c.IsAbsolute() {
				edge += " [style=dashed]"
			}
			edges = append(edges, edge+";\n")
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *styled.Node, opts Options) string {
	label := "." + n.ClassID
	if summary := layoutSummary(n); summary != "" {
		label += "\n" + summary
	}
	if opts.Styles {
		for _, line := range styleLines(n) {
			label += "\n" + strings.TrimSpace(line)
		}
	}
	return label
}

func fmtAttrs(n *styled.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts))}
	if n.Kind == scene.KindText {
		attrs = append(attrs, "shape=note")
	}
	if n.IsAbsolute() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
