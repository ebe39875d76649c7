// Package treeviz renders debug views of a styled forest: an indented text
// tree for terminals and a Graphviz diagram for the browser.
package treeviz

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/matzehuels/framecode/pkg/styled"
)

// Options configures both views.
type Options struct {
	// Styles includes every declaration of a node, not just its layout
	// summary.
	Styles bool
}

// Print returns the forest as an indented text tree. Each line shows the
// tag, class id, source id and a short layout summary.
func Print(forest []*styled.Node, opts Options) string {
	root := treeprint.New()
	root.SetValue(fmt.Sprintf("selection (%d nodes)", styled.Count(forest)))
	for _, n := range forest {
		addNode(root, n, opts)
	}
	return root.String()
}

func addNode(t treeprint.Tree, n *styled.Node, opts Options) {
	label := Label(n)
	if opts.Styles && n.Style.Len() > 0 {
		label += "\n" + strings.Join(styleLines(n), "\n")
	}
	if len(n.Children) == 0 {
		t.AddMetaNode(n.Tag, label)
		return
	}
	branch := t.AddMetaBranch(n.Tag, label)
	for _, c := range n.Children {
		addNode(branch, c, opts)
	}
}

// Label returns the one-line description of a node.
func Label(n *styled.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s (%s)", n.ClassID, n.ID())
	if summary := layoutSummary(n); summary != "" {
		b.WriteString(" ")
		b.WriteString(summary)
	}
	if n.Text != "" {
		fmt.Fprintf(&b, " %q", n.Text)
	}
	return b.String()
}

func layoutSummary(n *styled.Node) string {
	var parts []string
	if dir := n.Style.Value("flex-direction"); dir != "" {
		parts = append(parts, dir)
	}
	if n.IsAbsolute() {
		parts = append(parts, fmt.Sprintf("absolute@%s,%s", n.Style.Value("left"), n.Style.Value("top")))
	}
	if gap := n.Style.Value("gap"); gap != "" {
		parts = append(parts, "gap "+gap)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func styleLines(n *styled.Node) []string {
	var lines []string
	n.Style.Each(func(name, value string) {
		lines = append(lines, "  "+name+": "+value)
	})
	return lines
}
