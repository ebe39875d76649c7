// Package styled defines the styled tree: the in-memory forest built from a
// scene selection and consumed by the code generator.
//
// Each [Node] owns its children exclusively; there are no parent pointers.
// A forest is built fresh for every selection event and discarded once it
// has been rendered.
package styled

import (
	"strings"

	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
)

// Tag is the markup element emitted for a node.
type Tag string

const (
	// TagBox wraps containers and rectangles.
	TagBox Tag = "div"
	// TagText wraps text runs.
	TagText Tag = "span"
)

// TagFor returns the tag emitted for a supported kind.
func TagFor(k scene.Kind) Tag {
	if k == scene.KindText {
		return TagText
	}
	return TagBox
}

// Node is one element of the styled tree.
type Node struct {
	// Source is the scene node this element was built from. It is never
	// mutated.
	Source   *scene.Node
	Kind     scene.Kind
	Tag      Tag
	ClassID  string
	Style    *style.Map
	Text     string
	Children []*Node
}

// Box returns the source node's rectangle.
func (n *Node) Box() scene.Box { return n.Source.Box }

// ID returns the source node id.
func (n *Node) ID() string { return n.Source.ID }

// IsAbsolute reports whether n has been taken out of flow.
func (n *Node) IsAbsolute() bool {
	return n.Style.Value("position") == "absolute"
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u2028", "\n")

// Lines returns the text content split at line breaks. CRLF, CR and U+2028
// count as breaks like LF.
func (n *Node) Lines() []string {
	if n.Kind != scene.KindText {
		return nil
	}
	return strings.Split(lineBreaks.Replace(n.Text), "\n")
}

// Walk visits the forest depth-first in pre-order. depth is 0 for roots.
// Returning false from fn skips the node's children.
func Walk(forest []*Node, fn func(n *Node, depth int) bool) {
	var visit func(list []*Node, depth int)
	visit = func(list []*Node, depth int) {
		for _, n := range list {
			if fn(n, depth) {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(forest, 0)
}

// Count returns the number of nodes in the forest.
func Count(forest []*Node) int {
	total := 0
	Walk(forest, func(*Node, int) bool {
		total++
		return true
	})
	return total
}

// ClassIDs returns every class id of the forest in traversal order.
func ClassIDs(forest []*Node) []string {
	var ids []string
	Walk(forest, func(n *Node, _ int) bool {
		ids = append(ids, n.ClassID)
		return true
	})
	return ids
}
