package scene

import (
	"strings"
)

// =============================================================================
// Types and Kinds
// =============================================================================

// Type is the raw node type reported by the host.
type Type string

// Host node types recognized by the classifier.
const (
	TypeFrame     Type = "FRAME"
	TypeInstance  Type = "INSTANCE"
	TypeComponent Type = "COMPONENT"
	TypeGroup     Type = "GROUP"
	TypeRectangle Type = "RECTANGLE"
	TypeText      Type = "TEXT"
)

// Kind is the supported node kind a [Type] classifies into.
type Kind int

const (
	KindUnsupported Kind = iota
	KindContainer
	KindRectangle
	KindText
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindRectangle:
		return "rectangle"
	case KindText:
		return "text"
	default:
		return "unsupported"
	}
}

// Classify maps a node to its supported kind. Unsupported nodes are
// filtered out by the tree builder without error.
func Classify(n *Node) Kind {
	if n == nil {
		return KindUnsupported
	}
	switch n.Type {
	case TypeFrame, TypeInstance, TypeComponent, TypeGroup:
		return KindContainer
	case TypeRectangle:
		return KindRectangle
	case TypeText:
		return KindText
	default:
		return KindUnsupported
	}
}

// =============================================================================
// Flow
// =============================================================================

// FlowMode is a container's declared layout direction.
type FlowMode string

const (
	FlowNone       FlowMode = "NONE"
	FlowHorizontal FlowMode = "HORIZONTAL"
	FlowVertical   FlowMode = "VERTICAL"
)

// Align is a declared alignment along the primary or counter axis.
type Align string

const (
	AlignMin          Align = "MIN"
	AlignCenter       Align = "CENTER"
	AlignMax          Align = "MAX"
	AlignSpaceBetween Align = "SPACE_BETWEEN"
	AlignBaseline     Align = "BASELINE"
)

// AutoLayout is the declared flow of a container node.
type AutoLayout struct {
	Mode             FlowMode
	PrimaryAxisAlign Align
	CounterAxisAlign Align
	PaddingTop       float64
	PaddingRight     float64
	PaddingBottom    float64
	PaddingLeft      float64
	ItemSpacing      float64
}

// TextStyle holds the text-only fields of a TEXT node.
type TextStyle struct {
	Characters string
	FontFamily string
	FontSize   float64 // px
	FontWeight float64
	LineHeight float64 // px; 0 means automatic
}

// =============================================================================
// Node
// =============================================================================

// Box is a node's rectangle relative to its parent's origin.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the trailing horizontal edge.
func (b Box) Right() float64 { return b.X + b.Width }

// Bottom returns the trailing vertical edge.
func (b Box) Bottom() float64 { return b.Y + b.Height }

// IsOrigin reports whether the box sits at its parent's origin.
func (b Box) IsOrigin() bool { return b.X == 0 && b.Y == 0 }

// Declaration is one host-computed style property.
type Declaration struct {
	Property string
	Value    string
}

// Node is a design node. Nodes are treated as read-only by the pipeline.
type Node struct {
	ID   string
	Type Type
	Name string
	Box

	// Opacity of the whole node. Values outside (0, 1) mean fully opaque.
	Opacity      float64
	CornerRadius float64
	Fills        []Paint
	Children     []*Node

	// Layout is set for container-like nodes only.
	Layout *AutoLayout
	// Text is set for TEXT nodes only.
	Text *TextStyle

	// CSS is the host's precomputed base style, in host order.
	CSS []Declaration

	PluginData map[string]map[string]string
}

// Kind returns the classified kind of n.
func (n *Node) Kind() Kind { return Classify(n) }

// FlowMode returns the declared flow, FlowNone when none is declared or the
// node is not a container.
func (n *Node) FlowMode() FlowMode {
	if n.Kind() != KindContainer || n.Layout == nil || n.Layout.Mode == "" {
		return FlowNone
	}
	return n.Layout.Mode
}

// Characters returns the text content of a TEXT node, "" otherwise.
func (n *Node) Characters() string {
	if n.Kind() != KindText || n.Text == nil {
		return ""
	}
	return n.Text.Characters
}

// PluginDataValue returns the custom metadata stored under namespace and key.
func (n *Node) PluginDataValue(namespace, key string) string {
	if n.PluginData == nil {
		return ""
	}
	return n.PluginData[namespace][key]
}

// NumericSuffix returns the part of a host id used in class identifiers:
// for "12:34" it is "34", for the instance id "I1:2;3:4" it is "2".
// Ids without a colon are returned unchanged.
func NumericSuffix(id string) string {
	head, _, _ := strings.Cut(id, ";")
	_, tail, ok := strings.Cut(head, ":")
	if !ok {
		return id
	}
	tail, _, _ = strings.Cut(tail, ":")
	if tail == "" {
		return id
	}
	return tail
}

// =============================================================================
// Traversal
// =============================================================================

// Walk visits nodes depth-first in pre-order, passing each node's parent
// (nil for top-level nodes). Returning false from fn skips the subtree.
func Walk(nodes []*Node, fn func(n, parent *Node) bool) {
	var visit func(list []*Node, parent *Node)
	visit = func(list []*Node, parent *Node) {
		for _, n := range list {
			if n == nil {
				continue
			}
			if fn(n, parent) {
				visit(n.Children, n)
			}
		}
	}
	visit(nodes, nil)
}

// Find returns the node with the given id and its parent (nil at top level).
func Find(nodes []*Node, id string) (node, parent *Node) {
	Walk(nodes, func(n, p *Node) bool {
		if node != nil {
			return false
		}
		if n.ID == id {
			node, parent = n, p
			return false
		}
		return true
	})
	return node, parent
}
