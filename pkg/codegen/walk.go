package codegen

import (
	"github.com/aymerick/douceur/css"

	"github.com/matzehuels/framecode/pkg/styled"
)

// EventKind identifies a traversal step.
type EventKind int

const (
	// EventOpen starts an element. Rule holds the element's style rule.
	EventOpen EventKind = iota
	// EventText carries the lines of a text element, after its children.
	EventText
	// EventClose ends an element.
	EventClose
)

// Event is one step of the synchronized traversal.
type Event struct {
	Kind  EventKind
	Node  *styled.Node
	Depth int
	Rule  *css.Rule // EventOpen only
	Lines []string  // EventText only
}

// Walk traverses the forest depth-first in pre-order and calls fn for every
// event. It stops at the first error fn returns.
func Walk(forest []*styled.Node, fn func(Event) error) error {
	var visit func(list []*styled.Node, depth int) error
	visit = func(list []*styled.Node, depth int) error {
		for _, n := range list {
			if err := fn(Event{Kind: EventOpen, Node: n, Depth: depth, Rule: RuleFor(n)}); err != nil {
				return err
			}
			if err := visit(n.Children, depth+1); err != nil {
				return err
			}
			if lines := n.Lines(); lines != nil {
				if err := fn(Event{Kind: EventText, Node: n, Depth: depth, Lines: lines}); err != nil {
					return err
				}
			}
			if err := fn(Event{Kind: EventClose, Node: n, Depth: depth}); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(forest, 0)
}

// RuleFor returns the style rule of a single node, without nested rules.
// Declarations follow the node's style map order.
func RuleFor(n *styled.Node) *css.Rule {
	sel := "." + n.ClassID
	r := &css.Rule{
		Kind:      css.QualifiedRule,
		Prelude:   sel,
		Selectors: []string{sel},
	}
	if n.Style != nil {
		n.Style.Each(func(name, value string) {
			r.Declarations = append(r.Declarations, &css.Declaration{Property: name, Value: value})
		})
	}
	return r
}
