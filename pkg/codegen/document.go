package codegen

import (
	"github.com/aymerick/douceur/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/framecode/pkg/styled"
)

// Document is the structured form of the generated code.
type Document struct {
	// Markup holds one element tree per root of the forest. Class attributes
	// carry the node's ClassID.
	Markup []*html.Node
	// Rules holds one rule per root. A rule's nested Rules are the rules of
	// the element's children, in order.
	Rules []*css.Rule
}

// Generate builds the document of a forest.
func Generate(forest []*styled.Node) *Document {
	doc := &Document{}
	var elems []*html.Node
	var rules []*css.Rule

	// Walk only fails when fn does.
	_ = Walk(forest, func(ev Event) error {
		switch ev.Kind {
		case EventOpen:
			el := element(ev.Node.Tag)
			el.Attr = []html.Attribute{{Key: "class", Val: ev.Node.ClassID}}
			if len(elems) == 0 {
				doc.Markup = append(doc.Markup, el)
				doc.Rules = append(doc.Rules, ev.Rule)
			} else {
				elems[len(elems)-1].AppendChild(el)
				parent := rules[len(rules)-1]
				parent.Rules = append(parent.Rules, ev.Rule)
			}
			elems = append(elems, el)
			rules = append(rules, ev.Rule)

		case EventText:
			el := elems[len(elems)-1]
			for i, line := range ev.Lines {
				if i > 0 {
					el.AppendChild(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br})
				}
				if line != "" {
					el.AppendChild(&html.Node{Type: html.TextNode, Data: line})
				}
			}

		case EventClose:
			elems = elems[:len(elems)-1]
			rules = rules[:len(rules)-1]
		}
		return nil
	})
	return doc
}

// Flatten returns the rules of the document in pre-order, without nesting.
func (d *Document) Flatten() []*css.Rule {
	var out []*css.Rule
	var visit func(list []*css.Rule)
	visit = func(list []*css.Rule) {
		for _, r := range list {
			flat := *r
			flat.Rules = nil
			out = append(out, &flat)
			visit(r.Rules)
		}
	}
	visit(d.Rules)
	return out
}

func element(tag styled.Tag) *html.Node {
	a := atom.Div
	if tag == styled.TagText {
		a = atom.Span
	}
	return &html.Node{Type: html.ElementNode, Data: string(tag), DataAtom: a}
}
