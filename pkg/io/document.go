package io

import (
	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/scene"
)

// Document is a decoded design document.
type Document struct {
	Name string
	// ParentID is the parent of the top-level nodes in the host document.
	ParentID  string
	Selection []string
	Nodes     []*scene.Node
}

// Select returns the selected nodes in selection order and the id of the
// first selected node's parent. Without a selection every top-level node is
// selected.
func (d *Document) Select() ([]*scene.Node, string, error) {
	if len(d.Selection) == 0 {
		return d.Nodes, d.ParentID, nil
	}

	selected := make([]*scene.Node, 0, len(d.Selection))
	parentID := ""
	for i, id := range d.Selection {
		n, parent := scene.Find(d.Nodes, id)
		if n == nil {
			return nil, "", errors.New(errors.ErrCodeNotFound, "selected node %s not found", id)
		}
		if i == 0 {
			parentID = d.ParentID
			if parent != nil {
				parentID = parent.ID
			}
		}
		selected = append(selected, n)
	}
	return selected, parentID, nil
}

// =============================================================================
// Wire Types
// =============================================================================

type document struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	ParentID  string   `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Selection []string `json:"selection,omitempty" yaml:"selection,omitempty"`
	Nodes     []*node  `json:"nodes" yaml:"nodes" validate:"dive,required"`
}

type node struct {
	ID           string                       `json:"id" yaml:"id" validate:"required,max=256"`
	Type         string                       `json:"type" yaml:"type" validate:"required"`
	Name         string                       `json:"name,omitempty" yaml:"name,omitempty"`
	X            float64                      `json:"x,omitempty" yaml:"x,omitempty"`
	Y            float64                      `json:"y,omitempty" yaml:"y,omitempty"`
	Width        float64                      `json:"width,omitempty" yaml:"width,omitempty" validate:"gte=0"`
	Height       float64                      `json:"height,omitempty" yaml:"height,omitempty" validate:"gte=0"`
	Opacity      *float64                     `json:"opacity,omitempty" yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
	CornerRadius float64                      `json:"corner_radius,omitempty" yaml:"corner_radius,omitempty" validate:"gte=0"`
	Fills        []paint                      `json:"fills,omitempty" yaml:"fills,omitempty" validate:"dive"`
	Layout       *autoLayout                  `json:"layout,omitempty" yaml:"layout,omitempty"`
	Text         *textStyle                   `json:"text,omitempty" yaml:"text,omitempty"`
	CSS          declarations                 `json:"css,omitempty" yaml:"css,omitempty"`
	PluginData   map[string]map[string]string `json:"plugin_data,omitempty" yaml:"plugin_data,omitempty"`
	Children     []*node                      `json:"children,omitempty" yaml:"children,omitempty" validate:"dive,required"`
}

type paint struct {
	Type    string   `json:"type" yaml:"type" validate:"required"`
	Color   color    `json:"color" yaml:"color"`
	Opacity *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
	Visible *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
}

type color struct {
	R float64  `json:"r" yaml:"r" validate:"gte=0,lte=1"`
	G float64  `json:"g" yaml:"g" validate:"gte=0,lte=1"`
	B float64  `json:"b" yaml:"b" validate:"gte=0,lte=1"`
	A *float64 `json:"a,omitempty" yaml:"a,omitempty" validate:"omitempty,gte=0,lte=1"`
}

type autoLayout struct {
	Mode             string  `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=NONE HORIZONTAL VERTICAL"`
	PrimaryAxisAlign string  `json:"primary_axis_align,omitempty" yaml:"primary_axis_align,omitempty"`
	CounterAxisAlign string  `json:"counter_axis_align,omitempty" yaml:"counter_axis_align,omitempty"`
	PaddingTop       float64 `json:"padding_top,omitempty" yaml:"padding_top,omitempty"`
	PaddingRight     float64 `json:"padding_right,omitempty" yaml:"padding_right,omitempty"`
	PaddingBottom    float64 `json:"padding_bottom,omitempty" yaml:"padding_bottom,omitempty"`
	PaddingLeft      float64 `json:"padding_left,omitempty" yaml:"padding_left,omitempty"`
	ItemSpacing      float64 `json:"item_spacing,omitempty" yaml:"item_spacing,omitempty"`
}

type textStyle struct {
	Characters string  `json:"characters" yaml:"characters"`
	FontFamily string  `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	FontSize   float64 `json:"font_size,omitempty" yaml:"font_size,omitempty" validate:"gte=0"`
	FontWeight float64 `json:"font_weight,omitempty" yaml:"font_weight,omitempty" validate:"gte=0"`
	LineHeight float64 `json:"line_height,omitempty" yaml:"line_height,omitempty" validate:"gte=0"`
}

// =============================================================================
// Conversion
// =============================================================================

func (d *document) toDocument() *Document {
	out := &Document{
		Name:      d.Name,
		ParentID:  d.ParentID,
		Selection: d.Selection,
		Nodes:     make([]*scene.Node, 0, len(d.Nodes)),
	}
	for _, n := range d.Nodes {
		out.Nodes = append(out.Nodes, n.toScene())
	}
	return out
}

func (n *node) toScene() *scene.Node {
	out := &scene.Node{
		ID:           n.ID,
		Type:         scene.Type(n.Type),
		Name:         n.Name,
		Box:          scene.Box{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height},
		Opacity:      1,
		CornerRadius: n.CornerRadius,
		CSS:          []scene.Declaration(n.CSS),
		PluginData:   n.PluginData,
	}
	if n.Opacity != nil {
		out.Opacity = *n.Opacity
	}
	for _, p := range n.Fills {
		out.Fills = append(out.Fills, p.toScene())
	}
	if l := n.Layout; l != nil {
		out.Layout = &scene.AutoLayout{
			Mode:             scene.FlowMode(l.Mode),
			PrimaryAxisAlign: scene.Align(l.PrimaryAxisAlign),
			CounterAxisAlign: scene.Align(l.CounterAxisAlign),
			PaddingTop:       l.PaddingTop,
			PaddingRight:     l.PaddingRight,
			PaddingBottom:    l.PaddingBottom,
			PaddingLeft:      l.PaddingLeft,
			ItemSpacing:      l.ItemSpacing,
		}
	}
	if t := n.Text; t != nil {
		out.Text = &scene.TextStyle{
			Characters: t.Characters,
			FontFamily: t.FontFamily,
			FontSize:   t.FontSize,
			FontWeight: t.FontWeight,
			LineHeight: t.LineHeight,
		}
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.toScene())
	}
	return out
}

func (p paint) toScene() scene.Paint {
	out := scene.Paint{
		Type:    scene.PaintType(p.Type),
		Color:   scene.RGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 1},
		Opacity: 1,
		Hidden:  p.Visible != nil && !*p.Visible,
	}
	if p.Color.A != nil {
		out.Color.A = *p.Color.A
	}
	if p.Opacity != nil {
		out.Opacity = *p.Opacity
		if out.Opacity <= 0 {
			out.Hidden = true
		}
	}
	return out
}

func fromDocument(d *Document) *document {
	out := &document{
		Name:      d.Name,
		ParentID:  d.ParentID,
		Selection: d.Selection,
		Nodes:     make([]*node, 0, len(d.Nodes)),
	}
	for _, n := range d.Nodes {
		out.Nodes = append(out.Nodes, fromScene(n))
	}
	return out
}

func fromScene(n *scene.Node) *node {
	out := &node{
		ID:           n.ID,
		Type:         string(n.Type),
		Name:         n.Name,
		X:            n.X,
		Y:            n.Y,
		Width:        n.Width,
		Height:       n.Height,
		CornerRadius: n.CornerRadius,
		CSS:          declarations(n.CSS),
		PluginData:   n.PluginData,
	}
	if n.Opacity > 0 && n.Opacity < 1 {
		o := n.Opacity
		out.Opacity = &o
	}
	for _, p := range n.Fills {
		out.Fills = append(out.Fills, fromPaint(p))
	}
	if l := n.Layout; l != nil {
		out.Layout = &autoLayout{
			Mode:             string(l.Mode),
			PrimaryAxisAlign: string(l.PrimaryAxisAlign),
			CounterAxisAlign: string(l.CounterAxisAlign),
			PaddingTop:       l.PaddingTop,
			PaddingRight:     l.PaddingRight,
			PaddingBottom:    l.PaddingBottom,
			PaddingLeft:      l.PaddingLeft,
			ItemSpacing:      l.ItemSpacing,
		}
	}
	if t := n.Text; t != nil {
		out.Text = &textStyle{
			Characters: t.Characters,
			FontFamily: t.FontFamily,
			FontSize:   t.FontSize,
			FontWeight: t.FontWeight,
			LineHeight: t.LineHeight,
		}
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, fromScene(c))
	}
	return out
}

func fromPaint(p scene.Paint) paint {
	out := paint{
		Type:  string(p.Type),
		Color: color{R: p.Color.R, G: p.Color.G, B: p.Color.B},
	}
	if p.Color.A != 1 {
		a := p.Color.A
		out.Color.A = &a
	}
	if o := p.Alpha(); o != 1 {
		out.Opacity = &o
	}
	if p.Hidden {
		v := false
		out.Visible = &v
	}
	return out
}
