package scene

import "strings"

// PaintType is the host paint type.
type PaintType string

// Paint types. Gradients come in several flavors that share the prefix
// "GRADIENT_"; see [Paint.IsGradient].
const (
	PaintSolid          PaintType = "SOLID"
	PaintGradientLinear PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial PaintType = "GRADIENT_RADIAL"
	PaintImage          PaintType = "IMAGE"
)

// RGBA is a color with channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Paint is one fill layer of a node.
type Paint struct {
	Type  PaintType
	Color RGBA
	// Opacity of the paint layer. As with Node.Opacity, values outside
	// (0, 1) mean fully opaque, so the zero value is an opaque paint.
	// A transparent layer is expressed with Hidden.
	Opacity float64
	Hidden  bool
}

// Solid returns a visible solid paint with full paint opacity.
func Solid(r, g, b, a float64) Paint {
	return Paint{Type: PaintSolid, Color: RGBA{R: r, G: g, B: b, A: a}, Opacity: 1}
}

// Alpha returns the paint opacity with the out-of-range convention applied.
func (p Paint) Alpha() float64 {
	if p.Opacity > 0 && p.Opacity < 1 {
		return p.Opacity
	}
	return 1
}

// IsSolid reports whether p is a solid color paint.
func (p Paint) IsSolid() bool { return p.Type == PaintSolid }

// IsGradient reports whether p is any gradient paint.
func (p Paint) IsGradient() bool { return strings.HasPrefix(string(p.Type), "GRADIENT") }

// FirstFill returns the first fill of n and whether it has one.
func (n *Node) FirstFill() (Paint, bool) {
	if len(n.Fills) == 0 {
		return Paint{}, false
	}
	return n.Fills[0], true
}

// FirstVisibleSolid returns the first visible solid fill of n.
func (n *Node) FirstVisibleSolid() (Paint, bool) {
	for _, p := range n.Fills {
		if p.IsSolid() && !p.Hidden {
			return p, true
		}
	}
	return Paint{}, false
}
