// Package resolve provides the style resolution collaborator: the component
// that yields the base style map of a scene node before layout, color and
// font properties are added by the tree builder.
//
// In a design-tool host this is the tool's own per-node style computation.
// framecode ships two stand-ins:
//
//   - [Host] uses the declarations the host exported with the document and
//     falls back to another resolver for nodes that carry none.
//   - [Geometry] computes a minimal map from the node's own fields.
//
// Resolvers are called once per visited node, sequentially, in traversal
// order. A resolver error aborts the build.
package resolve

import (
	"context"

	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
)

// Resolver yields the base style of a node. Implementations must return a
// map the caller may mutate.
type Resolver interface {
	Resolve(ctx context.Context, n *scene.Node) (*style.Map, error)
}

// Func adapts a function to the Resolver interface.
type Func func(ctx context.Context, n *scene.Node) (*style.Map, error)

// Resolve calls f.
func (f Func) Resolve(ctx context.Context, n *scene.Node) (*style.Map, error) {
	return f(ctx, n)
}

// Names of the built-in resolvers, as accepted by [ByName].
const (
	NameHost     = "host"
	NameGeometry = "geometry"
)

// ByName returns a built-in resolver. ok is false for unknown names.
func ByName(name string) (r Resolver, ok bool) {
	switch name {
	case NameHost, "":
		return Host{}, true
	case NameGeometry:
		return Geometry{}, true
	}
	return nil, false
}

// =============================================================================
// Host
// =============================================================================

// Host resolves nodes from their exported host declarations. Nodes without
// declarations are passed to Fallback (Geometry when nil).
type Host struct {
	Fallback Resolver
}

// Resolve implements Resolver.
func (h Host) Resolve(ctx context.Context, n *scene.Node) (*style.Map, error) {
	if len(n.CSS) > 0 {
		return style.FromDeclarations(n.CSS), nil
	}
	fb := h.Fallback
	if fb == nil {
		fb = Geometry{}
	}
	return fb.Resolve(ctx, n)
}

// =============================================================================
// Geometry
// =============================================================================

// Geometry computes a base style from the node's size, opacity, corner
// radius and, for non-text nodes, its first visible solid fill.
type Geometry struct{}

// Resolve implements Resolver.
func (Geometry) Resolve(ctx context.Context, n *scene.Node) (*style.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := style.New()
	m.SetPx("width", n.Width)
	m.SetPx("height", n.Height)
	if n.Kind() != scene.KindText {
		if p, ok := n.FirstVisibleSolid(); ok {
			if c := style.FillColor(p); c != "" {
				m.Set("background", c)
			}
		}
	}
	if n.CornerRadius > 0 {
		m.SetPx("border-radius", n.CornerRadius)
	}
	if n.Opacity > 0 && n.Opacity < 1 {
		m.Set("opacity", style.Number(n.Opacity))
	}
	return m, nil
}
