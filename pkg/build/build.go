// Package build turns a scene selection into a styled forest.
//
// The builder walks the selection depth-first. Every supported node is
// resolved to its base style first; containers then build all of their
// children before their own layout is decided, because inference needs the
// children's final positions. Unsupported nodes are dropped without error.
//
// Class identifiers are derived from the node type and the numeric part of
// the node id ("FRAME" + "12:34" -> "frame34"), so rebuilding an unchanged
// document yields the same identifiers. When two nodes of one build map to
// the same identifier, later ones get the lowest free "_2", "_3", ... suffix
// in traversal order.
package build

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	ferrors "github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/layout"
	"github.com/matzehuels/framecode/pkg/resolve"
	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
	"github.com/matzehuels/framecode/pkg/styled"
)

// PluginNamespace and PluginKey locate the custom metadata read for text
// nodes.
const (
	PluginNamespace = "builder"
	PluginKey       = "data"
)

// Builder builds styled forests. A Builder holds no per-build state and may
// be shared between goroutines if its Resolver may.
type Builder struct {
	Resolver resolve.Resolver
	Logger   *log.Logger
}

// Stats counts what a build produced.
type Stats struct {
	Nodes   int // styled nodes created
	Dropped int // unsupported scene nodes skipped, subtrees included
}

// New creates a builder. A nil resolver means [resolve.Host]; a nil logger
// discards output.
func New(r resolve.Resolver, logger *log.Logger) *Builder {
	if r == nil {
		r = resolve.Host{}
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Builder{Resolver: r, Logger: logger}
}

// Build creates one styled tree per supported top-level node, preserving
// order. A resolver failure or a cancelled ctx aborts the whole build.
func (b *Builder) Build(ctx context.Context, nodes []*scene.Node) ([]*styled.Node, Stats, error) {
	run := &run{Builder: b, classes: make(map[string]int), used: make(map[string]bool)}
	forest, err := run.nodes(ctx, nodes)
	if err != nil {
		return nil, run.stats, err
	}
	return forest, run.stats, nil
}

// ClassID returns the undisambiguated class identifier of n. Characters
// outside [A-Za-z0-9_-] are replaced with "_" so the result is usable both
// as a CSS class selector and inside a JSX attribute.
func ClassID(n *scene.Node) string {
	return strings.Map(classRune, strings.ToLower(string(n.Type))+scene.NumericSuffix(n.ID))
}

func classRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		return r
	}
	return '_'
}

// run carries the state of a single build.
type run struct {
	*Builder
	classes map[string]int  // last suffix handed out per base id
	used    map[string]bool // every class id of this build
	stats   Stats
}

func (r *run) nodes(ctx context.Context, nodes []*scene.Node) ([]*styled.Node, error) {
	out := make([]*styled.Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		kind := scene.Classify(n)
		if kind == scene.KindUnsupported {
			r.stats.Dropped += countTree(n)
			r.Logger.Debug("skipping unsupported node", "id", n.ID, "type", n.Type)
			continue
		}
		sn, err := r.node(ctx, n, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, sn)
	}
	return out, nil
}

func (r *run) node(ctx context.Context, n *scene.Node, kind scene.Kind) (*styled.Node, error) {
	base, err := r.Resolver.Resolve(ctx, n)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, ferrors.Wrap(ferrors.ErrCodeStyleResolution, ferrors.AtNode(n.ID, err), "resolve base style")
	}
	if base == nil {
		base = style.New()
	}

	sn := &styled.Node{
		Source:  n,
		Kind:    kind,
		Tag:     styled.TagFor(kind),
		ClassID: r.classID(n),
		Style:   base,
	}
	r.stats.Nodes++

	switch kind {
	case scene.KindRectangle:
		sn.Style.SetDefault("box-sizing", "border-box")
		sn.Style.SetDefault("flex-shrink", "0")

	case scene.KindText:
		sn.Text = n.Characters()
		applyText(n, sn.Style)
		if data := n.PluginDataValue(PluginNamespace, PluginKey); data != "" {
			r.Logger.Debug("text plugin data", "id", n.ID, "bytes", len(data))
		}

	case scene.KindContainer:
		children, err := r.nodes(ctx, n.Children)
		if err != nil {
			return nil, err
		}
		sn.Children = children
		if n.FlowMode() != scene.FlowNone {
			layout.Declared(n, sn.Style)
		} else {
			res := layout.Infer(sn)
			r.Logger.Debug("inferred layout",
				"id", n.ID,
				"direction", res.Direction,
				"members", len(res.Members),
				"absolute", len(res.Absolute))
		}
	}
	return sn, nil
}

// applyText adds the font properties of a text node.
func applyText(n *scene.Node, m *style.Map) {
	if p, ok := n.FirstFill(); ok {
		if c := style.FillColor(p); c != "" {
			m.Set("color", c)
		}
	}
	t := n.Text
	if t == nil {
		t = &scene.TextStyle{}
	}
	if t.FontFamily != "" {
		m.Set("font-family", t.FontFamily)
	}
	if t.FontSize > 0 {
		m.SetPx("font-size", t.FontSize)
	}
	m.Set("font-style", "normal")
	if t.FontWeight > 0 {
		m.Set("font-weight", style.Number(t.FontWeight))
	}
	if t.LineHeight > 0 {
		m.SetPx("line-height", t.LineHeight)
	} else {
		m.Set("line-height", "normal")
	}
}

// classID returns ClassID(n), suffixed with the next free "_<n>" when the
// plain id is already taken in this build.
func (r *run) classID(n *scene.Node) string {
	base := ClassID(n)
	id := base
	if r.used[id] {
		k := max(r.classes[base], 1)
		for r.used[id] {
			k++
			id = fmt.Sprintf("%s_%d", base, k)
		}
		r.classes[base] = k
	}
	r.used[id] = true
	return id
}

func countTree(n *scene.Node) int {
	total := 0
	scene.Walk([]*scene.Node{n}, func(*scene.Node, *scene.Node) bool {
		total++
		return true
	})
	return total
}
