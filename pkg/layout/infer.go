package layout

import (
	"slices"

	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/styled"
)

// Direction is the inferred flow direction.
type Direction int

const (
	// DirectionNone means no group was found; the container is an absolute
	// canvas.
	DirectionNone Direction = iota
	DirectionColumn
	DirectionRow
)

// String returns the flex-direction keyword, or "none".
func (d Direction) String() string {
	switch d {
	case DirectionColumn:
		return "column"
	case DirectionRow:
		return "row"
	default:
		return "none"
	}
}

// Result describes what Infer decided for one container.
type Result struct {
	Direction Direction
	// Members is the flow group ordered by trailing edge.
	Members []*styled.Node
	// Absolute lists the children that were taken out of flow.
	Absolute []*styled.Node
}

// cluster is a candidate flow group.
type cluster struct {
	dir     Direction
	members []*styled.Node
}

// Infer derives a flow layout for parent from its children's source
// coordinates and writes the resulting properties into the children's and
// the parent's style maps.
func Infer(parent *styled.Node) Result {
	var candidates []*styled.Node
	for _, c := range parent.Children {
		if !c.IsAbsolute() {
			candidates = append(candidates, c)
		}
	}

	best := bestCluster(candidates)

	var res Result
	inFlow := make(map[*styled.Node]bool)
	if best != nil {
		res.Direction = best.dir
		res.Members = applyFlow(parent, best)
		for _, m := range best.members {
			inFlow[m] = true
		}
	}

	for _, c := range candidates {
		if inFlow[c] || c.Box().IsOrigin() {
			continue
		}
		c.Style.Set("position", "absolute")
		c.Style.SetPx("left", c.Box().X)
		c.Style.SetPx("top", c.Box().Y)
		res.Absolute = append(res.Absolute, c)
	}
	if len(res.Absolute) > 0 {
		parent.Style.SetDefault("position", "relative")
	}
	return res
}

// bestCluster scans the candidates in order, x-group before y-group, and
// keeps the first strictly largest group of at least two members.
func bestCluster(candidates []*styled.Node) *cluster {
	var best *cluster
	consider := func(dir Direction, members []*styled.Node) {
		if len(members) < 2 {
			return
		}
		if best == nil || len(members) > len(best.members) {
			best = &cluster{dir: dir, members: members}
		}
	}

	for _, pivot := range candidates {
		px, py := pivot.Box().X, pivot.Box().Y
		var sameX, sameY []*styled.Node
		for _, c := range candidates {
			if c.Box().X == px {
				sameX = append(sameX, c)
			}
			if c.Box().Y == py {
				sameY = append(sameY, c)
			}
		}
		consider(DirectionColumn, sameX)
		consider(DirectionRow, sameY)
	}
	return best
}

// applyFlow writes the flex container properties and the member gaps. It
// returns the members sorted by trailing edge.
func applyFlow(parent *styled.Node, c *cluster) []*styled.Node {
	parent.Style.Set("display", "flex")
	parent.Style.Set("flex-direction", c.dir.String())

	leading := func(b scene.Box) float64 { return b.X }
	trailing := func(b scene.Box) float64 { return b.Right() }
	if c.dir == DirectionColumn {
		leading = func(b scene.Box) float64 { return b.Y }
		trailing = func(b scene.Box) float64 { return b.Bottom() }
		for _, child := range parent.Children {
			if child.Kind == scene.KindText {
				child.Style.Set("text-align", "left")
			}
		}
	}

	sorted := slices.Clone(c.members)
	slices.SortStableFunc(sorted, func(a, b *styled.Node) int {
		ta, tb := trailing(a.Box()), trailing(b.Box())
		switch {
		case ta < tb:
			return -1
		case ta > tb:
			return 1
		}
		return 0
	})

	// The gap is written as margin-top on both axes.
	for i := 1; i < len(sorted); i++ {
		gap := leading(sorted[i].Box()) - trailing(sorted[i-1].Box())
		sorted[i].Style.SetPx("margin-top", gap)
	}

	minX, minY := sorted[0].Box().X, sorted[0].Box().Y
	for _, m := range sorted[1:] {
		minX = min(minX, m.Box().X)
		minY = min(minY, m.Box().Y)
	}
	parent.Style.SetPx("padding-left", minX)
	parent.Style.SetPx("padding-top", minY)
	return sorted
}
