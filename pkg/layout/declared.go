package layout

import (
	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
)

var justifyContent = map[scene.Align]string{
	scene.AlignMin:          "flex-start",
	scene.AlignCenter:       "center",
	scene.AlignMax:          "flex-end",
	scene.AlignSpaceBetween: "space-between",
}

var alignItems = map[scene.Align]string{
	scene.AlignMin:      "flex-start",
	scene.AlignCenter:   "center",
	scene.AlignMax:      "flex-end",
	scene.AlignBaseline: "baseline",
}

// JustifyContent maps a primary-axis alignment to its flex keyword.
func JustifyContent(a scene.Align) (string, bool) {
	v, ok := justifyContent[a]
	return v, ok
}

// AlignItems maps a counter-axis alignment to its flex keyword.
func AlignItems(a scene.Align) (string, bool) {
	v, ok := alignItems[a]
	return v, ok
}

// Declared writes the flex properties of a container with a declared flow.
// It does nothing for nodes without one.
func Declared(n *scene.Node, m *style.Map) {
	mode := n.FlowMode()
	if mode == scene.FlowNone {
		return
	}
	l := n.Layout

	m.Set("display", "flex")
	if mode == scene.FlowHorizontal {
		m.Set("flex-direction", "row")
	} else {
		m.Set("flex-direction", "column")
	}
	if v, ok := JustifyContent(l.PrimaryAxisAlign); ok {
		m.Set("justify-content", v)
	}
	if v, ok := AlignItems(l.CounterAxisAlign); ok {
		m.Set("align-items", v)
	}
	if l.ItemSpacing > 0 {
		m.SetPx("gap", l.ItemSpacing)
	}

	paddings := []struct {
		name string
		v    float64
	}{
		{"padding-top", l.PaddingTop},
		{"padding-right", l.PaddingRight},
		{"padding-bottom", l.PaddingBottom},
		{"padding-left", l.PaddingLeft},
	}
	for _, p := range paddings {
		if p.v > 0 {
			m.SetPx(p.name, p.v)
		}
	}
}
