package layout

import (
	"reflect"
	"testing"

	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
)

func TestDeclared(t *testing.T) {
	n := &scene.Node{
		Type: scene.TypeFrame,
		Layout: &scene.AutoLayout{
			Mode:             scene.FlowHorizontal,
			PrimaryAxisAlign: scene.AlignSpaceBetween,
			CounterAxisAlign: scene.AlignCenter,
			PaddingTop:       8,
			PaddingLeft:      16,
			ItemSpacing:      4,
		},
	}
	m := style.New()
	m.Set("width", "100px")

	Declared(n, m)

	wantKeys := []string{"width", "display", "flex-direction", "justify-content", "align-items", "gap", "padding-top", "padding-left"}
	if got := m.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}
	if m.Value("justify-content") != "space-between" || m.Value("align-items") != "center" {
		t.Errorf("alignment = %q/%q", m.Value("justify-content"), m.Value("align-items"))
	}
}

func TestDeclaredUnmappedAlignment(t *testing.T) {
	n := &scene.Node{
		Type: scene.TypeFrame,
		Layout: &scene.AutoLayout{
			Mode:             scene.FlowVertical,
			PrimaryAxisAlign: scene.AlignBaseline, // no justify-content keyword
			CounterAxisAlign: scene.AlignSpaceBetween,
		},
	}
	m := style.New()

	Declared(n, m)

	if m.Value("flex-direction") != "column" {
		t.Errorf("flex-direction = %q", m.Value("flex-direction"))
	}
	if m.Has("justify-content") || m.Has("align-items") {
		t.Errorf("unmapped alignments should be omitted: %v", m.Keys())
	}
}

func TestDeclaredNoFlow(t *testing.T) {
	m := style.New()
	Declared(&scene.Node{Type: scene.TypeFrame}, m)
	if m.Len() != 0 {
		t.Errorf("no flow should leave the map empty: %v", m.Keys())
	}
}
