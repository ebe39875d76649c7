package treeviz

import (
	"strings"
	"testing"

	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
	"github.com/matzehuels/framecode/pkg/styled"
)

func testForest() []*styled.Node {
	card := style.New()
	card.Set("display", "flex")
	card.Set("flex-direction", "column")
	card.SetPx("gap", 8)

	badge := style.New()
	badge.Set("position", "absolute")
	badge.SetPx("left", 4)
	badge.SetPx("top", 6)

	title := &styled.Node{
		Source:  &scene.Node{ID: "1:3", Type: scene.TypeText},
		Kind:    scene.KindText,
		Tag:     styled.TagText,
		ClassID: "text3",
		Style:   style.New(),
		Text:    "Hello",
	}
	dot := &styled.Node{
		Source:  &scene.Node{ID: "1:4", Type: scene.TypeRectangle},
		Kind:    scene.KindRectangle,
		Tag:     styled.TagBox,
		ClassID: "rectangle4",
		Style:   badge,
	}
	return []*styled.Node{{
		Source:   &scene.Node{ID: "1:2", Type: scene.TypeFrame},
		Kind:     scene.KindContainer,
		Tag:      styled.TagBox,
		ClassID:  "frame2",
		Style:    card,
		Children: []*styled.Node{title, dot},
	}}
}

func TestPrint(t *testing.T) {
	out := Print(testForest(), Options{})

	for _, want := range []string{
		"selection (3 nodes)",
		"[div]  .frame2 (1:2) [column gap 8px]",
		`[span]  .text3 (1:3) "Hello"`,
		"[div]  .rectangle4 (1:4) [absolute@4px,6px]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Print() missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "display: flex") {
		t.Error("styles should only be listed with Options.Styles")
	}
}

func TestPrintStyles(t *testing.T) {
	out := Print(testForest(), Options{Styles: true})
	if !strings.Contains(out, "display: flex") {
		t.Errorf("Print(Styles) missing declarations\n%s", out)
	}
}

func TestPrintEmpty(t *testing.T) {
	out := Print(nil, Options{})
	if !strings.HasPrefix(out, "selection (0 nodes)") {
		t.Errorf("Print(nil) = %q", out)
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testForest(), Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("ToDOT() should start with digraph header, got %q", dot[:20])
	}
	for _, want := range []string{
		`"frame2" [label=".frame2\n[column gap 8px]"]`,
		`"text3" [label=".text3", shape=note]`,
		`"frame2" -> "text3";`,
		`"frame2" -> "rectangle4" [style=dashed];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.HasSuffix(out, "<g/></svg>") {
		t.Errorf("normalizeViewBox() should keep the body, got %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
