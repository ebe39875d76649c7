package style

import (
	"reflect"
	"testing"

	"github.com/matzehuels/framecode/pkg/scene"
)

func TestMapOrder(t *testing.T) {
	m := New()
	m.Set("width", "10px")
	m.Set("marginTop", "4px")
	m.Set("height", "20px")
	m.Set("width", "12px") // update in place

	want := []string{"width", "margin-top", "height"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v := m.Value("width"); v != "12px" {
		t.Errorf("width = %q, want 12px", v)
	}
	if !m.Has("margin-top") || !m.Has("marginTop") {
		t.Error("camel and dash names should address the same entry")
	}
}

func TestMapDeleteAndClone(t *testing.T) {
	m := New()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	c := m.Clone()
	m.Delete("b")
	m.Delete("missing")

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("after delete Keys() = %v", got)
	}
	if c.Len() != 3 || c.Value("b") != "2" {
		t.Error("clone should be unaffected by Delete on the original")
	}
}

func TestSetDefault(t *testing.T) {
	m := New()
	m.Set("position", "absolute")
	m.SetDefault("position", "relative")
	m.SetDefault("display", "flex")
	if m.Value("position") != "absolute" {
		t.Errorf("SetDefault overwrote position: %q", m.Value("position"))
	}
	if m.Value("display") != "flex" {
		t.Errorf("SetDefault did not set display: %q", m.Value("display"))
	}
}

func TestFromDeclarations(t *testing.T) {
	m := FromDeclarations([]scene.Declaration{
		{Property: "width", Value: "100px"},
		{Property: "border-radius", Value: "8px"},
		{Property: "width", Value: "120px"},
	})
	if got := m.String(); got != "width: 120px;border-radius: 8px;" {
		t.Errorf("String() = %q", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{12.5, "12.5"},
		{-4, "-4"},
		{1.0 / 3.0, "0.3333333333333333"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if Px(10) != "10px" {
		t.Errorf("Px(10) = %q", Px(10))
	}
}

func TestDashCase(t *testing.T) {
	tests := map[string]string{
		"paddingLeft":   "padding-left",
		"marginTop":     "margin-top",
		"flexDirection": "flex-direction",
		"padding-left":  "padding-left",
		"width":         "width",
	}
	for in, want := range tests {
		if got := DashCase(in); got != want {
			t.Errorf("DashCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"var fallback", "background: var(--, #FFF);", "background: #FFF;"},
		{"var fallback spaces", "color: var(--,   rgba(0, 0, 0, 0.5));", "color: rgba(0, 0, 0, 0.5);"},
		{"named var untouched", "color: var(--brand, #000);", "color: var(--brand, #000);"},
		{"camel property", "marginTop: 10px;", "margin-top: 10px;"},
		{"already dashed", "margin-top: 10px;", "margin-top: 10px;"},
		{"selector untouched", ".frame12{flexDirection: column;}", ".frame12{flex-direction: column;}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestFillColor(t *testing.T) {
	tests := []struct {
		name  string
		paint scene.Paint
		want  string
	}{
		{"opaque red", scene.Solid(1, 0, 0, 1), "#ff0000"},
		{"low channels padded", scene.Solid(0, 10.0/255, 1, 1), "#000aff"},
		{"half alpha", scene.Solid(1, 0, 0, 0.5), "rgba(255, 0, 0, 0.5)"},
		{"alpha times paint opacity", scene.Paint{Type: scene.PaintSolid, Color: scene.RGBA{A: 0.5}, Opacity: 0.5}, "rgba(0, 0, 0, 0.25)"},
		{"unset paint opacity is opaque", scene.Paint{Type: scene.PaintSolid, Color: scene.RGBA{A: 0.5}}, "rgba(0, 0, 0, 0.5)"},
		{"paint opacity above range", scene.Paint{Type: scene.PaintSolid, Color: scene.RGBA{R: 1, A: 0.5}, Opacity: 3}, "rgba(255, 0, 0, 0.5)"},
		{"gradient", scene.Paint{Type: scene.PaintGradientLinear, Opacity: 1}, ""},
		{"image", scene.Paint{Type: scene.PaintImage, Opacity: 1}, ""},
		{"hidden", scene.Paint{Type: scene.PaintSolid, Color: scene.RGBA{A: 1}, Opacity: 1, Hidden: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillColor(tt.paint); got != tt.want {
				t.Errorf("FillColor() = %q, want %q", got, tt.want)
			}
		})
	}
}
