package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/scene"
)

const loginJSON = `{
  "name": "login",
  "parent_id": "0:1",
  "nodes": [
    {
      "id": "1:1", "type": "FRAME", "width": 320, "height": 200,
      "layout": {"mode": "VERTICAL", "primary_axis_align": "CENTER", "item_spacing": 8},
      "children": [
        {"id": "1:2", "type": "RECTANGLE", "width": 10, "height": 10, "opacity": 0.5,
         "fills": [{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0}},
                   {"type": "SOLID", "color": {"r": 0, "g": 0, "b": 1, "a": 0.5}, "opacity": 0.4, "visible": false}],
         "css": {"width": "10px", "height": 10, "borderRadius": "4px", "background": "var(--, #ff0000)"}},
        {"id": "1:3", "type": "TEXT", "y": 20, "width": 80, "height": 16,
         "text": {"characters": "Sign in", "font_family": "Inter", "font_size": 14, "font_weight": 500},
         "plugin_data": {"builder": {"data": "{}"}}},
        {"id": "1:4", "type": "VECTOR"}
      ]
    }
  ]
}`

const loginYAML = `
name: login
parent_id: "0:1"
nodes:
  - id: "1:1"
    type: FRAME
    width: 320
    height: 200
    layout:
      mode: VERTICAL
      primary_axis_align: CENTER
      item_spacing: 8
    children:
      - id: "1:2"
        type: RECTANGLE
        width: 10
        height: 10
        opacity: 0.5
        fills:
          - type: SOLID
            color: {r: 1, g: 0, b: 0}
          - type: SOLID
            color: {r: 0, g: 0, b: 1, a: 0.5}
            opacity: 0.4
            visible: false
        css:
          width: 10px
          height: 10
          borderRadius: 4px
          background: "var(--, #ff0000)"
      - id: "1:3"
        type: TEXT
        y: 20
        width: 80
        height: 16
        text:
          characters: Sign in
          font_family: Inter
          font_size: 14
          font_weight: 500
        plugin_data:
          builder:
            data: "{}"
      - id: "1:4"
        type: VECTOR
`

func checkLogin(t *testing.T, doc *Document) {
	t.Helper()
	if doc.Name != "login" || doc.ParentID != "0:1" {
		t.Errorf("header = %q/%q", doc.Name, doc.ParentID)
	}
	if len(doc.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(doc.Nodes))
	}
	root := doc.Nodes[0]
	if root.Type != scene.TypeFrame || root.Width != 320 {
		t.Errorf("root = %s %v", root.Type, root.Box)
	}
	if root.FlowMode() != scene.FlowVertical || root.Layout.ItemSpacing != 8 {
		t.Errorf("root layout = %+v", root.Layout)
	}
	if root.Opacity != 1 {
		t.Errorf("missing opacity should default to 1, got %v", root.Opacity)
	}
	if len(root.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(root.Children))
	}

	rect := root.Children[0]
	if rect.Opacity != 0.5 {
		t.Errorf("rect opacity = %v, want 0.5", rect.Opacity)
	}
	if len(rect.Fills) != 2 {
		t.Fatalf("len(Fills) = %d, want 2", len(rect.Fills))
	}
	if f := rect.Fills[0]; f.Color.A != 1 || f.Opacity != 1 || f.Hidden {
		t.Errorf("first fill defaults = %+v", f)
	}
	if f := rect.Fills[1]; f.Color.A != 0.5 || f.Opacity != 0.4 || !f.Hidden {
		t.Errorf("second fill = %+v", f)
	}

	wantCSS := []scene.Declaration{
		{Property: "width", Value: "10px"},
		{Property: "height", Value: "10"},
		{Property: "borderRadius", Value: "4px"},
		{Property: "background", Value: "var(--, #ff0000)"},
	}
	if len(rect.CSS) != len(wantCSS) {
		t.Fatalf("CSS = %v, want %v", rect.CSS, wantCSS)
	}
	for i := range wantCSS {
		if rect.CSS[i] != wantCSS[i] {
			t.Errorf("CSS[%d] = %v, want %v", i, rect.CSS[i], wantCSS[i])
		}
	}

	text := root.Children[1]
	if text.Characters() != "Sign in" || text.Text.FontSize != 14 || text.Text.FontWeight != 500 {
		t.Errorf("text = %+v", text.Text)
	}
	if text.PluginDataValue("builder", "data") != "{}" {
		t.Error("plugin data not decoded")
	}
	if root.Children[2].Kind() != scene.KindUnsupported {
		t.Error("unknown types should decode as unsupported nodes")
	}
}

func TestReadDocumentJSON(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(loginJSON), FormatJSON)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	checkLogin(t, doc)
}

func TestReadDocumentYAML(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(loginYAML), FormatYAML)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	checkLogin(t, doc)
}

func TestReadDocumentInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"nodes": [`, errors.ErrCodeInvalidFormat},
		{"missing id", `{"nodes": [{"type": "FRAME"}]}`, errors.ErrCodeInvalidDocument},
		{"missing type", `{"nodes": [{"id": "1:1"}]}`, errors.ErrCodeInvalidDocument},
		{"negative width", `{"nodes": [{"id": "1:1", "type": "FRAME", "width": -1}]}`, errors.ErrCodeInvalidDocument},
		{"opacity range", `{"nodes": [{"id": "1:1", "type": "FRAME", "opacity": 2}]}`, errors.ErrCodeInvalidDocument},
		{"color range", `{"nodes": [{"id": "1:1", "type": "RECTANGLE", "fills": [{"type": "SOLID", "color": {"r": 2, "g": 0, "b": 0}}]}]}`, errors.ErrCodeInvalidDocument},
		{"flow mode", `{"nodes": [{"id": "1:1", "type": "FRAME", "layout": {"mode": "GRID"}}]}`, errors.ErrCodeInvalidDocument},
		{"duplicate id", `{"nodes": [{"id": "1:1", "type": "FRAME", "children": [{"id": "1:1", "type": "TEXT"}]}]}`, errors.ErrCodeInvalidDocument},
		{"control char id", `{"nodes": [{"id": "1:\u0001", "type": "FRAME"}]}`, errors.ErrCodeInvalidDocument},
		{"css object value", `{"nodes": [{"id": "1:1", "type": "FRAME", "css": {"width": {"px": 1}}}]}`, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.input), FormatJSON)
			if err == nil {
				t.Fatal("ReadDocument() error = nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadDocumentValidationMessage(t *testing.T) {
	_, err := ReadDocument(strings.NewReader(`{"nodes": [{"id": "1:1", "type": "FRAME", "width": -5}]}`), FormatJSON)
	if err == nil {
		t.Fatal("expected error")
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "Nodes[0].Width must be at least 0") {
		t.Errorf("UserMessage() = %q", msg)
	}
}

func TestReadDocumentZeroPaintOpacity(t *testing.T) {
	input := `{"nodes": [{"id": "1:1", "type": "RECTANGLE", "fills": [{"type": "SOLID", "color": {"r": 1, "g": 0, "b": 0, "a": 0.5}, "opacity": 0}]}]}`
	doc, err := ReadDocument(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	f := doc.Nodes[0].Fills[0]
	if !f.Hidden {
		t.Errorf("fill with opacity 0 should be hidden, got %+v", f)
	}
	if _, ok := doc.Nodes[0].FirstVisibleSolid(); ok {
		t.Error("FirstVisibleSolid() found a transparent fill")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"dir/a.YAML", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.txt", "", true},
		{"a", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestImportDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "login.yaml")
	if err := os.WriteFile(path, []byte(loginYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ImportDocument(path)
	if err != nil {
		t.Fatalf("ImportDocument() error: %v", err)
	}
	checkLogin(t, doc)

	_, err = ImportDocument(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestSelect(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(loginJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	nodes, parent, err := doc.Select()
	if err != nil || len(nodes) != 1 || parent != "0:1" {
		t.Errorf("Select() without selection = %d nodes, parent %q, %v", len(nodes), parent, err)
	}

	doc.Selection = []string{"1:3", "1:2"}
	nodes, parent, err = doc.Select()
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 || nodes[0].ID != "1:3" || nodes[1].ID != "1:2" {
		t.Errorf("Select() order = %v", nodes)
	}
	if parent != "1:1" {
		t.Errorf("parent = %q, want 1:1", parent)
	}

	doc.Selection = []string{"9:9"}
	if _, _, err := doc.Select(); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown selection error = %v", err)
	}
}
