package pipeline

import (
	"testing"

	"github.com/matzehuels/framecode/pkg/errors"
)

func TestValidateMarkup(t *testing.T) {
	tests := []struct {
		markup  string
		wantErr bool
	}{
		{"jsx", false},
		{"html", false},
		{"vue", true},
		{"JSX", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateMarkup(tt.markup)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMarkup(%q) error = %v, wantErr %v", tt.markup, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidDialect) {
			t.Errorf("ValidateMarkup(%q) code = %v, want %v", tt.markup, errors.GetCode(err), errors.ErrCodeInvalidDialect)
		}
	}
}

func TestValidateStylesheet(t *testing.T) {
	tests := []struct {
		stylesheet string
		wantErr    bool
	}{
		{"less", false},
		{"css", false},
		{"scss", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStylesheet(tt.stylesheet)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStylesheet(%q) error = %v, wantErr %v", tt.stylesheet, err, tt.wantErr)
		}
	}
}

func TestValidateResolver(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"host", false},
		{"geometry", false},
		{"figma", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateResolver(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateResolver(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Empty options should pass: %v", err)
	}

	if opts.Markup != DefaultMarkup {
		t.Errorf("Markup should be %s, got %s", DefaultMarkup, opts.Markup)
	}
	if opts.Stylesheet != DefaultStylesheet {
		t.Errorf("Stylesheet should be %s, got %s", DefaultStylesheet, opts.Stylesheet)
	}
	if opts.Resolver != DefaultResolver {
		t.Errorf("Resolver should be %s, got %s", DefaultResolver, opts.Resolver)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsInvalid(t *testing.T) {
	opts := Options{Markup: "vue"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Invalid markup should fail")
	}

	opts = Options{Stylesheet: "sass"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Invalid stylesheet should fail")
	}

	opts = Options{Resolver: "remote"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Invalid resolver should fail")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Markup: "html"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	originalMarkup := opts.Markup
	originalStylesheet := opts.Stylesheet

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.Markup != originalMarkup {
		t.Error("Markup changed on second call")
	}
	if opts.Stylesheet != originalStylesheet {
		t.Error("Stylesheet changed on second call")
	}
}

func TestOptionsExtensions(t *testing.T) {
	opts := Options{}
	opts.SetDefaults()
	if opts.MarkupExt() != "jsx" || opts.StylesheetExt() != "less" {
		t.Errorf("default extensions = %s/%s, want jsx/less", opts.MarkupExt(), opts.StylesheetExt())
	}

	opts = Options{Markup: "html", Stylesheet: "css", Minify: true}
	ro := opts.RenderOptions()
	if string(ro.Markup) != "html" || string(ro.Stylesheet) != "css" || !ro.Minify {
		t.Errorf("RenderOptions() = %+v", ro)
	}
}
