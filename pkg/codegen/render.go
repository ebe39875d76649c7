package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"golang.org/x/net/html"

	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/style"
	"github.com/matzehuels/framecode/pkg/styled"
)

// Markup is a markup dialect.
type Markup string

// Stylesheet is a stylesheet dialect.
type Stylesheet string

const (
	MarkupJSX  Markup = "jsx"
	MarkupHTML Markup = "html"

	StylesheetLess Stylesheet = "less"
	StylesheetCSS  Stylesheet = "css"
)

// Markups and Stylesheets list the supported dialects.
var (
	Markups     = []string{string(MarkupJSX), string(MarkupHTML)}
	Stylesheets = []string{string(StylesheetLess), string(StylesheetCSS)}
)

// Ext returns the file extension of the dialect, without the dot.
func (m Markup) Ext() string { return string(m) }

// Ext returns the file extension of the dialect, without the dot.
func (s Stylesheet) Ext() string { return string(s) }

// Options selects the output dialects. Empty fields mean jsx and less.
type Options struct {
	Markup     Markup
	Stylesheet Stylesheet
	// Minify compacts html markup and css stylesheets. It has no effect on
	// jsx or less output.
	Minify bool
}

func (o Options) withDefaults() Options {
	if o.Markup == "" {
		o.Markup = MarkupJSX
	}
	if o.Stylesheet == "" {
		o.Stylesheet = StylesheetLess
	}
	return o
}

// Validate checks that both dialects are supported.
func (o Options) Validate() error {
	o = o.withDefaults()
	if err := errors.ValidateOneOf(errors.ErrCodeInvalidDialect, "markup dialect", string(o.Markup), Markups...); err != nil {
		return err
	}
	return errors.ValidateOneOf(errors.ErrCodeInvalidDialect, "stylesheet dialect", string(o.Stylesheet), Stylesheets...)
}

// Artifacts is the rendered output of a forest.
type Artifacts struct {
	Markup     string
	Stylesheet string
	Rules      int
}

// Render serializes the forest in the requested dialects. An empty forest
// renders to two empty strings.
func Render(forest []*styled.Node, opts Options) (*Artifacts, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	var markup, sheet string
	var err error

	switch opts.Markup {
	case MarkupJSX:
		markup = renderJSX(forest)
	case MarkupHTML:
		if markup, err = renderHTML(Generate(forest)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render html")
		}
		if opts.Minify {
			if markup, err = minifyString(mimeHTML, markup); err != nil {
				return nil, errors.Wrap(errors.ErrCodeRender, err, "minify html")
			}
		}
	}

	switch opts.Stylesheet {
	case StylesheetLess:
		sheet = renderLess(forest)
	case StylesheetCSS:
		sheet = renderCSS(Generate(forest).Flatten())
	}
	sheet = style.Normalize(sheet)
	if opts.Minify && opts.Stylesheet == StylesheetCSS {
		if sheet, err = minifyString(mimeCSS, sheet); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "minify css")
		}
	}

	return &Artifacts{Markup: markup, Stylesheet: sheet, Rules: styled.Count(forest)}, nil
}

// =============================================================================
// Markup
// =============================================================================

var jsxEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
)

func renderJSX(forest []*styled.Node) string {
	var b strings.Builder
	_ = Walk(forest, func(ev Event) error {
		switch ev.Kind {
		case EventOpen:
			fmt.Fprintf(&b, "<%s className={styles.%s}>", ev.Node.Tag, ev.Node.ClassID)
		case EventText:
			for i, line := range ev.Lines {
				if i > 0 {
					b.WriteString("<br/>")
				}
				b.WriteString(jsxEscaper.Replace(line))
			}
		case EventClose:
			fmt.Fprintf(&b, "</%s>", ev.Node.Tag)
		}
		return nil
	})
	return b.String()
}

func renderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	for _, n := range doc.Markup {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// =============================================================================
// Stylesheets
// =============================================================================

// renderLess nests each child rule inside its parent's block:
//
//	.frame1{
//	      width: 10px;height: 10px;
//	    .text2{
//	      ...
//	    }}
func renderLess(forest []*styled.Node) string {
	var b strings.Builder
	_ = Walk(forest, func(ev Event) error {
		switch ev.Kind {
		case EventOpen:
			fmt.Fprintf(&b, "%s{\n      %s\n    ", ev.Rule.Prelude, declarations(ev.Rule))
		case EventClose:
			b.WriteString("}")
		}
		return nil
	})
	return b.String()
}

func renderCSS(rules []*css.Rule) string {
	var b strings.Builder
	for i, r := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s {\n", r.Prelude)
		for _, d := range r.Declarations {
			fmt.Fprintf(&b, "  %s\n", style.Declaration(d.Property, d.Value))
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func declarations(r *css.Rule) string {
	var b strings.Builder
	for _, d := range r.Declarations {
		b.WriteString(style.Declaration(d.Property, d.Value))
	}
	return b.String()
}
