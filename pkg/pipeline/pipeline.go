// Package pipeline provides the conversion pipeline for framecode.
//
// This package implements the complete build → render pipeline that is used
// by the CLI, the selection host and the HTTP server. By centralizing this
// logic, every entry point applies the same defaults and produces the same
// output for the same document.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Resolve base styles and construct the styled forest, inferring
//     flow layouts for containers that declare none
//  2. Render: Serialize the forest into markup and a stylesheet
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, nodes, pipeline.Options{
//	    Markup:     "jsx",
//	    Stylesheet: "less",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markup)
//
// The pipeline is deterministic: the same nodes and options always produce
// byte-identical markup and stylesheets.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framecode/pkg/codegen"
	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/resolve"
	"github.com/matzehuels/framecode/pkg/styled"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Host, and Server
// =============================================================================

const (
	// DefaultMarkup is the default markup dialect.
	DefaultMarkup = string(codegen.MarkupJSX)

	// DefaultStylesheet is the default stylesheet dialect.
	DefaultStylesheet = string(codegen.StylesheetLess)

	// DefaultResolver is the default style resolver. It uses the
	// declarations exported with the document and computes a minimal style
	// for nodes without any.
	DefaultResolver = resolve.NameHost
)

// ValidResolvers is the set of built-in style resolvers.
var ValidResolvers = []string{resolve.NameHost, resolve.NameGeometry}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the conversion pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Build options
	Resolver string `json:"resolver,omitempty"`

	// Render options
	Markup     string `json:"markup,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
	Minify     bool   `json:"minify,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// BuildID identifies this run in logs, hooks and host messages.
	BuildID string

	// Forest is the styled forest the artifacts were rendered from.
	Forest []*styled.Node

	// Markup and Stylesheet are the rendered artifacts.
	Markup     string
	Stylesheet string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Nodes      int
	Dropped    int
	Rules      int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateMarkup checks that a markup dialect is valid.
func ValidateMarkup(markup string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidDialect, "markup dialect", markup, codegen.Markups...)
}

// ValidateStylesheet checks that a stylesheet dialect is valid.
func ValidateStylesheet(stylesheet string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidDialect, "stylesheet dialect", stylesheet, codegen.Stylesheets...)
}

// ValidateResolver checks that a resolver name is valid.
func ValidateResolver(name string) error {
	return errors.ValidateOneOf(errors.ErrCodeInvalidInput, "resolver", name, ValidResolvers...)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateResolver(o.Resolver); err != nil {
		return err
	}
	if err := ValidateMarkup(o.Markup); err != nil {
		return err
	}
	if err := ValidateStylesheet(o.Stylesheet); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills every empty option with its default.
func (o *Options) SetDefaults() {
	if o.Resolver == "" {
		o.Resolver = DefaultResolver
	}
	if o.Markup == "" {
		o.Markup = DefaultMarkup
	}
	if o.Stylesheet == "" {
		o.Stylesheet = DefaultStylesheet
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// RenderOptions returns the code generator options.
func (o *Options) RenderOptions() codegen.Options {
	return codegen.Options{
		Markup:     codegen.Markup(o.Markup),
		Stylesheet: codegen.Stylesheet(o.Stylesheet),
		Minify:     o.Minify,
	}
}

// MarkupExt returns the file extension of the markup artifact.
func (o *Options) MarkupExt() string {
	return o.RenderOptions().Markup.Ext()
}

// StylesheetExt returns the file extension of the stylesheet artifact.
func (o *Options) StylesheetExt() string {
	return o.RenderOptions().Stylesheet.Ext()
}
