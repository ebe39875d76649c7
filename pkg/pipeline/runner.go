package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/framecode/pkg/build"
	"github.com/matzehuels/framecode/pkg/codegen"
	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/observability"
	"github.com/matzehuels/framecode/pkg/resolve"
	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/styled"
)

// Runner encapsulates pipeline execution.
// The CLI, the host session and the server all use it to avoid duplicating
// stage wiring.
//
// The Runner is stateless except for the resolver and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, provided the resolver is safe for
// concurrent use (the built-in ones are).
type Runner struct {
	// Resolver overrides the resolver named in the options. Hosts that
	// compute styles themselves set it.
	Resolver resolve.Resolver
	Logger   *log.Logger
}

// NewRunner creates a runner.
// If resolver is nil, the resolver is chosen per run from the options.
func NewRunner(resolver resolve.Resolver, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Resolver: resolver,
		Logger:   logger,
	}
}

// Execute runs the complete build → render pipeline on a selection.
func (r *Runner) Execute(ctx context.Context, nodes []*scene.Node, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{BuildID: uuid.NewString()}
	hooks := observability.Pipeline()

	// Stage 1: Build
	buildStart := time.Now()
	hooks.OnBuildStart(ctx, result.BuildID, len(nodes))
	forest, stats, err := r.buildWith(ctx, nodes, opts)
	result.Stats.BuildTime = time.Since(buildStart)
	hooks.OnBuildComplete(ctx, result.BuildID, stats.Nodes, stats.Dropped, result.Stats.BuildTime, err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Forest = forest
	result.Stats.Nodes = stats.Nodes
	result.Stats.Dropped = stats.Dropped

	opts.Logger.Info("built styled tree",
		"build", shortID(result.BuildID),
		"nodes", stats.Nodes,
		"dropped", stats.Dropped,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, result.BuildID, opts.Markup, opts.Stylesheet)
	art, err := r.renderWith(ctx, forest, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	size := 0
	if art != nil {
		size = len(art.Markup) + len(art.Stylesheet)
	}
	hooks.OnRenderComplete(ctx, result.BuildID, size, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Markup = art.Markup
	result.Stylesheet = art.Stylesheet
	result.Stats.Rules = art.Rules

	opts.Logger.Info("rendered outputs",
		"build", shortID(result.BuildID),
		"markup", opts.Markup,
		"stylesheet", opts.Stylesheet,
		"rules", art.Rules,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build runs only the build stage.
func (r *Runner) Build(ctx context.Context, nodes []*scene.Node, opts Options) ([]*styled.Node, build.Stats, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, build.Stats{}, err
	}
	return r.buildWith(ctx, nodes, opts)
}

// Render runs only the render stage.
func (r *Runner) Render(ctx context.Context, forest []*styled.Node, opts Options) (*codegen.Artifacts, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.renderWith(ctx, forest, opts)
}

func (r *Runner) buildWith(ctx context.Context, nodes []*scene.Node, opts Options) ([]*styled.Node, build.Stats, error) {
	forest, stats, err := build.New(r.resolver(opts), opts.Logger).Build(ctx, nodes)
	if err != nil {
		return nil, stats, canceled(ctx, err)
	}
	return forest, stats, nil
}

func (r *Runner) renderWith(ctx context.Context, forest []*styled.Node, opts Options) (*codegen.Artifacts, error) {
	if err := ctx.Err(); err != nil {
		return nil, canceled(ctx, err)
	}
	return codegen.Render(forest, opts.RenderOptions())
}

// resolver returns the runner's resolver or the one named in opts.
func (r *Runner) resolver(opts Options) resolve.Resolver {
	if r.Resolver != nil {
		return r.Resolver
	}
	if res, ok := resolve.ByName(opts.Resolver); ok {
		return res
	}
	return resolve.Host{}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// canceled tags errors caused by a cancelled context.
func canceled(ctx context.Context, err error) error {
	if ctx.Err() != nil && !errors.Is(err, errors.ErrCodeCanceled) {
		return errors.Wrap(errors.ErrCodeCanceled, err, "build canceled")
	}
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
