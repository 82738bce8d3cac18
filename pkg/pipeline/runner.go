package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/hierarchy"
	tfio "github.com/matzehuels/treeflow/pkg/io"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/observability"
	"github.com/matzehuels/treeflow/pkg/scene"
	"github.com/matzehuels/treeflow/pkg/tree"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	t, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Tree = t
	result.Stats.LoadTime = time.Since(loadStart)

	// Stage 2: Layout
	layoutStart := time.Now()
	sc, err := r.ComputeScene(ctx, t, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Scene = sc
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.NodeCount = len(sc.Nodes)
	result.Stats.LinkCount = len(sc.Links)
	result.Stats.LeafCount = sc.Leaves()

	r.Logger.Info("composed scene",
		"nodes", result.Stats.NodeCount,
		"links", result.Stats.LinkCount,
		"direction", sc.Direction,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, sc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"engine", opts.Engine,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load returns opts.Tree or decodes opts.Input.
func (r *Runner) Load(ctx context.Context, opts Options) (*tree.Node, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Tree != nil {
		return opts.Tree, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.Logger.Debug("reading input", "path", opts.Input)
	return tfio.Import(opts.Input)
}

// ComputeScene builds, lays out and composes the scene for t.
func (r *Runner) ComputeScene(ctx context.Context, t *tree.Node, opts Options) (*scene.Scene, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	hooks := observability.Pipeline()

	buildStart := time.Now()
	hooks.OnBuildStart(ctx, opts.Input)
	h, err := hierarchy.Build(t)
	hooks.OnBuildComplete(ctx, opts.Input, hierarchyLen(h), time.Since(buildStart), err)
	if err != nil {
		return nil, err
	}

	d, known := opts.FlowDirection()
	if !known {
		r.Logger.Warn("unrecognized direction, drawing top-down", "direction", opts.Direction, "using", d)
	}

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, string(d), h.Len())
	if err := layout.Apply(h, *opts.Spacing); err != nil {
		hooks.OnLayoutComplete(ctx, string(d), time.Since(layoutStart), err)
		return nil, err
	}
	x, y := opts.RootPosition()
	sc := scene.Compose(h, d, geo.Point{X: x, Y: y})
	hooks.OnLayoutComplete(ctx, string(d), time.Since(layoutStart), nil)

	e := layout.Bounds(h)
	r.Logger.Debug("layout complete",
		"depth", h.MaxDepth(),
		"extent", fmt.Sprintf("%gx%g", e.MaxX-e.MinX, e.MaxY-e.MinY),
		"leaves", h.Root().Leaves,
		"root", fmt.Sprintf("(%g, %g)", x, y))
	return sc, nil
}

// Render generates artifacts for every requested format.
func (r *Runner) Render(ctx context.Context, sc *scene.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Engine, opts.Formats)
	artifacts, err := Render(ctx, sc, opts)
	hooks.OnRenderComplete(ctx, opts.Engine, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func hierarchyLen(h *hierarchy.Hierarchy) int {
	if h == nil {
		return 0
	}
	return h.Len()
}
