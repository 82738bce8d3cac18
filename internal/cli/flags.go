package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/pipeline"
)

// sceneFlags are the layout and render flags shared by all commands.
// Zero values mean "not given" so that config and pipeline defaults apply.
type sceneFlags struct {
	direction   string
	sibling     float64
	parentChild float64
	root        []float64
	width       float64
	height      float64

	formats string
	engine  string
	labels  bool
	fit     bool
	scale   float64
	cols    int
	rows    int
}

func (f *sceneFlags) bindLayout(cmd *cobra.Command) {
	dirs := make([]string, len(direction.All))
	for i, d := range direction.All {
		dirs[i] = string(d)
	}
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "flow direction: "+strings.Join(dirs, ", ")+" (default right)")
	cmd.Flags().Float64Var(&f.sibling, "sibling", 0, "distance between adjacent leaves (default 10)")
	cmd.Flags().Float64Var(&f.parentChild, "parent-child", 0, "distance between levels (default 100)")
	cmd.Flags().Float64SliceVar(&f.root, "root", nil, "root anchor x,y (default 10,height/2)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width (default 400)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height (default 200)")

	_ = cmd.RegisterFlagCompletionFunc("direction", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return dirs, cobra.ShellCompDirectiveNoFileComp
	})
}

func (f *sceneFlags) bindRender(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, txt (comma-separated)")
	cmd.Flags().StringVarP(&f.engine, "engine", "e", "", "svg engine: native (default), graphviz")
	cmd.Flags().BoolVarP(&f.labels, "labels", "l", false, "draw node names")
	cmd.Flags().BoolVar(&f.fit, "fit", false, "size the SVG to the drawing instead of the canvas")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG scale factor (default 2)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "text output width in characters")
	cmd.Flags().IntVar(&f.rows, "rows", 0, "text output height in lines")

	_ = cmd.RegisterFlagCompletionFunc("engine", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{pipeline.EngineNative, pipeline.EngineGraphviz}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeFormats(toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}

// options resolves defaults < config file < flags into pipeline options.
func (c *CLI) options(ctx context.Context, cmd *cobra.Command, input string, f *sceneFlags) (pipeline.Options, error) {
	logger := loggerFromContext(ctx)
	opts := pipeline.Options{Input: input, Logger: c.Logger}

	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		logger.Debug("loaded config", "config", cfg)
		for _, k := range cfg.unknown {
			printWarning("ignoring unknown key %q in %s", k, cfg.path)
		}
	}
	changed := cmd.Flags().Changed
	cfg.applyTo(&opts, changed)

	if changed("direction") {
		opts.Direction = f.direction
	}
	if changed("sibling") {
		opts.EnsureSpacing().Sibling = f.sibling
	}
	if changed("parent-child") {
		opts.EnsureSpacing().ParentChild = f.parentChild
	}
	if changed("root") {
		if len(f.root) != 2 {
			return opts, errors.New(errors.ErrCodeInvalidOptions, "--root takes exactly two values x,y, got %d", len(f.root))
		}
		opts.Root = &[2]float64{f.root[0], f.root[1]}
	}
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("engine") {
		opts.Engine = f.engine
	}
	if changed("labels") {
		opts.Labels = f.labels
	}
	if changed("fit") {
		opts.Fit = f.fit
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("cols") {
		opts.Cols = f.cols
	}
	if changed("rows") {
		opts.Rows = f.rows
	}
	return opts, nil
}
