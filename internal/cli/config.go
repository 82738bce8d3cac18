package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	tferrors "github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/pipeline"
)

// fileConfig mirrors treeflow.toml. Pointer and zero values mean "not set".
//
//	direction = "down"
//	formats = ["svg", "png"]
//	engine = "native"
//	labels = true
//	root = [10, 100]
//
//	[canvas]
//	width = 400
//	height = 200
//
//	[spacing]
//	sibling = 10
//	parent_child = 100
//
//	[text]
//	cols = 100
//	rows = 30
type fileConfig struct {
	Direction string        `toml:"direction"`
	Formats   []string      `toml:"formats"`
	Engine    string        `toml:"engine"`
	Labels    *bool         `toml:"labels"`
	Fit       *bool         `toml:"fit"`
	Scale     float64       `toml:"scale"`
	Root      []float64     `toml:"root"`
	Canvas    canvasConfig  `toml:"canvas"`
	Spacing   spacingConfig `toml:"spacing"`
	Text      textConfig    `toml:"text"`

	// path is the file the config was read from.
	path string
	// unknown lists keys present in the file that no field consumed.
	unknown []string
}

type canvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// spacingConfig distinguishes an explicit 0 (rejected later) from an absent key.
type spacingConfig struct {
	Sibling     *float64 `toml:"sibling"`
	ParentChild *float64 `toml:"parent_child"`
}

type textConfig struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`
}

// loadConfig reads the config at path. An empty path looks for
// treeflow.toml in the working directory and returns (nil, nil) if there is
// none; an explicit path must exist.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = configFileName
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, tferrors.Wrap(tferrors.ErrCodeInvalidOptions, err, "read config %s", path)
	}
	if cfg.Root != nil && len(cfg.Root) != 2 {
		return nil, tferrors.New(tferrors.ErrCodeInvalidOptions, "%s: root must be [x, y], got %v", path, cfg.Root)
	}

	cfg.path = path
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}
	return &cfg, nil
}

// applyTo copies every value set in the file onto opts, skipping the ones
// whose flag was given explicitly.
func (cfg *fileConfig) applyTo(opts *pipeline.Options, changed func(flag string) bool) {
	if cfg == nil {
		return
	}
	set := func(flag string, ok bool, fn func()) {
		if ok && !changed(flag) {
			fn()
		}
	}

	set("direction", cfg.Direction != "", func() { opts.Direction = cfg.Direction })
	set("format", len(cfg.Formats) > 0, func() { opts.Formats = cfg.Formats })
	set("engine", cfg.Engine != "", func() { opts.Engine = cfg.Engine })
	set("labels", cfg.Labels != nil, func() { opts.Labels = *cfg.Labels })
	set("fit", cfg.Fit != nil, func() { opts.Fit = *cfg.Fit })
	set("scale", cfg.Scale != 0, func() { opts.Scale = cfg.Scale })
	set("root", len(cfg.Root) == 2, func() { opts.Root = &[2]float64{cfg.Root[0], cfg.Root[1]} })
	set("width", cfg.Canvas.Width != 0, func() { opts.Width = cfg.Canvas.Width })
	set("height", cfg.Canvas.Height != 0, func() { opts.Height = cfg.Canvas.Height })
	set("sibling", cfg.Spacing.Sibling != nil, func() { opts.EnsureSpacing().Sibling = *cfg.Spacing.Sibling })
	set("parent-child", cfg.Spacing.ParentChild != nil, func() { opts.EnsureSpacing().ParentChild = *cfg.Spacing.ParentChild })
	set("cols", cfg.Text.Cols != 0, func() { opts.Cols = cfg.Text.Cols })
	set("rows", cfg.Text.Rows != 0, func() { opts.Rows = cfg.Text.Rows })
}

func (cfg *fileConfig) String() string {
	if cfg == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s (%d unknown keys)", cfg.path, len(cfg.unknown))
}
