package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/treeflow/pkg/errors"
	tfio "github.com/matzehuels/treeflow/pkg/io"
	"github.com/matzehuels/treeflow/pkg/render"
	"github.com/matzehuels/treeflow/pkg/render/nodelink"
	"github.com/matzehuels/treeflow/pkg/render/svg"
	"github.com/matzehuels/treeflow/pkg/render/text"
	"github.com/matzehuels/treeflow/pkg/scene"
)

// Render generates output artifacts in the requested formats.
// The native SVG is produced once and shared by the svg, png and pdf outputs;
// the Graphviz engine renders each of them from the same DOT source.
func Render(ctx context.Context, sc *scene.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dotSrc string
	dot := func() string {
		if dotSrc == "" {
			dotSrc = nodelink.ToDOT(sc, nodelink.Options{Labels: opts.Labels})
		}
		return dotSrc
	}

	var svgData []byte
	vector := func() ([]byte, error) {
		if svgData != nil {
			return svgData, nil
		}
		var err error
		if opts.IsGraphviz() {
			svgData, err = nodelink.RenderSVG(ctx, dot())
		} else {
			svgData = svg.Render(sc, svgOptions(opts)...)
		}
		return svgData, err
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = vector()
		case FormatPNG:
			if opts.IsGraphviz() {
				data, err = nodelink.RenderPNG(ctx, dot(), opts.Scale)
			} else if data, err = vector(); err == nil {
				data, err = render.ToPNGContext(ctx, data, opts.Scale)
			}
		case FormatPDF:
			if opts.IsGraphviz() {
				data, err = nodelink.RenderPDF(ctx, dot())
			} else if data, err = vector(); err == nil {
				data, err = render.ToPDFContext(ctx, data)
			}
		case FormatJSON:
			var buf bytes.Buffer
			err = tfio.WriteScene(sc, &buf)
			data = buf.Bytes()
		case FormatDOT:
			data = []byte(dot())
		case FormatText:
			data = []byte(text.Render(sc, textOptions(opts)...))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func svgOptions(opts Options) []svg.Option {
	var out []svg.Option
	if !opts.Fit {
		out = append(out, svg.WithCanvas(opts.Width, opts.Height))
	}
	if opts.Labels {
		out = append(out, svg.WithLabels())
	}
	return out
}

func textOptions(opts Options) []text.Option {
	out := []text.Option{text.WithSize(opts.Cols, opts.Rows)}
	if opts.Labels {
		out = append(out, text.WithLabels())
	}
	return out
}
