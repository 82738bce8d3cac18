package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/treeflow/pkg/geometry"
	"github.com/matzehuels/treeflow/pkg/render"
	"github.com/matzehuels/treeflow/pkg/scene"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Labels places each node's name next to its circle.
	// When false, nodes are bare points like the native renderer.
	Labels bool
}

const nodeDiameterInches = 5.0 / 72

// ToDOT converts a scene to Graphviz DOT with pinned node positions.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(sc *scene.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, color=\"#555555\", fixedsize=true, width=%s, label=\"\", fontsize=10];\n",
		fmtNum(nodeDiameterInches))
	buf.WriteString("  edge [color=\"#55555566\", penwidth=1.5, arrowsize=0.5];\n")
	buf.WriteString("\n")

	for _, n := range sc.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(n.Index), strings.Join(fmtAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, l := range sc.Links {
		attrs := "dir=forward"
		if l.Arrowhead == geometry.Start {
			// The tail arrow sits on the parent but points along the link
			// toward the child, like marker-start with orient=auto.
			attrs = "dir=back, arrowtail=inv"
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(l.Source), nodeID(l.Target), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "n" + strconv.Itoa(i) }

func fmtAttrs(n scene.Node, opts Options) []string {
	fill := "#999999"
	if n.Internal {
		fill = "#555555"
	}
	attrs := []string{
		fmt.Sprintf("pos=\"%s,%s!\"", fmtNum(n.Position.X), fmtNum(-n.Position.Y)),
		fmt.Sprintf("fillcolor=%q", fill),
	}
	if opts.Labels {
		attrs = append(attrs, fmt.Sprintf("xlabel=%q", n.Name))
	}
	return attrs
}

func fmtNum(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDFContext(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNGContext(ctx, svg, scale)
}
