// Package render converts scenes into output formats.
//
// # Overview
//
// The sinks live in subpackages:
//
//   - [svg]: native SVG with circles, S-curve connectors and a shared
//     arrowhead marker
//   - [nodelink]: Graphviz DOT with pinned node positions, rendered to SVG
//     by the embedded Graphviz (WASM) build
//   - [text]: a character raster for terminals
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both SVG engines feed them.
//
//	out := svg.Render(sc, svg.WithLabels())
//	pdf, err := render.ToPDF(out)
//	png, err := render.ToPNG(out, 2.0)  // 2x scale
//
// [svg]: github.com/matzehuels/treeflow/pkg/render/svg
// [nodelink]: github.com/matzehuels/treeflow/pkg/render/nodelink
// [text]: github.com/matzehuels/treeflow/pkg/render/text
package render
