// Package nodelink renders scenes through Graphviz.
//
// [ToDOT] emits a DOT graph in which every node is pinned to its scene
// position (pos="x,y!" with inputscale=72, y flipped into Graphviz's upward
// axis), so the neato engine keeps the layout computed by package layout and
// only routes the edges. Arrowheads follow the scene: links with the marker
// at the child end use dir=forward, links with the marker at the parent end
// use dir=back with an inverted tail arrow, so both engines point the
// arrowhead from parent toward child.
//
// [RenderSVG] runs the DOT through the WASM build of Graphviz bundled with
// github.com/goccy/go-graphviz, so no system Graphviz is required.
//
//	dot := nodelink.ToDOT(sc, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// PDF and PNG output go through [render.ToPDF] and [render.ToPNG].
//
// [render.ToPDF]: github.com/matzehuels/treeflow/pkg/render#ToPDF
// [render.ToPNG]: github.com/matzehuels/treeflow/pkg/render#ToPNG
package nodelink
