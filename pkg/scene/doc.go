// Package scene composes the drawable node-link scene for a tree.
//
// A [Scene] is renderer-neutral: one positioned [Node] per tree node, one
// [Link] per parent/child edge with its precomputed connector path and
// arrowhead placement, and the shared arrowhead [geometry.Marker]. Sinks
// under pkg/render turn it into SVG, DOT, ASCII or JSON.
//
// # Entry Point
//
// [Build] runs the whole core pipeline for one request:
//
//	tree.Node ──hierarchy.Build──▶ Hierarchy ──layout.Apply──▶ canonical (x, y)
//	          ──direction.Positions──▶ screen positions ──Compose──▶ Scene
//
// Any error (INVALID_INPUT from the builder, INVALID_SPACING from the layout)
// aborts the request and no scene is returned.
//
// # Ordering
//
// Nodes and links are emitted in depth-first pre-order, children in input
// order, so identical inputs always produce identical scenes. The root is
// the first node and has no incoming link.
//
// [geometry.Marker]: github.com/matzehuels/treeflow/pkg/geometry#Marker
package scene
