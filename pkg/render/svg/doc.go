// Package svg renders a [scene.Scene] as a standalone SVG document.
//
// The output mirrors the classic d3 tree picture: small filled circles
// (darker for internal nodes), a translucent group of S-curve connectors and
// one shared triangular marker referenced through marker-start or marker-end
// depending on the flow direction.
//
// Rendering is configured with functional options:
//
//	out := svg.Render(sc,
//	    svg.WithCanvas(400, 200),
//	    svg.WithLabels(),
//	)
//
// Without [WithCanvas] the viewBox is fitted to the scene with a margin.
//
// [scene.Scene]: github.com/matzehuels/treeflow/pkg/scene#Scene
package svg
