// Package pkg provides the core libraries for treeflow node-link diagrams.
//
// # Overview
//
// Treeflow turns a labeled tree into a tidy node-link picture: every node is
// a circle, every parent/child pair a curved connector with an arrowhead, and
// the whole drawing flows right, down, left or up from a root anchor.
//
// # Architecture
//
// The data flow through treeflow:
//
//	tree.Node (JSON / YAML / TOML)
//	         ↓
//	    [hierarchy] (indexed tree with depth, leaf counts, parent links)
//	         ↓
//	    [layout] (canonical x/y per node)
//	         ↓
//	    [direction] (screen offsets and arrow configuration)
//	         ↓
//	    [scene] (nodes + links with [geometry] curves and arrowheads)
//	         ↓
//	    SVG / PNG / PDF / DOT / JSON / text
//
// # Quick Start
//
//	import (
//	    "oss.terrastruct.com/d2/lib/geo"
//	    "github.com/matzehuels/treeflow/pkg/direction"
//	    "github.com/matzehuels/treeflow/pkg/layout"
//	    "github.com/matzehuels/treeflow/pkg/render/svg"
//	    "github.com/matzehuels/treeflow/pkg/scene"
//	    "github.com/matzehuels/treeflow/pkg/tree"
//	)
//
//	t := tree.New("Eve", tree.New("Cain"), tree.New("Seth", tree.New("Enos")))
//	sc, err := scene.Build(t, scene.Options{
//	    Direction: direction.Down,
//	    Root:      geo.Point{X: 200, Y: 10},
//	    Spacing:   layout.DefaultSpacing(),
//	})
//	if err != nil {
//	    return err
//	}
//	out := svg.Render(sc, svg.WithLabels())
//
// # Main Packages
//
// ## Core Engine
//
// The core performs no I/O and keeps no state between calls.
//
// [tree] - The caller's nested input: a name plus ordered children.
//
// [hierarchy] - Builds the indexed hierarchy with an explicit stack and
// rejects cycles and shared nodes.
//
// [layout] - Leaves take consecutive slots, parents sit at the mean of their
// children, the root lands on the origin.
//
// [direction] - The table that maps canonical deltas to screen offsets for
// each flow direction, including the arrow configuration.
//
// [geometry] - Cubic connector curves, SVG path data, arrowhead placement and
// the marker definition, built on d2's lib/geo and lib/svg.
//
// [scene] - Composes the drawable scene and is the one-call entry point.
//
// ## Outputs
//
// [render/svg] - Native SVG with the arrowhead marker.
//
// [render/nodelink] - DOT with pinned positions, rendered by Graphviz.
//
// [render/text] - Character raster for terminals.
//
// [render] - SVG to PDF/PNG conversion via rsvg-convert.
//
// [io] - Tree import (JSON, YAML, TOML) and scene export (JSON).
//
// ## Orchestration
//
// [pipeline] - Options, validation and the load → layout → render runner used
// by the CLI.
//
// [observability] - Hooks around build, layout and render stages.
//
// [errors] - Coded errors shared by every package.
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/tree
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/hierarchy
// [layout]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/layout
// [direction]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/direction
// [geometry]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/geometry
// [scene]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/render/svg
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/render/nodelink
// [render/text]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/render/text
// [io]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/treeflow/pkg/errors
package pkg
