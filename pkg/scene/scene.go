package scene

import (
	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/direction"
	"github.com/matzehuels/treeflow/pkg/geometry"
	"github.com/matzehuels/treeflow/pkg/hierarchy"
	"github.com/matzehuels/treeflow/pkg/layout"
	"github.com/matzehuels/treeflow/pkg/tree"
)

// Node is a positioned circle in the scene.
type Node struct {
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Depth    int       `json:"depth"`
	Internal bool      `json:"internal"`
	Position geo.Point `json:"position"`
}

// Link is a curved connector from a parent to one of its children.
type Link struct {
	Source    int                  `json:"source"`
	Target    int                  `json:"target"`
	Start     geo.Point            `json:"start"`
	End       geo.Point            `json:"end"`
	Curve     geometry.Orientation `json:"curve"`
	Arrowhead geometry.ArrowEnd    `json:"arrowhead"`
	Path      geometry.Path        `json:"path"`
	Head      geometry.Arrowhead   `json:"head"`
}

// Scene is the drawable result of one request.
type Scene struct {
	Direction direction.Direction `json:"direction"`
	Marker    geometry.Marker     `json:"marker"`
	Nodes     []Node              `json:"nodes"`
	Links     []Link              `json:"links"`
}

// Options configures [Build].
type Options struct {
	Direction direction.Direction
	Root      geo.Point
	Spacing   layout.Spacing
}

// Build turns an input tree into a scene.
func Build(t *tree.Node, opts Options) (*Scene, error) {
	h, err := hierarchy.Build(t)
	if err != nil {
		return nil, err
	}
	if err := layout.Apply(h, opts.Spacing); err != nil {
		return nil, err
	}
	return Compose(h, opts.Direction, opts.Root), nil
}

// Compose walks a laid-out hierarchy and emits its scene. The direction is
// stored as given; unrecognized values are drawn like direction.Down.
func Compose(h *hierarchy.Hierarchy, d direction.Direction, root geo.Point) *Scene {
	pos := direction.Positions(h, d, root)
	arrow := direction.Arrow(d)

	s := &Scene{
		Direction: d,
		Marker:    geometry.DefaultMarker(),
		Nodes:     make([]Node, 0, h.Len()),
		Links:     make([]Link, 0, max(h.Len()-1, 0)),
	}

	stack := []int{0}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := h.Node(i)
		s.Nodes = append(s.Nodes, Node{
			Index:    i,
			Name:     n.Name(),
			Depth:    n.Depth,
			Internal: !n.IsLeaf(),
			Position: pos[i],
		})

		if !n.IsRoot() {
			path := geometry.Curve(pos[n.Parent], pos[i], arrow.Curve)
			s.Links = append(s.Links, Link{
				Source:    n.Parent,
				Target:    i,
				Start:     pos[n.Parent],
				End:       pos[i],
				Curve:     arrow.Curve,
				Arrowhead: arrow.Arrowhead,
				Path:      path,
				Head:      geometry.PlaceArrowhead(path, arrow.Arrowhead),
			})
		}

		for j := len(n.Children) - 1; j >= 0; j-- {
			stack = append(stack, n.Children[j])
		}
	}
	return s
}

// Extent is the screen-space bounding box of a scene's node centers.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width of the extent.
func (e Extent) Width() float64 { return e.MaxX - e.MinX }

// Height of the extent.
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// Bounds returns the extent of all node positions. An empty scene yields
// the zero Extent.
func (s *Scene) Bounds() Extent {
	if len(s.Nodes) == 0 {
		return Extent{}
	}
	p := s.Nodes[0].Position
	e := Extent{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
	for _, n := range s.Nodes[1:] {
		e.MinX = min(e.MinX, n.Position.X)
		e.MaxX = max(e.MaxX, n.Position.X)
		e.MinY = min(e.MinY, n.Position.Y)
		e.MaxY = max(e.MaxY, n.Position.Y)
	}
	return e
}

// Node returns the scene node for hierarchy index i.
func (s *Scene) Node(i int) (Node, bool) {
	for _, n := range s.Nodes {
		if n.Index == i {
			return n, true
		}
	}
	return Node{}, false
}

// Leaves counts the nodes without children.
func (s *Scene) Leaves() int {
	var c int
	for _, n := range s.Nodes {
		if !n.Internal {
			c++
		}
	}
	return c
}
