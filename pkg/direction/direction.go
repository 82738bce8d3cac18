package direction

import (
	"strings"

	"oss.terrastruct.com/d2/lib/geo"

	"github.com/matzehuels/treeflow/pkg/geometry"
	"github.com/matzehuels/treeflow/pkg/hierarchy"
)

// Direction is the screen direction in which depth grows.
type Direction string

const (
	Right Direction = "right"
	Down  Direction = "down"
	Left  Direction = "left"
	Up    Direction = "up"
)

// Fallback is the record used for unrecognized directions.
const Fallback = Down

// All lists the recognized directions in display order.
var All = []Direction{Right, Down, Left, Up}

// ArrowConfig describes how a link is drawn.
type ArrowConfig struct {
	Curve     geometry.Orientation `json:"curve"`
	Arrowhead geometry.ArrowEnd    `json:"arrowhead"`
}

type record struct {
	axisSwap bool
	sign     float64
	arrow    ArrowConfig
}

var table = map[Direction]record{
	Right: {axisSwap: true, sign: 1, arrow: ArrowConfig{geometry.Horizontal, geometry.End}},
	Down:  {axisSwap: false, sign: 1, arrow: ArrowConfig{geometry.Vertical, geometry.Start}},
	Left:  {axisSwap: true, sign: -1, arrow: ArrowConfig{geometry.Horizontal, geometry.Start}},
	Up:    {axisSwap: false, sign: -1, arrow: ArrowConfig{geometry.Vertical, geometry.End}},
}

func lookup(d Direction) record {
	if r, ok := table[d]; ok {
		return r
	}
	return table[Fallback]
}

// Valid reports whether d is one of the four recognized directions.
func (d Direction) Valid() bool {
	_, ok := table[d]
	return ok
}

// Normalize parses s case-insensitively. Unknown values return Fallback and
// false.
func Normalize(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d, true
	}
	return Fallback, false
}

// Arrow returns the link configuration for d.
func Arrow(d Direction) ArrowConfig {
	return lookup(d).arrow
}

// Mapping is the screen-space relation between a node and its parent.
type Mapping struct {
	Offset geo.Point   `json:"offset"`
	Arrow  ArrowConfig `json:"arrow"`
}

// Map returns the mapping for node i. The root has no parent and therefore
// no mapping; ok is false for it and for out-of-range indices.
func Map(h *hierarchy.Hierarchy, i int, d Direction) (m Mapping, ok bool) {
	if i <= 0 || i >= h.Len() {
		return Mapping{}, false
	}
	n := h.Node(i)
	p := h.Node(n.Parent)
	r := lookup(d)
	return Mapping{Offset: r.offset(n.X-p.X, n.Y-p.Y), Arrow: r.arrow}, true
}

func (r record) offset(dx, dy float64) geo.Point {
	if r.axisSwap {
		dx, dy = dy, dx
	}
	return geo.Point{X: r.sign * dx, Y: r.sign * dy}
}

// Positions returns the absolute screen position of every node, indexed like
// the hierarchy: the root sits at root and each node is its parent's
// position plus its offset. Pre-order storage guarantees a parent is placed
// before its children.
func Positions(h *hierarchy.Hierarchy, d Direction, root geo.Point) []geo.Point {
	r := lookup(d)
	pos := make([]geo.Point, h.Len())
	for i := 0; i < h.Len(); i++ {
		n := h.Node(i)
		if n.IsRoot() {
			pos[i] = root
			continue
		}
		p := h.Node(n.Parent)
		off := r.offset(n.X-p.X, n.Y-p.Y)
		base := pos[n.Parent]
		pos[i] = *base.AddVector(geo.NewVector(off.X, off.Y))
	}
	return pos
}
