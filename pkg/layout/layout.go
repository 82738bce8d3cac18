package layout

import (
	"github.com/matzehuels/treeflow/pkg/hierarchy"
)

// Apply computes canonical coordinates for every node of h in place.
// The hierarchy is left untouched if s is invalid.
func Apply(h *hierarchy.Hierarchy, s Spacing) error {
	if err := s.Validate(); err != nil {
		return err
	}

	n := h.Len()

	// Pre-order visits leaves left to right.
	slot := 0
	for i := 0; i < n; i++ {
		node := h.Node(i)
		node.Y = float64(node.Depth) * s.ParentChild
		if node.IsLeaf() {
			node.X = float64(slot) * s.Sibling
			slot++
		}
	}

	// Reverse pre-order finalizes children before parents.
	for i := n - 1; i >= 0; i-- {
		node := h.Node(i)
		if node.IsLeaf() {
			continue
		}
		var sum float64
		for _, c := range node.Children {
			sum += h.Node(c).X
		}
		node.X = sum / float64(len(node.Children))
	}

	shift := h.Root().X
	for i := 0; i < n; i++ {
		h.Node(i).X -= shift
	}
	return nil
}

// Extent is the axis-aligned bounding box of canonical coordinates.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the canonical extent of a laid-out hierarchy.
func Bounds(h *hierarchy.Hierarchy) Extent {
	root := h.Root()
	e := Extent{MinX: root.X, MaxX: root.X, MinY: root.Y, MaxY: root.Y}
	for i := 1; i < h.Len(); i++ {
		nd := h.Node(i)
		e.MinX = min(e.MinX, nd.X)
		e.MaxX = max(e.MaxX, nd.X)
		e.MinY = min(e.MinY, nd.Y)
		e.MaxY = max(e.MaxY, nd.Y)
	}
	return e
}
