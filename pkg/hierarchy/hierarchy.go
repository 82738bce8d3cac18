package hierarchy

import (
	errs "github.com/matzehuels/treeflow/pkg/errors"
	"github.com/matzehuels/treeflow/pkg/tree"
)

// NoParent is the Parent index of the root node.
const NoParent = -1

// Node is one entry of the hierarchy arena.
type Node struct {
	Data     *tree.Node // originating input node (never modified)
	Parent   int        // index of the parent, NoParent for the root
	Children []int      // child indices in input order
	Depth    int        // 0 for the root

	Leaves int // leaf slots occupied by the subtree (1 for a leaf)
	Height int // levels below this node (0 for a leaf)

	X, Y float64 // canonical layout coordinates, set by package layout
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsRoot reports whether the node is the hierarchy root.
func (n *Node) IsRoot() bool { return n.Parent == NoParent }

// Name returns the label of the originating input node.
func (n *Node) Name() string { return n.Data.Name }

// Hierarchy is a rooted tree stored in depth-first pre-order.
// The zero value is not usable - use Build.
type Hierarchy struct {
	nodes []Node
}

// Len returns the number of nodes.
func (h *Hierarchy) Len() int { return len(h.nodes) }

// Root returns the root node.
func (h *Hierarchy) Root() *Node { return &h.nodes[0] }

// Node returns the node at index i. It panics if i is out of range.
func (h *Hierarchy) Node(i int) *Node { return &h.nodes[i] }

// Parent returns the parent of node i, or nil for the root.
func (h *Hierarchy) Parent(i int) *Node {
	p := h.nodes[i].Parent
	if p == NoParent {
		return nil
	}
	return &h.nodes[p]
}

// Leaves returns leaf indices in left-to-right order.
func (h *Hierarchy) Leaves() []int {
	leaves := make([]int, 0, h.nodes[0].Leaves)
	for i := range h.nodes {
		if h.nodes[i].IsLeaf() {
			leaves = append(leaves, i)
		}
	}
	return leaves
}

// MaxDepth returns the depth of the deepest node.
func (h *Hierarchy) MaxDepth() int { return h.nodes[0].Height }

type frame struct {
	in     *tree.Node
	parent int
	depth  int
}

// Build converts root into a Hierarchy.
//
// It returns an INVALID_INPUT error if root is nil, if any child entry is
// nil, or if a node is reachable more than once (cycle or shared subtree).
func Build(root *tree.Node) (*Hierarchy, error) {
	if root == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "tree has no root")
	}

	h := &Hierarchy{}
	index := make(map[*tree.Node]int)
	stack := []frame{{in: root, parent: NoParent}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := index[f.in]; seen {
			return nil, h.revisitError(f)
		}

		i := len(h.nodes)
		index[f.in] = i
		h.nodes = append(h.nodes, Node{Data: f.in, Parent: f.parent, Depth: f.depth})
		if f.parent != NoParent {
			h.nodes[f.parent].Children = append(h.nodes[f.parent].Children, i)
		}

		// Reverse push keeps pre-order equal to input order.
		for c := len(f.in.Children) - 1; c >= 0; c-- {
			child := f.in.Children[c]
			if child == nil {
				return nil, errs.New(errs.ErrCodeInvalidInput, "node %q has a nil child at position %d", f.in.Name, c)
			}
			stack = append(stack, frame{in: child, parent: i, depth: f.depth + 1})
		}
	}

	h.aggregate()
	return h, nil
}

// revisitError classifies a node reached a second time.
func (h *Hierarchy) revisitError(f frame) error {
	for p := f.parent; p != NoParent; p = h.nodes[p].Parent {
		if h.nodes[p].Data == f.in {
			return errs.New(errs.ErrCodeInvalidInput, "cycle detected: node %q is its own descendant", f.in.Name)
		}
	}
	return errs.New(errs.ErrCodeInvalidInput, "node %q is reachable from more than one parent", f.in.Name)
}

// aggregate fills Leaves and Height bottom-up. Pre-order guarantees every
// child index is larger than its parent's.
func (h *Hierarchy) aggregate() {
	for i := len(h.nodes) - 1; i >= 0; i-- {
		n := &h.nodes[i]
		if n.IsLeaf() {
			n.Leaves = 1
			continue
		}
		for _, c := range n.Children {
			n.Leaves += h.nodes[c].Leaves
			n.Height = max(n.Height, h.nodes[c].Height+1)
		}
	}
}
