// Package tree defines the nested input model consumed by treeflow.
//
// A [Node] is a label plus an ordered list of children. The caller owns the
// value; nothing in treeflow mutates it. Children are pointers so that the
// hierarchy builder can recognize a node that is reachable twice (shared
// subtree or cycle) and reject it instead of recursing forever.
//
// The struct tags match the wire shape used by the sample data:
//
//	{"name": "Eve", "children": [{"name": "Cain"}, {"name": "Seth"}]}
package tree

// Node is one labeled node of the caller's tree.
// A nil or empty Children slice marks a leaf.
type Node struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// New returns a node with the given name and children.
func New(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Count returns the number of nodes reachable from n, counting shared
// nodes once per path. It must only be used on inputs already known to be
// trees; cyclic input never terminates.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		for _, c := range cur.Children {
			if c != nil {
				stack = append(stack, c)
			}
		}
	}
	return total
}
