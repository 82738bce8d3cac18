// Package hierarchy converts a caller's nested [tree.Node] into the
// internal, parent-linked representation used by layout and composition.
//
// # Representation
//
// The hierarchy is an arena: a flat slice of [Node] values stored in
// depth-first pre-order, so index 0 is always the root and every node's
// index is smaller than the indices of its descendants. Children are index
// lists in input order; the parent link is a plain index ([NoParent] for the
// root). Ownership flows root → children only; the parent index exists for
// coordinate deltas and is never used to drive traversal.
//
// # Validation
//
// [Build] walks the input with an explicit stack (no recursion, so depth is
// bounded only by memory) and keeps a visited set of node identities. A node
// seen twice is either a cycle (it is its own ancestor) or a shared subtree
// (two parents). Both fail with an INVALID_INPUT error from package errors;
// no partial hierarchy is returned.
//
// # Aggregates
//
// After the walk, each node carries its subtree extents: Leaves (how many
// sibling-axis slots the subtree occupies) and Height (levels below it).
// They are computed bottom-up by scanning the arena in reverse.
//
//	h, err := hierarchy.Build(root)
//	if err != nil {
//	    return err // errors.IsInvalidInput(err)
//	}
//	fmt.Println(h.Len(), h.Node(0).Leaves)
//
// [tree.Node]: github.com/matzehuels/treeflow/pkg/tree
package hierarchy
