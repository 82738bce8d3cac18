// Package layout assigns canonical, direction-agnostic coordinates to every
// node of a [hierarchy.Hierarchy].
//
// # Coordinate Space
//
// Canonical x is the sibling axis, canonical y the depth axis. Package
// direction later maps these onto screen axes for the chosen flow.
//
// # Algorithm
//
// The layout is a node-size tidy tree:
//
//  1. y = depth × ParentChild.
//  2. Leaves take consecutive sibling slots, exactly Sibling apart, in
//     left-to-right (pre-order) order across the whole tree.
//  3. Every internal node is centered at the mean x of its own children,
//     computed bottom-up so children are final before their parent.
//  4. All x values are shifted so the root sits at (0, 0).
//
// Because each subtree's leaves form one contiguous block and a parent is
// bounded by its children's extremes, two nodes on the same level that belong
// to different subtrees are always at least Sibling apart. No collision pass
// is needed.
//
// # Errors
//
// [Apply] rejects a [Spacing] with a non-positive or non-finite field with an
// INVALID_SPACING error before touching the hierarchy.
//
// [hierarchy.Hierarchy]: github.com/matzehuels/treeflow/pkg/hierarchy
package layout
