package pathx

// Tree is the external contract the engine requires of a host tree. It
// is deliberately minimal: label/value lookup, parent/child/sibling
// linkage, and the three mutating operations needed by ExpandTree.
//
// The tree root satisfies Parent(root) == root. A node's Children is the
// head of an ordered sibling list threaded through Next; absent is
// represented as nil throughout, matching the pointer-ish shape the rest
// of the engine assumes. There are no attributes, namespaces, or
// document-level bookkeeping in this contract — only the handful of
// accessors a path-expression engine actually walks.
type Tree interface {
	// Label returns the node's name. ok is false if the node has no
	// label; NameTest treats an absent label as equal to the empty
	// string.
	Label(node TreeNode) (label string, ok bool)

	// Value returns the node's associated text, if any.
	Value(node TreeNode) (value string, ok bool)

	// Parent returns the node's parent. The root is its own parent.
	Parent(node TreeNode) TreeNode

	// Children returns the head of node's ordered child list, or nil.
	Children(node TreeNode) TreeNode

	// Next returns node's next sibling within its parent's child list,
	// or nil if node is the last child.
	Next(node TreeNode) TreeNode

	// MakeTree creates a new, detached node with the given label and
	// value under parent. An empty value means the node is created
	// name-only, with no value at all, not a node whose value happens to
	// be the empty string. Appending it into parent's child list is the
	// caller's responsibility — ExpandTree does this itself via
	// AppendChild, attaching each created node before it creates the
	// next suffix step under it.
	MakeTree(label, value string, parent TreeNode) (TreeNode, error)

	// AppendChild appends child to the end of parent's ordered child
	// list. It is the caller-side half of the MakeTree contract.
	AppendChild(parent, child TreeNode) error

	// FreeTree recursively frees node and its subtree. ExpandTree calls
	// this to roll back partially created nodes when it fails partway
	// through materializing an unmatched suffix.
	FreeTree(node TreeNode) error
}

// TreeNode is an opaque reference into a host Tree. The engine never
// dereferences it directly; all access goes through the Tree interface.
type TreeNode interface{}
