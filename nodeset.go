package pathx

// NodeSet is a growable, ordered collection of tree-node references.
// Duplicates are not removed and the set is not sorted into document
// order: it is a flat, step-ordered sequence, a documented limitation
// rather than a gap to close. Callers that need a canonical ordering or
// uniqueness apply their own pass over Slice().
type NodeSet struct {
	nodes []TreeNode
}

// NewNodeSet creates an empty node-set with room for n entries.
func NewNodeSet(n int) *NodeSet {
	return &NodeSet{nodes: make([]TreeNode, 0, n)}
}

// Len returns the number of nodes currently in the set.
func (ns *NodeSet) Len() int { return len(ns.nodes) }

// At returns the node at position i (0-based).
func (ns *NodeSet) At(i int) TreeNode { return ns.nodes[i] }

// Append adds n to the end of the set.
func (ns *NodeSet) Append(n TreeNode) { ns.nodes = append(ns.nodes, n) }

// Slice exposes the underlying nodes for read-only iteration.
func (ns *NodeSet) Slice() []TreeNode { return ns.nodes }

// filterInPlace keeps only the nodes for which keep(index, node) is
// true, preserving order, mutating ns in place. It ranges over the
// original backing slice directly rather than the compacting
// destination, so every original element is inspected exactly once
// regardless of how many elements ahead of it get dropped.
func (ns *NodeSet) filterInPlace(keep func(i int, n TreeNode) (bool, error)) error {
	kept := ns.nodes[:0:0]
	for i, n := range ns.nodes {
		ok, err := keep(i, n)
		if err != nil {
			return err
		}
		if ok {
			kept = append(kept, n)
		}
	}
	ns.nodes = kept
	return nil
}
