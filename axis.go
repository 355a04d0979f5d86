package pathx

// axisWalk implements a restartable, finite iterator pair: first(ctx) /
// next(current). It covers seven axes (no following/preceding/namespace/
// attribute — this tree has no attribute nodes) as a first/next
// iterator rather than collecting every match up front. The location-path
// pipelines (eval.go, search.go) drain it into the step's node-set.
type axisWalk struct {
	tree Tree
	step *Step
	ctx  TreeNode
}

func newAxisWalk(tree Tree, step *Step, ctx TreeNode) *axisWalk {
	return &axisWalk{tree: tree, step: step, ctx: ctx}
}

func (a *axisWalk) label(n TreeNode) string {
	l, _ := a.tree.Label(n)
	return l
}

func (a *axisWalk) testsMatch(n TreeNode) bool {
	return a.step.Test.Matches(a.label(n))
}

// first returns the first node on the axis satisfying the name test, or
// nil if none exists.
func (a *axisWalk) first() TreeNode {
	switch a.step.Axis {
	case AxisSelf:
		if a.testsMatch(a.ctx) {
			return a.ctx
		}
		return nil

	case AxisChild:
		start := a.tree.Children(a.ctx)
		return a.firstMatching(start, func(n TreeNode) TreeNode { return a.tree.Next(n) })

	case AxisDescendant:
		start := a.descendantStart(a.ctx)
		return a.firstMatching(start, func(n TreeNode) TreeNode { return a.descendantNext(n, a.ctx) })

	case AxisDescendantOrSelf:
		if a.testsMatch(a.ctx) {
			return a.ctx
		}
		start := a.descendantStart(a.ctx)
		return a.firstMatching(start, func(n TreeNode) TreeNode { return a.descendantNext(n, a.ctx) })

	case AxisParent:
		p := a.tree.Parent(a.ctx)
		if p != nil && a.testsMatch(p) {
			return p
		}
		return nil

	case AxisAncestor:
		start := a.tree.Parent(a.ctx)
		return a.firstMatching(start, func(n TreeNode) TreeNode { return a.ancestorNext(n) })

	case AxisRoot:
		root := a.ctx
		for {
			p := a.tree.Parent(root)
			if p == nil || p == root {
				break
			}
			root = p
		}
		if a.testsMatch(root) {
			return root
		}
		return nil

	default:
		return nil
	}
}

// next returns the node on the axis following current, or nil when
// exhausted.
func (a *axisWalk) next(current TreeNode) TreeNode {
	switch a.step.Axis {
	case AxisSelf, AxisParent, AxisRoot:
		return nil

	case AxisChild:
		return a.firstMatching(a.tree.Next(current), func(n TreeNode) TreeNode { return a.tree.Next(n) })

	case AxisDescendant, AxisDescendantOrSelf:
		return a.firstMatching(a.descendantNext(current, a.ctx), func(n TreeNode) TreeNode { return a.descendantNext(n, a.ctx) })

	case AxisAncestor:
		p := a.tree.Parent(current)
		if p == current {
			return nil
		}
		return a.firstMatching(p, func(n TreeNode) TreeNode { return a.ancestorNext(n) })

	default:
		return nil
	}
}

func (a *axisWalk) ancestorNext(current TreeNode) TreeNode {
	p := a.tree.Parent(current)
	if p == current {
		return nil
	}
	return p
}

// firstMatching walks forward from start via advance until the name
// test passes or the axis is exhausted.
func (a *axisWalk) firstMatching(start TreeNode, advance func(TreeNode) TreeNode) TreeNode {
	for n := start; n != nil; n = advance(n) {
		if a.testsMatch(n) {
			return n
		}
	}
	return nil
}

// descendantStart returns the first node in pre-order descent under
// node, i.e. its first child.
func (a *axisWalk) descendantStart(node TreeNode) TreeNode {
	return a.tree.Children(node)
}

// descendantNext advances current by pre-order descent rooted at root:
// first child; else the nearest ancestor's next sibling within the
// subtree, stopping at root.
func (a *axisWalk) descendantNext(current, root TreeNode) TreeNode {
	if c := a.tree.Children(current); c != nil {
		return c
	}
	n := current
	for n != root {
		if sib := a.tree.Next(n); sib != nil {
			return sib
		}
		n = a.tree.Parent(n)
		if n == nil {
			return nil
		}
	}
	return nil
}
