package pathx

// searchLocpath runs a locpath against ctx the way evalLocpath does, but
// additionally tracks how far a prefix of the steps matched anything at
// all. This is what ExpandTree needs: given a path that doesn't fully
// match an existing tree, find the longest matched prefix so only the
// remaining suffix has to be materialized.
//
// matched[i] holds the node-set produced by step i (0-based). last is
// the greatest index with a non-empty node-set, or -1 if step 0 itself
// produced nothing (including the case of zero steps, which trivially
// matches the root).
func searchLocpath(tree Tree, path *Locpath, ctx TreeNode, maxNodeSet int) (matched []*NodeSet, last int, err error) {
	matched = make([]*NodeSet, len(path.Steps))
	cur := NewNodeSet(1)
	cur.Append(ctx)
	last = -1

	pool := NewValuePool()
	ev := newEvaluator(tree, pool, ctx, maxNodeSet, nil)

	for i := range path.Steps {
		step := &path.Steps[i]
		next := NewNodeSet(cur.Len())
		for _, n := range cur.Slice() {
			w := newAxisWalk(tree, step, n)
			for c := w.first(); c != nil; c = w.next(c) {
				next.Append(c)
				if maxNodeSet > 0 && next.Len() > maxNodeSet {
					return nil, 0, newErr(EResourceLimit, 0, "node-set exceeded the configured limit of %d entries", maxNodeSet)
				}
			}
		}

		if len(step.Predicates) > 0 {
			for _, pred := range step.Predicates {
				setLen := next.Len()
				ferr := next.filterInPlace(func(pos int, n TreeNode) (bool, error) {
					ev.ctx, ev.ctxPos, ev.ctxLen = n, pos+1, setLen
					vidx, err := ev.eval(pred)
					if err != nil {
						return false, err
					}
					return ev.truthy(vidx, pos+1), nil
				})
				if ferr != nil {
					return nil, 0, ferr
				}
			}
		}

		matched[i] = next
		if next.Len() > 0 {
			last = i
		}
		cur = next
	}

	return matched, last, nil
}

// locateAnchor runs searchLocpath and distills its result into the
// single (last, anchor) pair expandTree needs, erroring out if the
// longest matched prefix ends in an ambiguous (non-unique) node-set.
func locateAnchor(tree Tree, path *Locpath, ctx TreeNode, maxNodeSet int) (searchResult, error) {
	matched, last, err := searchLocpath(tree, path, ctx, maxNodeSet)
	if err != nil {
		return searchResult{}, err
	}
	if last < 0 {
		return searchResult{last: -1, anchor: ctx}, nil
	}
	set := matched[last]
	if set.Len() != 1 {
		return searchResult{}, newErr(EPRED, 0, "ambiguous match at step %d: %d candidate nodes", last, set.Len())
	}
	return searchResult{last: last, anchor: set.At(0)}, nil
}

// expandTree materializes the unmatched suffix of path as fresh
// children, one per step past loc.last, starting from loc.anchor.
//
// Only CHILD-axis steps with a concrete (non-wildcard, non-glob) name
// test can be materialized this way; any other axis or wildcard in the
// unmatched suffix is a fatal error, since there's no sensible node to
// create for "descendant::foo" or "*".
//
// On any failure after nodes have already been created, every node
// created by this call is rolled back via FreeTree before returning.
func expandTree(tree Tree, path *Locpath, loc searchResult) (TreeNode, error) {
	anchor := loc.anchor
	suffix := path.Steps[loc.last+1:]
	if len(suffix) == 0 {
		return anchor, nil
	}

	created := make([]TreeNode, 0, len(suffix))
	rollback := func() {
		for i := len(created) - 1; i >= 0; i-- {
			_ = tree.FreeTree(created[i])
		}
	}

	cur := anchor
	for i := range suffix {
		step := &suffix[i]
		if step.Axis != AxisChild {
			rollback()
			return nil, newErr(EPRED, 0, "cannot create a node for axis %q", step.Axis)
		}
		if step.Test.Any || step.Test.Glob {
			rollback()
			return nil, newErr(EPRED, 0, "cannot create a node for a wildcard step")
		}
		if len(step.Predicates) > 0 {
			rollback()
			return nil, newErr(EPRED, 0, "cannot create a node for a predicated step")
		}

		child, err := tree.MakeTree(step.Test.Name, "", cur)
		if err != nil {
			rollback()
			return nil, err
		}
		if err := tree.AppendChild(cur, child); err != nil {
			rollback()
			return nil, err
		}
		created = append(created, child)
		cur = child
	}

	return cur, nil
}
