package pathx

// evaluator executes a typed AST against a Tree, storing every result in
// a pooled value store and passing pool indices between subexpressions
// (there is no separate value stack). Node-sets accumulate in step order without
// deduplication or sorting: a flat, ordered accumulator rather than a
// document-order-sorted, deduplicated result. Callers that need a
// canonical ordering apply their own pass over the returned set.
type evaluator struct {
	tree       Tree
	pool       *ValuePool
	regexps    *regexpCache
	maxNodeSet int // 0 means unbounded

	ctx    TreeNode
	ctxPos int
	ctxLen int

	log *engineLogger
}

func newEvaluator(tree Tree, pool *ValuePool, ctx TreeNode, maxNodeSet int, log *engineLogger) *evaluator {
	return &evaluator{
		tree:       tree,
		pool:       pool,
		regexps:    newRegexpCache(),
		maxNodeSet: maxNodeSet,
		ctx:        ctx,
		ctxPos:     1,
		ctxLen:     1,
		log:        log,
	}
}

// eval dispatches on the AST tag and returns the pool index of the
// resulting value. Every subexpression yields exactly one pool index.
func (ev *evaluator) eval(e *Expr) (int, error) {
	switch e.Tag {
	case TagValue:
		return ev.pool.Add(e.Lit), nil
	case TagLocpath:
		return ev.evalLocpath(e.Path)
	case TagBinary:
		return ev.evalBinary(e)
	case TagApp:
		return ev.evalApp(e)
	default:
		return 0, newErr(EINTERNAL, 0, "unknown expression tag %d", e.Tag)
	}
}

// evalLocpath implements the step-by-step node-set pipeline: each step
// expands the current node-set along its axis and name test, then
// narrows it by its predicates, before the next step runs.
func (ev *evaluator) evalLocpath(path *Locpath) (int, error) {
	saveCtx, savePos, saveLen := ev.ctx, ev.ctxPos, ev.ctxLen
	defer func() { ev.ctx, ev.ctxPos, ev.ctxLen = saveCtx, savePos, saveLen }()

	cur := NewNodeSet(1)
	cur.Append(saveCtx)

	for i := range path.Steps {
		step := &path.Steps[i]
		next := NewNodeSet(cur.Len())
		for _, n := range cur.Slice() {
			w := newAxisWalk(ev.tree, step, n)
			for c := w.first(); c != nil; c = w.next(c) {
				next.Append(c)
				if ev.maxNodeSet > 0 && next.Len() > ev.maxNodeSet {
					return 0, newErr(EResourceLimit, 0, "node-set exceeded the configured limit of %d entries", ev.maxNodeSet)
				}
			}
		}

		if len(step.Predicates) > 0 {
			for _, pred := range step.Predicates {
				setLen := next.Len()
				err := next.filterInPlace(func(pos int, n TreeNode) (bool, error) {
					ev.ctx, ev.ctxPos, ev.ctxLen = n, pos+1, setLen
					vidx, err := ev.eval(pred)
					if err != nil {
						return false, err
					}
					return ev.truthy(vidx, pos+1), nil
				})
				if err != nil {
					return 0, err
				}
			}
		}

		if ev.log != nil {
			ev.log.step(i, step.Axis, next.Len())
		}
		cur = next
	}

	return ev.pool.AddNodeSet(cur), nil
}

// truthy implements the predicate-truthiness rule: BOOLEAN uses its own
// value, NUMBER compares to the current position, NODESET is non-empty.
func (ev *evaluator) truthy(idx int, pos int) bool {
	v := ev.pool.Get(idx)
	switch v.Kind {
	case KindBoolean:
		return v.Bool
	case KindNumber:
		return int(v.Number) == pos
	case KindNodeSet:
		return v.NodeSet.Len() > 0
	default:
		return v.Str != ""
	}
}

func (ev *evaluator) evalBinary(e *Expr) (int, error) {
	li, err := ev.eval(e.Left)
	if err != nil {
		return 0, err
	}
	ri, err := ev.eval(e.Right)
	if err != nil {
		return 0, err
	}
	lv, rv := ev.pool.Get(li), ev.pool.Get(ri)

	switch e.Op {
	case OpEq, OpNeq:
		res, err := ev.compareEq(lv, rv, e.Op == OpNeq)
		if err != nil {
			return 0, err
		}
		return ev.pool.AddBoolean(res), nil

	case OpPlus:
		return ev.pool.AddNumber(lv.Number + rv.Number), nil
	case OpMinus:
		return ev.pool.AddNumber(lv.Number - rv.Number), nil
	case OpMul:
		return ev.pool.AddNumber(lv.Number * rv.Number), nil

	default:
		return 0, newErr(EINTERNAL, 0, "unknown binary operator %d", e.Op)
	}
}

// compareEq implements the equality rules across node-set, string, and
// number operands. neq selects "!=" semantics: for a node-set operand
// that means searching for a mismatching pair, not negating the search
// for a matching one — with more than one node on either side those two
// are different results ([b != "x"] over children b="x" and b="y" must
// be true, since "y" mismatches, even though a match also exists).
func (ev *evaluator) compareEq(l, r Value, neq bool) (bool, error) {
	same := func(a, b string) bool {
		if neq {
			return a != b
		}
		return a == b
	}
	switch {
	case l.Kind == KindNodeSet && r.Kind == KindNodeSet:
		for _, ln := range l.NodeSet.Slice() {
			lval, _ := ev.tree.Value(ln)
			for _, rn := range r.NodeSet.Slice() {
				rval, _ := ev.tree.Value(rn)
				if same(lval, rval) {
					return true, nil
				}
			}
		}
		return false, nil

	case l.Kind == KindNodeSet && r.Kind == KindString:
		for _, ln := range l.NodeSet.Slice() {
			lval, _ := ev.tree.Value(ln)
			if same(lval, r.Str) {
				return true, nil
			}
		}
		return false, nil

	case l.Kind == KindString && r.Kind == KindNodeSet:
		for _, rn := range r.NodeSet.Slice() {
			rval, _ := ev.tree.Value(rn)
			if same(l.Str, rval) {
				return true, nil
			}
		}
		return false, nil

	case l.Kind == KindNumber && r.Kind == KindNumber:
		return (l.Number == r.Number) != neq, nil

	case l.Kind == KindString && r.Kind == KindString:
		return (l.Str == r.Str) != neq, nil

	default:
		// The type checker rejects every other combination before
		// evaluation ever runs; reaching here is a bug.
		return false, newErr(EINTERNAL, 0, "unreachable equality shape (%s, %s)", l.Kind, r.Kind)
	}
}

func (ev *evaluator) evalApp(e *Expr) (int, error) {
	args := make([]int, len(e.Args))
	for i, a := range e.Args {
		idx, err := ev.eval(a)
		if err != nil {
			return 0, err
		}
		args[i] = idx
	}
	return e.Fn.Call(ev, args)
}
