package pathx

// Session is a parsed, type-checked expression bound to one context
// node. It is not safe for concurrent use; create one Session per
// goroutine.
//
// A Session evaluates lazily: parsing and type-checking happen in
// Parse, but the node-set itself is not computed until the first call
// to First, Next, or FindOne. Once a Session's error is latched (by a
// failed evaluation or a failed ExpandTree), every subsequent method is
// a no-op that returns the same error. A failed Parse returns its error
// directly and no Session.
type Session struct {
	engine *Engine
	tree   Tree
	text   string
	root   *Expr

	ctx TreeNode

	evaluated bool
	result    *NodeSet
	cursor    int

	err *Error
}

// Parse compiles expr against e's shared caches and binds it to ctx
// for later evaluation. It returns an error immediately if expr fails
// to parse or fails static type checking; no tree walk happens yet.
func (e *Engine) Parse(tree Tree, ctx TreeNode, expr string) (*Session, error) {
	e.log.parseStart(expr)

	root, err := e.parseAndCheck(expr)
	if err != nil {
		e.log.latched(err)
		return nil, err
	}

	return &Session{engine: e, tree: tree, text: expr, root: root, ctx: ctx}, nil
}

func (e *Engine) parseAndCheck(expr string) (*Expr, error) {
	if e.asts != nil {
		if root, ok := e.asts.get(expr); ok {
			e.log.cacheHit("ast", expr)
			return root, nil
		}
		e.log.cacheMiss("ast", expr)
	}

	p := newParser(expr)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	if err := check(root); err != nil {
		return nil, err
	}

	if e.asts != nil {
		e.asts.put(expr, root)
	}
	return root, nil
}

// latch records err as the Session's permanent failure if one isn't
// already set, and returns the session's error (new or prior).
func (s *Session) latch(err *Error) *Error {
	if s.err == nil {
		s.err = err
		s.engine.log.latched(err)
	}
	return s.err
}

func (s *Session) evaluate() error {
	if s.err != nil {
		return s.err
	}
	if s.evaluated {
		return nil
	}

	pool := NewValuePool()
	ev := newEvaluator(s.tree, pool, s.ctx, s.engine.maxNodeSet, s.engine.log)
	idx, err := ev.eval(s.root)
	if err != nil {
		e, ok := err.(*Error)
		if !ok {
			e = newErr(EINTERNAL, 0, "%v", err)
		}
		return s.latch(e)
	}

	v := pool.Get(idx)
	if v.Kind != KindNodeSet {
		return s.latch(newErr(ETYPE, 0, "expression does not evaluate to a node-set"))
	}

	s.result = v.NodeSet
	s.evaluated = true
	return nil
}

// First returns the first matching node, evaluating the Session's
// expression if this is the first call. It returns (nil, nil) if the
// expression matched nothing.
func (s *Session) First() (TreeNode, error) {
	if err := s.evaluate(); err != nil {
		return nil, err
	}
	s.cursor = 0
	if s.result.Len() == 0 {
		return nil, nil
	}
	return s.result.At(0), nil
}

// Next returns the next matching node after the most recent First/Next
// call, or (nil, nil) once the result set is exhausted.
func (s *Session) Next() (TreeNode, error) {
	if err := s.evaluate(); err != nil {
		return nil, err
	}
	s.cursor++
	if s.cursor >= s.result.Len() {
		return nil, nil
	}
	return s.result.At(s.cursor), nil
}

// FindOne evaluates the expression and reports whether it matched
// exactly one node. The returned status is 1 for a unique match, 0 for
// no match, and -1 for an ambiguous match (more than one node); node is
// non-nil only when status is 1.
func (s *Session) FindOne() (node TreeNode, status int, err error) {
	if err := s.evaluate(); err != nil {
		return nil, 0, err
	}
	switch s.result.Len() {
	case 0:
		return nil, 0, nil
	case 1:
		return s.result.At(0), 1, nil
	default:
		return nil, -1, nil
	}
}

// ExpandTree materializes whatever suffix of the Session's location
// path doesn't already exist under its context node, creating the
// minimal set of intermediate nodes needed, and returns the resulting
// leaf. It fails if the expression isn't a plain location path, if a
// prefix match is ambiguous, or if the unmatched suffix contains
// anything other than concrete CHILD-axis steps (no wildcards,
// predicates, or other axes).
func (s *Session) ExpandTree() (TreeNode, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.root.Tag != TagLocpath {
		return nil, s.latch(newErr(ETYPE, 0, "ExpandTree requires a location path expression"))
	}

	var loc searchResult
	var err error
	key := searchKey{expr: s.text, ctx: s.ctx}
	if s.engine.searches != nil {
		if cached, ok := s.engine.searches.get(key); ok {
			s.engine.log.cacheHit("search", s.text)
			loc = cached
		} else {
			s.engine.log.cacheMiss("search", s.text)
			loc, err = locateAnchor(s.tree, s.root.Path, s.ctx, s.engine.maxNodeSet)
		}
	} else {
		loc, err = locateAnchor(s.tree, s.root.Path, s.ctx, s.engine.maxNodeSet)
	}
	if err != nil {
		e, ok := err.(*Error)
		if !ok {
			e = newErr(EINTERNAL, 0, "%v", err)
		}
		return nil, s.latch(e)
	}

	leaf, err := expandTree(s.tree, s.root.Path, loc)
	if err != nil {
		e, ok := err.(*Error)
		if !ok {
			e = newErr(EINTERNAL, 0, "%v", err)
		}
		return nil, s.latch(e)
	}

	if s.engine.searches != nil {
		if loc.last < len(s.root.Path.Steps)-1 {
			// The tree just grew under loc.anchor; any cached search
			// whose context sat inside that subtree may now be stale.
			s.engine.searches.invalidate()
		}
		s.engine.searches.put(key, searchResult{last: len(s.root.Path.Steps) - 1, anchor: leaf})
	}

	return leaf, nil
}

// Error returns the Session's latched error, or nil if it hasn't
// failed.
func (s *Session) Error() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// ErrorInfo returns the latched error's message and the sanitized
// snippet of source text around its position, for a human-facing
// diagnostic. It returns ("", "", false) if the Session hasn't failed.
func (s *Session) ErrorInfo() (message, snippet string, ok bool) {
	if s.err == nil {
		return "", "", false
	}
	return s.err.Msg, snippetAround(s.text, s.err.Pos, 20), true
}
