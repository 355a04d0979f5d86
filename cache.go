package pathx

import (
	groupcachelru "github.com/golang/groupcache/lru"
	hashicorplru "github.com/hashicorp/golang-lru/v2"
)

// astCache memoizes parsed-and-checked ASTs by source text. It is a
// per-Engine field rather than a package-level global, so two Engines
// configured with different cache sizes don't fight over one shared LRU.
type astCache struct {
	c *groupcachelru.Cache
}

func newASTCache(size int) *astCache {
	return &astCache{c: groupcachelru.New(size)}
}

func (a *astCache) get(expr string) (*Expr, bool) {
	v, ok := a.c.Get(expr)
	if !ok {
		return nil, false
	}
	root, ok := v.(*Expr)
	return root, ok
}

func (a *astCache) put(expr string, root *Expr) {
	a.c.Add(expr, root)
}

// searchKey identifies one searchLocpath computation: the expression
// text plus the identity of the context node it ran against, since the
// same expression against a different subtree needs a different cached
// prefix match.
type searchKey struct {
	expr string
	ctx  TreeNode
}

// searchResult is the distilled outcome of searchLocpath that
// expandTree needs to reuse without re-walking the tree: the index of
// the last step with a non-empty node-set, and that step's unique
// matching node (the search's context node when last < 0, meaning
// nothing matched at all).
type searchResult struct {
	last   int
	anchor TreeNode
}

// searchCache memoizes the outcome of a prefix search against a given
// context node, keyed by expression text and node identity.
type searchCache struct {
	c *hashicorplru.Cache[searchKey, searchResult]
}

func newSearchCache(size int) *searchCache {
	c, _ := hashicorplru.New[searchKey, searchResult](size)
	return &searchCache{c: c}
}

func (s *searchCache) get(key searchKey) (searchResult, bool) {
	return s.c.Get(key)
}

func (s *searchCache) put(key searchKey, res searchResult) {
	s.c.Add(key, res)
}

// invalidate drops every cached search result. Dropping only the
// entries whose context was inside the subtree that just gained new
// nodes would need reverse edges the Tree contract doesn't provide, so
// ExpandTree purges the whole cache on any successful mutation instead
// of risking a stale hit.
func (s *searchCache) invalidate() {
	s.c.Purge()
}
