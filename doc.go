// Package pathx implements a small XPath-like path-expression engine for
// locating and creating nodes in a labelled, ordered, rooted tree.
//
// A Session parses an expression once against an Engine's shared caches,
// type-checks it, and then lazily evaluates it against a Tree node on the
// first call to First or Next. Expressions can also be used to materialize
// a missing path suffix with ExpandTree.
//
// The engine is single-threaded and synchronous: every exported method
// runs to completion before returning, and a Session is not safe for
// concurrent use. Multiple Sessions may run concurrently against the same
// Tree as long as nothing mutates it underneath them.
package pathx
