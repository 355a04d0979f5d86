package pathx

import "testing"

func parseLocpath(t *testing.T, expr string) *Locpath {
	t.Helper()
	p := newParser(expr)
	root, err := p.parse()
	if err != nil {
		t.Fatalf("parse(%q): %v", expr, err)
	}
	if root.Tag != TagLocpath {
		t.Fatalf("parse(%q): not a location path", expr)
	}
	return root.Path
}

func TestSearchLocpathExactMatch(t *testing.T) {
	root, tree := buildTestTree()
	path := parseLocpath(t, "/a")
	matched, last, err := searchLocpath(tree, path, root, 0)
	if err != nil {
		t.Fatalf("searchLocpath: %v", err)
	}
	if last != len(path.Steps)-1 {
		t.Fatalf("last = %d, want %d (every step matched)", last, len(path.Steps)-1)
	}
	if matched[last].Len() != 2 {
		t.Fatalf("final match set has %d nodes, want 2", matched[last].Len())
	}
}

func TestSearchLocpathPartialMatch(t *testing.T) {
	root, tree := buildTestTree()
	// /a/b/e: "e" does not exist under either "a/b" node.
	path := parseLocpath(t, "/a/b/e")
	matched, last, err := searchLocpath(tree, path, root, 0)
	if err != nil {
		t.Fatalf("searchLocpath: %v", err)
	}
	// Steps: [root, a, b, e]. "e" (index 3) matches nothing, but "b"
	// (index 2) still matched two nodes (b under each "a"), so the
	// longest matched prefix is ambiguous, not unique.
	if last != 2 {
		t.Fatalf("last = %d, want 2", last)
	}
	if matched[2].Len() != 2 {
		t.Fatalf("matched[2] has %d nodes, want 2", matched[2].Len())
	}
}

func TestExpandTreeCreatesMissingSuffix(t *testing.T) {
	root, tree := buildTestTree()
	// Narrow to a single "a" via a predicate so the anchor is unique,
	// then expand a brand new child under it.
	path := parseLocpath(t, "/a[1]/e/f")
	loc, err := locateAnchor(tree, path, root, 0)
	if err != nil {
		t.Fatalf("locateAnchor: %v", err)
	}
	if loc.last != 1 {
		t.Fatalf("last = %d, want 1 (root and a[1] matched, e/f did not exist)", loc.last)
	}

	leaf, err := expandTree(tree, path, loc)
	if err != nil {
		t.Fatalf("expandTree: %v", err)
	}
	label, _ := tree.Label(leaf)
	if label != "f" {
		t.Fatalf("leaf label = %q, want f", label)
	}
	parentLabel, _ := tree.Label(tree.Parent(leaf))
	if parentLabel != "e" {
		t.Fatalf("leaf's parent label = %q, want e", parentLabel)
	}
}

func TestExpandTreeRejectsWildcardSuffix(t *testing.T) {
	root, tree := buildTestTree()
	// "nonexist" doesn't exist under a[1], so the wildcard step that
	// follows it falls entirely in the unmatched suffix, where it can't
	// be materialized.
	path := parseLocpath(t, "/a[1]/nonexist/*")
	loc, err := locateAnchor(tree, path, root, 0)
	if err != nil {
		t.Fatalf("locateAnchor: %v", err)
	}
	_, err = expandTree(tree, path, loc)
	if err == nil {
		t.Fatal("expected an error expanding a wildcard suffix")
	}
	e, ok := err.(*Error)
	if !ok || e.Code != EPRED {
		t.Fatalf("error = %v, want EPRED", err)
	}
}

func TestExpandTreeRollsBackOnFailure(t *testing.T) {
	root, tree := buildTestTree()
	path := parseLocpath(t, "/a[1]/e/f/*")
	loc, err := locateAnchor(tree, path, root, 0)
	if err != nil {
		t.Fatalf("locateAnchor: %v", err)
	}
	before := countNodes(tree, root)

	_, err = expandTree(tree, path, loc)
	if err == nil {
		t.Fatal("expected an error on the trailing wildcard")
	}

	after := countNodes(tree, root)
	if before != after {
		t.Fatalf("node count changed from %d to %d; expandTree should roll back on failure", before, after)
	}
}

func countNodes(tree Tree, n TreeNode) int {
	count := 1
	for c := tree.Children(n); c != nil; c = tree.Next(c) {
		count += countNodes(tree, c)
	}
	return count
}
