package pathx

import "testing"

func TestSessionFirstAndNext(t *testing.T) {
	root, tree := buildTestTree()
	engine := NewEngine()
	sess, err := engine.Parse(tree, root, "/a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	n, err := sess.First()
	if err != nil || n == nil {
		t.Fatalf("First() = %v, %v", n, err)
	}
	count := 1
	for {
		n, err = sess.Next()
		if err != nil {
			t.Fatalf("Next(): %v", err)
		}
		if n == nil {
			break
		}
		count++
	}
	if count != 2 {
		t.Fatalf("iterated %d nodes, want 2", count)
	}
}

func TestSessionFindOne(t *testing.T) {
	root, tree := buildTestTree()
	engine := NewEngine()

	cases := []struct {
		expr       string
		wantStatus int
	}{
		{"/d", 1},
		{"/missing", 0},
		{"/a", -1},
	}
	for _, c := range cases {
		sess, err := engine.Parse(tree, root, c.expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.expr, err)
		}
		_, status, err := sess.FindOne()
		if err != nil {
			t.Fatalf("FindOne(%q): %v", c.expr, err)
		}
		if status != c.wantStatus {
			t.Errorf("FindOne(%q) status = %d, want %d", c.expr, status, c.wantStatus)
		}
	}
}

func TestSessionParseErrorIsErrorValue(t *testing.T) {
	_, tree := buildTestTree()
	engine := NewEngine()
	_, err := engine.Parse(tree, nil, "a[")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("error is not *Error: %v", err)
	}
}

func TestSessionErrorLatchesOnce(t *testing.T) {
	root, tree := buildTestTree()
	engine := NewEngine()
	// Evaluating a non-node-set expression through First is a type
	// mismatch caught at evaluation, not at parse time.
	sess, err := engine.Parse(tree, root, "1 + 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err1 := sess.First()
	if err1 == nil {
		t.Fatal("expected an evaluation error")
	}
	_, err2 := sess.First()
	if err1.Error() != err2.Error() {
		t.Errorf("latched error changed between calls: %q vs %q", err1, err2)
	}
}

func TestSessionExpandTree(t *testing.T) {
	root, tree := buildTestTree()
	engine := NewEngine()
	sess, err := engine.Parse(tree, root, "/a[1]/newchild")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	leaf, err := sess.ExpandTree()
	if err != nil {
		t.Fatalf("ExpandTree: %v", err)
	}
	label, _ := tree.Label(leaf)
	if label != "newchild" {
		t.Fatalf("leaf label = %q, want newchild", label)
	}

	// Evaluating the same expression now finds the created node.
	sess2, err := engine.Parse(tree, root, "/a[1]/newchild")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n, _, err := sess2.FindOne()
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if n == nil {
		t.Fatal("expected to find the newly created node")
	}
}

func TestSessionErrorInfoReturnsMessageAndSnippet(t *testing.T) {
	_, tree := buildTestTree()
	engine := NewEngine()
	_, err := engine.Parse(tree, nil, "1 +")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	e := err.(*Error)
	sess := &Session{text: "1 +", err: e}
	msg, snippet, ok := sess.ErrorInfo()
	if !ok {
		t.Fatal("ErrorInfo ok = false, want true")
	}
	if msg == "" {
		t.Error("expected a non-empty message")
	}
	if snippet == "" {
		t.Error("expected a non-empty snippet")
	}
}

func TestEngineASTCacheReusesParsedExpression(t *testing.T) {
	root, tree := buildTestTree()
	engine := NewEngine(WithExpressionCacheSize(8))
	sess1, err := engine.Parse(tree, root, "/a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sess2, err := engine.Parse(tree, root, "/a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sess1.root != sess2.root {
		t.Error("expected the cached AST to be reused across sessions")
	}
}
