package pathx

import "testing"

func parseOK(t *testing.T, expr string) *Expr {
	t.Helper()
	p := newParser(expr)
	root, err := p.parse()
	if err != nil {
		t.Fatalf("parse(%q): unexpected error: %v", expr, err)
	}
	return root
}

func parseErr(t *testing.T, expr string) *Error {
	t.Helper()
	p := newParser(expr)
	_, err := p.parse()
	if err == nil {
		t.Fatalf("parse(%q): expected an error, got none", expr)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("parse(%q): error is not *Error: %v", expr, err)
	}
	return e
}

func TestParseSimplePaths(t *testing.T) {
	cases := []struct {
		expr      string
		wantSteps int
	}{
		{"/a", 2},
		{"/a/b", 3},
		{"a/b", 2},
		{".", 1},
		{"..", 1},
		{"/", 1},
	}
	for _, c := range cases {
		root := parseOK(t, c.expr)
		if root.Tag != TagLocpath {
			t.Errorf("parse(%q): tag = %v, want TagLocpath", c.expr, root.Tag)
			continue
		}
		if got := len(root.Path.Steps); got != c.wantSteps {
			t.Errorf("parse(%q): %d steps, want %d", c.expr, got, c.wantSteps)
		}
	}
}

func TestParseDescendant(t *testing.T) {
	root := parseOK(t, "//c")
	if len(root.Path.Steps) != 3 {
		t.Fatalf("//c: got %d steps, want 3 (root, descendant-or-self, c)", len(root.Path.Steps))
	}
	if root.Path.Steps[1].Axis != AxisDescendantOrSelf {
		t.Errorf("step 1 axis = %v, want descendant-or-self", root.Path.Steps[1].Axis)
	}
	if root.Path.Steps[2].Test.Name != "c" {
		t.Errorf("step 2 name = %q, want c", root.Path.Steps[2].Test.Name)
	}
}

func TestParseAxisPrefix(t *testing.T) {
	root := parseOK(t, "ancestor::foo")
	step := root.Path.Steps[0]
	if step.Axis != AxisAncestor {
		t.Errorf("axis = %v, want ancestor", step.Axis)
	}
	if step.Test.Name != "foo" {
		t.Errorf("name = %q, want foo", step.Test.Name)
	}
}

func TestParsePredicate(t *testing.T) {
	root := parseOK(t, "/a[2]")
	step := root.Path.Steps[1]
	if len(step.Predicates) != 1 {
		t.Fatalf("got %d predicates, want 1", len(step.Predicates))
	}
	if step.Predicates[0].Tag != TagValue {
		t.Errorf("predicate tag = %v, want TagValue", step.Predicates[0].Tag)
	}
}

func TestParseFunctionCall(t *testing.T) {
	root := parseOK(t, `count(/a)`)
	if root.Tag != TagApp {
		t.Fatalf("tag = %v, want TagApp", root.Tag)
	}
	if root.Fn.Name != "count" {
		t.Errorf("fn = %q, want count", root.Fn.Name)
	}
	if len(root.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(root.Args))
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	root := parseOK(t, "last() + 1 = 3")
	if root.Tag != TagBinary || root.Op != OpEq {
		t.Fatalf("top-level op = %v (tag %v), want = ", root.Op, root.Tag)
	}
	if root.Left.Tag != TagBinary || root.Left.Op != OpPlus {
		t.Fatalf("left operand is not a + expression")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		expr string
		code Code
	}{
		{"1 +", ENAME},
		{"'unterminated", EDELIM},
		{"a[", ENAME}, // the predicate's own expression is empty
		{"foo()", ENAME},
		{"last(1)", EDELIM},
		{"count(/))", EDELIM},
	}
	for _, c := range cases {
		e := parseErr(t, c.expr)
		if e.Code != c.code {
			t.Errorf("parse(%q): code = %v, want %v", c.expr, e.Code, c.code)
		}
	}
}

func TestParseTrailingInputRejected(t *testing.T) {
	e := parseErr(t, "/a extra")
	if e.Code != EDELIM {
		t.Errorf("code = %v, want EDELIM", e.Code)
	}
}
