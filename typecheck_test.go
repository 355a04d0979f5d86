package pathx

import "testing"

func checkExpr(t *testing.T, expr string) (*Expr, error) {
	t.Helper()
	p := newParser(expr)
	root, err := p.parse()
	if err != nil {
		t.Fatalf("parse(%q): %v", expr, err)
	}
	return root, check(root)
}

func TestCheckWellTyped(t *testing.T) {
	cases := []struct {
		expr string
		want ValueKind
	}{
		{"/a", KindNodeSet},
		{"last() + 1", KindNumber},
		{"/a = 'x'", KindBoolean},
		{"count(/a)", KindNumber},
		{"/a[1]", KindNodeSet},
	}
	for _, c := range cases {
		root, err := checkExpr(t, c.expr)
		if err != nil {
			t.Errorf("check(%q): unexpected error: %v", c.expr, err)
			continue
		}
		if root.Type != c.want {
			t.Errorf("check(%q): type = %v, want %v", c.expr, root.Type, c.want)
		}
	}
}

func TestCheckTypeErrors(t *testing.T) {
	cases := []string{
		`1 + "x"`,
		`count(1)`,
		`regexp(1, /a)`,
	}
	for _, expr := range cases {
		_, err := checkExpr(t, expr)
		if err == nil {
			t.Errorf("check(%q): expected a type error, got none", expr)
			continue
		}
		e, ok := err.(*Error)
		if !ok || e.Code != ETYPE {
			t.Errorf("check(%q): error = %v, want ETYPE", expr, err)
		}
	}
}
