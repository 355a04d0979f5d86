package pathx

import "strings"

// ExprTag discriminates the closed set of expression-AST shapes. Expr is
// a single tagged struct rather than one concrete type per shape behind
// an interface: a closed sum type where adding a new kind means
// extending the discriminator and every exhaustive switch, not adding
// another type that satisfies an open interface.
type ExprTag uint8

const (
	TagLocpath ExprTag = iota
	TagBinary
	TagValue
	TagApp
)

// BinOp is the set of binary operators the grammar allows:
// '=', '!=', '+', '-', '*'.
type BinOp uint8

const (
	OpEq BinOp = iota
	OpNeq
	OpPlus
	OpMinus
	OpMul
)

func (op BinOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNeq:
		return "!="
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMul:
		return "*"
	default:
		return "?"
	}
}

// Expr is one node of the expression AST. Every node carries a Type
// field. The parser sets it on location-path and literal nodes; binary
// and function-application nodes hold the zero value (KindNodeSet) until
// the type checker fills it in.
type Expr struct {
	Tag  ExprTag
	Type ValueKind

	// TagLocpath
	Path *Locpath

	// TagBinary
	Op          BinOp
	Left, Right *Expr

	// TagValue: the literal itself, for parsed number and string
	// literals. Held inline rather than as a pool index: the AST can
	// outlive the pool it was parsed with (it's cached across
	// evaluations by expression text), so a literal can't reference a
	// pool slot that might already be gone by the time it's evaluated.
	Lit Value

	// TagApp
	Fn   *Function
	Args []*Expr
}

// Axis is the set of tree-navigation directions a Step may take.
type Axis uint8

const (
	AxisSelf Axis = iota
	AxisChild
	AxisDescendant
	AxisDescendantOrSelf
	AxisParent
	AxisAncestor
	AxisRoot
)

func (a Axis) String() string {
	switch a {
	case AxisSelf:
		return "self"
	case AxisChild:
		return "child"
	case AxisDescendant:
		return "descendant"
	case AxisDescendantOrSelf:
		return "descendant-or-self"
	case AxisParent:
		return "parent"
	case AxisAncestor:
		return "ancestor"
	case AxisRoot:
		return "root"
	default:
		return "?"
	}
}

// NameTest is a step's optional name filter. An absent test (Name =="",
// Any == true) matches any node. Glob is set only when Name contains an
// embedded '*' that is not the bare wildcard step, enabling prefix/
// suffix/contains matching against a node's label.
type NameTest struct {
	Any  bool
	Name string
	Glob bool
}

// Matches reports whether label satisfies the test. An empty string and
// an absent label are treated as equal by the caller before this is
// invoked; NameTest itself only ever sees the resolved label string.
func (nt NameTest) Matches(label string) bool {
	if nt.Any {
		return true
	}
	if nt.Glob {
		return globMatch(nt.Name, label)
	}
	return nt.Name == label
}

// globMatch implements a restricted glob: a pattern with one '*'
// ("prefix*", "*suffix", "prefix*suffix") matches any run of bytes in
// its place, and a pattern with '*' at both ends ("*mid*") is a
// contains test. Any other pattern with more than one '*' is compared
// literally.
func globMatch(pattern, s string) bool {
	first := strings.IndexByte(pattern, '*')
	if first < 0 {
		return pattern == s
	}
	last := strings.LastIndexByte(pattern, '*')
	if first == last {
		prefix, suffix := pattern[:first], pattern[first+1:]
		if len(s) < len(prefix)+len(suffix) {
			return false
		}
		return s[:len(prefix)] == prefix && s[len(s)-len(suffix):] == suffix
	}
	if first == 0 && last == len(pattern)-1 {
		return strings.Contains(s, pattern[1:last])
	}
	return pattern == s
}

// Step is one element of a Locpath: an axis, an optional name test, and
// an ordered list of predicate expressions.
type Step struct {
	Axis       Axis
	Test       NameTest
	Predicates []*Expr
}

// Locpath is an ordered sequence of Steps, evaluated left-to-right
// against an input context node.
type Locpath struct {
	Steps []Step
}
