package pathx

import "regexp"

// Function is a built-in function descriptor: name, arity, return type,
// argument-type vector, and an implementation callback that receives its
// arguments' pool indices and returns the pool index of its result.
// A single descriptor struct keeps the tagged-variant style the rest of
// this package uses (ast.go, value.go) instead of an interface-per-
// function shape.
type Function struct {
	Name     string
	Arity    int // -1 means variadic, arguments all of ArgTypes[0]
	Ret      ValueKind
	ArgTypes []ValueKind
	Call     func(ev *evaluator, args []int) (int, error)
}

// builtins is the fixed function table: last() and position() from the
// core grammar, plus count() and regexp() as predicate conveniences.
var builtins = map[string]*Function{
	"last": {
		Name: "last", Arity: 0, Ret: KindNumber,
		Call: func(ev *evaluator, args []int) (int, error) {
			return ev.pool.AddNumber(int32(ev.ctxLen)), nil
		},
	},
	"position": {
		Name: "position", Arity: 0, Ret: KindNumber,
		Call: func(ev *evaluator, args []int) (int, error) {
			return ev.pool.AddNumber(int32(ev.ctxPos)), nil
		},
	},
	"count": {
		Name: "count", Arity: 1, Ret: KindNumber, ArgTypes: []ValueKind{KindNodeSet},
		Call: func(ev *evaluator, args []int) (int, error) {
			v := ev.pool.Get(args[0])
			return ev.pool.AddNumber(int32(v.NodeSet.Len())), nil
		},
	},
	"regexp": {
		Name: "regexp", Arity: 2, Ret: KindBoolean,
		ArgTypes: []ValueKind{KindNodeSet, KindString},
		Call:     callRegexp,
	},
}

// regexpCache memoizes compiled patterns per distinct pattern string,
// so a literal pattern compiles once rather than on every evaluation of
// the predicate it appears in. Keyed by pattern text rather than by AST
// node; one cache lives for one evaluation, during which a predicate
// runs once per candidate node.
type regexpCache struct {
	compiled map[string]*regexp.Regexp
}

func newRegexpCache() *regexpCache {
	return &regexpCache{compiled: make(map[string]*regexp.Regexp)}
}

func (c *regexpCache) get(pattern string) (*regexp.Regexp, error) {
	if re, ok := c.compiled[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.compiled[pattern] = re
	return re, nil
}

// callRegexp implements regexp(nodeset-or-string, pattern) -> BOOLEAN,
// accepting either a node-set or a string. For a node-set only the first
// node's value is tested (unlike equality in eval.go, which tests every
// node); an empty node-set yields false.
func callRegexp(ev *evaluator, args []int) (int, error) {
	subject := ev.pool.Get(args[0])
	pattern := ev.pool.Get(args[1])
	if pattern.Kind != KindString {
		return 0, newErr(ETYPE, 0, "regexp() second argument must be a string")
	}

	re, err := ev.regexps.get(pattern.Str)
	if err != nil {
		return 0, newErr(ESTRING, 0, "invalid regexp pattern %q: %v", pattern.Str, err)
	}

	var text string
	switch subject.Kind {
	case KindString:
		text = subject.Str
	case KindNodeSet:
		if subject.NodeSet.Len() == 0 {
			return ev.pool.AddBoolean(false), nil
		}
		v, _ := ev.tree.Value(subject.NodeSet.At(0))
		text = v
	default:
		return 0, newErr(ETYPE, 0, "regexp() first argument must be a node-set or string")
	}

	return ev.pool.AddBoolean(re.MatchString(text)), nil
}
