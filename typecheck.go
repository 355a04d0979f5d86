package pathx

// check walks the AST bottom-up, assigning Type to every node and
// rejecting ill-typed trees. It stops at the first mismatch.
func check(e *Expr) error {
	switch e.Tag {
	case TagValue:
		// Type was assigned at parse time (KindString or KindNumber).
		return nil

	case TagLocpath:
		for i := range e.Path.Steps {
			for _, pred := range e.Path.Steps[i].Predicates {
				if err := check(pred); err != nil {
					return err
				}
				switch pred.Type {
				case KindNodeSet, KindNumber, KindBoolean:
				default:
					return newErr(ETYPE, 0, "predicate must be a node-set, number, or boolean, got %s", pred.Type)
				}
			}
		}
		e.Type = KindNodeSet
		return nil

	case TagBinary:
		if err := check(e.Left); err != nil {
			return err
		}
		if err := check(e.Right); err != nil {
			return err
		}
		return checkBinary(e)

	case TagApp:
		for _, a := range e.Args {
			if err := check(a); err != nil {
				return err
			}
		}
		if err := checkAppArgs(e); err != nil {
			return err
		}
		e.Type = e.Fn.Ret
		return nil

	default:
		return newErr(EINTERNAL, 0, "unknown expression tag %d", e.Tag)
	}
}

func checkBinary(e *Expr) error {
	lt, rt := e.Left.Type, e.Right.Type

	switch e.Op {
	case OpEq, OpNeq:
		isSetOrStr := func(k ValueKind) bool { return k == KindNodeSet || k == KindString }
		switch {
		case isSetOrStr(lt) && isSetOrStr(rt):
		case lt == KindNumber && rt == KindNumber:
		default:
			return newErr(ETYPE, 0, "operator %s requires (node-set|string, node-set|string) or (number, number), got (%s, %s)", e.Op, lt, rt)
		}
		e.Type = KindBoolean
		return nil

	case OpPlus, OpMinus, OpMul:
		if lt != KindNumber || rt != KindNumber {
			return newErr(ETYPE, 0, "operator %s requires (number, number), got (%s, %s)", e.Op, lt, rt)
		}
		e.Type = KindNumber
		return nil

	default:
		return newErr(EINTERNAL, 0, "unknown binary operator %d", e.Op)
	}
}

// checkAppArgs validates argument types for the fixed built-in table.
// Only count and regexp take arguments; last and position are arity 0
// and trivially well-typed.
func checkAppArgs(e *Expr) error {
	switch e.Fn.Name {
	case "count":
		if e.Args[0].Type != KindNodeSet {
			return newErr(ETYPE, 0, "count() requires a node-set argument, got %s", e.Args[0].Type)
		}
	case "regexp":
		t0 := e.Args[0].Type
		if t0 != KindNodeSet && t0 != KindString {
			return newErr(ETYPE, 0, "regexp() first argument must be a node-set or string, got %s", t0)
		}
		if e.Args[1].Type != KindString {
			return newErr(ETYPE, 0, "regexp() second argument must be a string, got %s", e.Args[1].Type)
		}
	}
	return nil
}
