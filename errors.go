package pathx

import "fmt"

// Code identifies the category of a latched engine error. Ordering is
// stable across releases; callers that persist a Code (logs, test
// fixtures) can rely on it not being renumbered.
type Code int

const (
	NOERROR Code = iota
	ENAME        // empty/invalid name
	ESTRING      // illegal string literal
	ENUMBER      // illegal number (overflow or non-digit)
	EDELIM       // missing expected '/' , '(' , ')' , or wrong arity
	EPRED        // unmatched ']' / malformed predicate
	ENOMEM       // allocation failure
	EPAREN       // unmatched '(' or ')'
	ESLASH       // misplaced or missing '/'
	EINTERNAL    // stack imbalance / impossible AST shape
	ETYPE        // static type error
	// EResourceLimit fires when a node-set grows past the configured
	// cap (WithMaxNodeSetSize), guarding against runaway
	// descendant-axis expansion on pathological trees.
	EResourceLimit
)

var codeNames = [...]string{
	NOERROR:        "no error",
	ENAME:          "invalid name",
	ESTRING:        "illegal string literal",
	ENUMBER:        "illegal number",
	EDELIM:         "missing delimiter",
	EPRED:          "malformed predicate",
	ENOMEM:         "allocation failure",
	EPAREN:         "unmatched parenthesis or bracket",
	ESLASH:         "misplaced '/'",
	EINTERNAL:      "internal error",
	ETYPE:          "type error",
	EResourceLimit: "resource limit exceeded",
}

// String returns a short English name for a Code, suitable for
// inclusion in a diagnostic message.
func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(codeNames) {
		return "unknown error"
	}
	return codeNames[c]
}

// Error is the latched error type every engine operation returns once a
// Session has failed. It satisfies the standard error interface so
// callers can use errors.Is/errors.As against a specific Code without
// reaching into engine internals.
type Error struct {
	Code Code
	Msg  string
	// Pos is the byte offset into the source expression where a syntax
	// error was detected. It is left at 0 for errors raised after
	// parsing (type checking, evaluation, ExpandTree), which do not carry
	// a parse position.
	Pos int
}

func (e *Error) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is lets errors.Is(err, pathx.ErrCode(ENAME)) work without exposing the
// Error struct's other fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrCode builds a sentinel *Error usable with errors.Is to check only a
// Session's failure category, ignoring message and position.
func ErrCode(c Code) *Error { return &Error{Code: c} }

func newErr(code Code, pos int, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Pos: pos}
}
