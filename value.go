package flux

import "strconv"

// ValueKind discriminates the cases of Value. Mirrors the teacher's
// ValueTag, trimmed to the five Flux cases (no arrays/maps/types: those
// are explicit Non-goals of this language).
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindCallable
)

// Value is the universal runtime carrier. Equality is structural per
// case; values of different kinds always compare unequal (spec.md §3).
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
	Call   Callable
}

// Nil is the singleton null value.
var Nil = Value{Kind: KindNil}

func BoolValue(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }
func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func CallableValue(c Callable) Value { return Value{Kind: KindCallable, Call: c} }

// IsTruthy implements spec.md §4.4's truthiness rule: Nil and false are
// falsy; every other value — including 0, "", and all callables — is
// truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	default:
		return true
	}
}

// Equals implements structural equality per spec.md §3: different kinds
// are never equal, and numeric equality follows IEEE-754 default rules
// (notably NaN != NaN), preserved intentionally per DESIGN NOTES §9.
func (v Value) Equals(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber:
		return v.Number == o.Number
	case KindString:
		return v.Str == o.Str
	case KindCallable:
		return v.Call == o.Call
	default:
		return false
	}
}

// String renders v using the stringification rules of spec.md §4.4.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindString:
		return v.Str
	case KindCallable:
		return v.Call.String()
	default:
		return "<unknown>"
	}
}

// Callable is implemented by both user-defined and native functions.
type Callable interface {
	Arity() int
	String() string
}

// UserFunction holds a non-owning reference to the FunctionDecl AST node
// it was declared from, plus the environment captured at declaration
// time (its closure). The AST node is owned by the Program the driver
// keeps alive for the whole run, so this reference is always valid.
type UserFunction struct {
	Decl    *FunctionDecl
	Closure *Env
}

func (f *UserFunction) Arity() int { return len(f.Decl.Params) }
func (f *UserFunction) String() string { return "<fn " + f.Decl.Name + ">" }

// NativeFunction wraps a host-implemented function. Impl receives the
// already-evaluated argument vector and returns the call's result; it
// signals errors the same way the evaluator does, by calling fail (see
// interpreter.go), which panics and is recovered by Run or EvalExpr.
type NativeFunction struct {
	Name     string
	NumArgs  int
	Impl     func(args []Value) Value
}

func (f *NativeFunction) Arity() int { return f.NumArgs }
func (f *NativeFunction) String() string { return "<native fn " + f.Name + ">" }
