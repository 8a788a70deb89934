package flux

import (
	"math"
	"time"
)

// registerNatives binds the small set of host functions spec.md §4.4
// names as native collaborators: clock, sqrt, abs. Grounded on the
// teacher's builtin_misc.go, which wraps math package functions the same
// way, but trimmed to Flux's arity-only native contract — no parameter
// or return type declarations, since Flux natives are otherwise
// indistinguishable from user functions at the call site.
func registerNatives(ip *Interpreter) {
	define := func(name string, arity int, impl func(args []Value) Value) {
		ip.Global.Define(name, CallableValue(&NativeFunction{Name: name, NumArgs: arity, Impl: impl}))
	}

	define("clock", 0, func(args []Value) Value {
		return NumberValue(float64(time.Now().UnixNano()) / 1e9)
	})

	define("sqrt", 1, func(args []Value) Value {
		x := args[0]
		if x.Kind != KindNumber {
			fail(0, 0, "sqrt() requires a number argument")
		}
		return NumberValue(math.Sqrt(x.Number))
	})

	define("abs", 1, func(args []Value) Value {
		x := args[0]
		if x.Kind != KindNumber {
			fail(0, 0, "abs() requires a number argument")
		}
		return NumberValue(math.Abs(x.Number))
	})
}
