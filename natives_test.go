package flux

import (
	"strings"
	"testing"
)

func TestNativeSqrt(t *testing.T) {
	wantNumber(t, evalExprSrc(t, "sqrt(9)"), 3)
}

func TestNativeAbs(t *testing.T) {
	wantNumber(t, evalExprSrc(t, "abs(-5)"), 5)
	wantNumber(t, evalExprSrc(t, "abs(5)"), 5)
}

func TestNativeClockReturnsNumber(t *testing.T) {
	v := evalExprSrc(t, "clock()")
	if v.Kind != KindNumber {
		t.Fatalf("want a number, got %#v", v)
	}
}

func TestNativeSqrtRejectsNonNumber(t *testing.T) {
	_, err := runSrc(t, `sqrt("x")`)
	if err == nil || !strings.Contains(err.Error(), "sqrt() requires a number argument") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNativeAbsRejectsNonNumber(t *testing.T) {
	_, err := runSrc(t, `abs("x")`)
	if err == nil || !strings.Contains(err.Error(), "abs() requires a number argument") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNativesAreCallableValuesWithArity(t *testing.T) {
	ip := NewInterpreter()
	v, err := ip.Global.Get("sqrt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindCallable || v.Call.Arity() != 1 {
		t.Fatalf("want a 1-arity callable, got %#v", v)
	}
}
