package exprvalue_test

import (
	"testing"

	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

func TestTypeOf_HeterogeneousArrayWidensToValue(t *testing.T) {
	v := exprvalue.Arr{exprvalue.Num(1), exprvalue.Str("x")}
	got := exprvalue.TypeOf(v)
	arr, ok := got.(exprtype.Array)
	if !ok {
		t.Fatalf("expected Array type, got %T", got)
	}
	if arr.Item.String() != exprtype.Value.String() {
		t.Fatalf("expected widened item type Value, got %s", arr.Item)
	}
}

func TestTypeOf_HomogeneousArrayKeepsItemType(t *testing.T) {
	v := exprvalue.Arr{exprvalue.Num(1), exprvalue.Num(2)}
	got := exprvalue.TypeOf(v)
	arr := got.(exprtype.Array)
	if arr.Item.String() != exprtype.Number.String() {
		t.Fatalf("expected item type Number, got %s", arr.Item)
	}
	if arr.Length == nil || *arr.Length != 2 {
		t.Fatalf("expected length 2, got %v", arr.Length)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		v    exprvalue.Value
		want string
	}{
		{exprvalue.Null{}, "null"},
		{exprvalue.Bool(true), "true"},
		{exprvalue.Num(9), "9"},
		{exprvalue.Str("hi"), "\"hi\""},
		{exprvalue.Arr{exprvalue.Num(1), exprvalue.Num(2)}, "[1,2]"},
	}
	for _, c := range cases {
		if got := exprvalue.Stringify(c.v); got != c.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestIsSafeInteger_MSIBoundary(t *testing.T) {
	if !exprvalue.IsSafeInteger(9007199254740991) {
		t.Fatal("2^53-1 must be accepted")
	}
	if exprvalue.IsSafeInteger(9007199254740992) {
		t.Fatal("2^53 must be rejected")
	}
}

func TestEqual_CrossTypeIsFalseNotPanic(t *testing.T) {
	if exprvalue.Equal(exprvalue.Num(1), exprvalue.Str("1")) {
		t.Fatal("cross-type equality should be false")
	}
}
