package exprtype_test

import (
	"testing"

	"github.com/exprstyle/mapexpr/internal/exprtype"
)

func TestIsSubtype_Primitives(t *testing.T) {
	cases := []struct {
		expected, actual exprtype.Type
		wantOK           bool
	}{
		{exprtype.Number, exprtype.Number, true},
		{exprtype.Value, exprtype.Number, true},
		{exprtype.Value, exprtype.Object, true},
		{exprtype.Number, exprtype.String, false},
		{exprtype.Object, exprtype.Value, false},
	}
	for _, c := range cases {
		err := exprtype.IsSubtype(c.expected, c.actual)
		if (err == nil) != c.wantOK {
			t.Fatalf("IsSubtype(%s, %s) = %v, want ok=%v", c.expected, c.actual, err, c.wantOK)
		}
	}
}

func TestIsSubtype_Array(t *testing.T) {
	numArr3 := exprtype.NewArrayN(exprtype.Number, 3)
	numArrAny := exprtype.NewArray(exprtype.Number)
	strArrAny := exprtype.NewArray(exprtype.String)

	if err := exprtype.IsSubtype(numArrAny, numArr3); err != nil {
		t.Fatalf("Array(Number,3) should be <: Array(Number,_): %v", err)
	}
	if err := exprtype.IsSubtype(numArr3, numArrAny); err == nil {
		t.Fatalf("Array(Number,_) should not be <: Array(Number,3)")
	}
	if err := exprtype.IsSubtype(strArrAny, numArrAny); err == nil {
		t.Fatalf("Array(Number) should not be <: Array(String)")
	}
	if err := exprtype.IsSubtype(exprtype.Value, numArr3); err != nil {
		t.Fatalf("every array is <: Value: %v", err)
	}
}

func TestEqual(t *testing.T) {
	if !exprtype.Equal(exprtype.NewArray(exprtype.Number), exprtype.NewArray(exprtype.Number)) {
		t.Fatal("identical array types should be Equal")
	}
	if exprtype.Equal(exprtype.NewArrayN(exprtype.Number, 2), exprtype.NewArrayN(exprtype.Number, 3)) {
		t.Fatal("different array lengths should not be Equal")
	}
}
