package exprnodes_test

import (
	"testing"

	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/google/uuid"
)

func mustEval(t *testing.T, n exprast.Node, ctx *exprast.EvaluationContext) exprvalue.Value {
	t.Helper()
	v, err := n.Evaluate(ctx)
	if err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}
	return v
}

func TestLiteral(t *testing.T) {
	lit := exprnodes.NewLiteral(exprvalue.Num(42))
	if lit.Type().String() != "number" {
		t.Fatalf("expected number type, got %s", lit.Type())
	}
	v := mustEval(t, lit, nil)
	if v.(exprvalue.Num) != 42 {
		t.Fatalf("got %v", v)
	}
	if !lit.IsFeatureConstant() || !lit.IsZoomConstant() {
		t.Fatal("literal must be constant in both dimensions")
	}
}

func TestLetVar_ResultEvaluatesBoundExpression(t *testing.T) {
	bound := exprnodes.NewLiteral(exprvalue.Num(7))
	v1 := exprnodes.NewVar("x", bound)
	let := exprnodes.NewLet([]string{"x"}, []exprast.Node{bound}, v1)
	got := mustEval(t, let, nil)
	if got.(exprvalue.Num) != 7 {
		t.Fatalf("got %v", got)
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	arr := exprnodes.NewLiteral(exprvalue.Arr{exprvalue.Num(1), exprvalue.Num(2)})
	idx := exprnodes.NewLiteral(exprvalue.Num(5))
	at := exprnodes.NewAt(idx, arr, exprtype.Number)
	_, err := at.Evaluate(nil)
	if err == nil {
		t.Fatal("expected out-of-bounds error")
	}
	want := "Array index out of bounds: 5 > 2."
	if err.Message != want {
		t.Fatalf("got %q, want %q", err.Message, want)
	}
}

func TestAt_NonIntegerIndex(t *testing.T) {
	arr := exprnodes.NewLiteral(exprvalue.Arr{exprvalue.Num(1), exprvalue.Num(2)})
	idx := exprnodes.NewLiteral(exprvalue.Num(0.5))
	at := exprnodes.NewAt(idx, arr, exprtype.Number)
	_, err := at.Evaluate(nil)
	if err == nil {
		t.Fatal("expected non-integer index error")
	}
}

func TestIn_Found(t *testing.T) {
	needle := exprnodes.NewLiteral(exprvalue.Str("b"))
	haystack := exprnodes.NewLiteral(exprvalue.Arr{exprvalue.Str("a"), exprvalue.Str("b")})
	in := exprnodes.NewIn(needle, haystack)
	v := mustEval(t, in, nil)
	if v.(exprvalue.Bool) != true {
		t.Fatal("expected true")
	}
}

func TestCoalesce_LastArgumentErrorPropagatesWhenAllFail(t *testing.T) {
	failing := failNode{}
	c := exprnodes.NewCoalesce(exprtype.Number, []exprast.Node{failing, failing})
	_, err := c.Evaluate(nil)
	if err == nil {
		t.Fatal("expected the last failing argument's error to propagate")
	}
}

func TestCoalesce_FirstSuccessWins(t *testing.T) {
	ok := exprnodes.NewLiteral(exprvalue.Num(1))
	c := exprnodes.NewCoalesce(exprtype.Number, []exprast.Node{failNode{}, ok})
	v := mustEval(t, c, nil)
	if v.(exprvalue.Num) != 1 {
		t.Fatalf("got %v", v)
	}
}

func TestMatchInt_RequiresWholeNumber(t *testing.T) {
	input := exprnodes.NewLiteral(exprvalue.Num(1.5))
	cases := map[int64]exprast.Node{1: exprnodes.NewLiteral(exprvalue.Str("one"))}
	otherwise := exprnodes.NewLiteral(exprvalue.Str("other"))
	m := exprnodes.NewMatchInt(exprtype.String, input, cases, otherwise)
	v := mustEval(t, m, nil)
	if v.(exprvalue.Str) != "other" {
		t.Fatalf("got %v, expected fallthrough to otherwise", v)
	}
}

func TestArrayAssertion_TypeMismatch(t *testing.T) {
	input := exprnodes.NewLiteral(exprvalue.Str("not an array"))
	a := exprnodes.NewArrayAssertion(exprtype.AnyArray, input)
	_, err := a.Evaluate(nil)
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
}

// failNode is a minimal exprast.Node stand-in that always fails evaluation,
// used to exercise Coalesce's fallback behavior.
type failNode struct{}

func (failNode) ID() uuid.UUID                {
	return uuid.Nil
}
func (failNode) Type() exprtype.Type          { return exprtype.Number }
func (n failNode) Visit(fn func(exprast.Node)) { fn(n) }
func (failNode) IsFeatureConstant() bool       { return true }
func (failNode) IsZoomConstant() bool          { return true }
func (failNode) Evaluate(*exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	return nil, diag.NewEvalError(diag.CodeTypeMismatch, "forced failure")
}
