package expr_test

import (
	"testing"

	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval/mcvoidadapter"
	"github.com/exprstyle/mapexpr/pkg/expr"
)

func mustParse(t *testing.T, src string, expected expr.Type) *expr.Expression {
	t.Helper()
	r, err := mcvoidadapter.ParseString(src)
	if err != nil {
		t.Fatalf("invalid JSON fixture %q: %v", src, err)
	}
	e, errs := expr.Parse(r, expected)
	if len(errs) > 0 {
		t.Fatalf("Parse(%q) failed: %v", src, errs)
	}
	return e
}

func TestParseAndEvaluateArithmetic(t *testing.T) {
	e := mustParse(t, `["+", 1, 2, ["*", 2, 5]]`, exprtype.Number)
	v, evalErr := e.Evaluate(&expr.EvaluationContext{})
	if evalErr != nil {
		t.Fatalf("evaluate failed: %v", evalErr)
	}
	if n, _ := exprvalue.ToFloat64(v); n != 13 {
		t.Fatalf("got %v, want 13", v)
	}
}

func TestParseErrorsAreCollected(t *testing.T) {
	r, err := mcvoidadapter.ParseString(`["+", 1, "a"]`)
	if err != nil {
		t.Fatal(err)
	}
	_, errs := expr.Parse(r, exprtype.Number)
	if len(errs) == 0 {
		t.Fatal("expected a type-mismatch parse error")
	}
}

func TestZoomConstantExpression(t *testing.T) {
	e := mustParse(t, `["+", 1, 2]`, exprtype.Number)
	if !e.IsZoomConstant() || !e.IsFeatureConstant() {
		t.Fatal("a pure arithmetic expression must be both zoom- and feature-constant")
	}
}

func TestZoomDependentExpression(t *testing.T) {
	e := mustParse(t, `["zoom"]`, exprtype.Number)
	if e.IsZoomConstant() {
		t.Fatal("`zoom` must not be zoom-constant")
	}
	zoom := 10.0
	v, evalErr := e.Evaluate(&expr.EvaluationContext{Zoom: &zoom})
	if evalErr != nil {
		t.Fatalf("evaluate failed: %v", evalErr)
	}
	if n, _ := exprvalue.ToFloat64(v); n != 10 {
		t.Fatalf("got %v, want 10", v)
	}
}
