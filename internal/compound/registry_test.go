package compound_test

import (
	"testing"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/google/uuid"
)

// literalNode is a minimal exprast.Node stand-in for these tests, avoiding
// an import cycle on the real Literal (internal/exprnodes).
type literalNode struct {
	id uuid.UUID
	t  exprtype.Type
	v  exprvalue.Value
}

func (l literalNode) ID() uuid.UUID       { return l.id }
func (l literalNode) Type() exprtype.Type { return l.t }
func (l literalNode) Evaluate(*exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	return l.v, nil
}
func (l literalNode) Visit(fn func(exprast.Node)) { fn(l) }
func (l literalNode) IsFeatureConstant() bool     { return true }
func (l literalNode) IsZoomConstant() bool        { return true }

func TestResolve_PicksFirstMatchingSignatureInRegistrationOrder(t *testing.T) {
	r := compound.NewRegistry()
	r.Register("f",
		compound.Signature{
			Result: exprtype.String,
			Params: compound.Fixed(exprtype.Number),
			Eval: func(*exprast.EvaluationContext, []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				return exprvalue.Str("number-overload"), nil
			},
		},
		compound.Signature{
			Result: exprtype.String,
			Params: compound.Fixed(exprtype.Value),
			Eval: func(*exprast.EvaluationContext, []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				return exprvalue.Str("value-overload"), nil
			},
		},
	)

	expr, errs := r.Resolve("f", "", []exprast.Node{literalNode{t: exprtype.Number, v: exprvalue.Num(1)}})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	v, evalErr := expr.Evaluate(nil)
	if evalErr != nil {
		t.Fatalf("unexpected eval error: %v", evalErr)
	}
	if v.(exprvalue.Str) != "number-overload" {
		t.Fatalf("expected first matching signature to win, got %v", v)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	r := compound.NewRegistry()
	_, errs := r.Resolve("nope", "", nil)
	if len(errs) != 1 || errs[0].Code != diag.CodeUnknownName {
		t.Fatalf("expected a single unknown-name error, got %v", errs)
	}
}

func TestResolve_SingleSignatureSurfacesItsOwnErrors(t *testing.T) {
	r := compound.NewRegistry()
	r.Register("f", compound.Signature{
		Result: exprtype.Number,
		Params: compound.Fixed(exprtype.Number, exprtype.Number),
	})
	_, errs := r.Resolve("f", "[0]", []exprast.Node{literalNode{t: exprtype.Number, v: exprvalue.Num(1)}})
	if len(errs) != 1 {
		t.Fatalf("expected exactly one arity error, got %v", errs)
	}
}

func TestResolve_MultiSignatureAggregatesSummary(t *testing.T) {
	r := compound.NewRegistry()
	r.Register("f",
		compound.Signature{Result: exprtype.Number, Params: compound.Fixed(exprtype.Number)},
		compound.Signature{Result: exprtype.Number, Params: compound.Fixed(exprtype.String)},
	)
	_, errs := r.Resolve("f", "[0]", []exprast.Node{literalNode{t: exprtype.Boolean, v: exprvalue.Bool(true)}})
	if len(errs) != 1 {
		t.Fatalf("expected one aggregated summary error, got %d", len(errs))
	}
	want := "Expected arguments of type (number) | (string), but found (boolean) instead."
	if errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}
