package exprnodes

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// ArrayAssertion is the ["array", <target_type...>, input] form (spec
// §4.5): it re-checks input's runtime type against the declared array type
// at evaluation time, since the parser can only prove the static type of
// input's expression, not the concrete shape of whatever value it returns
// (an upstream `get`/`at` may yield anything at runtime).
type ArrayAssertion struct {
	base
	Input exprast.Node
}

// NewArrayAssertion builds an ArrayAssertion node asserting targetType.
func NewArrayAssertion(targetType exprtype.Type, input exprast.Node) *ArrayAssertion {
	return &ArrayAssertion{base: newBase(targetType), Input: input}
}

func (a *ArrayAssertion) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	v, err := a.Input.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	actual := exprvalue.TypeOf(v)
	if subtypeErr := exprtype.IsSubtype(a.Type(), actual); subtypeErr != nil {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch(a.Type().String(), v))
	}
	return v, nil
}

func (a *ArrayAssertion) Visit(fn func(exprast.Node)) {
	fn(a)
	a.Input.Visit(fn)
}

func (a *ArrayAssertion) IsFeatureConstant() bool { return a.Input.IsFeatureConstant() }
func (a *ArrayAssertion) IsZoomConstant() bool    { return a.Input.IsZoomConstant() }
