package exprnodes

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// In is the ["in", needle, haystack] membership test (spec §4.5). haystack
// always parses as Array(Value); needle's type (Object/Color/Array are
// rejected) is validated by internal/exprparse.parseIn before an In is ever
// constructed, so Evaluate only has to do the runtime membership test.
type In struct {
	base
	Needle   exprast.Node
	Haystack exprast.Node
}

// NewIn builds an In node, always of type Boolean.
func NewIn(needle, haystack exprast.Node) *In {
	return &In{base: newBase(exprtype.Boolean), Needle: needle, Haystack: haystack}
}

func (n *In) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	needleVal, err := n.Needle.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	haystackVal, err := n.Haystack.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return evaluateIn(needleVal, haystackVal)
}

// evaluateIn is the runtime membership test: it assumes the needle's type
// was already accepted at parse time (parseIn rejects Object/Color/Array
// needles before an In node can exist) and only has the haystack's dynamic
// shape left to check.
func evaluateIn(needleVal, haystackVal exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
	arr, ok := exprvalue.ToArrValue(haystackVal)
	if !ok {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("array", haystackVal))
	}

	for _, v := range arr {
		if exprvalue.Equal(needleVal, v) {
			return exprvalue.Bool(true), nil
		}
	}
	return exprvalue.Bool(false), nil
}

func (n *In) Visit(fn func(exprast.Node)) {
	fn(n)
	n.Needle.Visit(fn)
	n.Haystack.Visit(fn)
}

func (n *In) IsFeatureConstant() bool {
	return n.Needle.IsFeatureConstant() && n.Haystack.IsFeatureConstant()
}

func (n *In) IsZoomConstant() bool {
	return n.Needle.IsZoomConstant() && n.Haystack.IsZoomConstant()
}
