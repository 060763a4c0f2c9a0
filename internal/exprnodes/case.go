package exprnodes

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// CaseBranch pairs a Boolean condition with the result to return when it is
// the first branch whose condition evaluates true.
type CaseBranch struct {
	Condition exprast.Node
	Result    exprast.Node
}

// Case is the ["case", cond1, result1, ..., otherwise] form (spec §4.5).
type Case struct {
	base
	Branches  []CaseBranch
	Otherwise exprast.Node
}

// NewCase builds a Case node of the given joined output type.
func NewCase(outputType exprtype.Type, branches []CaseBranch, otherwise exprast.Node) *Case {
	return &Case{base: newBase(outputType), Branches: branches, Otherwise: otherwise}
}

func (c *Case) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	for _, branch := range c.Branches {
		condVal, err := branch.Condition.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		b, ok := exprvalue.ToGoBool(condVal)
		if !ok {
			return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("boolean", condVal))
		}
		if b {
			return branch.Result.Evaluate(ctx)
		}
	}
	return c.Otherwise.Evaluate(ctx)
}

func (c *Case) Visit(fn func(exprast.Node)) {
	fn(c)
	for _, branch := range c.Branches {
		branch.Condition.Visit(fn)
		branch.Result.Visit(fn)
	}
	c.Otherwise.Visit(fn)
}

func (c *Case) IsFeatureConstant() bool {
	for _, branch := range c.Branches {
		if !branch.Condition.IsFeatureConstant() || !branch.Result.IsFeatureConstant() {
			return false
		}
	}
	return c.Otherwise.IsFeatureConstant()
}

func (c *Case) IsZoomConstant() bool {
	for _, branch := range c.Branches {
		if !branch.Condition.IsZoomConstant() || !branch.Result.IsZoomConstant() {
			return false
		}
	}
	return c.Otherwise.IsZoomConstant()
}
