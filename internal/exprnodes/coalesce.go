package exprnodes

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// Coalesce evaluates its arguments in order and returns the first one that
// succeeds (spec §4.5's ["coalesce", args...] form). Parsing requires at
// least one argument, so the loop below always returns from inside itself:
// on the last argument it returns that argument's result unconditionally,
// success or error, rather than substituting Null — matching the reachable
// behavior of the original's Coalesce::evaluate, whose trailing `return
// Null` is dead code given the parser's arity floor.
type Coalesce struct {
	base
	Args []exprast.Node
}

// NewCoalesce builds a Coalesce node of the given joined output type.
func NewCoalesce(outputType exprtype.Type, args []exprast.Node) *Coalesce {
	return &Coalesce{base: newBase(outputType), Args: args}
}

func (c *Coalesce) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	for i, arg := range c.Args {
		v, err := arg.Evaluate(ctx)
		if err == nil {
			return v, nil
		}
		if i == len(c.Args)-1 {
			return nil, err
		}
	}
	return exprvalue.Null{}, nil
}

func (c *Coalesce) Visit(fn func(exprast.Node)) {
	fn(c)
	for _, a := range c.Args {
		a.Visit(fn)
	}
}

func (c *Coalesce) IsFeatureConstant() bool { return exprast.AllFeatureConstant(c.Args) }
func (c *Coalesce) IsZoomConstant() bool    { return exprast.AllZoomConstant(c.Args) }
