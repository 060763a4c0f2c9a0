package exprnodes

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// Let binds a set of names to sibling expressions for the lexical scope of
// its result expression (spec §4.5's ["let", name1, expr1, ..., result]
// form). Bindings are resolved statically at parse time: each Var reference
// inside result already holds a direct pointer to its binding's Node, so
// Let.Evaluate only ever evaluates result — the Bindings slice exists for
// Visit (constant-folding still walks into every binding) and for tooling
// that wants to inspect the let's structure.
type Let struct {
	base
	Names    []string
	Bindings []exprast.Node
	Result   exprast.Node
}

// NewLet builds a Let node. names/bindings are parallel slices preserving
// declaration order (spec §8: a later binding may reference an earlier one
// by name, shadowing is allowed and uses the most recent binding).
func NewLet(names []string, bindings []exprast.Node, result exprast.Node) *Let {
	return &Let{base: newBase(result.Type()), Names: names, Bindings: bindings, Result: result}
}

func (l *Let) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	return l.Result.Evaluate(ctx)
}

func (l *Let) Visit(fn func(exprast.Node)) {
	fn(l)
	for _, b := range l.Bindings {
		b.Visit(fn)
	}
	l.Result.Visit(fn)
}

func (l *Let) IsFeatureConstant() bool {
	return exprast.AllFeatureConstant(l.Bindings) && l.Result.IsFeatureConstant()
}

func (l *Let) IsZoomConstant() bool {
	return exprast.AllZoomConstant(l.Bindings) && l.Result.IsZoomConstant()
}

// Var is a reference to a name bound by an enclosing Let, resolved to its
// bound Node at parse time (spec §4.5's ["var", name] form). Re-evaluating a
// Var re-evaluates its bound expression fresh each time, matching the
// original's Var::evaluate, which simply delegates to the held expression
// rather than caching a value across evaluations.
type Var struct {
	base
	Name  string
	Bound exprast.Node
}

// NewVar wraps a resolved binding as a Var reference.
func NewVar(name string, bound exprast.Node) *Var {
	return &Var{base: newBase(bound.Type()), Name: name, Bound: bound}
}

func (v *Var) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	return v.Bound.Evaluate(ctx)
}

func (v *Var) Visit(fn func(exprast.Node)) { fn(v) }

func (v *Var) IsFeatureConstant() bool { return v.Bound.IsFeatureConstant() }
func (v *Var) IsZoomConstant() bool    { return v.Bound.IsZoomConstant() }
