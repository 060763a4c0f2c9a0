package builtins

import (
	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// registerLogic wires equality, ordering and boolean combinators.
//
// The original registers "==" and "!=" as four separate typed overloads
// (double/bool/string/null) rather than one generic signature, because its
// host language has no single equality operator spanning those types; Go's
// exprvalue.Equal already does, but the four-overload shape is kept so
// overload resolution (and its aggregated error message) matches spec §4.4
// exactly when, say, a number is compared against a string.
func registerLogic(reg *compound.Registry) {
	reg.Register("==", equalitySignatures(false)...)
	reg.Register("!=", equalitySignatures(true)...)

	reg.Register(">", compareNum(func(a, b float64) bool { return a > b }))
	reg.Register(">=", compareNum(func(a, b float64) bool { return a >= b }))
	reg.Register("<", compareNum(func(a, b float64) bool { return a < b }))
	reg.Register("<=", compareNum(func(a, b float64) bool { return a <= b }))

	// CompoundExpr.Evaluate eagerly evaluates every argument before calling
	// sig.Eval (registry.go), so these varargs folds never short-circuit —
	// matching the original's Signature<R(Varargs<T>)>::apply, which also
	// evaluates every argument up front.
	reg.Register("||", compound.Signature{
		Result: exprtype.Boolean, Params: compound.VarargsOf(exprtype.Boolean),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			result := false
			for _, v := range args {
				b, _ := exprvalue.ToGoBool(v)
				result = result || b
			}
			return exprvalue.Bool(result), nil
		},
	})
	reg.Register("&&", compound.Signature{
		Result: exprtype.Boolean, Params: compound.VarargsOf(exprtype.Boolean),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			result := true
			for _, v := range args {
				b, _ := exprvalue.ToGoBool(v)
				result = result && b
			}
			return exprvalue.Bool(result), nil
		},
	})
	reg.Register("!", compound.Signature{
		Result: exprtype.Boolean, Params: compound.Fixed(exprtype.Boolean),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			b, _ := exprvalue.ToGoBool(args[0])
			return exprvalue.Bool(!b), nil
		},
	})
}

func equalitySignatures(negate bool) []compound.Signature {
	eval := func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
		eq := exprvalue.Equal(args[0], args[1])
		if negate {
			eq = !eq
		}
		return exprvalue.Bool(eq), nil
	}
	scalars := []exprtype.Type{exprtype.Number, exprtype.Boolean, exprtype.String, exprtype.Null}
	sigs := make([]compound.Signature, len(scalars))
	for i, t := range scalars {
		sigs[i] = compound.Signature{Result: exprtype.Boolean, Params: compound.Fixed(t, t), Eval: eval}
	}
	return sigs
}

func compareNum(cmp func(a, b float64) bool) compound.Signature {
	return compound.Signature{
		Result: exprtype.Boolean, Params: compound.Fixed(exprtype.Number, exprtype.Number),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			a, _ := exprvalue.ToFloat64(args[0])
			b, _ := exprvalue.ToFloat64(args[1])
			return exprvalue.Bool(cmp(a, b)), nil
		},
	}
}
