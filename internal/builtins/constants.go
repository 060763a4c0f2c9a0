package builtins

import (
	"strconv"
	"strings"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// registerConstantsAndAssertions wires the nullary constants, the typeof
// operator, the per-type assertion functions and the to_* conversion family
// (mirroring the "e"/"pi"/"ln2"/"number"/"string"/.../"to_boolean" block of
// the original's CompoundExpressionRegistry definitions table).
func registerConstantsAndAssertions(reg *compound.Registry) {
	reg.Register("e", compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(),
		Eval: func(_ *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			return exprvalue.Num(2.718281828459045), nil
		},
	})
	reg.Register("pi", compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(),
		Eval: func(_ *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			return exprvalue.Num(3.141592653589793), nil
		},
	})
	reg.Register("ln2", compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(),
		Eval: func(_ *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			return exprvalue.Num(0.6931471805599453), nil
		},
	})

	reg.Register("typeof", compound.Signature{
		Result: exprtype.String, Params: compound.Fixed(exprtype.Value),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			return exprvalue.Str(exprvalue.TypeOf(args[0]).String()), nil
		},
	})

	reg.Register("number", assertionSignature(exprtype.Number))
	reg.Register("string", assertionSignature(exprtype.String))
	reg.Register("boolean", assertionSignature(exprtype.Boolean))
	reg.Register("object", assertionSignature(exprtype.Object))

	reg.Register("to_string", compound.Signature{
		Result: exprtype.String, Params: compound.Fixed(exprtype.Value),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			if s, ok := args[0].(exprvalue.Str); ok {
				return s, nil
			}
			return exprvalue.Str(exprvalue.Stringify(args[0])), nil
		},
	})

	reg.Register("to_number", compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(exprtype.Value),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			switch v := args[0].(type) {
			case exprvalue.Num:
				return v, nil
			case exprvalue.Str:
				f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
				if err != nil {
					return nil, diag.NewEvalError(diag.CodeConversion,
						"Could not convert "+exprvalue.Stringify(args[0])+" to number.")
				}
				return exprvalue.Num(f), nil
			default:
				return nil, diag.NewEvalError(diag.CodeConversion,
					"Could not convert "+exprvalue.Stringify(args[0])+" to number.")
			}
		},
	})

	reg.Register("to_boolean", compound.Signature{
		Result: exprtype.Boolean, Params: compound.Fixed(exprtype.Value),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			switch v := args[0].(type) {
			case exprvalue.Num:
				return exprvalue.Bool(float64(v) != 0), nil
			case exprvalue.Str:
				return exprvalue.Bool(len(v) > 0), nil
			case exprvalue.Bool:
				return v, nil
			case exprvalue.Null:
				return exprvalue.Bool(false), nil
			default:
				return exprvalue.Bool(true), nil
			}
		},
	})
}

// assertionSignature builds the `number`/`string`/`boolean`/`object`
// runtime-type-assertion family: each accepts any Value and fails unless
// its dynamic type matches exactly (array_assertion.cpp's companion for
// scalar types rather than Array).
func assertionSignature(want exprtype.Type) compound.Signature {
	return compound.Signature{
		Result: want, Params: compound.Fixed(exprtype.Value),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			actual := exprvalue.TypeOf(args[0])
			if !exprtype.Equal(actual, want) {
				return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch(want.String(), args[0]))
			}
			return args[0], nil
		},
	}
}
