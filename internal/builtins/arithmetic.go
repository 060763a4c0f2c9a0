package builtins

import (
	"math"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// registerArithmetic wires the numeric operators and transcendental
// functions (the "+" through "max" block of compound_expression.cpp's
// definitions table).
func registerArithmetic(reg *compound.Registry) {
	reg.Register("+", varargsNumFold(0, func(acc, x float64) float64 { return acc + x }))
	reg.Register("*", varargsNumFold(1, func(acc, x float64) float64 { return acc * x }))

	reg.Register("-", binaryNum(func(a, b float64) float64 { return a - b }))
	reg.Register("/", binaryNum(func(a, b float64) float64 { return a / b }))
	reg.Register("%", binaryNum(math.Mod))
	reg.Register("^", binaryNum(math.Pow))

	reg.Register("log10", unaryNum(math.Log10))
	reg.Register("ln", unaryNum(math.Log))
	reg.Register("log2", unaryNum(math.Log2))
	reg.Register("sin", unaryNum(math.Sin))
	reg.Register("cos", unaryNum(math.Cos))
	reg.Register("tan", unaryNum(math.Tan))
	reg.Register("asin", unaryNum(math.Asin))
	reg.Register("acos", unaryNum(math.Acos))
	reg.Register("atan", unaryNum(math.Atan))

	reg.Register("min", varargsNumFold(math.Inf(1), math.Min))
	reg.Register("max", varargsNumFold(math.Inf(-1), math.Max))
}

func unaryNum(f func(float64) float64) compound.Signature {
	return compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(exprtype.Number),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			x, _ := exprvalue.ToFloat64(args[0])
			return exprvalue.Num(f(x)), nil
		},
	}
}

func binaryNum(f func(a, b float64) float64) compound.Signature {
	return compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(exprtype.Number, exprtype.Number),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			a, _ := exprvalue.ToFloat64(args[0])
			b, _ := exprvalue.ToFloat64(args[1])
			return exprvalue.Num(f(a, b)), nil
		},
	}
}

func varargsNumFold(seed float64, fold func(acc, x float64) float64) compound.Signature {
	return compound.Signature{
		Result: exprtype.Number, Params: compound.VarargsOf(exprtype.Number),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			acc := seed
			for _, v := range args {
				x, _ := exprvalue.ToFloat64(v)
				acc = fold(acc, x)
			}
			return exprvalue.Num(acc), nil
		},
	}
}
