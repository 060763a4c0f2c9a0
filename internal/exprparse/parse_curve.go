package exprparse

import (
	"math"
	"strconv"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/curve"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseCurve handles ["curve", [interpName, ...], input, k1, v1, ...] (spec
// §4.6/§4.7's curve node).
func parseCurve(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length < 5 {
		ctx.Error(diag.CodeArity, "Expected at least 4 arguments, but found only "+strconv.Itoa(length-1)+".")
		return nil, false
	}
	if length%2 != 1 {
		ctx.Error(diag.CodeArity, "Expected an even number of arguments.")
		return nil, false
	}

	interpReader := r.ArrayMember(1)
	if !interpReader.IsArray() || interpReader.ArrayLength() == 0 {
		ctx.Error(diag.CodeSyntax, "Expected an interpolation type expression.")
		return nil, false
	}
	interpName, _ := interpReader.ArrayMember(0).ToString()

	var interp curve.Interpolator
	switch interpName {
	case "step":
		interp = curve.Step{}
	case "linear":
		interp = curve.Exponential{Base: 1}
	case "exponential":
		if interpReader.ArrayLength() != 2 {
			ctx.ErrorAt(diag.CodeSyntax, 1, "Exponential interpolation requires a numeric base.")
			return nil, false
		}
		base, ok := interpReader.ArrayMember(1).ToDouble()
		if !ok {
			ctx.ErrorAt(diag.CodeSyntax, 1, "Exponential interpolation requires a numeric base.")
			return nil, false
		}
		interp = curve.Exponential{Base: base}
	case "cubic-bezier":
		if interpReader.ArrayLength() != 5 {
			ctx.Error(diag.CodeSyntax, "Cubic bezier interpolation requires four numeric arguments with values between 0 and 1.")
			return nil, false
		}
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, ok := interpReader.ArrayMember(i + 1).ToDouble()
			if !ok || v < 0 || v > 1 {
				ctx.Error(diag.CodeSyntax, "Cubic bezier interpolation requires four numeric arguments with values between 0 and 1.")
				return nil, false
			}
			vals[i] = v
		}
		interp = curve.CubicBezier{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}
	default:
		ctx.ErrorAt(diag.CodeUnknownName, 0, "Unknown interpolation type "+interpName)
		return nil, false
	}

	numType := exprtype.Number
	input, ok := Parse(r.ArrayMember(2), ctx.Child(2, &numType, ctx.Scope), reg)
	if !ok {
		return nil, false
	}

	var stops []curve.Stop
	outputType := ctx.Expected
	previous := math.Inf(-1)

	for i := 3; i+1 < length; i += 2 {
		label, ok := r.ArrayMember(i).ToDouble()
		if !ok {
			ctx.ErrorAt(diag.CodeType, i, `Input/output pairs for "curve" expressions must be defined using literal numeric values (not computed expressions) for the input values.`)
			return nil, false
		}
		if label <= previous {
			ctx.ErrorAt(diag.CodeOrdering, i, `Input/output pairs for "curve" expressions must be arranged with input values in strictly ascending order.`)
			return nil, false
		}
		previous = label

		output, ok := Parse(r.ArrayMember(i+1), ctx.Child(i+1, outputType, ctx.Scope), reg)
		if !ok {
			return nil, false
		}
		if outputType == nil {
			t := output.Type()
			outputType = &t
		}
		stops = append(stops, curve.Stop{Key: label, Node: output})
	}

	if outputType == nil {
		ctx.Error(diag.CodeArity, "Expected at least one stop.")
		return nil, false
	}

	if _, isStep := interp.(curve.Step); !isStep && !isInterpolatable(*outputType) {
		ctx.Error(diag.CodeType, "Type "+(*outputType).String()+" is not interpolatable, and thus cannot be used as a "+interpName+" curve's output type.")
		return nil, false
	}

	return curve.NewCurve(*outputType, interp, input, stops), true
}

func isInterpolatable(t exprtype.Type) bool {
	if exprtype.Equal(t, exprtype.Number) || exprtype.Equal(t, exprtype.Color) {
		return true
	}
	if arr, ok := t.(exprtype.Array); ok {
		return exprtype.Equal(arr.Item, exprtype.Number)
	}
	return false
}
