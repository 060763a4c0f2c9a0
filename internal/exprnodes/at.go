package exprnodes

import (
	"math"
	"strconv"

	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// At is the ["at", index, array] accessor (spec §4.5). Its declared type is
// the input array's item type, fixed at parse time.
type At struct {
	base
	Index exprast.Node
	Input exprast.Node
}

// NewAt builds an At node. itemType is the already-resolved item type of
// input's array type.
func NewAt(index, input exprast.Node, itemType exprtype.Type) *At {
	return &At{base: newBase(itemType), Index: index, Input: input}
}

func (a *At) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	idxVal, err := a.Index.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	inputVal, err := a.Input.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := exprvalue.ToFloat64(idxVal)
	if !ok {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("number", idxVal))
	}
	arr, ok := exprvalue.ToArrValue(inputVal)
	if !ok {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("array", inputVal))
	}

	if i < 0 || i >= float64(len(arr)) {
		return nil, diag.NewEvalError(diag.CodeIndexOutOfRange,
			"Array index out of bounds: "+exprvalue.Stringify(exprvalue.Num(i))+" > "+strconv.Itoa(len(arr))+".")
	}
	if i != math.Floor(i) {
		return nil, diag.NewEvalError(diag.CodeNonIntegerIndex,
			"Array index must be an integer, but found "+exprvalue.Stringify(exprvalue.Num(i))+" instead.")
	}
	return arr[int(i)], nil
}

func (a *At) Visit(fn func(exprast.Node)) {
	fn(a)
	a.Index.Visit(fn)
	a.Input.Visit(fn)
}

func (a *At) IsFeatureConstant() bool {
	return a.Index.IsFeatureConstant() && a.Input.IsFeatureConstant()
}

func (a *At) IsZoomConstant() bool {
	return a.Index.IsZoomConstant() && a.Input.IsZoomConstant()
}
