package exprparse

import (
	"strconv"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseAt handles ["at", index, input] (spec §4.5/§4.7).
func parseAt(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length != 3 {
		ctx.Error(diag.CodeArity, "Expected 2 arguments, but found "+strconv.Itoa(length-1)+" instead.")
		return nil, false
	}

	index, ok1 := Parse(r.ArrayMember(1), ctx.Child(1, typePtr(exprtype.Number), ctx.Scope), reg)

	expectedItem := exprtype.Value
	if ctx.Expected != nil {
		expectedItem = *ctx.Expected
	}
	input, ok2 := Parse(r.ArrayMember(2), ctx.Child(2, typePtr(exprtype.NewArray(expectedItem)), ctx.Scope), reg)

	if !ok1 || !ok2 {
		return nil, false
	}

	itemType := exprtype.Value
	if arr, isArr := input.Type().(exprtype.Array); isArr {
		itemType = arr.Item
	}
	return exprnodes.NewAt(index, input, itemType), true
}
