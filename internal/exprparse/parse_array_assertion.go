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

// parseArrayAssertion handles ["array", itemType?, N?, input] (spec §4.5):
// the two optional leading arguments narrow the asserted array's item type
// and/or fixed length; the final argument is always the input expression.
func parseArrayAssertion(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length < 2 || length > 4 {
		ctx.Error(diag.CodeArity, "Expected 1, 2, or 3 arguments, but found "+strconv.Itoa(length-1)+" instead.")
		return nil, false
	}

	itemType := exprtype.Value
	var fixedLen *int
	inputIdx := 1

	if length > 2 {
		typeName, ok := r.ArrayMember(1).ToString()
		if !ok {
			ctx.ErrorAt(diag.CodeType, 1, "Expected string, but found "+describeReaderType(r.ArrayMember(1))+" instead.")
			return nil, false
		}
		t, ok := namedPrimitive(typeName)
		if !ok {
			ctx.ErrorAt(diag.CodeSyntax, 1, `The item type argument to "array" must be one of string, number, boolean`)
			return nil, false
		}
		itemType = t
		inputIdx = 2
	}

	if length > 3 {
		n, ok := r.ArrayMember(2).ToDouble()
		if !ok {
			ctx.ErrorAt(diag.CodeType, 2, "Expected number, but found "+describeReaderType(r.ArrayMember(2))+" instead.")
			return nil, false
		}
		ni := int(n)
		fixedLen = &ni
		inputIdx = 3
	}

	var target exprtype.Type = exprtype.NewArray(itemType)
	if fixedLen != nil {
		target = exprtype.NewArrayN(itemType, *fixedLen)
	}

	input, ok := Parse(r.ArrayMember(inputIdx), ctx.Child(inputIdx, nil, ctx.Scope), reg)
	if !ok {
		return nil, false
	}

	return exprnodes.NewArrayAssertion(target, input), true
}

func namedPrimitive(name string) (exprtype.Type, bool) {
	switch name {
	case "string":
		return exprtype.String, true
	case "number":
		return exprtype.Number, true
	case "boolean":
		return exprtype.Boolean, true
	default:
		return nil, false
	}
}
