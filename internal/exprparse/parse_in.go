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

// parseIn handles ["in", needle, haystack] (spec §4.5). The haystack parses
// first, against Array(Value); the needle then parses against the
// haystack's actual item type. A needle statically typed Object, Color, or
// Array is rejected here, at parse time — it can never produce a meaningful
// equality comparison against haystack elements, so there is no reason to
// defer the check to evaluation.
func parseIn(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length != 3 {
		ctx.Error(diag.CodeArity, "Expected 2 arguments, but found "+strconv.Itoa(length-1)+" instead.")
		return nil, false
	}

	haystack, ok := Parse(r.ArrayMember(2), ctx.Child(2, typePtr(exprtype.AnyArray), ctx.Scope), reg)
	if !ok {
		return nil, false
	}

	itemType := exprtype.Value
	if arr, isArr := haystack.Type().(exprtype.Array); isArr {
		itemType = arr.Item
	}

	needle, ok := Parse(r.ArrayMember(1), ctx.Child(1, typePtr(itemType), ctx.Scope), reg)
	if !ok {
		return nil, false
	}

	needleType := needle.Type()
	if _, isArr := needleType.(exprtype.Array); isArr || exprtype.Equal(needleType, exprtype.Object) || exprtype.Equal(needleType, exprtype.Color) {
		ctx.ErrorAt(diag.CodeType, 1, `"contains" does not support searching for values of type `+needleType.String()+".")
		return nil, false
	}

	return exprnodes.NewIn(needle, haystack), true
}
