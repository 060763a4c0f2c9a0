package exprparse

import (
	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseCase handles ["case", cond1, result1, ..., otherwise] (spec §4.5).
func parseCase(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length < 4 {
		ctx.Error(diag.CodeArity, "Expected at least 3 arguments.")
		return nil, false
	}
	if length%2 != 0 {
		ctx.Error(diag.CodeArity, "Expected an odd number of arguments.")
		return nil, false
	}

	boolType := exprtype.Boolean
	var branches []exprnodes.CaseBranch
	outputType := ctx.Expected

	for i := 1; i+2 < length; i += 2 {
		cond, ok := Parse(r.ArrayMember(i), ctx.Child(i, &boolType, ctx.Scope), reg)
		if !ok {
			return nil, false
		}
		result, ok := Parse(r.ArrayMember(i+1), ctx.Child(i+1, outputType, ctx.Scope), reg)
		if !ok {
			return nil, false
		}
		if outputType == nil {
			t := result.Type()
			outputType = &t
		}
		branches = append(branches, exprnodes.CaseBranch{Condition: cond, Result: result})
	}

	otherwise, ok := Parse(r.ArrayMember(length-1), ctx.Child(length-1, outputType, ctx.Scope), reg)
	if !ok {
		return nil, false
	}
	if outputType == nil {
		t := otherwise.Type()
		outputType = &t
	}

	return exprnodes.NewCase(*outputType, branches, otherwise), true
}
