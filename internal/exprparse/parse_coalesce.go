package exprparse

import (
	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseCoalesce handles ["coalesce", arg1, ...] (spec §4.5).
func parseCoalesce(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length < 2 {
		ctx.Error(diag.CodeArity, "Expected at least one argument.")
		return nil, false
	}

	outputType := ctx.Expected
	var args []exprast.Node
	for i := 1; i < length; i++ {
		parsed, ok := Parse(r.ArrayMember(i), ctx.Child(i, outputType, ctx.Scope), reg)
		if !ok {
			return nil, false
		}
		if outputType == nil {
			t := parsed.Type()
			outputType = &t
		}
		args = append(args, parsed)
	}

	return exprnodes.NewCoalesce(*outputType, args), true
}
