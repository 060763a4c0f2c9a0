package exprparse

import (
	"strconv"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// Parse is the entry point described in spec §4.7: it dispatches on the
// shape of r, builds a Node, and on success re-checks the result's type
// against ctx.Expected.
func Parse(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	node, ok := dispatch(r, ctx, reg)
	if !ok {
		return nil, false
	}
	if ctx.Expected != nil {
		if err := exprtype.IsSubtype(*ctx.Expected, node.Type()); err != nil {
			ctx.Error(diag.CodeType, err.Error())
			return nil, false
		}
	}
	return node, true
}

func dispatch(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	if r.IsArray() {
		length := r.ArrayLength()
		if length == 0 {
			ctx.Error(diag.CodeSyntax,
				`Expected an array with at least one element. If you wanted a literal array, use ["literal", []].`)
			return nil, false
		}

		opReader := r.ArrayMember(0)
		op, ok := opReader.ToString()
		if !ok {
			ctx.ErrorAt(diag.CodeSyntax, 0,
				`Expression name must be a string. If you wanted a literal array, use ["literal", [...]].`)
			return nil, false
		}

		switch op {
		case "literal":
			if length != 2 {
				ctx.Error(diag.CodeArity, "'literal' expression requires exactly one argument, but found "+strconv.Itoa(length-1)+" instead.")
				return nil, false
			}
			return parseLiteral(r.ArrayMember(1), ctx)
		case "match":
			return parseMatch(r, ctx, reg)
		case "curve":
			return parseCurve(r, ctx, reg)
		case "coalesce":
			return parseCoalesce(r, ctx, reg)
		case "case":
			return parseCase(r, ctx, reg)
		case "array":
			return parseArrayAssertion(r, ctx, reg)
		case "let":
			return parseLet(r, ctx, reg)
		case "var":
			return parseVar(r, ctx)
		case "at":
			return parseAt(r, ctx, reg)
		case "in":
			return parseIn(r, ctx, reg)
		default:
			return parseCompound(op, r, ctx, reg)
		}
	}

	if r.IsObject() {
		ctx.Error(diag.CodeSyntax, `Bare objects invalid. Use ["literal", {...}] instead.`)
		return nil, false
	}

	return parseLiteral(r, ctx)
}
