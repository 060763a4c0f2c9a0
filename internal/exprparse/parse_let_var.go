package exprparse

import (
	"strconv"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseLet handles ["let", name1, expr1, ..., nameN, exprN, result] (spec
// §4.5/§4.7). Bindings are parsed left-to-right in the outer scope, each one
// able to reference the names bound by its own earlier siblings (the
// original builds the whole bindings map before parsing any binding's
// value, then re-parses within a scope seeded with all of them — we follow
// that exactly: each binding is parsed against a scope holding every
// sibling bound so far, matching the original's `resultContext` semantics
// where result sees the complete binding set).
func parseLet(r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	length := r.ArrayLength()
	if length < 4 || length%2 != 0 {
		ctx.Error(diag.CodeArity, "Expected at least 3 arguments, but found "+strconv.Itoa(length-1)+" instead.")
		return nil, false
	}

	names := []string{}
	bindingNodes := []exprast.Node{}
	bindings := map[string]exprast.Node{}

	for i := 1; i < length-1; i += 2 {
		nameReader := r.ArrayMember(i)
		name, ok := nameReader.ToString()
		if !ok {
			ctx.ErrorAt(diag.CodeType, i, "Expected string, but found "+describeReaderType(nameReader)+" instead.")
			return nil, false
		}

		bindingScope := NewScope(bindings, ctx.Scope)
		valNode, ok := Parse(r.ArrayMember(i+1), ctx.Child(i+1, nil, bindingScope), reg)
		if !ok {
			return nil, false
		}

		names = append(names, name)
		bindingNodes = append(bindingNodes, valNode)
		bindings[name] = valNode
	}

	resultScope := NewScope(bindings, ctx.Scope)
	result, ok := Parse(r.ArrayMember(length-1), ctx.Child(length-1, ctx.Expected, resultScope), reg)
	if !ok {
		return nil, false
	}

	return exprnodes.NewLet(names, bindingNodes, result), true
}

// parseVar handles ["var", name] (spec §4.5/§4.7).
func parseVar(r jsonval.Reader, ctx *Context) (exprast.Node, bool) {
	if r.ArrayLength() != 2 {
		ctx.Error(diag.CodeArity, "'var' expression requires exactly one string literal argument.")
		return nil, false
	}
	nameStr, isStr := r.ArrayMember(1).ToString()
	if !isStr {
		ctx.Error(diag.CodeArity, "'var' expression requires exactly one string literal argument.")
		return nil, false
	}

	bound, found := ctx.Scope.Get(nameStr)
	if !found {
		ctx.ErrorAt(diag.CodeUnknownName, 1,
			`Unknown variable "`+nameStr+`". Make sure "`+nameStr+`" has been bound in an enclosing "let" expression before using it.`)
		return nil, false
	}
	return exprnodes.NewVar(nameStr, bound), true
}
