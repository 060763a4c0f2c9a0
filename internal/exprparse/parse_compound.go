package exprparse

import (
	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseCompound handles every head symbol not reserved for a structural
// node: it parses each argument (propagating a per-position expected type
// when the name resolves to exactly one fixed-arity or varargs signature,
// mirroring the original's single-signature fast path) and hands the
// parsed children to the compound registry for overload resolution.
func parseCompound(name string, r jsonval.Reader, ctx *Context, reg *compound.Registry) (exprast.Node, bool) {
	if !reg.Has(name) {
		ctx.ErrorAt(diag.CodeUnknownName, 0,
			`Unknown expression "`+name+`". If you wanted a literal array, use ["literal", [...]].`)
		return nil, false
	}

	length := r.ArrayLength()
	var expectedForPos func(i int) *exprtype.Type
	if sigs := reg.SignaturesFor(name); len(sigs) == 1 {
		sig := sigs[0]
		expectedForPos = func(i int) *exprtype.Type {
			if sig.Params.Varargs {
				return &sig.Params.Item
			}
			idx := i - 1
			if idx >= 0 && idx < len(sig.Params.Fixed) {
				return &sig.Params.Fixed[idx]
			}
			return nil
		}
	}

	children := make([]exprast.Node, 0, length-1)
	for i := 1; i < length; i++ {
		var expected *exprtype.Type
		if expectedForPos != nil {
			expected = expectedForPos(i)
		}
		child, ok := Parse(r.ArrayMember(i), ctx.Child(i, expected, ctx.Scope), reg)
		if !ok {
			return nil, false
		}
		children = append(children, child)
	}

	node, errs := reg.Resolve(name, ctx.Key, children)
	if len(errs) > 0 {
		*ctx.Errors = append(*ctx.Errors, errs...)
		return nil, false
	}
	return node, true
}
