package exprparse

import (
	"strconv"

	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprconfig"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval"
)

// parseLiteral converts a bare JSON tree directly into a Literal node (spec
// §4.5). Bare objects are rejected; use ["literal", {...}] instead.
func parseLiteral(r jsonval.Reader, ctx *Context) (exprast.Node, bool) {
	v, ok := parseLiteralValue(r, ctx)
	if !ok {
		return nil, false
	}

	if ctx.Expected != nil {
		if expArr, isExpArr := (*ctx.Expected).(exprtype.Array); isExpArr {
			if arr, isArr := v.(exprvalue.Arr); isArr && len(arr) == 0 {
				if expArr.Length == nil || *expArr.Length == 0 {
					return exprnodes.NewLiteralTyped(v, expArr), true
				}
			}
		}
	}
	return exprnodes.NewLiteral(v), true
}

// parseLiteralValue allows a bare object ONLY when reached through the
// ["literal", ...] wrapper (the top-level dispatcher rejects bare objects
// before ever calling this).
func parseLiteralValue(r jsonval.Reader, ctx *Context) (exprvalue.Value, bool) {
	if r.IsNull() {
		return exprvalue.Null{}, true
	}
	if r.IsObject() {
		out := make(exprvalue.Obj)
		failed := false
		r.EachMember(func(key string, mv jsonval.Reader) {
			if failed {
				return
			}
			v, ok := parseLiteralValue(mv, ctx)
			if !ok {
				failed = true
				return
			}
			out[key] = v
		})
		if failed {
			return nil, false
		}
		return out, true
	}
	if r.IsArray() {
		n := r.ArrayLength()
		out := make(exprvalue.Arr, 0, n)
		for i := 0; i < n; i++ {
			v, ok := parseLiteralValue(r.ArrayMember(i), ctx)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	}

	h := r.ToHostValue()
	switch h.Kind {
	case jsonval.KindBool:
		return exprvalue.Bool(h.Bool), true
	case jsonval.KindString:
		return exprvalue.Str(h.Str), true
	case jsonval.KindUInt:
		return checkLiteralNumber(float64(h.UInt), ctx)
	case jsonval.KindInt:
		return checkLiteralNumber(float64(h.Int), ctx)
	case jsonval.KindDouble:
		return checkLiteralNumber(h.Double, ctx)
	default:
		return exprvalue.Null{}, true
	}
}

func checkLiteralNumber(n float64, ctx *Context) (exprvalue.Value, bool) {
	if !exprvalue.CheckLiteralMSI(n) {
		ctx.Error(diag.CodeNumericRange,
			"Numeric values must be no larger than "+strconv.FormatInt(exprconfig.MaxSafeInteger, 10)+".")
		return nil, false
	}
	return exprvalue.Num(n), true
}
