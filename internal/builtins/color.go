package builtins

import (
	"strconv"
	"strings"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// registerColor wires the color constructors and conversions (to_rgba,
// parse_color, rgba, rgb).
func registerColor(reg *compound.Registry) {
	reg.Register("to_rgba", compound.Signature{
		Result: exprtype.NewArrayN(exprtype.Number, 4), Params: compound.Fixed(exprtype.Color),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			c, _ := exprvalue.ToColor(args[0])
			return exprvalue.Arr{
				exprvalue.Num(c.R), exprvalue.Num(c.G), exprvalue.Num(c.B), exprvalue.Num(c.A),
			}, nil
		},
	})

	reg.Register("parse_color", compound.Signature{
		Result: exprtype.Color, Params: compound.Fixed(exprtype.String),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			s, _ := exprvalue.ToGoString(args[0])
			c, ok := parseColorString(s)
			if !ok {
				return nil, diag.NewEvalError(diag.CodeInvalidColor, "Could not parse color from value '"+s+"'")
			}
			return c, nil
		},
	})

	reg.Register("rgba", compound.Signature{
		Result: exprtype.Color, Params: compound.Fixed(exprtype.Number, exprtype.Number, exprtype.Number, exprtype.Number),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			r, _ := exprvalue.ToFloat64(args[0])
			g, _ := exprvalue.ToFloat64(args[1])
			b, _ := exprvalue.ToFloat64(args[2])
			a, _ := exprvalue.ToFloat64(args[3])
			return evalRGBA(r, g, b, a)
		},
	})

	reg.Register("rgb", compound.Signature{
		Result: exprtype.Color, Params: compound.Fixed(exprtype.Number, exprtype.Number, exprtype.Number),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			r, _ := exprvalue.ToFloat64(args[0])
			g, _ := exprvalue.ToFloat64(args[1])
			b, _ := exprvalue.ToFloat64(args[2])
			return evalRGBA(r, g, b, 1.0)
		},
	})
}

// evalRGBA validates and builds a ColorVal from 0-255 r/g/b and 0-1 alpha
// inputs, grounded exactly on compound_expression.cpp's rgba() helper
// including its stringifyColor-joined error wording.
func evalRGBA(r, g, b, a float64) (exprvalue.Value, *diag.EvalError) {
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return nil, diag.NewEvalError(diag.CodeInvalidColor,
			"Invalid rgba value ["+stringifyColorArgs(r, g, b, a)+"]: 'r', 'g', and 'b' must be between 0 and 255.")
	}
	if a < 0 || a > 1 {
		return nil, diag.NewEvalError(diag.CodeInvalidColor,
			"Invalid rgba value ["+stringifyColorArgs(r, g, b, a)+"]: 'a' must be between 0 and 1.")
	}
	return exprvalue.ColorVal{R: r / 255, G: g / 255, B: b / 255, A: a}, nil
}

func stringifyColorArgs(r, g, b, a float64) string {
	return exprvalue.FormatNumber(r) + ", " + exprvalue.FormatNumber(g) + ", " +
		exprvalue.FormatNumber(b) + ", " + exprvalue.FormatNumber(a)
}

// parseColorString accepts the color syntaxes exercised by this module's
// scenario corpus: #rgb/#rgba/#rrggbb/#rrggbbaa hex notation and the
// rgb()/rgba() functional notation, each producing a 0-1-scaled ColorVal.
// Named CSS colors (e.g. "steelblue") are out of scope for this minimal
// parser; see DESIGN.md.
func parseColorString(s string) (exprvalue.ColorVal, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")") {
		return parseFunctionalColor(s[5:len(s)-1], true)
	}
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseFunctionalColor(s[4:len(s)-1], false)
	}
	return exprvalue.ColorVal{}, false
}

func parseHexColor(hex string) (exprvalue.ColorVal, bool) {
	expand := func(c byte) (float64, bool) {
		n, err := strconv.ParseUint(string([]byte{c, c}), 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(n) / 255, true
	}
	byteAt := func(h string, i int) (float64, bool) {
		n, err := strconv.ParseUint(h[i:i+2], 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(n) / 255, true
	}

	switch len(hex) {
	case 3, 4:
		r, ok1 := expand(hex[0])
		g, ok2 := expand(hex[1])
		b, ok3 := expand(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return exprvalue.ColorVal{}, false
		}
		a := 1.0
		if len(hex) == 4 {
			var ok4 bool
			a, ok4 = expand(hex[3])
			if !ok4 {
				return exprvalue.ColorVal{}, false
			}
		}
		return exprvalue.ColorVal{R: r, G: g, B: b, A: a}, true
	case 6, 8:
		r, ok1 := byteAt(hex, 0)
		g, ok2 := byteAt(hex, 2)
		b, ok3 := byteAt(hex, 4)
		if !ok1 || !ok2 || !ok3 {
			return exprvalue.ColorVal{}, false
		}
		a := 1.0
		if len(hex) == 8 {
			var ok4 bool
			a, ok4 = byteAt(hex, 6)
			if !ok4 {
				return exprvalue.ColorVal{}, false
			}
		}
		return exprvalue.ColorVal{R: r, G: g, B: b, A: a}, true
	default:
		return exprvalue.ColorVal{}, false
	}
}

func parseFunctionalColor(inner string, hasAlpha bool) (exprvalue.ColorVal, bool) {
	parts := strings.Split(inner, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return exprvalue.ColorVal{}, false
	}
	nums := make([]float64, want)
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return exprvalue.ColorVal{}, false
		}
		nums[i] = n
	}
	a := 1.0
	if hasAlpha {
		a = nums[3]
	}
	v, evalErr := evalRGBA(nums[0], nums[1], nums[2], a)
	if evalErr != nil {
		return exprvalue.ColorVal{}, false
	}
	c, _ := exprvalue.ToColor(v)
	return c, true
}
