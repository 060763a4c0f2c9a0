package builtins

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

var (
	upcaser   = cases.Upper(language.Und)
	downcaser = cases.Lower(language.Und)
)

// registerStrings wires upcase/downcase/concat. "in" is a reserved
// structural head (spec §4.5) parsed directly by
// internal/exprparse.parseIn, not a compound-registry entry — its needle
// type must be rejected at parse time, which a registry signature can't
// express since exprtype.Value (the registered needle param type) is the
// top type and never fails overload resolution.
func registerStrings(reg *compound.Registry) {
	reg.Register("upcase", compound.Signature{
		Result: exprtype.String, Params: compound.Fixed(exprtype.String),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			s, _ := exprvalue.ToGoString(args[0])
			return exprvalue.Str(upcaser.String(s)), nil
		},
	})
	reg.Register("downcase", compound.Signature{
		Result: exprtype.String, Params: compound.Fixed(exprtype.String),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			s, _ := exprvalue.ToGoString(args[0])
			return exprvalue.Str(downcaser.String(s)), nil
		},
	})
	reg.Register("concat", compound.Signature{
		Result: exprtype.String, Params: compound.VarargsOf(exprtype.String),
		Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			var b strings.Builder
			for _, v := range args {
				s, _ := exprvalue.ToGoString(v)
				b.WriteString(s)
			}
			return exprvalue.Str(b.String()), nil
		},
	})
}
