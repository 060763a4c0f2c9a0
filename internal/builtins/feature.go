package builtins

import (
	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// registerFeatureAccessors wires the handful of built-ins that read the
// EvaluationContext directly (zoom, has, get, properties, geometry_type,
// id) plus length, which reads neither but shares this file's accessor
// flavor in the original's registry ordering.
func registerFeatureAccessors(reg *compound.Registry) {
	reg.Register("zoom", compound.Signature{
		Result: exprtype.Number, Params: compound.Fixed(), ZoomDependent: true,
		Eval: func(ctx *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			if ctx == nil || ctx.Zoom == nil {
				return nil, diag.NewEvalError(diag.CodeMissingZoom,
					"The 'zoom' expression is unavailable in the current evaluation context.")
			}
			return exprvalue.Num(*ctx.Zoom), nil
		},
	})

	reg.Register("has",
		compound.Signature{
			Result: exprtype.Boolean, Params: compound.Fixed(exprtype.String), FeatureDependent: true,
			Eval: func(ctx *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				if ctx == nil || ctx.Feature == nil {
					return nil, diag.NewEvalError(diag.CodeMissingFeature,
						"Feature data is unavailable in the current evaluation context.")
				}
				key, _ := exprvalue.ToGoString(args[0])
				_, ok := ctx.Feature.Get(key)
				return exprvalue.Bool(ok), nil
			},
		},
		compound.Signature{
			Result: exprtype.Boolean, Params: compound.Fixed(exprtype.String, exprtype.Object),
			Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				key, _ := exprvalue.ToGoString(args[0])
				obj, _ := args[1].(exprvalue.Obj)
				_, ok := obj[key]
				return exprvalue.Bool(ok), nil
			},
		},
	)

	reg.Register("get",
		compound.Signature{
			Result: exprtype.Value, Params: compound.Fixed(exprtype.String), FeatureDependent: true,
			Eval: func(ctx *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				if ctx == nil || ctx.Feature == nil {
					return nil, diag.NewEvalError(diag.CodeMissingFeature,
						"Feature data is unavailable in the current evaluation context.")
				}
				key, _ := exprvalue.ToGoString(args[0])
				hv, ok := ctx.Feature.Get(key)
				if !ok {
					return nil, diag.NewEvalError(diag.CodeMissingProperty,
						"Property '"+key+"' not found in feature.properties")
				}
				return exprvalue.ToExpressionValue(hv), nil
			},
		},
		compound.Signature{
			Result: exprtype.Value, Params: compound.Fixed(exprtype.String, exprtype.Object),
			Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				key, _ := exprvalue.ToGoString(args[0])
				obj, _ := args[1].(exprvalue.Obj)
				v, ok := obj[key]
				if !ok {
					return nil, diag.NewEvalError(diag.CodeMissingProperty, "Property '"+key+"' not found in object")
				}
				return v, nil
			},
		},
	)

	reg.Register("length",
		compound.Signature{
			Result: exprtype.Number, Params: compound.Fixed(exprtype.AnyArray),
			Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				arr, _ := exprvalue.ToArrValue(args[0])
				return exprvalue.Num(float64(len(arr))), nil
			},
		},
		compound.Signature{
			Result: exprtype.Number, Params: compound.Fixed(exprtype.String),
			Eval: func(_ *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
				s, _ := exprvalue.ToGoString(args[0])
				return exprvalue.Num(float64(len(s))), nil
			},
		},
	)

	reg.Register("properties", compound.Signature{
		Result: exprtype.Object, Params: compound.Fixed(), FeatureDependent: true,
		Eval: func(ctx *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			if ctx == nil || ctx.Feature == nil {
				return nil, diag.NewEvalError(diag.CodeMissingFeature,
					"Feature data is unavailable in the current evaluation context.")
			}
			props := ctx.Feature.Properties()
			out := make(exprvalue.Obj, len(props))
			for k, hv := range props {
				out[k] = exprvalue.ToExpressionValue(hv)
			}
			return out, nil
		},
	})

	reg.Register("geometry_type", compound.Signature{
		Result: exprtype.String, Params: compound.Fixed(), FeatureDependent: true,
		Eval: func(ctx *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			if ctx == nil || ctx.Feature == nil {
				return nil, diag.NewEvalError(diag.CodeMissingFeature,
					"Feature data is unavailable in the current evaluation context.")
			}
			return exprvalue.Str(ctx.Feature.Kind().String()), nil
		},
	})

	reg.Register("id", compound.Signature{
		Result: exprtype.Value, Params: compound.Fixed(), FeatureDependent: true,
		Eval: func(ctx *exprast.EvaluationContext, _ []exprvalue.Value) (exprvalue.Value, *diag.EvalError) {
			if ctx == nil || ctx.Feature == nil {
				return nil, diag.NewEvalError(diag.CodeMissingFeature,
					"Feature data is unavailable in the current evaluation context.")
			}
			hv, ok := ctx.Feature.ID()
			if !ok {
				return nil, diag.NewEvalError(diag.CodeMissingProperty, "Property 'id' not found in feature")
			}
			return exprvalue.ToExpressionValue(hv), nil
		},
	})
}
