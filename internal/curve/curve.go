package curve

import (
	"sort"

	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/google/uuid"
)

// Stop is one (key, expression) pair of a Curve, in strictly ascending
// key order (enforced at parse time).
type Stop struct {
	Key  float64
	Node exprast.Node
}

// base mirrors exprnodes.base / compound.base: each package implementing
// exprast.Node keeps its own local ID/Type bookkeeping.
type base struct {
	id uuid.UUID
	t  exprtype.Type
}

func newBase(t exprtype.Type) base { return base{id: uuid.New(), t: t} }

func (b base) ID() uuid.UUID       { return b.id }
func (b base) Type() exprtype.Type { return b.t }

// Curve is the ["curve", [interp...], input, k1, v1, ..., kn, vn] node
// (spec §4.6).
type Curve struct {
	base
	Interp Interpolator
	Input  exprast.Node
	Stops  []Stop
}

// NewCurve builds a Curve node. stops must already be sorted ascending by
// Key (the parser enforces strictly-ascending stop keys).
func NewCurve(outputType exprtype.Type, interp Interpolator, input exprast.Node, stops []Stop) *Curve {
	return &Curve{base: newBase(outputType), Interp: interp, Input: input, Stops: stops}
}

// IsZoomCurve reports whether this curve's input is the zoom accessor
// (spec §4.6: "used by the renderer to hoist zoom dependence").
func (c *Curve) IsZoomCurve() bool {
	ce, ok := c.Input.(*compound.CompoundExpr)
	return ok && ce.IsZoomExpr()
}

func (c *Curve) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	xVal, err := c.Input.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	x, ok := exprvalue.ToFloat64(xVal)
	if !ok {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("number", xVal))
	}

	if len(c.Stops) == 0 {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, "No stops in exponential curve.")
	}

	idx := sort.Search(len(c.Stops), func(i int) bool { return c.Stops[i].Key > x })
	if idx == len(c.Stops) {
		return c.Stops[len(c.Stops)-1].Node.Evaluate(ctx)
	}
	if idx == 0 {
		return c.Stops[0].Node.Evaluate(ctx)
	}

	lowerStop := c.Stops[idx-1]
	upperStop := c.Stops[idx]
	t := c.Interp.Factor(lowerStop.Key, upperStop.Key, x)

	if t == 0 {
		return lowerStop.Node.Evaluate(ctx)
	}
	if t == 1 {
		return upperStop.Node.Evaluate(ctx)
	}

	lower, err := lowerStop.Node.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	upper, err := upperStop.Node.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	return interpolateValue(c.Type(), lower, upper, t)
}

// interpolateValue blends lower/upper by t according to output's shape
// (spec §4.6's output-type dispatch: Number and Color interpolate
// natively, Array(Number) interpolates componentwise, everything else
// only reaches here if t is neither 0 nor 1 — unreachable for a
// correctly-parsed step-only curve, since Step.Factor is always 0).
func interpolateValue(output exprtype.Type, lower, upper exprvalue.Value, t float64) (exprvalue.Value, *diag.EvalError) {
	switch {
	case exprtype.Equal(output, exprtype.Number):
		lo, ok1 := exprvalue.ToFloat64(lower)
		hi, ok2 := exprvalue.ToFloat64(upper)
		if !ok1 {
			return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("number", lower))
		}
		if !ok2 {
			return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("number", upper))
		}
		return exprvalue.Num(lerp(lo, hi, t)), nil

	case exprtype.Equal(output, exprtype.Color):
		lo, ok1 := exprvalue.ToColor(lower)
		hi, ok2 := exprvalue.ToColor(upper)
		if !ok1 {
			return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("color", lower))
		}
		if !ok2 {
			return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("color", upper))
		}
		return exprvalue.ColorVal{
			R: lerp(lo.R, hi.R, t),
			G: lerp(lo.G, hi.G, t),
			B: lerp(lo.B, hi.B, t),
			A: lerp(lo.A, hi.A, t),
		}, nil

	default:
		if arrType, ok := output.(exprtype.Array); ok && exprtype.Equal(arrType.Item, exprtype.Number) {
			loArr, ok1 := exprvalue.ToArrValue(lower)
			hiArr, ok2 := exprvalue.ToArrValue(upper)
			if !ok1 || !ok2 || len(loArr) != len(hiArr) {
				return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch(output.String(), lower))
			}
			out := make(exprvalue.Arr, len(loArr))
			for i := range loArr {
				lo, ok1 := exprvalue.ToFloat64(loArr[i])
				hi, ok2 := exprvalue.ToFloat64(hiArr[i])
				if !ok1 || !ok2 {
					return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("number", loArr[i]))
				}
				out[i] = exprvalue.Num(lerp(lo, hi, t))
			}
			return out, nil
		}
		return nil, diag.NewEvalError(diag.CodeTypeMismatch,
			"Type "+output.String()+" is not interpolatable.")
	}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func (c *Curve) Visit(fn func(exprast.Node)) {
	fn(c)
	c.Input.Visit(fn)
	for _, s := range c.Stops {
		s.Node.Visit(fn)
	}
}

func (c *Curve) IsFeatureConstant() bool {
	if !c.Input.IsFeatureConstant() {
		return false
	}
	for _, s := range c.Stops {
		if !s.Node.IsFeatureConstant() {
			return false
		}
	}
	return true
}

func (c *Curve) IsZoomConstant() bool {
	if !c.Input.IsZoomConstant() {
		return false
	}
	for _, s := range c.Stops {
		if !s.Node.IsZoomConstant() {
			return false
		}
	}
	return true
}
