package curve_test

import (
	"math"
	"testing"

	"github.com/exprstyle/mapexpr/internal/curve"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprnodes"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

func numStop(k float64, v float64) curve.Stop {
	return curve.Stop{Key: k, Node: exprnodes.NewLiteral(exprvalue.Num(v))}
}

func TestCurve_BelowMinReturnsFirstStop(t *testing.T) {
	c := curve.NewCurve(exprtype.Number, curve.Exponential{Base: 1},
		exprnodes.NewLiteral(exprvalue.Num(-5)),
		[]curve.Stop{numStop(0, 10), numStop(10, 20)})
	v, err := c.Evaluate(&exprast.EvaluationContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(exprvalue.Num) != 10 {
		t.Fatalf("got %v", v)
	}
}

func TestCurve_AboveMaxReturnsLastStop(t *testing.T) {
	c := curve.NewCurve(exprtype.Number, curve.Exponential{Base: 1},
		exprnodes.NewLiteral(exprvalue.Num(50)),
		[]curve.Stop{numStop(0, 10), numStop(10, 20)})
	v, err := c.Evaluate(&exprast.EvaluationContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(exprvalue.Num) != 20 {
		t.Fatalf("got %v", v)
	}
}

func TestCurve_LinearMidpoint(t *testing.T) {
	c := curve.NewCurve(exprtype.Number, curve.Exponential{Base: 1},
		exprnodes.NewLiteral(exprvalue.Num(5)),
		[]curve.Stop{numStop(0, 10), numStop(10, 20)})
	v, err := c.Evaluate(&exprast.EvaluationContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(float64(v.(exprvalue.Num))-15) > 1e-9 {
		t.Fatalf("got %v, want 15", v)
	}
}

func TestCurve_StepNeverInterpolates(t *testing.T) {
	c := curve.NewCurve(exprtype.String, curve.Step{},
		exprnodes.NewLiteral(exprvalue.Num(5)),
		[]curve.Stop{
			{Key: 0, Node: exprnodes.NewLiteral(exprvalue.Str("a"))},
			{Key: 10, Node: exprnodes.NewLiteral(exprvalue.Str("b"))},
		})
	v, err := c.Evaluate(&exprast.EvaluationContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(exprvalue.Str) != "a" {
		t.Fatalf("got %v, want the lower stop (step factor is always 0)", v)
	}
}

func TestCubicBezierFactor_EndpointsAreExact(t *testing.T) {
	cb := curve.CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	if f := cb.Factor(0, 10, 0); f != 0 {
		t.Fatalf("factor at a should be 0, got %v", f)
	}
	if f := cb.Factor(0, 10, 10); f != 1 {
		t.Fatalf("factor at b should be 1, got %v", f)
	}
}
