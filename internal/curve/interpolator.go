// Package curve implements the piecewise interpolation node (C6): a Curve
// evaluates its input to a zoom-like float, brackets it against an ordered
// set of stops, and either short-circuits to a stop's own value or blends
// the bracketing pair via a pluggable Interpolator.
package curve

import "math"

// Interpolator computes the blend factor t in [0, 1] for an input value x
// between bracketing stop keys a (lower) and b (upper), per spec §4.6.
type Interpolator interface {
	Factor(a, b, x float64) float64
}

// Step is used for output types that only support discrete stops (string,
// boolean, object, enum, non-numeric array): its factor is always 0, so
// Curve.Evaluate always short-circuits to the lower stop's value.
type Step struct{}

func (Step) Factor(float64, float64, float64) float64 { return 0 }

// Exponential implements the base-parameterized exponential easing spec
// §4.6 describes: base == 1 degenerates to linear interpolation.
type Exponential struct {
	Base float64
}

func (e Exponential) Factor(a, b, x float64) float64 {
	d := b - a
	p := x - a
	if d == 0 {
		return 0
	}
	if e.Base == 1 {
		return p / d
	}
	return (math.Pow(e.Base, p) - 1) / (math.Pow(e.Base, d) - 1)
}

// CubicBezier implements a CSS-style cubic-bezier timing function, solved
// numerically for the t that produces the target progress p/d along the
// curve's x axis (Newton-Raphson with a bisection fallback, grounded on
// WebKit's classic UnitBezier solver).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

const bezierTolerance = 1e-6

func (c CubicBezier) Factor(a, b, x float64) float64 {
	d := b - a
	if d == 0 {
		return 0
	}
	p := (x - a) / d
	return solveUnitBezier(c.X1, c.Y1, c.X2, c.Y2, p, bezierTolerance)
}

// solveUnitBezier returns the y value of the cubic bezier (0,0)-(x1,y1)-
// (x2,y2)-(1,1) at the x coordinate p, i.e. the easing function's output
// for input progress p.
func solveUnitBezier(x1, y1, x2, y2, p, epsilon float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleCurveX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleCurveY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	sampleCurveDerivativeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	// Newton-Raphson: fast convergence when the derivative is well-behaved.
	t := p
	for i := 0; i < 8; i++ {
		x2t := sampleCurveX(t) - p
		if math.Abs(x2t) < epsilon {
			return sampleCurveY(t)
		}
		d := sampleCurveDerivativeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= x2t / d
	}

	// Bisection fallback for inputs where Newton-Raphson doesn't converge.
	lo, hi := 0.0, 1.0
	t = p
	if t < lo {
		return sampleCurveY(lo)
	}
	if t > hi {
		return sampleCurveY(hi)
	}
	for hi-lo > epsilon {
		x2t := sampleCurveX(t)
		if math.Abs(x2t-p) < epsilon {
			return sampleCurveY(t)
		}
		if p > x2t {
			lo = t
		} else {
			hi = t
		}
		t = (hi + lo) / 2
	}
	return sampleCurveY(t)
}
