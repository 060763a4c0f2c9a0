package exprnodes

import (
	"math"

	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
)

// MatchStringCases and MatchIntCases are the two instantiations the parser
// chooses between based on the case-label literals (spec §4.5: "Two
// instantiations: integer keys and string keys"). Each maps a label to the
// branch Node that label was most recently declared for — "first-written
// entry wins" is enforced as a parse-time duplicate-case error, so a
// well-formed MatchString/MatchInt never actually holds a later overwrite.

// MatchString is the ["match", input, label, result, ..., otherwise] form
// with string-typed case labels.
type MatchString struct {
	base
	Input     exprast.Node
	Cases     map[string]exprast.Node
	Otherwise exprast.Node
}

func NewMatchString(outputType exprtype.Type, input exprast.Node, cases map[string]exprast.Node, otherwise exprast.Node) *MatchString {
	return &MatchString{base: newBase(outputType), Input: input, Cases: cases, Otherwise: otherwise}
}

func (m *MatchString) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	inputVal, err := m.Input.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	s, ok := exprvalue.ToGoString(inputVal)
	if !ok {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("string", inputVal))
	}
	if branch, ok := m.Cases[s]; ok {
		return branch.Evaluate(ctx)
	}
	return m.Otherwise.Evaluate(ctx)
}

func (m *MatchString) Visit(fn func(exprast.Node)) {
	fn(m)
	m.Input.Visit(fn)
	for _, branch := range m.Cases {
		branch.Visit(fn)
	}
	m.Otherwise.Visit(fn)
}

func (m *MatchString) IsFeatureConstant() bool {
	if !m.Input.IsFeatureConstant() || !m.Otherwise.IsFeatureConstant() {
		return false
	}
	for _, branch := range m.Cases {
		if !branch.IsFeatureConstant() {
			return false
		}
	}
	return true
}

func (m *MatchString) IsZoomConstant() bool {
	if !m.Input.IsZoomConstant() || !m.Otherwise.IsZoomConstant() {
		return false
	}
	for _, branch := range m.Cases {
		if !branch.IsZoomConstant() {
			return false
		}
	}
	return true
}

// MatchInt is the integer-keyed instantiation. A match succeeds only when
// the evaluated input is already a whole number (spec §4.5: "only values
// equal to their floor may match"), checked here via v == math.Trunc(v) —
// equivalent to the original's v == ceil(v) check, since a float equals its
// ceiling iff it equals its floor iff it is integral.
type MatchInt struct {
	base
	Input     exprast.Node
	Cases     map[int64]exprast.Node
	Otherwise exprast.Node
}

func NewMatchInt(outputType exprtype.Type, input exprast.Node, cases map[int64]exprast.Node, otherwise exprast.Node) *MatchInt {
	return &MatchInt{base: newBase(outputType), Input: input, Cases: cases, Otherwise: otherwise}
}

func (m *MatchInt) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	inputVal, err := m.Input.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	f, ok := exprvalue.ToFloat64(inputVal)
	if !ok {
		return nil, diag.NewEvalError(diag.CodeTypeMismatch, exprvalue.DescribeMismatch("number", inputVal))
	}
	if f == math.Trunc(f) {
		if branch, ok := m.Cases[int64(f)]; ok {
			return branch.Evaluate(ctx)
		}
	}
	return m.Otherwise.Evaluate(ctx)
}

func (m *MatchInt) Visit(fn func(exprast.Node)) {
	fn(m)
	m.Input.Visit(fn)
	for _, branch := range m.Cases {
		branch.Visit(fn)
	}
	m.Otherwise.Visit(fn)
}

func (m *MatchInt) IsFeatureConstant() bool {
	if !m.Input.IsFeatureConstant() || !m.Otherwise.IsFeatureConstant() {
		return false
	}
	for _, branch := range m.Cases {
		if !branch.IsFeatureConstant() {
			return false
		}
	}
	return true
}

func (m *MatchInt) IsZoomConstant() bool {
	if !m.Input.IsZoomConstant() || !m.Otherwise.IsZoomConstant() {
		return false
	}
	for _, branch := range m.Cases {
		if !branch.IsZoomConstant() {
			return false
		}
	}
	return true
}
