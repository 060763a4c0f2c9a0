// Package exprnodes implements the structural expression node kinds (C5):
// literal, var/let, at, in, coalesce, case, match and the array assertion.
// Each node kind defines its own small id/type bookkeeping struct (base),
// since exprast's own bookkeeping struct is unexported and cannot be
// embedded across package boundaries.
package exprnodes

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/google/uuid"
)

// base factors the ID/Type bookkeeping every node kind in this package
// embeds, mirroring exprast.baseNode and compound.base.
type base struct {
	id uuid.UUID
	t  exprtype.Type
}

func newBase(t exprtype.Type) base {
	return base{id: uuid.New(), t: t}
}

func (b base) ID() uuid.UUID       { return b.id }
func (b base) Type() exprtype.Type { return b.t }

// Literal is a constant value baked in at parse time (spec §4.5's
// ["literal", value] form, plus bare JSON scalars that parse directly to a
// literal without the wrapper; a bare array is always parsed as a call, so
// array literals need the wrapper).
type Literal struct {
	base
	Value exprvalue.Value
}

// NewLiteral wraps a constant value as a Literal node. The declared type is
// the value's own runtime type (spec §4.5: "a literal's type is typeof(value)").
func NewLiteral(v exprvalue.Value) *Literal {
	return &Literal{base: newBase(exprvalue.TypeOf(v)), Value: v}
}

// NewLiteralTyped wraps v as a Literal node with an explicit declared type,
// overriding exprvalue.TypeOf(v) — used for the empty-array special case
// (spec §4.5: "an empty array takes the expected array type if the context
// declares one"), where typeof([]) would otherwise widen to array<value>.
func NewLiteralTyped(v exprvalue.Value, t exprtype.Type) *Literal {
	return &Literal{base: newBase(t), Value: v}
}

func (l *Literal) Evaluate(*exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	return l.Value, nil
}

func (l *Literal) Visit(fn func(exprast.Node)) { fn(l) }

func (l *Literal) IsFeatureConstant() bool { return true }
func (l *Literal) IsZoomConstant() bool    { return true }
