// Package exprast defines the polymorphic expression node contract (C3):
// every parsed expression is a Node, evaluated against an EvaluationContext
// and visited pre-order for constant-folding analyses.
package exprast

import (
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval"
	"github.com/google/uuid"
)

// Node is the single sum type every expression kind implements. The teacher
// (funxy) models its AST as many concrete structs behind a shared Node
// interface with an Accept(Visitor) method; we follow the same shape but
// with the flatter Visit(func(Node)) pre-order walk the spec calls for
// instead of a double-dispatch Visitor, since every analysis here
// (constant-folding, zoom-curve detection) only needs a read-only walk.
type Node interface {
	// ID is a stable identity minted once at parse time, letting a host
	// renderer cache compiled results keyed by expression identity (e.g.
	// hoisting a zoom curve's per-zoom-level evaluation outside the
	// per-feature loop).
	ID() uuid.UUID
	// Type returns the node's declared output type, decided at parse time.
	Type() exprtype.Type
	// Evaluate runs the node against ctx, returning a Value whose TypeOf is
	// always a subtype of Type() when no error is returned.
	Evaluate(ctx *EvaluationContext) (exprvalue.Value, *diag.EvalError)
	// Visit walks self and every descendant, pre-order.
	Visit(fn func(Node))
	// IsFeatureConstant is true iff no descendant reads the feature.
	IsFeatureConstant() bool
	// IsZoomConstant is true iff no descendant reads zoom.
	IsZoomConstant() bool
}

// FeatureKind is the geometry classification a Feature exposes to
// `geometry_type()`.
type FeatureKind int

const (
	KindUnknown FeatureKind = iota
	KindPoint
	KindLineString
	KindPolygon
)

func (k FeatureKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Feature is the narrow accessor interface the evaluator consumes (spec
// §4.3): the engine never touches a concrete feature/tile data model.
type Feature interface {
	Get(key string) (jsonval.HostValue, bool)
	ID() (jsonval.HostValue, bool)
	Properties() map[string]jsonval.HostValue
	Kind() FeatureKind
}

// EvaluationContext bundles the two dimensions an expression may read.
// Both are optional: a zoom-constant expression may be evaluated with
// Zoom == nil, a feature-constant expression with Feature == nil.
type EvaluationContext struct {
	Zoom    *float64
	Feature Feature
}

// baseNode factors the bookkeeping (ID, declared type) every concrete node
// embeds, the way the teacher's AST nodes each carry a shared Token field.
type baseNode struct {
	id       uuid.UUID
	declared exprtype.Type
}

func newBase(t exprtype.Type) baseNode {
	return baseNode{id: uuid.New(), declared: t}
}

func (b baseNode) ID() uuid.UUID        { return b.id }
func (b baseNode) Type() exprtype.Type  { return b.declared }

// AllFeatureConstant is the disjunction-of-children helper spec §4.3
// describes: a compound node is feature-constant iff every child is.
func AllFeatureConstant(children []Node) bool {
	for _, c := range children {
		if !c.IsFeatureConstant() {
			return false
		}
	}
	return true
}

// AllZoomConstant mirrors AllFeatureConstant for the zoom dimension.
func AllZoomConstant(children []Node) bool {
	for _, c := range children {
		if !c.IsZoomConstant() {
			return false
		}
	}
	return true
}

// VisitChildren is the common pre-order walk: call fn(self), then
// self.Visit on each child forwards fn (children handle their own
// recursion since each is itself a Node).
func VisitChildren(self Node, children []Node, fn func(Node)) {
	fn(self)
	for _, c := range children {
		c.Visit(fn)
	}
}
