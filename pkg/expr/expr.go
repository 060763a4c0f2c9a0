// Package expr is the public facade over the style expression engine: the
// only exported surface a host renderer needs (Parse, Expression,
// EvaluationContext, Feature, Value) so that internal/* can keep evolving
// its node kinds and registries without breaking callers.
package expr

import (
	"github.com/exprstyle/mapexpr/internal/builtins"
	"github.com/exprstyle/mapexpr/internal/compound"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprparse"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval"
	"github.com/google/uuid"
)

// defaultRegistry is the process-wide compound-expression table (spec §5),
// built exactly once at package init and never mutated afterward.
var defaultRegistry = builtins.NewDefaultRegistry()

// Type is a parsed expression's declared output type.
type Type = exprtype.Type

// Value is a runtime expression value (the result of Expression.Evaluate).
type Value = exprvalue.Value

// Reader is the abstract JSON/YAML tree capability Parse consumes; see
// internal/jsonval for the mcvoid/json and yaml.v3 adapters.
type Reader = jsonval.Reader

// Feature is the narrow per-row accessor the engine reads from for
// `get`/`has`/`id`/`properties`/`geometry_type`.
type Feature = exprast.Feature

// FeatureKind classifies a Feature's geometry for `geometry_type()`.
type FeatureKind = exprast.FeatureKind

const (
	KindUnknown    = exprast.KindUnknown
	KindPoint      = exprast.KindPoint
	KindLineString = exprast.KindLineString
	KindPolygon    = exprast.KindPolygon
)

// EvaluationContext bundles the zoom level and feature an expression may
// read. Both are optional: omit Zoom for a feature-only evaluation, omit
// Feature for a zoom-only one.
type EvaluationContext = exprast.EvaluationContext

// ParseError is a single parse-time diagnostic, keyed to the structural
// position (e.g. "[2][1]") of the JSON value that produced it.
type ParseError = diag.ParseError

// EvalError is a single evaluation-time failure.
type EvalError = diag.EvalError

// Expression is a parsed, immutable expression tree. It is safe to evaluate
// concurrently from multiple goroutines against distinct EvaluationContexts
// (spec §5): parsing happens once, evaluation is pure.
type Expression struct {
	node exprast.Node
}

// ID is the expression's stable parse-time identity, usable as a cache key
// by a host renderer (e.g. hoisting a zoom-curve's per-zoom evaluation
// outside a per-feature loop).
func (e *Expression) ID() uuid.UUID { return e.node.ID() }

// Type is the expression's declared output type.
func (e *Expression) Type() Type { return e.node.Type() }

// IsFeatureConstant reports whether no part of the expression reads the
// feature (so it can be evaluated once and reused across features).
func (e *Expression) IsFeatureConstant() bool { return e.node.IsFeatureConstant() }

// IsZoomConstant reports whether no part of the expression reads zoom.
func (e *Expression) IsZoomConstant() bool { return e.node.IsZoomConstant() }

// Evaluate runs the expression against ctx.
func (e *Expression) Evaluate(ctx *EvaluationContext) (Value, *EvalError) {
	return e.node.Evaluate(ctx)
}

// Parse parses r as a style expression, with expected narrowing the
// accepted output type (pass exprtype.Value, the top type, to accept any
// result). On failure it returns the collected *ParseErrors. Most forms stop
// parsing at their first failing sub-expression, so this is usually a single
// error.
func Parse(r Reader, expected Type) (*Expression, []*ParseError) {
	ctx := exprparse.NewContext(&expected)
	node, ok := exprparse.Parse(r, ctx, defaultRegistry)
	if !ok {
		return nil, *ctx.Errors
	}
	return &Expression{node: node}, nil
}
