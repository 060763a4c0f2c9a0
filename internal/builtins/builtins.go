// Package builtins registers every compound-expression signature (C8) into
// a *compound.Registry: constants, type assertions/conversions, color
// constructors, feature accessors, arithmetic, transcendentals, comparisons,
// boolean logic and string operations. Registration is grouped the way
// compound_expression.cpp groups its CompoundExpressionRegistry entries, one
// file per concern, so each file's grounding stays legible on its own.
package builtins

import "github.com/exprstyle/mapexpr/internal/compound"

// Register populates reg with every built-in signature. Callers are
// expected to invoke this exactly once against a fresh registry (spec §5's
// process-wide, initialize-once table) and treat the registry as read-only
// afterward.
func Register(reg *compound.Registry) {
	registerConstantsAndAssertions(reg)
	registerColor(reg)
	registerFeatureAccessors(reg)
	registerArithmetic(reg)
	registerLogic(reg)
	registerStrings(reg)
}

// NewDefaultRegistry builds a *compound.Registry with every built-in already
// registered, for callers that don't need to compose additional signatures.
func NewDefaultRegistry() *compound.Registry {
	reg := compound.NewRegistry()
	Register(reg)
	return reg
}
