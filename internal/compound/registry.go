// Package compound implements the compound-expression registry (C4): a
// process-wide, initialize-once name -> signatures table, plus the overload
// resolution algorithm described in spec §4.4. Concrete signatures (the
// built-in function library, C8) are registered by internal/builtins; this
// package only knows about the registry mechanics and the CompoundExpr node
// kind every registered signature produces.
package compound

import (
	"strconv"
	"strings"

	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/google/uuid"
)

// EvalFunc is a signature's host-typed evaluator: it receives the already
// successfully-evaluated argument values (spec §4.4's "statically unwrapped
// arguments") and returns a Value or an EvalError.
type EvalFunc func(ctx *exprast.EvaluationContext, args []exprvalue.Value) (exprvalue.Value, *diag.EvalError)

// ParamSpec is a signature's parameter shape: either a fixed list of types,
// or a single item type repeated for any number of arguments (varargs).
type ParamSpec struct {
	Fixed   []exprtype.Type
	Varargs bool
	Item    exprtype.Type // meaningful iff Varargs
}

// Fixed builds a ParamSpec for a fixed-arity signature.
func Fixed(types ...exprtype.Type) ParamSpec { return ParamSpec{Fixed: types} }

// VarargsOf builds a ParamSpec for a variadic signature of a single item type.
func VarargsOf(item exprtype.Type) ParamSpec { return ParamSpec{Varargs: true, Item: item} }

// Signature bundles a compound expression's result type, parameter shape
// and evaluator (spec §4.4). FeatureDependent/ZoomDependent mark the handful
// of leaf built-ins (`zoom`, `get`, `has`, `properties`, `geometry_type`,
// `id`) that read the EvaluationContext directly, so IsFeatureConstant/
// IsZoomConstant can classify them without a name-string special case (spec
// §4.3: "leaves return true except for zoom ... and feature accessors").
type Signature struct {
	Result           exprtype.Type
	Params           ParamSpec
	Eval             EvalFunc
	FeatureDependent bool
	ZoomDependent    bool
}

func (s Signature) paramsString() string {
	if s.Params.Varargs {
		return "(" + s.Params.Item.String() + ")"
	}
	parts := make([]string, len(s.Params.Fixed))
	for i, t := range s.Params.Fixed {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Registry is the process-wide name -> []Signature table. It is built once
// via Register calls during library init and is read-only thereafter (spec
// §5: "The compound-expression registry is a process-wide table initialized
// exactly once before any parse; after initialization it is read-only.").
type Registry struct {
	defs map[string][]Signature
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string][]Signature)}
}

// Register appends signatures under name, in the order they should be tried
// during overload resolution (spec §8: "Overload determinism: registration
// order is respected").
func (r *Registry) Register(name string, sigs ...Signature) {
	r.defs[name] = append(r.defs[name], sigs...)
}

// Has reports whether name is a registered compound expression.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// SignaturesFor returns the registered signatures for name, in registration
// order, or nil if name is unregistered. Used by the parser to propagate a
// per-argument expected type when a name resolves to exactly one signature
// (spec §4.7's single-signature fast path for argument type hints).
func (r *Registry) SignaturesFor(name string) []Signature {
	return r.defs[name]
}

// Names returns every registered compound-expression name, for diagnostics
// and documentation generation.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.defs))
	for name := range r.defs {
		out = append(out, name)
	}
	return out
}

// Resolve runs the overload-resolution algorithm of spec §4.4 against an
// already-parsed argument list (each child's Type() is known). On success it
// returns a *CompoundExpr. On failure it returns the diagnostics to append to
// the caller's error buffer, each already carrying the correct structural
// key (key is the call site's own key, e.g. "[2]"; child argument errors are
// keyed "key[i+1]").
func (r *Registry) Resolve(name, key string, children []exprast.Node) (*CompoundExpr, []*diag.ParseError) {
	sigs, ok := r.defs[name]
	if !ok {
		return nil, []*diag.ParseError{diag.NewParseError(diag.CodeUnknownName, key,
			`Unknown expression "`+name+`". If you wanted a literal array, use ["literal", [...]].`)}
	}

	var lastErrors []*diag.ParseError
	for _, sig := range sigs {
		var scratch []*diag.ParseError

		if sig.Params.Varargs {
			for i, child := range children {
				if err := exprtype.IsSubtype(sig.Params.Item, child.Type()); err != nil {
					scratch = append(scratch, diag.NewParseError(diag.CodeType, childKey(key, i+1), err.Error()))
				}
			}
		} else {
			if len(sig.Params.Fixed) != len(children) {
				scratch = append(scratch, diag.NewParseError(diag.CodeArity, key,
					"Expected "+strconv.Itoa(len(sig.Params.Fixed))+" arguments, but found "+strconv.Itoa(len(children))+" instead."))
			} else {
				for i, child := range children {
					if err := exprtype.IsSubtype(sig.Params.Fixed[i], child.Type()); err != nil {
						scratch = append(scratch, diag.NewParseError(diag.CodeType, childKey(key, i+1), err.Error()))
					}
				}
			}
		}

		if len(scratch) == 0 {
			return &CompoundExpr{
				base:     newBase(sig.Result),
				name:     name,
				sig:      sig,
				children: children,
			}, nil
		}
		lastErrors = scratch
	}

	if len(sigs) == 1 {
		return nil, lastErrors
	}

	var signatures []string
	for _, sig := range sigs {
		signatures = append(signatures, sig.paramsString())
	}
	var actualTypes []string
	for _, child := range children {
		actualTypes = append(actualTypes, child.Type().String())
	}
	summary := "Expected arguments of type " + strings.Join(signatures, " | ") +
		", but found (" + strings.Join(actualTypes, ", ") + ") instead."
	return nil, []*diag.ParseError{diag.NewParseError(diag.CodeType, key, summary)}
}

func childKey(key string, i int) string { return key + "[" + strconv.Itoa(i) + "]" }

// CompoundExpr is the single Node kind every registered signature produces,
// parameterized by its resolved Signature (spec §4.4's CompoundExpression<Signature>).
type CompoundExpr struct {
	base     base
	name     string
	sig      Signature
	children []exprast.Node
}

type base struct {
	id uuid.UUID
	t  exprtype.Type
}

func newBase(t exprtype.Type) base { return base{id: uuid.New(), t: t} }

func (c *CompoundExpr) ID() uuid.UUID       { return c.base.id }
func (c *CompoundExpr) Type() exprtype.Type { return c.base.t }
func (c *CompoundExpr) Name() string        { return c.name }

// IsZoomExpr reports whether this compound expression is the no-argument
// `zoom` accessor — used by the curve node (C6) to detect a zoom curve
// (spec §4.6: "is_zoom_curve ... true iff it is a Curve whose input is the
// compound expression zoom").
func (c *CompoundExpr) IsZoomExpr() bool { return c.name == "zoom" }

func (c *CompoundExpr) Evaluate(ctx *exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	args := make([]exprvalue.Value, len(c.children))
	for i, child := range c.children {
		v, err := child.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return c.sig.Eval(ctx, args)
}

func (c *CompoundExpr) Visit(fn func(exprast.Node)) {
	exprast.VisitChildren(c, c.children, fn)
}

func (c *CompoundExpr) IsFeatureConstant() bool {
	return !c.sig.FeatureDependent && exprast.AllFeatureConstant(c.children)
}

func (c *CompoundExpr) IsZoomConstant() bool {
	return !c.sig.ZoomDependent && exprast.AllZoomConstant(c.children)
}
