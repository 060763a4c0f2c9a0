package builtins_test

import (
	"testing"

	"github.com/exprstyle/mapexpr/internal/builtins"
	"github.com/exprstyle/mapexpr/internal/diag"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval"
	"github.com/google/uuid"
)

type fakeFeature struct {
	props map[string]jsonval.HostValue
	id    jsonval.HostValue
	hasID bool
	kind  exprast.FeatureKind
}

func (f fakeFeature) Get(key string) (jsonval.HostValue, bool) {
	v, ok := f.props[key]
	return v, ok
}
func (f fakeFeature) ID() (jsonval.HostValue, bool)            { return f.id, f.hasID }
func (f fakeFeature) Properties() map[string]jsonval.HostValue { return f.props }
func (f fakeFeature) Kind() exprast.FeatureKind                { return f.kind }

// literalNode is a minimal exprast.Node wrapping an already-known Value,
// used to drive builtin signatures directly without going through
// exprparse.
type literalNode struct {
	v exprvalue.Value
}

func literal(v exprvalue.Value) exprast.Node { return literalNode{v} }

func (literalNode) ID() uuid.UUID             { return uuid.Nil }
func (n literalNode) Type() exprtype.Type     { return exprvalue.TypeOf(n.v) }
func (n literalNode) Evaluate(*exprast.EvaluationContext) (exprvalue.Value, *diag.EvalError) {
	return n.v, nil
}
func (literalNode) Visit(func(exprast.Node)) {}
func (literalNode) IsFeatureConstant() bool  { return true }
func (literalNode) IsZoomConstant() bool     { return true }

func mustResolve(t *testing.T, name string, args ...exprvalue.Value) exprvalue.Value {
	t.Helper()
	reg := builtins.NewDefaultRegistry()
	children := make([]exprast.Node, len(args))
	for i, a := range args {
		children[i] = literal(a)
	}
	node, errs := reg.Resolve(name, "", children)
	if len(errs) > 0 {
		t.Fatalf("Resolve(%q) failed: %v", name, errs)
	}
	v, evalErr := node.Evaluate(&exprast.EvaluationContext{})
	if evalErr != nil {
		t.Fatalf("Evaluate(%q) failed: %v", name, evalErr)
	}
	return v
}

func TestTypeof(t *testing.T) {
	got := mustResolve(t, "typeof", exprvalue.Num(1))
	if s, _ := exprvalue.ToGoString(got); s != "number" {
		t.Fatalf("typeof(1) = %v, want \"number\"", got)
	}
}

func TestArithmeticVarargs(t *testing.T) {
	got := mustResolve(t, "+", exprvalue.Num(1), exprvalue.Num(2), exprvalue.Num(3))
	if n, _ := exprvalue.ToFloat64(got); n != 6 {
		t.Fatalf("+(1,2,3) = %v, want 6", got)
	}
	got = mustResolve(t, "max", exprvalue.Num(1), exprvalue.Num(9), exprvalue.Num(3))
	if n, _ := exprvalue.ToFloat64(got); n != 9 {
		t.Fatalf("max(1,9,3) = %v, want 9", got)
	}
}

func TestEqualityPicksMatchingOverload(t *testing.T) {
	got := mustResolve(t, "==", exprvalue.Str("a"), exprvalue.Str("a"))
	if b, _ := exprvalue.ToGoBool(got); !b {
		t.Fatalf("==(\"a\",\"a\") = %v, want true", got)
	}
}

func TestRGBAOutOfRangeErrors(t *testing.T) {
	reg := builtins.NewDefaultRegistry()
	children := []exprast.Node{
		literal(exprvalue.Num(300)), literal(exprvalue.Num(0)), literal(exprvalue.Num(0)), literal(exprvalue.Num(1)),
	}
	node, errs := reg.Resolve("rgba", "", children)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse-time error: %v", errs)
	}
	_, evalErr := node.Evaluate(&exprast.EvaluationContext{})
	if evalErr == nil {
		t.Fatal("expected an evaluation error for r=300")
	}
	want := "Invalid rgba value [300, 0, 0, 1]: 'r', 'g', and 'b' must be between 0 and 255."
	if evalErr.Error() != want {
		t.Fatalf("got %q, want %q", evalErr.Error(), want)
	}
}

func TestParseColorHex(t *testing.T) {
	got := mustResolve(t, "parse_color", exprvalue.Str("#ff0000"))
	c, ok := exprvalue.ToColor(got)
	if !ok {
		t.Fatalf("parse_color did not return a color: %v", got)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Fatalf("parse_color(#ff0000) = %+v, want R=1,G=0,B=0,A=1", c)
	}
}

func TestZoomUnavailable(t *testing.T) {
	reg := builtins.NewDefaultRegistry()
	node, errs := reg.Resolve("zoom", "", nil)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse-time error: %v", errs)
	}
	_, evalErr := node.Evaluate(&exprast.EvaluationContext{})
	if evalErr == nil {
		t.Fatal("expected an error when Zoom is nil")
	}
}

func TestHasGetFeatureForm(t *testing.T) {
	reg := builtins.NewDefaultRegistry()
	feat := fakeFeature{props: map[string]jsonval.HostValue{"name": {Kind: jsonval.KindString, Str: "x"}}}
	ctx := &exprast.EvaluationContext{Feature: feat}

	node, errs := reg.Resolve("has", "", []exprast.Node{literal(exprvalue.Str("name"))})
	if len(errs) > 0 {
		t.Fatalf("unexpected parse-time error: %v", errs)
	}
	v, evalErr := node.Evaluate(ctx)
	if evalErr != nil {
		t.Fatalf("has errored: %v", evalErr)
	}
	if b, _ := exprvalue.ToGoBool(v); !b {
		t.Fatal("has(\"name\") should be true")
	}

	node, errs = reg.Resolve("get", "", []exprast.Node{literal(exprvalue.Str("missing"))})
	if len(errs) > 0 {
		t.Fatalf("unexpected parse-time error: %v", errs)
	}
	_, evalErr = node.Evaluate(ctx)
	if evalErr == nil {
		t.Fatal("expected a missing-property error")
	}
}
