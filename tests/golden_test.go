// Package tests runs the end-to-end scenario corpus (spec §8): each
// tests/golden/*.txtar archive bundles one expression, an optional
// evaluation context, and the expected stringified result, and is diffed
// against what pkg/expr actually produces. This generalizes the teacher's
// file-pair (.lang/.want) golden-test idiom from tests/functional_test.go to
// self-contained txtar archives — no subprocess/binary build is needed here
// since the expression engine is an embeddable library, not a standalone
// interpreter.
package tests

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval"
	"github.com/exprstyle/mapexpr/internal/jsonval/mcvoidadapter"
	"github.com/exprstyle/mapexpr/pkg/expr"
)

type goldenContext struct {
	Zoom       *float64                   `json:"zoom"`
	Properties map[string]json.RawMessage `json:"properties"`
}

type fixtureFeature struct {
	props map[string]jsonval.HostValue
}

func (f fixtureFeature) Get(key string) (jsonval.HostValue, bool) {
	v, ok := f.props[key]
	return v, ok
}
func (f fixtureFeature) ID() (jsonval.HostValue, bool)            { return jsonval.HostValue{}, false }
func (f fixtureFeature) Properties() map[string]jsonval.HostValue { return f.props }
func (f fixtureFeature) Kind() expr.FeatureKind                   { return expr.KindUnknown }

func TestGoldenScenarios(t *testing.T) {
	archives, err := filepath.Glob("golden/*.txtar")
	if err != nil {
		t.Fatalf("glob golden fixtures: %v", err)
	}
	if len(archives) == 0 {
		t.Fatal("no golden fixtures found under tests/golden")
	}

	for _, path := range archives {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			runGoldenFixture(t, path)
		})
	}
}

func runGoldenFixture(t *testing.T, path string) {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parse txtar: %v", err)
	}

	files := map[string]string{}
	for _, f := range ar.Files {
		files[f.Name] = string(f.Data)
	}

	exprJSON, ok := files["expr.json"]
	if !ok {
		t.Fatal("fixture is missing expr.json")
	}
	want, ok := files["expected.txt"]
	if !ok {
		t.Fatal("fixture is missing expected.txt")
	}
	want = strings.TrimSpace(want)

	r, err := mcvoidadapter.ParseString(exprJSON)
	if err != nil {
		t.Fatalf("invalid expr.json: %v", err)
	}

	e, errs := expr.Parse(r, exprtype.Value)
	if len(errs) > 0 {
		if got := errs[0].Error(); got == want {
			return
		}
		t.Fatalf("parse failed: %v (want %q)", errs, want)
	}

	ctx := &expr.EvaluationContext{}
	if raw, ok := files["context.json"]; ok {
		var gc goldenContext
		if err := json.Unmarshal([]byte(raw), &gc); err != nil {
			t.Fatalf("invalid context.json: %v", err)
		}
		ctx.Zoom = gc.Zoom
		if len(gc.Properties) > 0 {
			props := make(map[string]jsonval.HostValue, len(gc.Properties))
			for k, raw := range gc.Properties {
				pr, err := mcvoidadapter.ParseString(string(raw))
				if err != nil {
					t.Fatalf("invalid property %q in context.json: %v", k, err)
				}
				props[k] = pr.ToHostValue()
			}
			ctx.Feature = fixtureFeature{props: props}
		}
	}

	v, evalErr := e.Evaluate(ctx)
	var got string
	if evalErr != nil {
		got = evalErr.Error()
	} else {
		got = exprvalue.Stringify(v)
	}
	if got != want {
		t.Errorf("%s: got %q, want %q", path, got, want)
	}
}
