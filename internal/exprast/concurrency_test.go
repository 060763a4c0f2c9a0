package exprast_test

import (
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/exprstyle/mapexpr/internal/builtins"
	"github.com/exprstyle/mapexpr/internal/exprast"
	"github.com/exprstyle/mapexpr/internal/exprtype"
	"github.com/exprstyle/mapexpr/internal/exprvalue"
	"github.com/exprstyle/mapexpr/internal/jsonval/mcvoidadapter"
	"github.com/exprstyle/mapexpr/internal/exprparse"
)

// TestSharedExpressionIsConcurrencySafe exercises spec §5's evaluation
// contract directly: a single parsed Node is pure and carries no mutable
// state, so many goroutines may call Evaluate on it concurrently against
// distinct EvaluationContexts with no synchronization.
func TestSharedExpressionIsConcurrencySafe(t *testing.T) {
	r, err := mcvoidadapter.ParseString(`["curve", ["linear"], ["zoom"], 0, 0, 20, 100]`)
	if err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	reg := builtins.NewDefaultRegistry()
	ctx := exprparse.NewContext(exprTypePtr(exprtype.Number))
	node, ok := exprparse.Parse(r, ctx, reg)
	if !ok {
		t.Fatalf("parse failed: %v", *ctx.Errors)
	}

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		zoom := float64(i % 21)
		g.Go(func() error {
			v, evalErr := node.Evaluate(&exprast.EvaluationContext{Zoom: &zoom})
			if evalErr != nil {
				t.Errorf("evaluate at zoom %v failed: %v", zoom, evalErr)
				return evalErr
			}
			got, _ := exprvalue.ToFloat64(v)
			want := zoom / 20 * 100
			if got != want {
				t.Errorf("at zoom %v got %v, want %v", zoom, got, want)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent evaluation failed: %v", err)
	}
}

func exprTypePtr(t exprtype.Type) *exprtype.Type { return &t }
