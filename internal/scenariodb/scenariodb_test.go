package scenariodb_test

import (
	"path/filepath"
	"testing"

	"github.com/exprstyle/mapexpr/internal/scenariodb"
)

func TestRecordAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.db")
	db, err := scenariodb.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if err := db.Record(scenariodb.Scenario{
		Name:     "zoom-curve-midpoint",
		ExprJSON: `["curve", ["linear"], ["zoom"], 0, 0, 10, 20]`,
		Expected: "10",
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count = %d, want 1", n)
	}

	all, err := db.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 1 || all[0].Name != "zoom-curve-midpoint" {
		t.Fatalf("All() = %+v, want one zoom-curve-midpoint scenario", all)
	}
}

func TestRecordIsIdempotentByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.db")
	db, err := scenariodb.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	scenario := scenariodb.Scenario{Name: "dup", ExprJSON: `["+", 1, 2]`, Expected: "3"}
	if err := db.Record(scenario); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	scenario.Expected = "updated"
	if err := db.Record(scenario); err != nil {
		t.Fatalf("second Record failed: %v", err)
	}

	n, err := db.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count = %d, want 1 (re-recording the same name should update, not insert)", n)
	}
}
