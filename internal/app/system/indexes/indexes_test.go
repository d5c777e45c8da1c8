package indexes_test

import (
	"testing"

	"github.com/dalemusser/welfarehub/internal/app/system/indexes"
	"github.com/dalemusser/welfarehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("first EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_ReportKeyIsUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection("dailyReports")
	doc := bson.M{"org_id": "a", "date": "2024-12-17"}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"org_id": "a", "date": "2024-12-17"}); err == nil {
		t.Error("expected duplicate key error for second report on same org/date")
	}
}

func TestEnsureAll_ReportsDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection("children")
	if _, err := coll.InsertMany(ctx, []any{
		bson.M{"child_id": "dup", "org_id": "a"},
		bson.M{"child_id": "dup", "org_id": "a"},
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err == nil {
		t.Error("expected EnsureAll to report duplicate child_id values")
	}
}
