package revenuestore_test

import (
	"testing"

	revenuestore "github.com/dalemusser/welfarehub/internal/app/store/revenues"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/testutil"
)

func TestStore_UpsertAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := revenuestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rev := models.Revenue{OrgID: "demo-fc-org", Date: "2024-12-17", TotalRevenue: 4841, UserCount: 1}
	if err := store.Upsert(ctx, rev); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	rev.TotalRevenue = 9682
	rev.UserCount = 2
	if err := store.Upsert(ctx, rev); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	got, err := store.ListByOrgRange(ctx, "demo-fc-org", "2024-12-01", "2024-12-31")
	if err != nil {
		t.Fatalf("ListByOrgRange failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(got))
	}
	if got[0].TotalRevenue != 9682 || got[0].UserCount != 2 {
		t.Errorf("got %+v", got[0])
	}
	if got[0].RevenueID != "demo-fc-org_2024-12-17" {
		t.Errorf("RevenueID: got %q", got[0].RevenueID)
	}
}
