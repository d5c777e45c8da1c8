package organizationstore_test

import (
	"errors"
	"testing"

	organizationstore "github.com/dalemusser/welfarehub/internal/app/store/organizations"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"github.com/dalemusser/welfarehub/internal/testutil"
)

func TestStore_CreateAndFetchAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Create(ctx, models.Organization{
		OrgID:        "demo-fc-org",
		Name:         "デモFC事業所",
		Prefecture:   "神奈川県",
		FacilityType: models.FacilityAfterSchool,
		StartDate:    "2021-04-01",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected store id to be assigned")
	}

	orgs, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(orgs) != 1 {
		t.Fatalf("FetchAll: got %d orgs, want 1", len(orgs))
	}
	if orgs[0].ID.Hex() != id {
		t.Errorf("ID: got %q, want %q", orgs[0].ID.Hex(), id)
	}
	if orgs[0].NameCI == "" {
		t.Error("expected NameCI to be set")
	}
}

func TestStore_CreateGeneratesOrgID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Organization{Name: "No ID", StartDate: "2024-01-01"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	orgs, _ := store.FetchAll(ctx)
	if len(orgs) != 1 || orgs[0].OrgID == "" {
		t.Errorf("expected generated orgId, got %+v", orgs)
	}
}

func TestStore_CreateDuplicateOrgID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := models.Organization{OrgID: "dup", Name: "A", StartDate: "2024-01-01"}
	if _, err := store.Create(ctx, org); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	org.Name = "B"
	if _, err := store.Create(ctx, org); !errors.Is(err, organizationstore.ErrDuplicateOrganization) {
		t.Errorf("second Create: got %v, want ErrDuplicateOrganization", err)
	}
}

func TestStore_CreateRejectsInvertedDates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Organization{
		Name:      "Backwards",
		StartDate: "2024-04-01",
		EndDate:   "2024-03-31",
	})
	if !errors.Is(err, organizationstore.ErrInvalidDateRange) {
		t.Errorf("got %v, want ErrInvalidDateRange", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Create(ctx, models.Organization{OrgID: "o1", Name: "Old", StartDate: "2024-04-01"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := "New"
	end := "2025-03-31"
	if err := store.Update(ctx, id, models.OrganizationPatch{Name: &name, EndDate: &end}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := store.GetByOrgID(ctx, "o1")
	if err != nil {
		t.Fatalf("GetByOrgID failed: %v", err)
	}
	if got.Name != "New" || got.EndDate != "2025-03-31" {
		t.Errorf("got name %q end %q", got.Name, got.EndDate)
	}

	bad := "2020-01-01"
	if err := store.Update(ctx, id, models.OrganizationPatch{EndDate: &bad}); !errors.Is(err, organizationstore.ErrInvalidDateRange) {
		t.Errorf("Update with inverted range: got %v, want ErrInvalidDateRange", err)
	}

	none := ""
	if err := store.Update(ctx, id, models.OrganizationPatch{EndDate: &none}); err != nil {
		t.Fatalf("Update clearing endDate failed: %v", err)
	}
	got, _ = store.GetByOrgID(ctx, "o1")
	if got.EndDate != "" {
		t.Errorf("EndDate: got %q, want empty", got.EndDate)
	}
}

func TestStore_UpdateDeleteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "x"
	if err := store.Update(ctx, "000000000000000000000000", models.OrganizationPatch{Name: &name}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update: got %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "not-an-id"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete: got %v, want ErrNotFound", err)
	}
}

func TestStore_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := models.Organization{OrgID: "hq-org", Name: "本部", StartDate: "2020-04-01"}
	for i := 0; i < 2; i++ {
		if err := store.Upsert(ctx, org); err != nil {
			t.Fatalf("Upsert #%d failed: %v", i+1, err)
		}
	}
	orgs, _ := store.FetchAll(ctx)
	if len(orgs) != 1 {
		t.Errorf("got %d orgs after repeated upsert, want 1", len(orgs))
	}
}
