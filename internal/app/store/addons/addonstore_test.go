package addonstore_test

import (
	"errors"
	"testing"

	addonstore "github.com/dalemusser/welfarehub/internal/app/store/addons"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_CreateAndUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addonstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Create(ctx, models.AddOnMaster{AddOnID: "addon-3", Name: "送迎加算", UnitValue: 54})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.AddOnMaster{AddOnID: "addon-3", Name: "dup"}); !errors.Is(err, addonstore.ErrDuplicateAddOn) {
		t.Errorf("duplicate Create: got %v, want ErrDuplicateAddOn", err)
	}

	v := 60
	if err := store.Update(ctx, id, models.AddOnPatch{UnitValue: &v}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	all, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(all) != 1 || all[0].UnitValue != 60 {
		t.Errorf("got %+v, want one add-on with unitValue 60", all)
	}

	neg := -1
	if err := store.Update(ctx, id, models.AddOnPatch{UnitValue: &neg}); err == nil {
		t.Error("expected error for negative unitValue")
	}
}

func TestStore_MigrateLegacy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := addonstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.AddOnMaster{AddOnID: "addon-1", Name: "current", UnitValue: 41, IsBasic: true}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	_, err := db.Collection(addonstore.LegacyCollection).InsertMany(ctx, []any{
		bson.M{"addOnId": "addon-1", "name": "stale", "unitValue": 1, "isBasic": false},
		bson.M{"addOnId": "addon-5", "name": "関係機関連携加算", "unitValue": 200, "isBasic": false},
	})
	if err != nil {
		t.Fatalf("seeding legacy collection failed: %v", err)
	}

	n, err := store.MigrateLegacy(ctx)
	if err != nil {
		t.Fatalf("MigrateLegacy failed: %v", err)
	}
	if n != 1 {
		t.Errorf("first migration inserted %d, want 1", n)
	}
	n, err = store.MigrateLegacy(ctx)
	if err != nil {
		t.Fatalf("second MigrateLegacy failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second migration inserted %d, want 0", n)
	}

	all, _ := store.FetchAll(ctx)
	if len(all) != 2 {
		t.Fatalf("got %d add-ons, want 2", len(all))
	}
	if all[0].Name != "current" {
		t.Errorf("existing add-on overwritten: name %q", all[0].Name)
	}
}

func TestSplit(t *testing.T) {
	basic, optional := addonstore.Split([]models.AddOnMaster{
		{AddOnID: "a", IsBasic: true},
		{AddOnID: "b"},
		{AddOnID: "c"},
	})
	if len(basic) != 1 || basic[0].AddOnID != "a" {
		t.Errorf("basic: got %+v", basic)
	}
	if len(optional) != 2 || optional[0].AddOnID != "b" || optional[1].AddOnID != "c" {
		t.Errorf("optional: got %+v", optional)
	}

	basic, optional = addonstore.Split(nil)
	if basic == nil || optional == nil {
		t.Error("expected non-nil empty slices")
	}
}
