package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data directly in Mongo.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", coll, err)
	}
}

// CreateOrganization creates an organization with the given business id.
func (f *Fixtures) CreateOrganization(ctx context.Context, orgID, name string) models.Organization {
	f.t.Helper()
	now := time.Now().UTC()
	org := models.Organization{
		ID:           primitive.NewObjectID(),
		OrgID:        orgID,
		Name:         name,
		NameCI:       text.Fold(name),
		Prefecture:   "東京都",
		FacilityType: models.FacilityChildDevelopment,
		StartDate:    "2024-04-01",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(ctx, "organizations", org)
	return org
}

// CreateUser creates an active user with the given role and organization.
func (f *Fixtures) CreateUser(ctx context.Context, email, role, orgID string) models.User {
	f.t.Helper()
	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		UID:       primitive.NewObjectID().Hex(),
		OrgID:     orgID,
		Role:      role,
		Email:     email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "users", u)
	return u
}

// CreateChild creates a child enrolled at orgID.
func (f *Fixtures) CreateChild(ctx context.Context, childID, orgID, name string, pickup, drop bool) models.Child {
	f.t.Helper()
	now := time.Now().UTC()
	c := models.Child{
		ID:            primitive.NewObjectID(),
		ChildID:       childID,
		OrgID:         orgID,
		Name:          name,
		NameCI:        text.Fold(name),
		DefaultPickup: pickup,
		DefaultDrop:   drop,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	f.insert(ctx, "children", c)
	return c
}

// CreateAddOn creates an add-on master record.
func (f *Fixtures) CreateAddOn(ctx context.Context, addOnID, name string, unitValue int, basic bool) models.AddOnMaster {
	f.t.Helper()
	now := time.Now().UTC()
	a := models.AddOnMaster{
		ID:        primitive.NewObjectID(),
		AddOnID:   addOnID,
		Name:      name,
		UnitValue: unitValue,
		IsBasic:   basic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "addOnMasters", a)
	return a
}
