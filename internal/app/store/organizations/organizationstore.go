// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var _ repository.OrganizationRepository = (*Store)(nil)

var (
	ErrDuplicateOrganization = errors.New("an organization with this orgId already exists")
	ErrInvalidDateRange      = errors.New("endDate must not be before startDate")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

// FetchAll returns every organization ordered by name.
func (s *Store) FetchAll(ctx context.Context) ([]models.Organization, error) {
	return s.Find(ctx, bson.M{})
}

// Find returns organizations matching filter, ordered by name.
func (s *Store) Find(ctx context.Context, filter bson.M) ([]models.Organization, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	orgs := []models.Organization{}
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Create inserts org and returns its store id. A missing OrgID is generated.
func (s *Store) Create(ctx context.Context, org models.Organization) (string, error) {
	if !org.ValidDateRange() {
		return "", ErrInvalidDateRange
	}
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	if org.OrgID == "" {
		org.OrgID = uuid.NewString()
	}
	org.NameCI = text.Fold(org.Name)
	org.CreatedAt = now
	org.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, org); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrDuplicateOrganization
		}
		return "", err
	}
	return org.ID.Hex(), nil
}

// GetByOrgID loads an organization by its business id.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByOrgID(ctx context.Context, orgID string) (models.Organization, error) {
	var org models.Organization
	if err := s.c.FindOne(ctx, bson.M{"org_id": orgID}).Decode(&org); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// Update applies the non-nil patch fields. The resulting date range is
// re-validated against the stored record before writing.
func (s *Store) Update(ctx context.Context, id string, patch models.OrganizationPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	var cur models.Organization
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&cur); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.ErrNotFound
		}
		return err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		cur.Name = *patch.Name
		set["name"] = cur.Name
		set["name_ci"] = text.Fold(cur.Name)
	}
	if patch.Prefecture != nil {
		set["prefecture"] = *patch.Prefecture
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.FacilityType != nil {
		set["facility_type"] = *patch.FacilityType
	}
	if patch.StartDate != nil {
		cur.StartDate = *patch.StartDate
		set["start_date"] = cur.StartDate
	}
	update := bson.M{"$set": set}
	if patch.EndDate != nil {
		cur.EndDate = *patch.EndDate
		if cur.EndDate == "" {
			update["$unset"] = bson.M{"end_date": ""}
		} else {
			set["end_date"] = cur.EndDate
		}
	}
	if !cur.ValidDateRange() {
		return ErrInvalidDateRange
	}

	res, err := s.c.UpdateByID(ctx, oid, update)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateOrganization
		}
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an organization by store id.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Upsert writes org keyed by OrgID, keeping the existing _id and created_at.
// Used by seeding.
func (s *Store) Upsert(ctx context.Context, org models.Organization) error {
	if !org.ValidDateRange() {
		return ErrInvalidDateRange
	}
	now := time.Now().UTC()
	set := bson.M{
		"name":          org.Name,
		"name_ci":       text.Fold(org.Name),
		"prefecture":    org.Prefecture,
		"address":       org.Address,
		"facility_type": org.FacilityType,
		"start_date":    org.StartDate,
		"updated_at":    now,
	}
	if org.EndDate != "" {
		set["end_date"] = org.EndDate
	}
	_, err := s.c.UpdateOne(ctx,
		bson.M{"org_id": org.OrgID},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
