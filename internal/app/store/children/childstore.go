package childstore

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

var _ repository.ChildRepository = (*Store)(nil)

var ErrDuplicateChild = errors.New("a child with this childId already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("children")}
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Child, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "org_id", Value: 1}, {Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Child{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) FetchAll(ctx context.Context) ([]models.Child, error) {
	return s.find(ctx, bson.M{})
}

// ListByOrg returns the children enrolled at orgID, ordered by name.
func (s *Store) ListByOrg(ctx context.Context, orgID string) ([]models.Child, error) {
	return s.find(ctx, bson.M{"org_id": orgID})
}

func (s *Store) Create(ctx context.Context, c models.Child) (string, error) {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	if c.ChildID == "" {
		c.ChildID = uuid.NewString()
	}
	c.NameCI = text.Fold(c.Name)
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrDuplicateChild
		}
		return "", err
	}
	return c.ID.Hex(), nil
}

// GetByID loads a child by store id. Returns repository.ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id string) (models.Child, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Child{}, repository.ErrNotFound
	}
	var c models.Child
	if err := s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Child{}, repository.ErrNotFound
		}
		return models.Child{}, err
	}
	return c, nil
}

func (s *Store) Update(ctx context.Context, id string, patch models.ChildPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.OrgID != nil {
		set["org_id"] = *patch.OrgID
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
		set["name_ci"] = text.Fold(*patch.Name)
	}
	if patch.DefaultPickup != nil {
		set["default_pickup"] = *patch.DefaultPickup
	}
	if patch.DefaultDrop != nil {
		set["default_drop"] = *patch.DefaultDrop
	}
	res, err := s.c.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

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

// Upsert writes c keyed by ChildID.
func (s *Store) Upsert(ctx context.Context, c models.Child) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"child_id": c.ChildID},
		bson.M{
			"$set": bson.M{
				"org_id":         c.OrgID,
				"name":           c.Name,
				"name_ci":        text.Fold(c.Name),
				"default_pickup": c.DefaultPickup,
				"default_drop":   c.DefaultDrop,
				"updated_at":     now,
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
