package addonstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Collection       = "addOnMasters"
	LegacyCollection = "addOnMaster"
)

type Store struct {
	c      *mongo.Collection
	legacy *mongo.Collection
}

var _ repository.AddOnRepository = (*Store)(nil)

var (
	ErrDuplicateAddOn = errors.New("an add-on with this addOnId already exists")
	errNegativeValue  = errors.New("unitValue must not be negative")
)

func New(db *mongo.Database) *Store {
	return &Store{
		c:      db.Collection(Collection),
		legacy: db.Collection(LegacyCollection),
	}
}

func (s *Store) FetchAll(ctx context.Context) ([]models.AddOnMaster, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "add_on_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.AddOnMaster{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, a models.AddOnMaster) (string, error) {
	if a.UnitValue < 0 {
		return "", errNegativeValue
	}
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	if a.AddOnID == "" {
		a.AddOnID = uuid.NewString()
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrDuplicateAddOn
		}
		return "", err
	}
	return a.ID.Hex(), nil
}

func (s *Store) Update(ctx context.Context, id string, patch models.AddOnPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.UnitValue != nil {
		if *patch.UnitValue < 0 {
			return errNegativeValue
		}
		set["unit_value"] = *patch.UnitValue
	}
	if patch.IsBasic != nil {
		set["is_basic"] = *patch.IsBasic
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

// Upsert writes a keyed by AddOnID.
func (s *Store) Upsert(ctx context.Context, a models.AddOnMaster) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"add_on_id": a.AddOnID},
		bson.M{
			"$set": bson.M{
				"name":       a.Name,
				"unit_value": a.UnitValue,
				"is_basic":   a.IsBasic,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// legacyAddOn is the document shape found in the singular addOnMaster
// collection written by earlier deployments.
type legacyAddOn struct {
	AddOnID   string `bson:"addOnId"`
	Name      string `bson:"name"`
	UnitValue int    `bson:"unitValue"`
	IsBasic   bool   `bson:"isBasic"`
}

// MigrateLegacy copies documents from the legacy collection into the
// current one. Add-ons already present are left alone, so running it again
// is a no-op. It returns how many add-ons were inserted.
func (s *Store) MigrateLegacy(ctx context.Context) (int, error) {
	cur, err := s.legacy.Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var legacy []legacyAddOn
	if err := cur.All(ctx, &legacy); err != nil {
		return 0, err
	}

	inserted := 0
	now := time.Now().UTC()
	for _, l := range legacy {
		if l.AddOnID == "" {
			continue
		}
		res, err := s.c.UpdateOne(ctx,
			bson.M{"add_on_id": l.AddOnID},
			bson.M{"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID(),
				"name":       l.Name,
				"unit_value": l.UnitValue,
				"is_basic":   l.IsBasic,
				"created_at": now,
				"updated_at": now,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return inserted, err
		}
		if res.UpsertedCount > 0 {
			inserted++
		}
	}
	return inserted, nil
}

// Split partitions add-ons into basic and optional lists, preserving order.
func Split(all []models.AddOnMaster) (basic, optional []models.AddOnMaster) {
	basic = []models.AddOnMaster{}
	optional = []models.AddOnMaster{}
	for _, a := range all {
		if a.IsBasic {
			basic = append(basic, a)
		} else {
			optional = append(optional, a)
		}
	}
	return basic, optional
}
