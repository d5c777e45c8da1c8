package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
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

var _ repository.UserRepository = (*Store)(nil)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email or uid already exists")
	errBadRole        = errors.New(`role must be "HQ"|"FC"`)
	errOrgNeeded      = errors.New("user must have orgId")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) FetchAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "email", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (string, error) {
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	if !models.ValidRole(u.Role) {
		return "", errBadRole
	}
	if u.OrgID == "" {
		return "", errOrgNeeded
	}
	if u.UID == "" {
		u.UID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return u.ID.Hex(), nil
}

// GetByEmail looks up a user by normalized email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUID looks up a user by uid. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"uid": uid}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) Update(ctx context.Context, id string, patch models.UserPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.OrgID != nil {
		if *patch.OrgID == "" {
			return errOrgNeeded
		}
		set["org_id"] = *patch.OrgID
	}
	if patch.Role != nil {
		role := normalize.Role(*patch.Role)
		if !models.ValidRole(role) {
			return errBadRole
		}
		set["role"] = role
	}
	if patch.Email != nil {
		set["email"] = normalize.Email(*patch.Email)
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	res, err := s.c.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateEmail
		}
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

// Upsert writes u keyed by UID. The password hash is only touched when set.
func (s *Store) Upsert(ctx context.Context, u models.User) error {
	now := time.Now().UTC()
	set := bson.M{
		"org_id":     u.OrgID,
		"role":       normalize.Role(u.Role),
		"email":      normalize.Email(u.Email),
		"is_active":  u.IsActive,
		"updated_at": now,
	}
	if u.PasswordHash != "" {
		set["password_hash"] = u.PasswordHash
	}
	_, err := s.c.UpdateOne(ctx,
		bson.M{"uid": u.UID},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if wafflemongo.IsDup(err) {
		return ErrDuplicateEmail
	}
	return err
}
