package revenuestore

import (
	"context"
	"time"

	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var _ repository.RevenueRepository = (*Store)(nil)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("revenues")}
}

// Upsert replaces the snapshot stored under (OrgID, Date).
func (s *Store) Upsert(ctx context.Context, rev models.Revenue) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"org_id": rev.OrgID, "date": rev.Date},
		bson.M{
			"$set": bson.M{
				"revenue_id":           models.ReportID(rev.OrgID, rev.Date),
				"total_units":          rev.TotalUnits,
				"total_revenue":        rev.TotalRevenue,
				"user_count":           rev.UserCount,
				"average_support_time": rev.AverageSupportTime,
				"updated_at":           time.Now().UTC(),
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// ListByOrgRange returns snapshots with from <= date <= to, ordered by date.
func (s *Store) ListByOrgRange(ctx context.Context, orgID, from, to string) ([]models.Revenue, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	if orgID != "" {
		filter["org_id"] = orgID
	}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Revenue{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
