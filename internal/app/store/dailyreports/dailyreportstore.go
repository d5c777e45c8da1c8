// internal/app/store/dailyreports/dailyreportstore.go
package dailyreportstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
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

var _ repository.DailyReportRepository = (*Store)(nil)

// ErrDuplicateReport is returned by Create when (orgId, date) already has a report.
var ErrDuplicateReport = errors.New("a daily report for this organization and date already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("dailyReports")}
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.DailyReport, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "org_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.DailyReport{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) FetchAll(ctx context.Context) ([]models.DailyReport, error) {
	return s.find(ctx, bson.M{})
}

// ListByOrgRange returns reports with from <= date <= to. Empty bounds are
// open; an empty orgID spans every organization.
func (s *Store) ListByOrgRange(ctx context.Context, orgID, from, to string) ([]models.DailyReport, error) {
	filter := bson.M{}
	if orgID != "" {
		filter["org_id"] = orgID
	}
	dateCond := bson.M{}
	if from != "" {
		dateCond["$gte"] = from
	}
	if to != "" {
		dateCond["$lte"] = to
	}
	if len(dateCond) > 0 {
		filter["date"] = dateCond
	}
	return s.find(ctx, filter)
}

func (s *Store) FindByOrgDate(ctx context.Context, orgID, date string) (*models.DailyReport, error) {
	var r models.DailyReport
	err := s.c.FindOne(ctx, bson.M{"org_id": orgID, "date": date}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Create(ctx context.Context, r models.DailyReport) (string, error) {
	now := time.Now().UTC()
	r.ID = primitive.NewObjectID()
	r.ReportID = models.ReportID(r.OrgID, r.Date)
	if r.Children == nil {
		r.Children = []models.ChildReport{}
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrDuplicateReport
		}
		return "", err
	}
	return r.ID.Hex(), nil
}

// Upsert replaces the children of the report keyed by (OrgID, Date),
// inserting it if absent. Two racing first saves can both attempt the
// insert; the loser hits the unique index and is retried as an update.
func (s *Store) Upsert(ctx context.Context, r models.DailyReport) (models.DailyReport, error) {
	children := r.Children
	if children == nil {
		children = []models.ChildReport{}
	}
	now := time.Now().UTC()
	filter := bson.M{"org_id": r.OrgID, "date": r.Date}
	update := bson.M{
		"$set": bson.M{
			"report_id":  models.ReportID(r.OrgID, r.Date),
			"children":   children,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.DailyReport
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if wafflemongo.IsDup(err) {
		err = s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	}
	if err != nil {
		return models.DailyReport{}, err
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, id string, patch models.DailyReportPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Children != nil {
		children := *patch.Children
		if children == nil {
			children = []models.ChildReport{}
		}
		set["children"] = children
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
