// internal/app/features/organizations/helpers.go
package organizations

import (
	"context"

	"github.com/dalemusser/welfarehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// aggregator is a minimal interface satisfied by *mongo.Database.
type aggregator interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// aggregateCountByOrg counts documents of coll grouped by org_id.
// match narrows the documents first and may be empty.
func aggregateCountByOrg(ctx context.Context, db aggregator, coll string, match bson.M) (map[string]int64, error) {
	if match == nil {
		match = bson.M{}
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$org_id"},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
			N  int64  `bson:"n"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.ID] = row.N
	}
	return out, cur.Err()
}

func cleanText(s string) string { return htmlsanitize.PlainText(s) }

// validateOrg checks a complete organization record.
func validateOrg(o models.Organization) inputval.Errors {
	var errs inputval.Errors
	errs.Require(o.Name, "Name")
	errs.MaxLen(o.Name, 200, "Name")
	errs.MaxLen(o.Address, 500, "Address")
	if !models.ValidFacilityType(o.FacilityType) {
		errs.Addf("Facility type must be one of %v.", models.FacilityTypes)
	}
	if !inputval.IsDate(o.StartDate) {
		errs.Addf("Start date must be YYYY-MM-DD.")
	}
	if o.EndDate != "" && !inputval.IsDate(o.EndDate) {
		errs.Addf("End date must be YYYY-MM-DD.")
	}
	if !errs.HasErrors() && !o.ValidDateRange() {
		errs.Addf("End date must not be before start date.")
	}
	return errs
}
