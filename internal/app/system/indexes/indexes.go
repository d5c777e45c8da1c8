// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, step := range []struct {
		name string
		fn   func(context.Context, *mongo.Database) error
	}{
		{"organizations", ensureOrganizations},
		{"users", ensureUsers},
		{"children", ensureChildren},
		{"addOnMasters", ensureAddOns},
		{"dailyReports", ensureDailyReports},
		{"revenues", ensureRevenues},
	} {
		if err := step.fn(ctx, db); err != nil {
			problems = append(problems, step.name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func unique(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
}

func plain(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

func ensureOrganizations(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("organizations"), []mongo.IndexModel{
		unique("uniq_org_id", bson.D{{Key: "org_id", Value: 1}}),
		plain("idx_org_name_ci", bson.D{{Key: "name_ci", Value: 1}}),
	})
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		unique("uniq_user_uid", bson.D{{Key: "uid", Value: 1}}),
		unique("uniq_user_email", bson.D{{Key: "email", Value: 1}}),
		plain("idx_user_org", bson.D{{Key: "org_id", Value: 1}}),
	})
}

func ensureChildren(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("children"), []mongo.IndexModel{
		unique("uniq_child_id", bson.D{{Key: "child_id", Value: 1}}),
		plain("idx_child_org_name", bson.D{{Key: "org_id", Value: 1}, {Key: "name_ci", Value: 1}}),
	})
}

func ensureAddOns(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("addOnMasters"), []mongo.IndexModel{
		unique("uniq_add_on_id", bson.D{{Key: "add_on_id", Value: 1}}),
	})
}

// One report per organization per day.
func ensureDailyReports(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("dailyReports"), []mongo.IndexModel{
		unique("uniq_report_org_date", bson.D{{Key: "org_id", Value: 1}, {Key: "date", Value: 1}}),
		plain("idx_report_date", bson.D{{Key: "date", Value: 1}}),
	})
}

func ensureRevenues(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("revenues"), []mongo.IndexModel{
		unique("uniq_revenue_org_date", bson.D{{Key: "org_id", Value: 1}, {Key: "date", Value: 1}}),
	})
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func isUnique(b *bool) bool { return b != nil && *b }

func listIndexes(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	existing := map[string]existingIndex{}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing, cur.Err()
}

// ensureIndexSet creates each desired index, reusing one with the same keys
// and uniqueness, and dropping and recreating one whose name or uniqueness
// differs.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, desired []mongo.IndexModel) error {
	existing, err := listIndexes(ctx, coll)
	if err != nil {
		// Collection may not exist yet; CreateOne below will create it.
		existing = map[string]existingIndex{}
	}

	var errs []string
	for _, m := range desired {
		name := *m.Options.Name
		wantUnique := isUnique(m.Options.Unique)
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[sig]; ok {
			if ex.Name == name && isUnique(ex.Unique) == wantUnique {
				zap.L().Debug("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name))
				continue
			}
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), name, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if wantUnique && isDuplicateKeyErr(err) {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index on [%s] (duplicates present)", coll.Name(), name, sig))
			} else {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			}
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", wantUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}
