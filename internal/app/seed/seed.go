// internal/app/seed/seed.go
//
// Package seed loads the demo data set. Every write is an upsert by
// business key, so running it again only refreshes the same records.
package seed

import (
	"context"
	"fmt"

	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	addonstore "github.com/dalemusser/welfarehub/internal/app/store/addons"
	childstore "github.com/dalemusser/welfarehub/internal/app/store/children"
	dailyreportstore "github.com/dalemusser/welfarehub/internal/app/store/dailyreports"
	organizationstore "github.com/dalemusser/welfarehub/internal/app/store/organizations"
	revenuestore "github.com/dalemusser/welfarehub/internal/app/store/revenues"
	userstore "github.com/dalemusser/welfarehub/internal/app/store/users"
	"github.com/dalemusser/welfarehub/internal/app/system/authn"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Result counts the records written per collection.
type Result struct {
	Organizations int `json:"organizations"`
	Users         int `json:"users"`
	AddOns        int `json:"addOns"`
	Children      int `json:"children"`
	DailyReports  int `json:"dailyReports"`
	Revenues      int `json:"revenues"`
}

// Run writes the demo data set into db. Revenue snapshots for the sample
// reports are derived with hourlyUnitPrice.
func Run(ctx context.Context, db *mongo.Database, hourlyUnitPrice float64, logger *zap.Logger) (Result, error) {
	var res Result

	orgs := organizationstore.New(db)
	for _, o := range Organizations {
		if err := orgs.Upsert(ctx, o); err != nil {
			return res, fmt.Errorf("seed organization %s: %w", o.OrgID, err)
		}
		res.Organizations++
	}

	hash, err := authn.HashPassword(authn.DemoPassword)
	if err != nil {
		return res, fmt.Errorf("seed users: %w", err)
	}
	users := userstore.New(db)
	for _, u := range Users {
		u.PasswordHash = hash
		if err := users.Upsert(ctx, u); err != nil {
			return res, fmt.Errorf("seed user %s: %w", u.UID, err)
		}
		res.Users++
	}

	addOns := addonstore.New(db)
	for _, a := range AddOns {
		if err := addOns.Upsert(ctx, a); err != nil {
			return res, fmt.Errorf("seed add-on %s: %w", a.AddOnID, err)
		}
		res.AddOns++
	}

	children := childstore.New(db)
	for _, c := range Children {
		if err := children.Upsert(ctx, c); err != nil {
			return res, fmt.Errorf("seed child %s: %w", c.ChildID, err)
		}
		res.Children++
	}

	reports := dailyreportstore.New(db)
	revenues := revenuestore.New(db)
	for _, r := range DailyReports {
		saved, err := reports.Upsert(ctx, r)
		if err != nil {
			return res, fmt.Errorf("seed daily report %s/%s: %w", r.OrgID, r.Date, err)
		}
		res.DailyReports++

		if err := revenues.Upsert(ctx, kpi.DaySnapshot(saved, AddOns, hourlyUnitPrice)); err != nil {
			return res, fmt.Errorf("seed revenue %s/%s: %w", r.OrgID, r.Date, err)
		}
		res.Revenues++
	}

	logger.Info("demo data seeded",
		zap.Int("organizations", res.Organizations),
		zap.Int("users", res.Users),
		zap.Int("add_ons", res.AddOns),
		zap.Int("children", res.Children),
		zap.Int("daily_reports", res.DailyReports))
	return res, nil
}
