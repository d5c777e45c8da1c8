// Package repository declares the typed persistence contracts the core
// depends on. Each entity gets the same four operations over its own record
// and patch shapes; nothing here knows which database sits behind them.
package repository

import (
	"context"
	"errors"

	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// ErrNotFound is returned by Update and Delete when no record has the id.
var ErrNotFound = errors.New("record not found")

// Repository is the generic gateway over one collection.
//
// Create returns the store-assigned id. Update applies only the non-nil
// fields of the patch.
type Repository[T any, P any] interface {
	FetchAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (string, error)
	Update(ctx context.Context, id string, patch P) error
	Delete(ctx context.Context, id string) error
}

type OrganizationRepository interface {
	Repository[models.Organization, models.OrganizationPatch]
}

type UserRepository interface {
	Repository[models.User, models.UserPatch]
}

type ChildRepository interface {
	Repository[models.Child, models.ChildPatch]
	ListByOrg(ctx context.Context, orgID string) ([]models.Child, error)
}

type AddOnRepository interface {
	Repository[models.AddOnMaster, models.AddOnPatch]
}

// DailyReportRepository adds the keyed lookups and the (orgId, date) upsert
// the report editor needs.
type DailyReportRepository interface {
	Repository[models.DailyReport, models.DailyReportPatch]

	// FindByOrgDate returns the report for the key, or (nil, nil) if none.
	FindByOrgDate(ctx context.Context, orgID, date string) (*models.DailyReport, error)
	// ListByOrgRange returns the org's reports with from <= date <= to,
	// ordered by date. Empty orgID means every organization.
	ListByOrgRange(ctx context.Context, orgID, from, to string) ([]models.DailyReport, error)
	// Upsert replaces the report stored under (report.OrgID, report.Date),
	// creating it if absent. Exactly one record exists for the key afterwards.
	Upsert(ctx context.Context, report models.DailyReport) (models.DailyReport, error)
}

// RevenueRepository stores the derived per-day snapshots.
type RevenueRepository interface {
	Upsert(ctx context.Context, rev models.Revenue) error
	ListByOrgRange(ctx context.Context, orgID, from, to string) ([]models.Revenue, error)
}
