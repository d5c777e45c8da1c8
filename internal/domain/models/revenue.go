// internal/domain/models/revenue.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Revenue is a derived per-day billing snapshot of one organization,
// recomputed whenever that day's report is saved.
type Revenue struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RevenueID          string             `bson:"revenue_id" json:"revenueId"`
	OrgID              string             `bson:"org_id" json:"orgId"`
	Date               string             `bson:"date" json:"date"`
	TotalUnits         float64            `bson:"total_units" json:"totalUnits"`
	TotalRevenue       float64            `bson:"total_revenue" json:"totalRevenue"`
	UserCount          int                `bson:"user_count" json:"userCount"`
	AverageSupportTime float64            `bson:"average_support_time" json:"averageSupportTime"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OwnerOrgID implements orgpolicy.OrgOwned.
func (r Revenue) OwnerOrgID() string { return r.OrgID }
