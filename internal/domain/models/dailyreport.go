// internal/domain/models/dailyreport.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar date format used for report dates and
// organization effective dates.
const DateLayout = "2006-01-02"

// ChildReport is one child's attendance for a day. Arrival and Departure are
// same-day wall-clock times (HH:MM); an empty string means "not recorded".
// AddOns holds the addOnIds selected for the child that day.
type ChildReport struct {
	ChildID   string   `bson:"child_id" json:"childId"`
	Arrival   string   `bson:"arrival,omitempty" json:"arrival,omitempty"`
	Departure string   `bson:"departure,omitempty" json:"departure,omitempty"`
	Pickup    bool     `bson:"pickup" json:"pickup"`
	Drop      bool     `bson:"drop" json:"drop"`
	AddOns    []string `bson:"add_ons" json:"addOns"`
}

// DailyReport is the attendance record of one organization for one date.
// There is at most one per (OrgID, Date).
type DailyReport struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID  string             `bson:"report_id" json:"reportId"`
	OrgID     string             `bson:"org_id" json:"orgId"`
	Date      string             `bson:"date" json:"date"`
	Children  []ChildReport      `bson:"children" json:"children"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OwnerOrgID implements orgpolicy.OrgOwned.
func (d DailyReport) OwnerOrgID() string { return d.OrgID }

// ReportID builds the conventional report identity for an org and date.
func ReportID(orgID, date string) string {
	return orgID + "_" + date
}

// DailyReportPatch carries the fields of a partial report update.
type DailyReportPatch struct {
	Children *[]ChildReport `json:"children,omitempty"`
}
