// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facility types an organization can be registered as.
const (
	FacilityChildDevelopment = "児発"   // child development support
	FacilityAfterSchool      = "放デイ"  // after-school day service
	FacilityEmploymentB      = "就労B"  // continuous employment support, type B
)

// FacilityTypes lists every accepted facility type tag.
var FacilityTypes = []string{FacilityChildDevelopment, FacilityAfterSchool, FacilityEmploymentB}

// ValidFacilityType reports whether t is one of FacilityTypes.
func ValidFacilityType(t string) bool {
	for _, ft := range FacilityTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Organization is a franchise facility (or the HQ itself).
//
// StartDate and EndDate are calendar dates (YYYY-MM-DD). EndDate is optional;
// when present it must not precede StartDate.
type Organization struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrgID        string             `bson:"org_id" json:"orgId"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"` // ← always stored
	Prefecture   string             `bson:"prefecture" json:"prefecture"`
	Address      string             `bson:"address" json:"address"`
	FacilityType string             `bson:"facility_type" json:"facilityType"`
	StartDate    string             `bson:"start_date" json:"startDate"`
	EndDate      string             `bson:"end_date,omitempty" json:"endDate,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OwnerOrgID implements orgpolicy.OrgOwned.
func (o Organization) OwnerOrgID() string { return o.OrgID }

// OrganizationPatch carries the fields of a partial organization update.
// Nil fields are left untouched.
type OrganizationPatch struct {
	Name         *string `json:"name,omitempty"`
	Prefecture   *string `json:"prefecture,omitempty"`
	Address      *string `json:"address,omitempty"`
	FacilityType *string `json:"facilityType,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
}

// ValidDateRange reports whether StartDate is a calendar date and EndDate,
// when present, is a calendar date not before StartDate.
func (o Organization) ValidDateRange() bool {
	start, err := time.Parse(DateLayout, o.StartDate)
	if err != nil {
		return false
	}
	if o.EndDate == "" {
		return true
	}
	end, err := time.Parse(DateLayout, o.EndDate)
	if err != nil {
		return false
	}
	return !end.Before(start)
}
