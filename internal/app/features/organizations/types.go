// internal/app/features/organizations/types.go
package organizations

import "github.com/dalemusser/welfarehub/internal/domain/models"

// orgInput is the POST body.
type orgInput struct {
	OrgID        string `json:"orgId"`
	Name         string `json:"name"`
	Prefecture   string `json:"prefecture"`
	Address      string `json:"address"`
	FacilityType string `json:"facilityType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

type orgRow struct {
	models.Organization
	ChildCount int64 `json:"childCount"`
}

type listResponse struct {
	Organizations []orgRow `json:"organizations"`
}

type createdResponse struct {
	ID string `json:"id"`
}
