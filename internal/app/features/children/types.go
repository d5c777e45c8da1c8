// internal/app/features/children/types.go
package children

import "github.com/dalemusser/welfarehub/internal/domain/models"

type childInput struct {
	ChildID       string `json:"childId"`
	OrgID         string `json:"orgId"`
	Name          string `json:"name"`
	DefaultPickup bool   `json:"defaultPickup"`
	DefaultDrop   bool   `json:"defaultDrop"`
}

type listResponse struct {
	Children []models.Child `json:"children"`
}

type createdResponse struct {
	ID string `json:"id"`
}
