// internal/app/features/dailyreports/types.go
package dailyreports

import (
	"github.com/dalemusser/welfarehub/internal/app/reporting/dailyreport"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// rowView is one editor grid row.
type rowView struct {
	models.ChildReport
	ChildName    string  `json:"childName"`
	SupportHours float64 `json:"supportHours"`
	Attended     bool    `json:"attended"`
}

type dayView struct {
	OrgID string            `json:"orgId"`
	Date  string            `json:"date"`
	Saved bool              `json:"saved"`
	Rows  []rowView         `json:"rows"`
	Stats dailyreport.Stats `json:"stats"`
}

type saveInput struct {
	Children []models.ChildReport `json:"children"`
}

type listResponse struct {
	Reports []models.DailyReport `json:"reports"`
}
