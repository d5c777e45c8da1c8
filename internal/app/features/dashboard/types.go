// internal/app/features/dashboard/types.go
package dashboard

import (
	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

type kpiResponse struct {
	OrgID    string           `json:"orgId"`
	Window   int              `json:"window"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Summary  kpi.Summary      `json:"summary"`
	Revenues []models.Revenue `json:"revenues"`
}

// orgSummary is one line of the HQ overview.
type orgSummary struct {
	OrgID   string      `json:"orgId"`
	Summary kpi.Summary `json:"summary"`
}

type overviewResponse struct {
	Window int          `json:"window"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Orgs   []orgSummary `json:"orgs"`
}
