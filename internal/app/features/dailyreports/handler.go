// internal/app/features/dailyreports/handler.go
package dailyreports

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/reporting/dailyreport"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.uber.org/zap"
)

// Handler serves the daily report list, the per-day editor, and the CSV
// export.
type Handler struct {
	Reports  repository.DailyReportRepository
	Children repository.ChildRepository
	AddOns   repository.AddOnRepository
	// Revenues is optional. When set, every save refreshes the day's
	// revenue snapshot.
	Revenues        repository.RevenueRepository
	HourlyUnitPrice float64

	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(
	reports repository.DailyReportRepository,
	children repository.ChildRepository,
	addOns repository.AddOnRepository,
	revenues repository.RevenueRepository,
	hourlyUnitPrice float64,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Reports:         reports,
		Children:        children,
		AddOns:          addOns,
		Revenues:        revenues,
		HourlyUnitPrice: hourlyUnitPrice,
		Log:             logger,
		ErrLog:          errLog,
	}
}

func (h *Handler) editor() dailyreport.Editor {
	return dailyreport.Editor{Reports: h.Reports}
}

// targetOrg resolves the organization a per-day request acts on and writes
// the error response when there is none. FC users always get their own
// organization; HQ users must name one with ?org=.
func targetOrg(w http.ResponseWriter, r *http.Request) (string, bool) {
	scope := orgpolicy.FromRequest(r)
	if !scope.CanView {
		uierrors.Write(w, http.StatusForbidden, "Your account is not linked to an organization.")
		return "", false
	}
	org := scope.ResolveOrg(strings.TrimSpace(r.URL.Query().Get("org")))
	if org == "" {
		uierrors.Write(w, http.StatusBadRequest, "Choose an organization (org).")
		return "", false
	}
	return org, true
}
