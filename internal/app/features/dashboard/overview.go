// internal/app/features/dashboard/overview.go
package dashboard

import (
	"context"
	"net/http"
	"sort"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	"github.com/dalemusser/welfarehub/internal/app/system/authz"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// ServeDashboard handles GET /dashboard. FC users get their own KPI
// summary; HQ users get one summary per organization that has reports in
// the window.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if authz.IsFC(r) {
		h.ServeKPI(w, r)
		return
	}
	if !authz.IsHQ(r) {
		uierrors.Write(w, http.StatusForbidden, "You don't have permission to view this page.")
		return
	}

	window, err := kpi.ParseWindow(strings.TrimSpace(r.URL.Query().Get("window")))
	if err != nil {
		uierrors.Write(w, http.StatusBadRequest, "window must be 7 or 30.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	from, to := window.Range(h.Now())
	reports, err := h.Reports.ListByOrgRange(ctx, "", from, to)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading daily reports", err)
		return
	}
	addOns, err := h.AddOns.FetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading add-ons", err)
		return
	}

	byOrg := map[string][]models.DailyReport{}
	for _, rep := range reports {
		byOrg[rep.OrgID] = append(byOrg[rep.OrgID], rep)
	}
	opts := kpi.Options{HourlyUnitPrice: h.HourlyUnitPrice, Window: window}
	orgs := make([]orgSummary, 0, len(byOrg))
	for org, reps := range byOrg {
		orgs = append(orgs, orgSummary{OrgID: org, Summary: kpi.Aggregate(reps, addOns, opts)})
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].OrgID < orgs[j].OrgID })

	uierrors.WriteJSON(w, http.StatusOK, overviewResponse{Window: int(window), From: from, To: to, Orgs: orgs})
}
