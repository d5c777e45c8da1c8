// internal/app/features/dashboard/kpi.go
package dashboard

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeKPI handles GET /dashboard/kpi?window=7|30&org=. FC users always
// get their own organization; HQ users must choose one.
func (h *Handler) ServeKPI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	window, err := kpi.ParseWindow(strings.TrimSpace(q.Get("window")))
	if err != nil {
		uierrors.Write(w, http.StatusBadRequest, "window must be 7 or 30.")
		return
	}

	scope := orgpolicy.FromRequest(r)
	if !scope.CanView {
		uierrors.Write(w, http.StatusForbidden, "Your account is not linked to an organization.")
		return
	}
	org := scope.ResolveOrg(strings.TrimSpace(q.Get("org")))
	if org == "" {
		uierrors.Write(w, http.StatusBadRequest, "Choose an organization (org).")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	from, to := window.Range(h.Now())
	reports, err := h.Reports.ListByOrgRange(ctx, org, from, to)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading daily reports", err)
		return
	}
	addOns, err := h.AddOns.FetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading add-ons", err)
		return
	}

	resp := kpiResponse{
		OrgID:    org,
		Window:   int(window),
		From:     from,
		To:       to,
		Summary:  kpi.Aggregate(reports, addOns, kpi.Options{HourlyUnitPrice: h.HourlyUnitPrice, Window: window}),
		Revenues: []models.Revenue{},
	}
	if h.Revenues != nil {
		revs, err := h.Revenues.ListByOrgRange(ctx, org, from, to)
		if err != nil {
			h.Log.Warn("load revenue snapshots", zap.String("org_id", org), zap.Error(err))
		} else {
			resp.Revenues = revs
		}
	}
	uierrors.WriteJSON(w, http.StatusOK, resp)
}
