// internal/app/features/dailyreports/list.go
package dailyreports

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// rangeQuery reads ?from=&to=&org= for the list and the export. An empty
// org for HQ means every organization.
func rangeQuery(w http.ResponseWriter, r *http.Request) (scope orgpolicy.Scope, org, from, to string, ok bool) {
	q := r.URL.Query()
	from = strings.TrimSpace(q.Get("from"))
	to = strings.TrimSpace(q.Get("to"))
	var errs inputval.Errors
	if from != "" && !inputval.IsDate(from) {
		errs.Addf("from must be YYYY-MM-DD.")
	}
	if to != "" && !inputval.IsDate(to) {
		errs.Addf("to must be YYYY-MM-DD.")
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return scope, "", "", "", false
	}
	scope = orgpolicy.FromRequest(r)
	org = scope.ResolveOrg(strings.TrimSpace(q.Get("org")))
	return scope, org, from, to, true
}

// ServeList handles GET /dailyreports?from=&to=&org=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	scope, org, from, to, ok := rangeQuery(w, r)
	if !ok {
		return
	}
	if !scope.CanView {
		uierrors.WriteJSON(w, http.StatusOK, listResponse{Reports: []models.DailyReport{}})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reports, err := h.Reports.ListByOrgRange(ctx, org, from, to)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading daily reports", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listResponse{Reports: orgpolicy.Filter(scope, reports)})
}
