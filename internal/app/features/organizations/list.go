// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ServeList handles GET /organizations. HQ sees every organization, FC
// only its own.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	scope := orgpolicy.FromRequest(r)
	all, err := h.Orgs.FetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading organizations", err)
		return
	}
	orgs := orgpolicy.Filter(scope, all)

	var counts map[string]int64
	if h.DB != nil && len(orgs) > 0 {
		match, _ := scope.MongoFilter(bson.M{})
		counts, err = aggregateCountByOrg(ctx, h.DB, "children", match)
		if err != nil {
			// Counts are decoration; the list is still useful without them.
			h.Log.Warn("count children by org", zap.Error(err))
		}
	}

	rows := make([]orgRow, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, orgRow{Organization: o, ChildCount: counts[o.OrgID]})
	}
	uierrors.WriteJSON(w, http.StatusOK, listResponse{Organizations: rows})
}
