// internal/app/features/children/list.go
package children

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// ServeList handles GET /children?org=. HQ may narrow to one organization
// with org; FC always gets its own roster.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	scope := orgpolicy.FromRequest(r)
	if !scope.CanView {
		uierrors.WriteJSON(w, http.StatusOK, listResponse{Children: []models.Child{}})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		out []models.Child
		err error
	)
	if org := scope.ResolveOrg(strings.TrimSpace(r.URL.Query().Get("org"))); org != "" {
		out, err = h.Children.ListByOrg(ctx, org)
	} else {
		out, err = h.Children.FetchAll(ctx)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading children", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listResponse{Children: orgpolicy.Filter(scope, out)})
}
