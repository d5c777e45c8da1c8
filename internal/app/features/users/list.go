// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
)

// ServeList handles GET /users.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Users.FetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading users", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listResponse{Users: all})
}
