// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /users/{id}. Users cannot delete themselves.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if u, ok := auth.CurrentUser(r); ok && u.ID == id {
		uierrors.Write(w, http.StatusBadRequest, "You cannot delete your own account.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error deleting user", err)
		return
	}
	h.Log.Info("user deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
