// internal/app/features/organizations/delete.go
package organizations

import (
	"context"
	"net/http"

	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /organizations/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Orgs.Delete(ctx, id); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error deleting organization", err)
		return
	}
	h.Log.Info("organization deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
