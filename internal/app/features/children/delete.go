// internal/app/features/children/delete.go
package children

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /children/{id}. Existing daily reports keep
// their entries for the child.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.visible(ctx, orgpolicy.FromRequest(r), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading children", err)
		return
	}
	if !ok {
		uierrors.Write(w, http.StatusNotFound, "Not found.")
		return
	}

	if err := h.Children.Delete(ctx, id); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error deleting child", err)
		return
	}
	h.Log.Info("child deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
