// internal/app/features/children/edit.go
package children

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleEdit handles PATCH /children/{id}. FC users can edit only their
// own children and cannot move a child to another organization.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.ChildPatch
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &patch); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}

	scope := orgpolicy.FromRequest(r)
	var errs inputval.Errors
	if patch.Name != nil {
		v := normalize.Name(htmlsanitize.PlainText(*patch.Name))
		errs.Require(v, "Name")
		errs.MaxLen(v, 100, "Name")
		patch.Name = &v
	}
	if patch.OrgID != nil {
		v := strings.TrimSpace(*patch.OrgID)
		errs.Require(v, "Organization")
		if v != "" && !scope.Allows(v) {
			uierrors.Write(w, http.StatusForbidden, "You cannot move a child to another organization.")
			return
		}
		patch.OrgID = &v
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.visible(ctx, scope, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading children", err)
		return
	}
	if !ok {
		uierrors.Write(w, http.StatusNotFound, "Not found.")
		return
	}

	if err := h.Children.Update(ctx, id, patch); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error updating child", err)
		return
	}
	h.Log.Info("child updated", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
