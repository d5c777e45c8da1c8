// internal/app/features/users/edit.go
package users

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	userstore "github.com/dalemusser/welfarehub/internal/app/store/users"
	"github.com/dalemusser/welfarehub/internal/app/system/authn"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleEdit handles PATCH /users/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in userPatchInput
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}

	var (
		patch models.UserPatch
		errs  inputval.Errors
	)
	if in.Email != nil {
		v := normalize.Email(*in.Email)
		if !inputval.IsValidEmail(v) {
			errs.Addf("Email is not a valid address.")
		}
		patch.Email = &v
	}
	if in.Role != nil {
		v := normalize.Role(*in.Role)
		if !models.ValidRole(v) {
			errs.Addf("Role must be HQ or FC.")
		}
		patch.Role = &v
	}
	if in.OrgID != nil {
		v := strings.TrimSpace(*in.OrgID)
		errs.Require(v, "Organization")
		patch.OrgID = &v
	}
	patch.IsActive = in.IsActive
	if in.Password != nil && len(*in.Password) < minPasswordLen {
		errs.Addf("Password must be at least %d characters.", minPasswordLen)
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}
	if in.Password != nil {
		hash, err := authn.HashPassword(*in.Password)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "could not hash password", err)
			return
		}
		patch.PasswordHash = &hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.Update(ctx, id, patch); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error updating user", err, userstore.ErrDuplicateEmail)
		return
	}
	h.Log.Info("user updated", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
