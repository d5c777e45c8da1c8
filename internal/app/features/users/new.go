// internal/app/features/users/new.go
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
	"go.uber.org/zap"
)

// HandleCreate handles POST /users. The password is optional; a user
// without one can only sign in through the identity provider.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in userInput
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}

	u := models.User{
		Email:    normalize.Email(in.Email),
		Role:     normalize.Role(in.Role),
		OrgID:    strings.TrimSpace(in.OrgID),
		IsActive: in.IsActive == nil || *in.IsActive,
	}

	var errs inputval.Errors
	errs.Require(u.Email, "Email")
	if u.Email != "" && !inputval.IsValidEmail(u.Email) {
		errs.Addf("Email is not a valid address.")
	}
	if !models.ValidRole(u.Role) {
		errs.Addf("Role must be HQ or FC.")
	}
	errs.Require(u.OrgID, "Organization")
	if in.Password != "" && len(in.Password) < minPasswordLen {
		errs.Addf("Password must be at least %d characters.", minPasswordLen)
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	if in.Password != "" {
		hash, err := authn.HashPassword(in.Password)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "could not hash password", err)
			return
		}
		u.PasswordHash = hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Users.Create(ctx, u)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "database error creating user", err, userstore.ErrDuplicateEmail)
		return
	}
	h.Log.Info("user created", zap.String("id", id), zap.String("role", u.Role), zap.String("org_id", u.OrgID))
	uierrors.WriteJSON(w, http.StatusCreated, createdResponse{ID: id})
}
