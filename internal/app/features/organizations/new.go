// internal/app/features/organizations/new.go
package organizations

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/welfarehub/internal/app/store/organizations"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /organizations.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in orgInput
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}

	org := models.Organization{
		OrgID:        strings.TrimSpace(in.OrgID),
		Name:         normalize.Name(cleanText(in.Name)),
		Prefecture:   cleanText(in.Prefecture),
		Address:      cleanText(in.Address),
		FacilityType: strings.TrimSpace(in.FacilityType),
		StartDate:    strings.TrimSpace(in.StartDate),
		EndDate:      strings.TrimSpace(in.EndDate),
	}
	if errs := validateOrg(org); errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Orgs.Create(ctx, org)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "database error creating organization", err,
			organizationstore.ErrDuplicateOrganization, organizationstore.ErrInvalidDateRange)
		return
	}
	h.Log.Info("organization created", zap.String("id", id), zap.String("name", org.Name))
	uierrors.WriteJSON(w, http.StatusCreated, createdResponse{ID: id})
}
