// internal/app/features/organizations/edit.go
package organizations

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	organizationstore "github.com/dalemusser/welfarehub/internal/app/store/organizations"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleEdit handles PATCH /organizations/{id}. Only the fields present in
// the body change. An empty endDate clears it.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.OrganizationPatch
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &patch); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}
	if errs := cleanPatch(&patch); errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Orgs.Update(ctx, id, patch); err != nil {
		if errors.Is(err, organizationstore.ErrInvalidDateRange) {
			uierrors.Write(w, http.StatusBadRequest, "End date must not be before start date.")
			return
		}
		h.ErrLog.LogStoreError(w, r, "database error updating organization", err)
		return
	}
	h.Log.Info("organization updated", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// cleanPatch sanitizes the present fields in place and validates them.
func cleanPatch(p *models.OrganizationPatch) inputval.Errors {
	var errs inputval.Errors
	if p.Name != nil {
		v := normalize.Name(cleanText(*p.Name))
		p.Name = &v
		errs.Require(v, "Name")
		errs.MaxLen(v, 200, "Name")
	}
	if p.Prefecture != nil {
		v := cleanText(*p.Prefecture)
		p.Prefecture = &v
	}
	if p.Address != nil {
		v := cleanText(*p.Address)
		p.Address = &v
		errs.MaxLen(v, 500, "Address")
	}
	if p.FacilityType != nil {
		v := strings.TrimSpace(*p.FacilityType)
		p.FacilityType = &v
		if !models.ValidFacilityType(v) {
			errs.Addf("Facility type must be one of %v.", models.FacilityTypes)
		}
	}
	if p.StartDate != nil {
		v := strings.TrimSpace(*p.StartDate)
		p.StartDate = &v
		if !inputval.IsDate(v) {
			errs.Addf("Start date must be YYYY-MM-DD.")
		}
	}
	if p.EndDate != nil {
		v := strings.TrimSpace(*p.EndDate)
		p.EndDate = &v
		if v != "" && !inputval.IsDate(v) {
			errs.Addf("End date must be YYYY-MM-DD.")
		}
	}
	return errs
}
