// internal/app/features/addons/handler.go
package addons

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	addonstore "github.com/dalemusser/welfarehub/internal/app/store/addons"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the add-on master list.
type Handler struct {
	AddOns repository.AddOnRepository
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(addOns repository.AddOnRepository, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{AddOns: addOns, Log: logger, ErrLog: errLog}
}

type addOnInput struct {
	AddOnID   string `json:"addOnId"`
	Name      string `json:"name"`
	UnitValue int    `json:"unitValue"`
	IsBasic   bool   `json:"isBasic"`
}

type listResponse struct {
	AddOns   []models.AddOnMaster `json:"addOns"`
	Basic    []models.AddOnMaster `json:"basic"`
	Optional []models.AddOnMaster `json:"optional"`
}

// ServeList handles GET /addons.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.AddOns.FetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading add-ons", err)
		return
	}
	basic, optional := addonstore.Split(all)
	uierrors.WriteJSON(w, http.StatusOK, listResponse{AddOns: all, Basic: basic, Optional: optional})
}

// HandleCreate handles POST /addons.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in addOnInput
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}
	a := models.AddOnMaster{
		AddOnID:   strings.TrimSpace(in.AddOnID),
		Name:      normalize.Name(htmlsanitize.PlainText(in.Name)),
		UnitValue: in.UnitValue,
		IsBasic:   in.IsBasic,
	}

	var errs inputval.Errors
	errs.Require(a.Name, "Name")
	errs.MaxLen(a.Name, 100, "Name")
	if a.UnitValue < 0 {
		errs.Addf("Unit value must not be negative.")
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.AddOns.Create(ctx, a)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "database error creating add-on", err, addonstore.ErrDuplicateAddOn)
		return
	}
	h.Log.Info("add-on created", zap.String("id", id), zap.String("name", a.Name))
	uierrors.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// HandleEdit handles PATCH /addons/{id}.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.AddOnPatch
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &patch); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}
	var errs inputval.Errors
	if patch.Name != nil {
		v := normalize.Name(htmlsanitize.PlainText(*patch.Name))
		errs.Require(v, "Name")
		patch.Name = &v
	}
	if patch.UnitValue != nil && *patch.UnitValue < 0 {
		errs.Addf("Unit value must not be negative.")
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.AddOns.Update(ctx, id, patch); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error updating add-on", err)
		return
	}
	h.Log.Info("add-on updated", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /addons/{id}. Reports that reference the
// add-on keep the id; aggregation skips ids it cannot resolve.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.AddOns.Delete(ctx, id); err != nil {
		h.ErrLog.LogStoreError(w, r, "database error deleting add-on", err)
		return
	}
	h.Log.Info("add-on deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
