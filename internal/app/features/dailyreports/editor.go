// internal/app/features/dailyreports/editor.go
package dailyreports

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/reporting/dailyreport"
	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// dayParams resolves {date} and the target organization.
func dayParams(w http.ResponseWriter, r *http.Request) (orgID, date string, ok bool) {
	date = chi.URLParam(r, "date")
	if !inputval.IsDate(date) {
		uierrors.Write(w, http.StatusBadRequest, "Date must be YYYY-MM-DD.")
		return "", "", false
	}
	orgID, ok = targetOrg(w, r)
	return orgID, date, ok
}

// ServeDay handles GET /dailyreports/{date}: the stored report, or the
// roster defaults when there is none, with every enrolled child present.
func (h *Handler) ServeDay(w http.ResponseWriter, r *http.Request) {
	orgID, date, ok := dayParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	children, err := h.Children.ListByOrg(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading children", err)
		return
	}
	set, existing, err := h.editor().Load(ctx, orgID, date, children)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading daily report", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, buildDayView(orgID, date, set, children, existing != nil))
}

// HandleSaveDay handles PUT /dailyreports/{date} with the whole edit set.
// Duplicate childIds collapse to the last entry.
func (h *Handler) HandleSaveDay(w http.ResponseWriter, r *http.Request) {
	orgID, date, ok := dayParams(w, r)
	if !ok {
		return
	}
	var in saveInput
	if err := formutil.DecodeJSON(w, r, limits.MaxReportBody, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	children, err := h.Children.ListByOrg(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading children", err)
		return
	}
	catalog, err := h.addOnCatalog(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading add-ons", err)
		return
	}

	var errs inputval.Errors
	set := []models.ChildReport{}
	for _, cr := range in.Children {
		cleanEntry(&cr)
		if cr.ChildID == "" {
			errs.Addf("Every entry needs a childId.")
			continue
		}
		if !known(cr.ChildID, children, nil) {
			errs.Addf("Unknown child %s.", cr.ChildID)
			continue
		}
		validateClocks(&errs, cr.ChildID, cr.Arrival, cr.Departure)
		validateAddOns(&errs, cr.ChildID, cr.AddOns, catalog)
		set = dailyreport.UpsertChildReport(set, cr)
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	h.save(ctx, w, r, orgID, date, set, children)
}

// HandlePutChild handles PUT /dailyreports/{date}/children/{childId}: the
// body replaces that child's entry.
func (h *Handler) HandlePutChild(w http.ResponseWriter, r *http.Request) {
	orgID, date, ok := dayParams(w, r)
	if !ok {
		return
	}
	var cr models.ChildReport
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &cr); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}
	cr.ChildID = chi.URLParam(r, "childId")
	cleanEntry(&cr)

	var errs inputval.Errors
	validateClocks(&errs, cr.ChildID, cr.Arrival, cr.Departure)
	if !h.checkAddOns(w, r, &errs, cr.ChildID, cr.AddOns) {
		return
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	h.editChild(w, r, orgID, date, cr.ChildID, func(set []models.ChildReport) []models.ChildReport {
		return dailyreport.UpsertChildReport(set, cr)
	})
}

// HandlePatchChild handles PATCH /dailyreports/{date}/children/{childId}:
// only the fields present in the body change. The stored report is read,
// patched and written back; overlapping patches are last-writer-wins.
func (h *Handler) HandlePatchChild(w http.ResponseWriter, r *http.Request) {
	orgID, date, ok := dayParams(w, r)
	if !ok {
		return
	}
	var p dailyreport.Patch
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &p); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}
	childID := chi.URLParam(r, "childId")

	var errs inputval.Errors
	if p.Arrival != nil {
		v := strings.TrimSpace(*p.Arrival)
		p.Arrival = &v
		validateClocks(&errs, childID, v, "")
	}
	if p.Departure != nil {
		v := strings.TrimSpace(*p.Departure)
		p.Departure = &v
		validateClocks(&errs, childID, "", v)
	}
	if p.AddOns != nil {
		v := dedupe(*p.AddOns)
		p.AddOns = &v
		if !h.checkAddOns(w, r, &errs, childID, v) {
			return
		}
	}
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	h.editChild(w, r, orgID, date, childID, func(set []models.ChildReport) []models.ChildReport {
		return dailyreport.PatchChildReport(set, childID, p)
	})
}

// addOnCatalog returns the set of known addOnIds.
func (h *Handler) addOnCatalog(ctx context.Context) (map[string]struct{}, error) {
	addOns, err := h.AddOns.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(addOns))
	for _, a := range addOns {
		ids[a.AddOnID] = struct{}{}
	}
	return ids, nil
}

// checkAddOns validates ids against the add-on catalog, recording unknown
// ids in errs. It returns false after writing a 500 when the catalog
// cannot be loaded.
func (h *Handler) checkAddOns(w http.ResponseWriter, r *http.Request, errs *inputval.Errors, childID string, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	catalog, err := h.addOnCatalog(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading add-ons", err)
		return false
	}
	validateAddOns(errs, childID, ids, catalog)
	return true
}

// editChild loads the day's set, applies edit and saves. The child must
// be enrolled or already present in the stored report.
func (h *Handler) editChild(w http.ResponseWriter, r *http.Request, orgID, date, childID string, edit func([]models.ChildReport) []models.ChildReport) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	children, err := h.Children.ListByOrg(ctx, orgID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading children", err)
		return
	}
	set, _, err := h.editor().Load(ctx, orgID, date, children)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading daily report", err)
		return
	}
	if !known(childID, children, set) {
		uierrors.Write(w, http.StatusNotFound, "Child not found in this organization.")
		return
	}

	h.save(ctx, w, r, orgID, date, edit(set), children)
}

// save persists set, refreshes the revenue snapshot, and responds with the
// editor view of what was stored.
func (h *Handler) save(ctx context.Context, w http.ResponseWriter, r *http.Request, orgID, date string, set []models.ChildReport, children []models.Child) {
	saved, err := h.editor().Save(ctx, orgID, date, set)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error saving daily report", err)
		return
	}
	h.Log.Info("daily report saved",
		zap.String("org_id", orgID),
		zap.String("date", date),
		zap.Int("entries", len(saved.Children)))

	h.refreshRevenue(ctx, saved)

	view := dailyreport.MergeRoster(saved.Children, children)
	uierrors.WriteJSON(w, http.StatusOK, buildDayView(orgID, date, view, children, true))
}

// refreshRevenue recomputes and stores the day's revenue snapshot.
// Failures are logged; the report itself is already saved.
func (h *Handler) refreshRevenue(ctx context.Context, report models.DailyReport) {
	if h.Revenues == nil {
		return
	}
	addOns, err := h.AddOns.FetchAll(ctx)
	if err != nil {
		h.Log.Warn("revenue snapshot: load add-ons", zap.String("org_id", report.OrgID), zap.String("date", report.Date), zap.Error(err))
		return
	}
	snap := kpi.DaySnapshot(report, addOns, h.HourlyUnitPrice)
	if err := h.Revenues.Upsert(ctx, snap); err != nil {
		h.Log.Warn("revenue snapshot: upsert", zap.String("org_id", report.OrgID), zap.String("date", report.Date), zap.Error(err))
	}
}
