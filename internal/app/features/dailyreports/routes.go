// internal/app/features/dailyreports/routes.go
package dailyreports

import (
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the daily report routes (typically under "/dailyreports").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(models.RoleHQ, models.RoleFC))

	r.Get("/", h.ServeList)
	r.Get("/export.csv", h.ServeExportCSV)

	r.Get("/{date}", h.ServeDay)
	r.Put("/{date}", h.HandleSaveDay)
	r.Put("/{date}/children/{childId}", h.HandlePutChild)
	r.Patch("/{date}/children/{childId}", h.HandlePatchChild)
	return r
}
