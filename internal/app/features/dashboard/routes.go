// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleHQ, models.RoleFC))
		pr.Get("/", h.ServeDashboard)
		pr.Get("/kpi", h.ServeKPI)
	})

	return r
}
