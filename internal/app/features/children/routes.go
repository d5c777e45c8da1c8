// internal/app/features/children/routes.go
package children

import (
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the roster routes (typically under "/children").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(models.RoleHQ, models.RoleFC))

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{id}", h.HandleEdit)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
