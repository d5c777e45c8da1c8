// internal/app/features/addons/routes.go
package addons

import (
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.With(sm.RequireRole(models.RoleHQ, models.RoleFC)).Get("/", h.ServeList)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole(models.RoleHQ))
		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleEdit)
		pr.Delete("/{id}", h.HandleDelete)
	})
	return r
}
