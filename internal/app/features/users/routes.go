// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user administration routes (typically under "/users").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(models.RoleHQ))

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{id}", h.HandleEdit)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
