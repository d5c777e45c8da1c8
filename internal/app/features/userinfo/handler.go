package userinfo

import (
	"net/http"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Handler serves the identity of the signed-in user.
type Handler struct{}

// NewHandler creates a new userinfo handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ServeMe handles GET /api/me. It returns the session user, or 401 when
// nobody is signed in.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.Write(w, http.StatusUnauthorized, "not signed in")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, user)
}

// Routes mounts under /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/me", h.ServeMe)
	return r
}
