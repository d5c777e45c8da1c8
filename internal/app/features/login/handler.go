// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/app/system/authn"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/ratelimit"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

type Handler struct {
	Auth       authn.Authenticator
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	Log        *zap.Logger
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(a authn.Authenticator, sm *auth.SessionManager, limiter *ratelimit.LoginLimiter, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:       a,
		SessionMgr: sm,
		Limiter:    limiter,
		Log:        logger,
		ErrLog:     errLog,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User auth.SessionUser `json:"user"`
}

// ServeLogin handles GET /login. It hands out the CSRF token that form
// posts must echo back.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{
		"csrfToken": csrf.Token(r),
		"return":    r.URL.Query().Get("return"),
	})
}

// HandleLoginPost handles POST /login with a JSON or form-encoded
// email/password.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &in); err != nil {
			h.ErrLog.LogBadRequest(w, r, err.Error(), err)
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
		if err := r.ParseForm(); err != nil {
			h.ErrLog.LogBadRequest(w, r, "invalid form body", err)
			return
		}
		in.Email = r.PostFormValue("email")
		in.Password = r.PostFormValue("password")
	}
	in.Email = normalize.Email(in.Email)
	if in.Email == "" || in.Password == "" {
		uierrors.Write(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, in.Email); !ok {
			h.Log.Warn("login rate limited", zap.String("email", in.Email))
			uierrors.Write(w, http.StatusTooManyRequests, reason)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Auth.Authenticate(ctx, in.Email, in.Password)
	switch {
	case errors.Is(err, authn.ErrInvalidCredentials):
		h.Log.Info("login failed", zap.String("email", in.Email))
		uierrors.Write(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	case errors.Is(err, authn.ErrInactive):
		h.Log.Info("login refused for inactive user", zap.String("email", in.Email))
		uierrors.Write(w, http.StatusForbidden, "This account is inactive.")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "authentication failed", err)
		return
	}

	user := auth.SessionUser{ID: id.ID, UID: id.UID, Email: id.Email, Role: id.Role, OrgID: id.OrgID}
	if err := h.SessionMgr.SignIn(w, r, user); err != nil {
		h.ErrLog.LogServerError(w, r, "could not save session", err)
		return
	}
	if h.Limiter != nil {
		h.Limiter.ResetEmail(in.Email)
	}

	h.Log.Info("user signed in",
		zap.String("uid", user.UID),
		zap.String("role", user.Role),
		zap.String("org_id", user.OrgID))
	uierrors.WriteJSON(w, http.StatusOK, loginResponse{User: user})
}
