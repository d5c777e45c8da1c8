// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.uber.org/zap"
)

// Body is the JSON shape of every error response.
type Body struct {
	Error string `json:"error"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Write sends {"error": msg} with the given status.
func Write(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Body{Error: msg})
}

// ErrorLogger logs failed requests with request context and writes the
// JSON error response.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fs = append(fs, zap.String("uid", u.UID), zap.String("org_id", u.OrgID))
	}
	return fs
}

// LogServerError logs err at error level and responds 500 with msg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.Log.Error(msg, e.fields(r, err)...)
	Write(w, http.StatusInternalServerError, msg)
}

// LogBadRequest logs err at warn level and responds 400 with msg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.Log.Warn(msg, e.fields(r, err)...)
	Write(w, http.StatusBadRequest, msg)
}

// Handler serves the redirect targets used by the auth middleware.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Forbidden handles GET /forbidden.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	Write(w, http.StatusForbidden, "You don't have permission to view this page.")
}

// Unauthorized handles GET /unauthorized.
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	Write(w, http.StatusUnauthorized, "Please sign in to continue.")
}

// LogStoreError maps a store error to a response. repository.ErrNotFound
// answers 404 and any of conflicts answers 409 with the sentinel's text.
// Anything else is logged and answers 500 with msg.
func (e *ErrorLogger) LogStoreError(w http.ResponseWriter, r *http.Request, msg string, err error, conflicts ...error) {
	if stderrors.Is(err, repository.ErrNotFound) {
		Write(w, http.StatusNotFound, "Not found.")
		return
	}
	for _, c := range conflicts {
		if stderrors.Is(err, c) {
			e.Log.Info(msg, e.fields(r, err)...)
			Write(w, http.StatusConflict, c.Error())
			return
		}
	}
	e.LogServerError(w, r, msg, err)
}
