// internal/app/features/users/handler.go
package users

import (
	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.uber.org/zap"
)

// minPasswordLen applies to passwords set through this feature.
const minPasswordLen = 8

// Handler serves staff account administration. Every route is HQ-only.
type Handler struct {
	Users  repository.UserRepository
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(users repository.UserRepository, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger, ErrLog: errLog}
}
