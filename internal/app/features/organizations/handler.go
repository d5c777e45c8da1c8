// internal/app/features/organizations/handler.go
package organizations

import (
	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Organizations.
type Handler struct {
	Orgs repository.OrganizationRepository
	// DB is optional. When set, the list carries per-organization child
	// counts.
	DB     aggregator
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a new Organizations handler.
func NewHandler(orgs repository.OrganizationRepository, db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	h := &Handler{
		Orgs:   orgs,
		Log:    logger,
		ErrLog: errLog,
	}
	if db != nil {
		h.DB = db
	}
	return h
}
