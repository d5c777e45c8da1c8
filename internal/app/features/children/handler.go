// internal/app/features/children/handler.go
package children

import (
	"context"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.uber.org/zap"
)

// Handler serves the child roster. HQ manages every organization's
// children; FC only its own.
type Handler struct {
	Children repository.ChildRepository
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

func NewHandler(children repository.ChildRepository, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Children: children, Log: logger, ErrLog: errLog}
}

// visible reports whether the child with store id is inside scope. HQ
// scopes skip the lookup and let the store answer not-found.
func (h *Handler) visible(ctx context.Context, scope orgpolicy.Scope, id string) (bool, error) {
	if scope.AllOrgs {
		return true, nil
	}
	if !scope.CanView {
		return false, nil
	}
	own, err := h.Children.ListByOrg(ctx, scope.OrgID)
	if err != nil {
		return false, err
	}
	for _, c := range own {
		if c.ID.Hex() == id {
			return true, nil
		}
	}
	return false, nil
}
