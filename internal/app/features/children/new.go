// internal/app/features/children/new.go
package children

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/app/policy/orgpolicy"
	childstore "github.com/dalemusser/welfarehub/internal/app/store/children"
	"github.com/dalemusser/welfarehub/internal/app/system/formutil"
	"github.com/dalemusser/welfarehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/welfarehub/internal/app/system/inputval"
	"github.com/dalemusser/welfarehub/internal/app/system/limits"
	"github.com/dalemusser/welfarehub/internal/app/system/normalize"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /children. FC users always create in their
// own organization whatever orgId says.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in childInput
	if err := formutil.DecodeJSON(w, r, limits.MaxJSONBody, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, err.Error(), err)
		return
	}

	scope := orgpolicy.FromRequest(r)
	c := models.Child{
		ChildID:       strings.TrimSpace(in.ChildID),
		OrgID:         scope.ResolveOrg(strings.TrimSpace(in.OrgID)),
		Name:          normalize.Name(htmlsanitize.PlainText(in.Name)),
		DefaultPickup: in.DefaultPickup,
		DefaultDrop:   in.DefaultDrop,
	}

	var errs inputval.Errors
	errs.Require(c.Name, "Name")
	errs.MaxLen(c.Name, 100, "Name")
	errs.Require(c.OrgID, "Organization")
	if errs.HasErrors() {
		uierrors.Write(w, http.StatusBadRequest, errs.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Children.Create(ctx, c)
	if err != nil {
		h.ErrLog.LogStoreError(w, r, "database error creating child", err, childstore.ErrDuplicateChild)
		return
	}
	h.Log.Info("child created", zap.String("id", id), zap.String("org_id", c.OrgID))
	uierrors.WriteJSON(w, http.StatusCreated, createdResponse{ID: id})
}
