// internal/app/features/dashboard/handler.go
package dashboard

import (
	"time"

	uierrors "github.com/dalemusser/welfarehub/internal/app/features/errors"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"go.uber.org/zap"
)

type Handler struct {
	Reports         repository.DailyReportRepository
	AddOns          repository.AddOnRepository
	Revenues        repository.RevenueRepository
	HourlyUnitPrice float64

	// Now is the clock the windows end on.
	Now func() time.Time

	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(
	reports repository.DailyReportRepository,
	addOns repository.AddOnRepository,
	revenues repository.RevenueRepository,
	hourlyUnitPrice float64,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Reports:         reports,
		AddOns:          addOns,
		Revenues:        revenues,
		HourlyUnitPrice: hourlyUnitPrice,
		Now:             time.Now,
		Log:             logger,
		ErrLog:          errLog,
	}
}
