// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/welfarehub/internal/app/seed"
	addonstore "github.com/dalemusser/welfarehub/internal/app/store/addons"
	dailyreportstore "github.com/dalemusser/welfarehub/internal/app/store/dailyreports"
	revenuestore "github.com/dalemusser/welfarehub/internal/app/store/revenues"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/app/system/timezones"
	"github.com/dalemusser/welfarehub/internal/app/system/workers"
	"go.uber.org/zap"
)

// reconciler is started by Startup and stopped by Shutdown.
var reconciler *workers.RevenueReconciler

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("store timeouts overridden from environment", zap.Int("count", n))
	}

	if appCfg.DemoLogin {
		logger.Warn("demo login is enabled; the demo accounts can sign in without a stored password")
	}

	db := deps.WelfareHubMongoDatabase
	if appCfg.SeedDemoData {
		if _, err := seed.Run(ctx, db, appCfg.HourlyUnitPrice, logger); err != nil {
			logger.Error("seeding demo data failed", zap.Error(err))
			return err
		}
	}

	if appCfg.RevenueReconcileInterval > 0 {
		loc, err := timezones.Load(appCfg.Timezone)
		if err != nil {
			return err
		}
		reconciler = workers.NewRevenueReconciler(
			dailyreportstore.New(db),
			addonstore.New(db),
			revenuestore.New(db),
			appCfg.HourlyUnitPrice,
			logger,
			appCfg.RevenueReconcileInterval,
			appCfg.RevenueReconcileDays,
			timezones.Clock(loc),
		)
		reconciler.Start()
	}
	return nil
}
