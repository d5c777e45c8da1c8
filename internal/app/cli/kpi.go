package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dalemusser/welfarehub/internal/app/reporting/kpi"
	addonstore "github.com/dalemusser/welfarehub/internal/app/store/addons"
	dailyreportstore "github.com/dalemusser/welfarehub/internal/app/store/dailyreports"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/dalemusser/welfarehub/internal/app/system/timezones"
	"github.com/dalemusser/welfarehub/internal/domain/models"
	"github.com/dalemusser/welfarehub/internal/domain/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type kpiOutput struct {
	OrgID   string      `json:"orgId"`
	Window  int         `json:"window"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	Summary kpi.Summary `json:"summary"`
}

type kpiCmd struct {
	org    string
	window string
	to     string
}

func newKPICmd(v *viper.Viper, logger *zap.Logger) *cobra.Command {
	kc := &kpiCmd{}
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "Print the KPI summary of one organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Long())
			defer cancel()

			s := settingsFrom(v)
			loc, err := timezones.Load(s.Timezone)
			if err != nil {
				return err
			}
			client, db, err := connect(ctx, s)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			logger.Debug("computing kpi", zap.String("org_id", kc.org), zap.String("window", kc.window))
			return kc.run(ctx, dailyreportstore.New(db), addonstore.New(db), s.HourlyUnitPrice, timezones.Clock(loc)(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&kc.org, "org", "", "Organization ID")
	cmd.Flags().StringVar(&kc.window, "window", "7", "Lookback window in days (7 or 30)")
	cmd.Flags().StringVar(&kc.to, "to", "", "Last day of the window, YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func (kc *kpiCmd) run(ctx context.Context, reports repository.DailyReportRepository, addOns repository.AddOnRepository, price float64, now time.Time, w io.Writer) error {
	window, err := kpi.ParseWindow(strings.TrimSpace(kc.window))
	if err != nil {
		return err
	}
	if kc.to != "" {
		end, err := time.Parse(models.DateLayout, kc.to)
		if err != nil {
			return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
		}
		now = end
	}

	from, to := window.Range(now)
	list, err := reports.ListByOrgRange(ctx, kc.org, from, to)
	if err != nil {
		return fmt.Errorf("load daily reports: %w", err)
	}
	masters, err := addOns.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("load add-ons: %w", err)
	}

	return printJSON(w, kpiOutput{
		OrgID:   kc.org,
		Window:  int(window),
		From:    from,
		To:      to,
		Summary: kpi.Aggregate(list, masters, kpi.Options{HourlyUnitPrice: price, Window: window}),
	})
}
