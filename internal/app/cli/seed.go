package cli

import (
	"context"
	"fmt"

	"github.com/dalemusser/welfarehub/internal/app/seed"
	"github.com/dalemusser/welfarehub/internal/app/system/indexes"
	"github.com/dalemusser/welfarehub/internal/app/system/timeouts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newSeedCmd(v *viper.Viper, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo data set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Long())
			defer cancel()

			s := settingsFrom(v)
			client, db, err := connect(ctx, s)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			if err := indexes.EnsureAll(ctx, db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			res, err := seed.Run(ctx, db, s.HourlyUnitPrice, logger)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}
