// Package cli implements welfarehubctl, the operator command line. Settings
// come from flags or WELFAREHUB_* environment variables through viper.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dalemusser/welfarehub/internal/app/system/timezones"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Settings are the values shared by every command.
type Settings struct {
	MongoURI        string
	MongoDatabase   string
	HourlyUnitPrice float64
	Timezone        string
}

// NewRootCmd builds the command tree. v receives the flag bindings so that
// environment variables can stand in for any flag.
func NewRootCmd(v *viper.Viper, logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "welfarehubctl",
		Short:         "Operator tools for WelfareHub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("mongo_uri", "mongodb://localhost:27017", "MongoDB connection URI")
	pf.String("mongo_database", "welfare_hub", "MongoDB database name")
	pf.Float64("hourly_unit_price", 800, "Revenue per support hour")
	pf.String("timezone", timezones.Default, "IANA time zone of the facilities' calendar day")
	_ = v.BindPFlags(pf)

	v.SetEnvPrefix("WELFAREHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newSeedCmd(v, logger), newKPICmd(v, logger))
	return root
}

func settingsFrom(v *viper.Viper) Settings {
	return Settings{
		MongoURI:        v.GetString("mongo_uri"),
		MongoDatabase:   v.GetString("mongo_database"),
		HourlyUnitPrice: v.GetFloat64("hourly_unit_price"),
		Timezone:        v.GetString("timezone"),
	}
}

// connect opens the database named in s. The caller disconnects the client.
func connect(ctx context.Context, s Settings) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, client.Database(s.MongoDatabase), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
