// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/welfarehub/internal/app/system/timezones"
	"go.uber.org/zap"
)

// Authentication modes.
const (
	AuthModeLocal = "local"
	AuthModeIdP   = "idp"
)

// appConfigKeys defines the configuration keys for WelfareHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: WELFAREHUB_MONGO_URI, WELFAREHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "welfare_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "welfarehub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime (e.g., 24h, 30m)"},
	{Name: "csrf_key", Default: "", Desc: "32-byte CSRF key for form posts (blank generates one per process)"},

	// Authentication
	{Name: "auth_mode", Default: AuthModeLocal, Desc: "Authentication backend: 'local' or 'idp'"},
	{Name: "idp_token_url", Default: "", Desc: "Identity provider OAuth2 token URL"},
	{Name: "idp_client_id", Default: "", Desc: "Identity provider client ID"},
	{Name: "idp_client_secret", Default: "", Desc: "Identity provider client secret"},
	{Name: "demo_login", Default: false, Desc: "Accept the demo accounts (never enable in production)"},

	// Data
	{Name: "seed_demo_data", Default: false, Desc: "Load the demo data set at startup"},
	{Name: "hourly_unit_price", Default: 800, Desc: "Revenue per support hour"},
	{Name: "timezone", Default: timezones.Default, Desc: "IANA time zone of the facilities' calendar day"},
	{Name: "revenue_reconcile_interval", Default: "0s", Desc: "How often revenue snapshots are re-derived (0 disables; off by default)"},
	{Name: "revenue_reconcile_days", Default: 7, Desc: "How many recent days the revenue reconciler rewrites"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// WELFAREHUB_* environment variables and flags with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WELFAREHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),
		SessionDomain:    appValues.String("session_domain"),
		SessionMaxAge:    appValues.Duration("session_max_age", 24*time.Hour),
		CSRFKey:          appValues.String("csrf_key"),

		AuthMode:        appValues.String("auth_mode"),
		IdPTokenURL:     appValues.String("idp_token_url"),
		IdPClientID:     appValues.String("idp_client_id"),
		IdPClientSecret: appValues.String("idp_client_secret"),
		DemoLogin:       appValues.Bool("demo_login"),

		SeedDemoData:    appValues.Bool("seed_demo_data"),
		HourlyUnitPrice: float64(appValues.Int("hourly_unit_price")),
		Timezone:        appValues.String("timezone"),

		RevenueReconcileInterval: appValues.Duration("revenue_reconcile_interval", 0),
		RevenueReconcileDays:     appValues.Int("revenue_reconcile_days"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.AuthMode {
	case AuthModeLocal:
	case AuthModeIdP:
		if appCfg.IdPTokenURL == "" || appCfg.IdPClientID == "" {
			return fmt.Errorf("auth_mode=idp requires idp_token_url and idp_client_id")
		}
	default:
		return fmt.Errorf("auth_mode must be %q or %q, got %q", AuthModeLocal, AuthModeIdP, appCfg.AuthMode)
	}

	if appCfg.HourlyUnitPrice <= 0 {
		return fmt.Errorf("hourly_unit_price must be positive, got %v", appCfg.HourlyUnitPrice)
	}
	if !timezones.Valid(appCfg.Timezone) {
		return fmt.Errorf("timezone %q is not a known IANA zone", appCfg.Timezone)
	}
	if appCfg.RevenueReconcileInterval < 0 {
		return fmt.Errorf("revenue_reconcile_interval must not be negative")
	}
	if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}

	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.DemoLogin {
		logger.Warn("demo_login is enabled in production")
	}
	return nil
}
