// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration, which covers ports, TLS,
// logging and request limits.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Upper bound of the driver connection pool

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: welfarehub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime

	// CSRF protection for form posts. Blank generates a per-process key.
	CSRFKey string

	// Authentication
	AuthMode        string // "local" (users collection + bcrypt) or "idp"
	IdPTokenURL     string // OAuth2 token endpoint used with the password grant
	IdPClientID     string
	IdPClientSecret string
	DemoLogin       bool // accept the fixed demo accounts

	// Seed the demo data set at startup.
	SeedDemoData bool

	// Revenue accrued per support hour.
	HourlyUnitPrice float64

	// IANA zone whose calendar day bounds the dashboard windows.
	Timezone string

	// Background re-derivation of revenue snapshots. Zero interval disables it.
	RevenueReconcileInterval time.Duration
	RevenueReconcileDays     int
}
