// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	addonsfeature "github.com/dalemusser/welfarehub/internal/app/features/addons"
	childrenfeature "github.com/dalemusser/welfarehub/internal/app/features/children"
	dailyreportsfeature "github.com/dalemusser/welfarehub/internal/app/features/dailyreports"
	dashboardfeature "github.com/dalemusser/welfarehub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/welfarehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/welfarehub/internal/app/features/health"
	loginfeature "github.com/dalemusser/welfarehub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/welfarehub/internal/app/features/logout"
	organizationsfeature "github.com/dalemusser/welfarehub/internal/app/features/organizations"
	userinfofeature "github.com/dalemusser/welfarehub/internal/app/features/userinfo"
	usersfeature "github.com/dalemusser/welfarehub/internal/app/features/users"
	addonstore "github.com/dalemusser/welfarehub/internal/app/store/addons"
	childstore "github.com/dalemusser/welfarehub/internal/app/store/children"
	dailyreportstore "github.com/dalemusser/welfarehub/internal/app/store/dailyreports"
	organizationstore "github.com/dalemusser/welfarehub/internal/app/store/organizations"
	revenuestore "github.com/dalemusser/welfarehub/internal/app/store/revenues"
	userstore "github.com/dalemusser/welfarehub/internal/app/store/users"
	"github.com/dalemusser/welfarehub/internal/app/system/auth"
	"github.com/dalemusser/welfarehub/internal/app/system/authn"
	"github.com/dalemusser/welfarehub/internal/app/system/ratelimit"
	"github.com/dalemusser/welfarehub/internal/app/system/timezones"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. WelfareHub applies session and CSRF
// middleware, then mounts the JSON feature routers: login, master data,
// daily reports, and the KPI dashboard.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	csrfKey := []byte(appCfg.CSRFKey)
	if len(csrfKey) == 0 {
		csrfKey = securecookie.GenerateRandomKey(32)
		logger.Warn("csrf_key not set; generated a per-process key, form tokens will not survive a restart")
	}

	db := deps.WelfareHubMongoDatabase
	orgs := organizationstore.New(db)
	users := userstore.New(db)
	children := childstore.New(db)
	addOns := addonstore.New(db)
	reports := dailyreportstore.New(db)
	revenues := revenuestore.New(db)

	authenticator := buildAuthenticator(appCfg, users)

	loc, err := timezones.Load(appCfg.Timezone)
	if err != nil {
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global middleware: CSRF for form posts, then the session user.
	// The current user is available to all handlers via auth.CurrentUser(r).
	r.Use(auth.CSRF(csrfKey, secure, nil))
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.WelfareHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(authenticator, sessionMgr, ratelimit.NewLoginLimiter(), errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	r.Mount("/api", userinfofeature.Routes(userinfofeature.NewHandler()))

	// Redirect targets of the auth middleware
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Master data
	orgHandler := organizationsfeature.NewHandler(orgs, db, errLog, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgHandler, sessionMgr))

	usersHandler := usersfeature.NewHandler(users, errLog, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr))

	childrenHandler := childrenfeature.NewHandler(children, errLog, logger)
	r.Mount("/children", childrenfeature.Routes(childrenHandler, sessionMgr))

	addOnsHandler := addonsfeature.NewHandler(addOns, errLog, logger)
	r.Mount("/addons", addonsfeature.Routes(addOnsHandler, sessionMgr))

	// Attendance and KPIs
	reportsHandler := dailyreportsfeature.NewHandler(reports, children, addOns, revenues, appCfg.HourlyUnitPrice, errLog, logger)
	r.Mount("/dailyreports", dailyreportsfeature.Routes(reportsHandler, sessionMgr))

	dashboardHandler := dashboardfeature.NewHandler(reports, addOns, revenues, appCfg.HourlyUnitPrice, errLog, logger)
	dashboardHandler.Now = timezones.Clock(loc)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	return r, nil
}

// buildAuthenticator picks the credential backend for auth_mode. With demo
// login enabled, the demo accounts are tried first.
func buildAuthenticator(appCfg AppConfig, users authn.UserLookup) authn.Authenticator {
	var base authn.Authenticator
	switch appCfg.AuthMode {
	case AuthModeIdP:
		base = authn.NewIdPAuthenticator(appCfg.IdPTokenURL, appCfg.IdPClientID, appCfg.IdPClientSecret, users)
	default:
		base = authn.LocalAuthenticator{Users: users}
	}
	if appCfg.DemoLogin {
		return authn.Chain{authn.DemoAuthenticator{}, base}
	}
	return base
}
