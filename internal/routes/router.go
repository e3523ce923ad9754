package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"field-ministry/campo/internal/api"
	"field-ministry/campo/internal/logging"
	"field-ministry/campo/internal/middleware"
)

// authBurst is how many login or callback requests one IP may fire at once.
const authBurst = 5

// NewRouter builds the HTTP handler for the whole server. gatherer backs the
// /metrics endpoint and must be the registry metrics were registered on.
func NewRouter(deps *api.Dependencies, gatherer prometheus.Gatherer, upSince time.Time) http.Handler {
	r := chi.NewRouter()
	cfg := deps.Config

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.Logging)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-API-Key"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps.SQL, deps.Redis, upSince))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	sessionHandlers := api.NewSessionHandlers(
		deps.Provider,
		deps.Services.Sessions,
		deps.Services.Users,
		deps.Services.StateSigner,
		cfg.SessionTTL,
		cfg.CookieSecure,
	)
	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, authBurst)
	r.Group(func(session chi.Router) {
		session.Use(limiter.Middleware)
		session.Get("/api/login", sessionHandlers.Login())
		session.Get("/api/callback", sessionHandlers.Callback())
	})
	r.Get("/api/logout", sessionHandlers.Logout())

	RegisterAPIRoutes(r, deps)

	if cfg.StaticDir != "" {
		RegisterStaticRoutes(r, cfg.StaticDir)
	}

	logging.Info("Router initialized", "static_dir", cfg.StaticDir, "cors_origins", cfg.CORSAllowedOrigins)
	return r
}
