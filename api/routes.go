package api

import (
	"net/http"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kainoa/surftrack/internal/config"
	"github.com/kainoa/surftrack/internal/db"
	"github.com/kainoa/surftrack/internal/metrics"
	"github.com/kainoa/surftrack/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB, log *slog.Logger) *mux.Router {
	SetLogger(log)

	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddlewareWithOrigin(cfg.FrontendURL))
	r.Use(RecoveryMiddleware(cfg.IsProduction()))

	// Repository
	repo := sqlite.New(database, log)

	// Create handlers
	systemHandler := NewSystemHandler(database, cfg.Environment)
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	spotsHandler := NewSpotsHandler(repo)
	sessionsHandler := NewSessionsHandler(repo, repo)
	dashboardHandler := NewDashboardHandler(repo)

	// Open endpoints
	r.Handle("/version", withMetrics(metrics.EndpointVersion, systemHandler.VersionHandler(version, buildTime))).Methods("GET")
	r.Handle("/health", withMetrics(metrics.EndpointHealth, systemHandler.HealthHandler)).Methods("GET")
	r.Handle("/api/auth/signin", withMetrics(metrics.EndpointAuth, authHandler.Signin)).Methods("POST")
	r.Handle("/api/auth/signout", withMetrics(metrics.EndpointAuth, authHandler.Signout)).Methods("POST")

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// API routes, guarded by the identity middleware
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(IdentityMiddleware(cfg.AuthRequired, cfg.JWTSecret))

	apiRouter.Handle("/surf-spots", withMetrics(metrics.EndpointSpots, spotsHandler.ListSpots)).Methods("GET")
	apiRouter.Handle("/surf-spots", withMetrics(metrics.EndpointSpots, spotsHandler.CreateSpot)).Methods("POST")
	apiRouter.Handle("/surf-spots/{id:[0-9]+}", withMetrics(metrics.EndpointSpots, spotsHandler.GetSpot)).Methods("GET")
	apiRouter.Handle("/surf-spots/{id:[0-9]+}", withMetrics(metrics.EndpointSpots, spotsHandler.UpdateSpot)).Methods("PUT")
	apiRouter.Handle("/surf-spots/{id:[0-9]+}", withMetrics(metrics.EndpointSpots, spotsHandler.DeleteSpot)).Methods("DELETE")

	apiRouter.Handle("/surf-sessions", withMetrics(metrics.EndpointSessions, sessionsHandler.ListSessions)).Methods("GET")
	apiRouter.Handle("/surf-sessions", withMetrics(metrics.EndpointSessions, sessionsHandler.CreateSession)).Methods("POST")
	apiRouter.Handle("/surf-sessions/spot/{id:[0-9]+}", withMetrics(metrics.EndpointSessions, sessionsHandler.ListSessionsBySpot)).Methods("GET")
	apiRouter.Handle("/surf-sessions/{id:[0-9]+}", withMetrics(metrics.EndpointSessions, sessionsHandler.GetSession)).Methods("GET")
	apiRouter.Handle("/surf-sessions/{id:[0-9]+}", withMetrics(metrics.EndpointSessions, sessionsHandler.UpdateSession)).Methods("PUT")
	apiRouter.Handle("/surf-sessions/{id:[0-9]+}", withMetrics(metrics.EndpointSessions, sessionsHandler.DeleteSession)).Methods("DELETE")

	apiRouter.Handle("/dashboard", withMetrics(metrics.EndpointDashboard, dashboardHandler.GetDashboard)).Methods("GET")

	// Unmatched routes answer with a JSON 404 body
	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)

	return r
}
