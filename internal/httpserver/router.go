// filepath: internal/httpserver/router.go
package httpserver

import (
	"fastfitbeat/internal/api/handlers"
	"fastfitbeat/internal/relay"
	"fastfitbeat/internal/services/auth"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router and its sub-routers.
// Read endpoints stay public so the listener UI works without a login;
// catalog mutations and the analytics overview sit behind the admin token.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, streamRelay *relay.Handler) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.Handle("/relay", streamRelay).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public Auth Endpoints (Not protected by the middleware)
	r.HandleFunc("/api/setup", h.GetSetupStatus).Methods("GET")
	r.HandleFunc("/api/setup", h.Setup).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/token/refresh", h.RefreshToken).Methods("POST")

	addListenerRoutes(r, h)
	addAdminRoutes(r, h, am)

	return r
}

// addListenerRoutes configures the public read and playback-tracking surface.
func addListenerRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/api/stations", h.GetStations).Methods("GET")
	r.HandleFunc("/api/station", h.GetStation).Methods("GET")
	r.HandleFunc("/api/favorites", h.GetFavorites).Methods("GET")
	r.HandleFunc("/api/favorites/toggle", h.ToggleFavorite).Methods("POST")
	r.HandleFunc("/api/analytics/track", h.TrackEvent).Methods("POST")
}

// addAdminRoutes configures routes requiring a valid Bearer token.
func addAdminRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("/api").Subrouter()
	adminRouter.Use(am.RequireAdmin)

	adminRouter.HandleFunc("/logout", h.Logout).Methods("POST")

	adminRouter.HandleFunc("/station", h.CreateStation).Methods("POST")
	adminRouter.HandleFunc("/station", h.UpdateStation).Methods("PUT")
	adminRouter.HandleFunc("/station", h.DeleteStation).Methods("DELETE")

	adminRouter.HandleFunc("/analytics", h.GetAnalytics).Methods("GET")
}
