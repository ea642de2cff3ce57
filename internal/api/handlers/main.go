// filepath: internal/api/handlers/main.go
package handlers

import (
	"fastfitbeat/internal/config"
	"fastfitbeat/internal/services"
	"fastfitbeat/internal/services/auth"
)

// Handlers provides a struct to hold shared dependencies for API handlers,
// such as the catalog and analytics services.
type Handlers struct {
	Info      services.InfoService
	Station   services.StationService
	Analytics services.AnalyticsService
	Favorite  services.FavoriteService
	Gate      auth.CredentialGate
	Token     auth.TokenService
	Auditor   services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	station services.StationService,
	analytics services.AnalyticsService,
	favorite services.FavoriteService,
	gate auth.CredentialGate,
	token auth.TokenService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:      info,
		Station:   station,
		Analytics: analytics,
		Favorite:  favorite,
		Gate:      gate,
		Token:     token,
		Auditor:   auditor,
		Cfg:       cfg,
	}
}
