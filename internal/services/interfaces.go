// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"fastfitbeat/internal/models"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "station.create", "admin.setup")
	// actor: who did it
	// resource: what was affected (e.g., "Station:01H...")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// StationService defines the interface for the station catalog.
type StationService interface {
	GetStation(id string) (*models.Station, error)
	GetStations() ([]models.Station, error)
	CreateStation(payload models.StationCreatePayload) (*models.Station, error)
	UpdateStation(id string, updates models.StationUpdatePayload) (*models.Station, error)
	DeleteStation(id string) error
	SeedDefaultStations() (int, error)
}

// AnalyticsService defines the interface for the event log and its
// derived summary.
type AnalyticsService interface {
	TrackEvent(stationID string, eventType models.EventType, metadata models.Metadata) error
	GetSummary() (*models.AnalyticsSummary, error)
}

// FavoriteService defines the interface for the favorites set.
type FavoriteService interface {
	ToggleFavorite(stationID string) (bool, error)
	IsFavorite(stationID string) (bool, error)
	GetFavorites() ([]models.Favorite, error)
}
