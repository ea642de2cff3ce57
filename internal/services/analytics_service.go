// filepath: internal/services/analytics_service.go
package services

import (
	"fmt"

	"fastfitbeat/internal/models"
	"fastfitbeat/internal/repository"
)

// recentEventLimit caps the recent-events feed in the summary.
const recentEventLimit = 50

var _ AnalyticsService = (*analyticsService)(nil)

// analyticsService owns the append-only event log and the derived summary.
type analyticsService struct {
	Repo *repository.Repository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo *repository.Repository) *analyticsService {
	return &analyticsService{Repo: repo}
}

// TrackEvent appends one event to the log. The station does not have to
// exist; orphaned events are kept and only excluded from per-station
// aggregation.
func (s *analyticsService) TrackEvent(stationID string, eventType models.EventType, metadata models.Metadata) error {
	if stationID == "" {
		return fmt.Errorf("%w: station id is required", ErrValidation)
	}
	if !eventType.Valid() {
		return fmt.Errorf("%w: unknown event type %q", ErrValidation, eventType)
	}

	ev := &models.AnalyticsEvent{
		ID:        newID(),
		StationID: stationID,
		EventType: eventType,
		Timestamp: nowMillis(),
		Metadata:  metadata,
	}
	return s.Repo.InsertEvent(ev)
}

// GetSummary derives the analytics view from the raw log and the
// favorites set. Neither is mutated. Store errors propagate unchanged.
func (s *analyticsService) GetSummary() (*models.AnalyticsSummary, error) {
	stations, err := s.Repo.GetStations()
	if err != nil {
		return nil, err
	}
	totalPlays, err := s.Repo.CountEventsByType(models.EventPlay)
	if err != nil {
		return nil, err
	}
	totalFavorites, err := s.Repo.CountFavorites()
	if err != nil {
		return nil, err
	}
	playCounts, err := s.Repo.EventCountsByStation(models.EventPlay)
	if err != nil {
		return nil, err
	}
	favoriteCounts, err := s.Repo.FavoriteCountsByStation()
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.GetRecentEvents(recentEventLimit)
	if err != nil {
		return nil, err
	}

	// Every known station appears, with zero counts when inactive. Counts
	// keyed by a deleted station id fall out here since the range is over
	// the current catalog.
	stats := make([]models.StationStats, 0, len(stations))
	for _, st := range stations {
		stats = append(stats, models.StationStats{
			StationID:   st.ID,
			StationName: st.Name,
			Plays:       playCounts[st.ID],
			Favorites:   favoriteCounts[st.ID],
		})
	}

	return &models.AnalyticsSummary{
		TotalPlays:     totalPlays,
		TotalFavorites: totalFavorites,
		StationStats:   stats,
		RecentEvents:   recent,
	}, nil
}
