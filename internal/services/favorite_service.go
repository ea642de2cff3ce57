// filepath: internal/services/favorite_service.go
package services

import (
	"fmt"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
	"fastfitbeat/internal/repository"
)

var _ FavoriteService = (*favoriteService)(nil)

// favoriteService owns the favorites set. Toggling also feeds the event
// log so the aggregator can report favorite history.
type favoriteService struct {
	Repo      *repository.Repository
	Analytics AnalyticsService
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo *repository.Repository, analytics AnalyticsService) *favoriteService {
	return &favoriteService{Repo: repo, Analytics: analytics}
}

// ToggleFavorite flips the favorite state of a station and returns the new
// state. Exactly one favorite or unfavorite event is emitted per toggle.
func (s *favoriteService) ToggleFavorite(stationID string) (bool, error) {
	if stationID == "" {
		return false, fmt.Errorf("%w: station id is required", ErrValidation)
	}

	favorited, err := s.Repo.IsFavorite(stationID)
	if err != nil {
		return false, err
	}

	if favorited {
		if err := s.Repo.RemoveFavorite(stationID); err != nil {
			return true, err
		}
		s.track(stationID, models.EventUnfavorite)
		return false, nil
	}

	if err := s.Repo.AddFavorite(stationID); err != nil {
		return false, err
	}
	s.track(stationID, models.EventFavorite)
	return true, nil
}

// IsFavorite reports the current favorite state of a station.
func (s *favoriteService) IsFavorite(stationID string) (bool, error) {
	return s.Repo.IsFavorite(stationID)
}

// GetFavorites returns all favorite records.
func (s *favoriteService) GetFavorites() ([]models.Favorite, error) {
	return s.Repo.GetFavorites()
}

// track records a favorite/unfavorite event. A failed write does not roll
// the toggle back; the log is best-effort relative to the favorites set.
func (s *favoriteService) track(stationID string, eventType models.EventType) {
	if err := s.Analytics.TrackEvent(stationID, eventType, nil); err != nil {
		logging.Log.Warnf("FavoriteService: failed to record %s event for station %s: %v", eventType, stationID, err)
	}
}
