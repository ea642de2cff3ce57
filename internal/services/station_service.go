// filepath: internal/services/station_service.go
package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
	"fastfitbeat/internal/player"
	"fastfitbeat/internal/repository"

	"github.com/oklog/ulid/v2"
)

var _ StationService = (*stationService)(nil)

// stationService handles business logic for the station catalog.
type stationService struct {
	Repo *repository.Repository
}

// NewStationService creates a new StationService.
func NewStationService(repo *repository.Repository) *stationService {
	return &stationService{Repo: repo}
}

// GetStation retrieves a single station by id.
func (s *stationService) GetStation(id string) (*models.Station, error) {
	st, err := s.Repo.GetStation(id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

// GetStations retrieves the full catalog.
func (s *stationService) GetStations() ([]models.Station, error) {
	return s.Repo.GetStations()
}

// CreateStation validates the payload and inserts a new station with a
// generated id. The HLS flag is derived from the stream locator.
func (s *stationService) CreateStation(payload models.StationCreatePayload) (*models.Station, error) {
	if err := validateStationFields(payload.Name, payload.Genre, payload.StreamURL, payload.CoverImage); err != nil {
		return nil, err
	}

	st := &models.Station{
		ID:         newID(),
		Name:       strings.TrimSpace(payload.Name),
		Genre:      strings.TrimSpace(payload.Genre),
		StreamURL:  strings.TrimSpace(payload.StreamURL),
		CoverImage: payload.CoverImage,
	}
	st.IsHLS = player.IsHLSLocator(st.StreamURL)

	created, err := s.Repo.CreateStation(st)
	if err != nil {
		if errors.Is(err, repository.ErrStationExists) {
			return nil, ErrConflict
		}
		logging.Log.Errorf("StationService: failed to create station '%s': %v", st.Name, err)
		return nil, err
	}
	return created, nil
}

// UpdateStation applies a partial update to an existing station. The id is
// immutable; the HLS flag is re-derived when the locator changes.
func (s *stationService) UpdateStation(id string, updates models.StationUpdatePayload) (*models.Station, error) {
	st, err := s.Repo.GetStation(id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Work on a copy so a failed validation leaves the cache entry intact.
	updated := *st
	if updates.Name != nil {
		updated.Name = strings.TrimSpace(*updates.Name)
	}
	if updates.Genre != nil {
		updated.Genre = strings.TrimSpace(*updates.Genre)
	}
	if updates.StreamURL != nil {
		updated.StreamURL = strings.TrimSpace(*updates.StreamURL)
		updated.IsHLS = player.IsHLSLocator(updated.StreamURL)
	}
	if updates.CoverImage != nil {
		updated.CoverImage = *updates.CoverImage
	}

	if err := validateStationFields(updated.Name, updated.Genre, updated.StreamURL, updated.CoverImage); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStation(&updated); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteStation removes a station. Favorites cascade; analytics events are
// deliberately retained as history.
func (s *stationService) DeleteStation(id string) error {
	if err := s.Repo.DeleteStation(id); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// validateStationFields checks that all required fields are non-empty.
func validateStationFields(name, genre, streamURL, coverImage string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(genre) == "" {
		return fmt.Errorf("%w: genre is required", ErrValidation)
	}
	if strings.TrimSpace(streamURL) == "" {
		return fmt.Errorf("%w: stream_url is required", ErrValidation)
	}
	if coverImage == "" {
		return fmt.Errorf("%w: cover_image is required", ErrValidation)
	}
	return nil
}

// newID returns a new ULID string for stations and analytics events.
func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// nowMillis is the event-log clock. Tests may override it for
// deterministic timestamps.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}
