// filepath: internal/services/station_service_test.go
package services

import (
	"os"
	"testing"

	"fastfitbeat/internal/config"
	"fastfitbeat/internal/models"
	"fastfitbeat/internal/repository"

	"github.com/stretchr/testify/assert"
)

func setupTestRepo(t *testing.T) (*repository.Repository, func()) {
	t.Helper()
	const dbPath = "test_services.db"

	os.Remove(dbPath)

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: dbPath},
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		t.Fatalf("Failed to bootstrap schema: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func validPayload() models.StationCreatePayload {
	return models.StationCreatePayload{
		Name:       "Test Station",
		Genre:      "Deep House",
		StreamURL:  "https://stream.example.com/live.m3u8",
		CoverImage: "/covers/test.svg",
	}
}

func TestCreateStation(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	created, err := svc.CreateStation(validPayload())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsHLS)
	assert.NotZero(t, created.CreatedAt)

	read, err := svc.GetStation(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Test Station", read.Name)
}

func TestCreateStationDerivesHLSFlag(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	payload := validPayload()
	payload.StreamURL = "https://stream.example.com/live.mp3"
	created, err := svc.CreateStation(payload)
	assert.NoError(t, err)
	assert.False(t, created.IsHLS)
}

func TestCreateStationValidation(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	cases := []struct {
		name   string
		mutate func(*models.StationCreatePayload)
	}{
		{"missing name", func(p *models.StationCreatePayload) { p.Name = "  " }},
		{"missing genre", func(p *models.StationCreatePayload) { p.Genre = "" }},
		{"missing stream url", func(p *models.StationCreatePayload) { p.StreamURL = "" }},
		{"missing cover image", func(p *models.StationCreatePayload) { p.CoverImage = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			tc.mutate(&payload)
			_, err := svc.CreateStation(payload)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateStationPartial(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	created, err := svc.CreateStation(validPayload())
	assert.NoError(t, err)

	newName := "Renamed"
	updated, err := svc.UpdateStation(created.ID, models.StationUpdatePayload{Name: &newName})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	// Untouched fields survive.
	assert.Equal(t, created.Genre, updated.Genre)
	assert.Equal(t, created.StreamURL, updated.StreamURL)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateStationRederivesHLSFlag(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	created, err := svc.CreateStation(validPayload())
	assert.NoError(t, err)
	assert.True(t, created.IsHLS)

	directURL := "https://stream.example.com/live.mp3"
	updated, err := svc.UpdateStation(created.ID, models.StationUpdatePayload{StreamURL: &directURL})
	assert.NoError(t, err)
	assert.False(t, updated.IsHLS)
}

func TestUpdateStationClearedFieldRejected(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	created, err := svc.CreateStation(validPayload())
	assert.NoError(t, err)

	empty := ""
	_, err = svc.UpdateStation(created.ID, models.StationUpdatePayload{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	// The failed update leaves the record untouched.
	read, err := svc.GetStation(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Test Station", read.Name)
}

func TestUpdateStationNotFound(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	newName := "Ghost"
	_, err := svc.UpdateStation("missing", models.StationUpdatePayload{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStation(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	created, err := svc.CreateStation(validPayload())
	assert.NoError(t, err)

	err = svc.DeleteStation(created.ID)
	assert.NoError(t, err)

	_, err = svc.GetStation(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteStation(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedDefaultStations(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	n, err := svc.SeedDefaultStations()
	assert.NoError(t, err)
	assert.Equal(t, 6, n)

	stations, err := svc.GetStations()
	assert.NoError(t, err)
	assert.Len(t, stations, 6)
	assert.Equal(t, "Mainstage", stations[0].Name)

	// Seeding is a no-op once any station exists.
	n, err = svc.SeedDefaultStations()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSeedSkippedWhenCatalogCustomized(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewStationService(repo)

	_, err := svc.CreateStation(validPayload())
	assert.NoError(t, err)

	n, err := svc.SeedDefaultStations()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	stations, err := svc.GetStations()
	assert.NoError(t, err)
	assert.Len(t, stations, 1)
}
