// filepath: internal/services/favorite_service_test.go
package services

import (
	"testing"

	"fastfitbeat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestToggleFavorite(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	analytics := NewAnalyticsService(repo)
	svc := NewFavoriteService(repo, analytics)

	favorited, err := svc.ToggleFavorite("st1")
	assert.NoError(t, err)
	assert.True(t, favorited)

	isFav, err := svc.IsFavorite("st1")
	assert.NoError(t, err)
	assert.True(t, isFav)

	favorited, err = svc.ToggleFavorite("st1")
	assert.NoError(t, err)
	assert.False(t, favorited)

	isFav, err = svc.IsFavorite("st1")
	assert.NoError(t, err)
	assert.False(t, isFav)
}

func TestToggleFavoriteEmitsEvents(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	analytics := NewAnalyticsService(repo)
	svc := NewFavoriteService(repo, analytics)

	_, err := svc.ToggleFavorite("st1")
	assert.NoError(t, err)
	_, err = svc.ToggleFavorite("st1")
	assert.NoError(t, err)

	events, err := repo.GetEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 2)

	types := []models.EventType{events[0].EventType, events[1].EventType}
	assert.ElementsMatch(t, []models.EventType{models.EventFavorite, models.EventUnfavorite}, types)
	assert.Equal(t, "st1", events[0].StationID)
	assert.Equal(t, "st1", events[1].StationID)
}

func TestToggleFavoriteMissingID(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewFavoriteService(repo, NewAnalyticsService(repo))

	_, err := svc.ToggleFavorite("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetFavorites(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	svc := NewFavoriteService(repo, NewAnalyticsService(repo))

	favorites, err := svc.GetFavorites()
	assert.NoError(t, err)
	assert.Empty(t, favorites)

	_, err = svc.ToggleFavorite("st1")
	assert.NoError(t, err)
	_, err = svc.ToggleFavorite("st2")
	assert.NoError(t, err)

	favorites, err = svc.GetFavorites()
	assert.NoError(t, err)
	assert.Len(t, favorites, 2)
}
