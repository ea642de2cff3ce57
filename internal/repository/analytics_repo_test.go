// filepath: internal/repository/analytics_repo_test.go
package repository

import (
	"fmt"
	"testing"

	"fastfitbeat/internal/models"

	"github.com/stretchr/testify/assert"
)

func insertTestEvent(t *testing.T, repo *Repository, id, stationID string, eventType models.EventType, ts int64) {
	t.Helper()
	err := repo.InsertEvent(&models.AnalyticsEvent{
		ID:        id,
		StationID: stationID,
		EventType: eventType,
		Timestamp: ts,
	})
	assert.NoError(t, err)
}

func TestInsertAndGetEvents(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.InsertEvent(&models.AnalyticsEvent{
		ID:        "ev1",
		StationID: "st1",
		EventType: models.EventPlay,
		Timestamp: 1000,
		Metadata:  models.Metadata{"source": "native", "volume": 0.75},
	})
	assert.NoError(t, err)

	insertTestEvent(t, repo, "ev2", "st1", models.EventPause, 2000)

	events, err := repo.GetEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 2)

	// Oldest first.
	assert.Equal(t, "ev1", events[0].ID)
	assert.Equal(t, models.EventPlay, events[0].EventType)
	assert.Equal(t, "native", events[0].Metadata["source"])
	assert.Equal(t, 0.75, events[0].Metadata["volume"])

	// Empty metadata stays nil on read.
	assert.Nil(t, events[1].Metadata)
}

func TestGetRecentEvents(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 10; i++ {
		insertTestEvent(t, repo, fmt.Sprintf("ev%02d", i), "st1", models.EventPlay, int64(1000+i))
	}

	recent, err := repo.GetRecentEvents(3)
	assert.NoError(t, err)
	assert.Len(t, recent, 3)

	// Newest first.
	assert.Equal(t, int64(1009), recent[0].Timestamp)
	assert.Equal(t, int64(1008), recent[1].Timestamp)
	assert.Equal(t, int64(1007), recent[2].Timestamp)
}

func TestCountEventsByType(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	insertTestEvent(t, repo, "ev1", "st1", models.EventPlay, 1000)
	insertTestEvent(t, repo, "ev2", "st1", models.EventPlay, 2000)
	insertTestEvent(t, repo, "ev3", "st2", models.EventPause, 3000)

	plays, err := repo.CountEventsByType(models.EventPlay)
	assert.NoError(t, err)
	assert.Equal(t, 2, plays)

	pauses, err := repo.CountEventsByType(models.EventPause)
	assert.NoError(t, err)
	assert.Equal(t, 1, pauses)

	favorites, err := repo.CountEventsByType(models.EventFavorite)
	assert.NoError(t, err)
	assert.Equal(t, 0, favorites)
}

func TestEventCountsByStation(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	insertTestEvent(t, repo, "ev1", "st1", models.EventPlay, 1000)
	insertTestEvent(t, repo, "ev2", "st1", models.EventPlay, 2000)
	insertTestEvent(t, repo, "ev3", "st2", models.EventPlay, 3000)
	insertTestEvent(t, repo, "ev4", "st2", models.EventPause, 4000)

	counts, err := repo.EventCountsByStation(models.EventPlay)
	assert.NoError(t, err)
	assert.Equal(t, 2, counts["st1"])
	assert.Equal(t, 1, counts["st2"])
	assert.NotContains(t, counts, "st3")
}
