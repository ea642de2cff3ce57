// filepath: internal/repository/favorite_repo.go
package repository

import (
	"database/sql"
	"strings"

	"fastfitbeat/internal/models"
)

// GetFavorites returns all favorite records, newest first.
func (s *Repository) GetFavorites() ([]models.Favorite, error) {
	rows, err := s.DB.Query("SELECT station_id, added_at FROM favorites ORDER BY added_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.StationID, &f.AddedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// IsFavorite reports whether a favorite record exists for the station.
func (s *Repository) IsFavorite(stationID string) (bool, error) {
	var one int
	err := s.DB.QueryRow("SELECT 1 FROM favorites WHERE station_id = ?", stationID).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AddFavorite inserts a favorite record. Adding twice is a no-op at the
// caller level; the unique key keeps at most one record per station.
func (s *Repository) AddFavorite(stationID string) error {
	_, err := s.DB.Exec("INSERT INTO favorites (station_id, added_at) VALUES (?, ?)", stationID, nowMillis())
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil
	}
	return err
}

// RemoveFavorite deletes the favorite record for the station, if any.
func (s *Repository) RemoveFavorite(stationID string) error {
	_, err := s.DB.Exec("DELETE FROM favorites WHERE station_id = ?", stationID)
	return err
}

// CountFavorites returns the number of favorite records.
func (s *Repository) CountFavorites() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM favorites").Scan(&count)
	return count, err
}

// FavoriteCountsByStation returns per-station favorite counts. With the
// one-record-per-station invariant every count is 0 or 1, but the grouped
// query keeps the aggregation shape uniform with the event counts.
func (s *Repository) FavoriteCountsByStation() (map[string]int, error) {
	rows, err := s.DB.Query("SELECT station_id, COUNT(*) FROM favorites GROUP BY station_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var stationID string
		var count int
		if err := rows.Scan(&stationID, &count); err != nil {
			return nil, err
		}
		counts[stationID] = count
	}
	return counts, rows.Err()
}
