// filepath: internal/repository/station_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"

	"github.com/Masterminds/squirrel"
)

// ErrStationExists is returned when inserting a station whose id is taken.
var ErrStationExists = errors.New("station already exists")

// ErrStationNotFound is returned when the target station id is absent.
var ErrStationNotFound = errors.New("station not found")

const stationColumns = "id, name, genre, stream_url, cover_image, is_hls, created_at, updated_at"

func scanStation(row interface{ Scan(...interface{}) error }) (*models.Station, error) {
	var st models.Station
	err := row.Scan(&st.ID, &st.Name, &st.Genre, &st.StreamURL, &st.CoverImage, &st.IsHLS, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetStations returns all stations in insertion order.
func (s *Repository) GetStations() ([]models.Station, error) {
	query := fmt.Sprintf("SELECT %s FROM stations ORDER BY created_at ASC, id ASC", stationColumns)
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		stations = append(stations, *st)
	}
	return stations, rows.Err()
}

// GetStation retrieves a station by id, using a cache for performance.
func (s *Repository) GetStation(id string) (*models.Station, error) {
	cacheKey := "station_" + id
	if st, found := s.Cache.Get(cacheKey); found {
		return st.(*models.Station), nil
	}

	query := fmt.Sprintf("SELECT %s FROM stations WHERE id = ?", stationColumns)
	st, err := scanStation(s.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStationNotFound
		}
		return nil, err
	}

	s.Cache.Set(cacheKey, st, 5*time.Minute)
	return st, nil
}

// GetStationsByGenre returns all stations with the given genre label, via
// the secondary genre index.
func (s *Repository) GetStationsByGenre(genre string) ([]models.Station, error) {
	query, args, err := s.Builder.
		Select(strings.Split(stationColumns, ", ")...).
		From("stations").
		Where(squirrel.Eq{"genre": genre}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []models.Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		stations = append(stations, *st)
	}
	return stations, rows.Err()
}

// CountStations returns the number of station records.
func (s *Repository) CountStations() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM stations").Scan(&count)
	return count, err
}

// CreateStation inserts a new station. The caller supplies the id; the
// timestamps are set here.
func (s *Repository) CreateStation(st *models.Station) (*models.Station, error) {
	now := nowMillis()
	st.CreatedAt = now
	st.UpdatedAt = now

	query := fmt.Sprintf("INSERT INTO stations (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", stationColumns)
	_, err := s.DB.Exec(query, st.ID, st.Name, st.Genre, st.StreamURL, st.CoverImage, st.IsHLS, st.CreatedAt, st.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: stations.id") {
			return nil, ErrStationExists
		}
		return nil, err
	}

	logging.Log.Debugf("CreateStation: station '%s' created with id %s", st.Name, st.ID)
	return st, nil
}

// UpdateStation overwrites the mutable fields of an existing station. The
// id and created_at are immutable; updated_at is refreshed.
func (s *Repository) UpdateStation(st *models.Station) error {
	st.UpdatedAt = nowMillis()

	query := `
		UPDATE stations
		SET name = ?, genre = ?, stream_url = ?, cover_image = ?, is_hls = ?, updated_at = ?
		WHERE id = ?
	`
	res, err := s.DB.Exec(query, st.Name, st.Genre, st.StreamURL, st.CoverImage, st.IsHLS, st.UpdatedAt, st.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStationNotFound
	}

	s.Cache.Delete("station_" + st.ID)
	return nil
}

// DeleteStation removes a station and its favorite record in one
// transaction. Analytics events referencing the station are retained; the
// aggregation layer excludes them from per-station stats.
func (s *Repository) DeleteStation(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM stations WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStationNotFound
	}

	if _, err := tx.Exec("DELETE FROM favorites WHERE station_id = ?", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.Cache.Delete("station_" + id)
	logging.Log.Debugf("DeleteStation: station %s removed", id)
	return nil
}
