// filepath: internal/repository/analytics_repo.go
package repository

import (
	"encoding/json"
	"fmt"

	"fastfitbeat/internal/models"

	"github.com/Masterminds/squirrel"
)

const eventColumns = "id, station_id, event_type, timestamp, metadata"

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.AnalyticsEvent, error) {
	var ev models.AnalyticsEvent
	var metadata string
	if err := row.Scan(&ev.ID, &ev.StationID, &ev.EventType, &ev.Timestamp, &metadata); err != nil {
		return nil, err
	}
	if metadata != "" && metadata != "{}" {
		if err := json.Unmarshal([]byte(metadata), &ev.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode event metadata: %w", err)
		}
	}
	return &ev, nil
}

// InsertEvent appends one event to the log. The caller supplies the id and
// timestamp; events are never updated afterwards.
func (s *Repository) InsertEvent(ev *models.AnalyticsEvent) error {
	metadata := "{}"
	if len(ev.Metadata) > 0 {
		raw, err := json.Marshal(ev.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode event metadata: %w", err)
		}
		metadata = string(raw)
	}

	query := fmt.Sprintf("INSERT INTO analytics_events (%s) VALUES (?, ?, ?, ?, ?)", eventColumns)
	_, err := s.DB.Exec(query, ev.ID, ev.StationID, ev.EventType, ev.Timestamp, metadata)
	return err
}

// GetEvents returns the full raw event log, oldest first.
func (s *Repository) GetEvents() ([]models.AnalyticsEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM analytics_events ORDER BY timestamp ASC, id ASC", eventColumns)
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.AnalyticsEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

// GetRecentEvents returns the newest events by timestamp, descending.
// Ordering between equal timestamps is not guaranteed.
func (s *Repository) GetRecentEvents(limit int) ([]models.AnalyticsEvent, error) {
	query, args, err := s.Builder.
		Select("id", "station_id", "event_type", "timestamp", "metadata").
		From("analytics_events").
		OrderBy("timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.AnalyticsEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

// CountEventsByType counts events of one kind over the whole log, via the
// event_type index.
func (s *Repository) CountEventsByType(eventType models.EventType) (int, error) {
	query, args, err := s.Builder.
		Select("COUNT(*)").
		From("analytics_events").
		Where(squirrel.Eq{"event_type": eventType}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.DB.QueryRow(query, args...).Scan(&count)
	return count, err
}

// EventCountsByStation returns per-station counts for one event kind,
// grouped over the station_id index. Events for deleted stations are
// included here; the aggregation layer filters against the catalog.
func (s *Repository) EventCountsByStation(eventType models.EventType) (map[string]int, error) {
	query, args, err := s.Builder.
		Select("station_id", "COUNT(*)").
		From("analytics_events").
		Where(squirrel.Eq{"event_type": eventType}).
		GroupBy("station_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
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
