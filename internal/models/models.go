package models

import "time"

// EventType identifies the kind of an analytics event.
type EventType string

const (
	EventPlay       EventType = "play"
	EventPause      EventType = "pause"
	EventFavorite   EventType = "favorite"
	EventUnfavorite EventType = "unfavorite"
)

// Valid reports whether the event type is one of the four known kinds.
func (e EventType) Valid() bool {
	switch e {
	case EventPlay, EventPause, EventFavorite, EventUnfavorite:
		return true
	}
	return false
}

// Station is a curated internet radio station. Timestamps are Unix
// milliseconds. The ID is opaque and immutable after creation.
type Station struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Genre      string `json:"genre"`
	StreamURL  string `json:"stream_url"`
	CoverImage string `json:"cover_image"` // URL or data URL
	IsHLS      bool   `json:"is_hls"`      // derived from StreamURL
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// StationCreatePayload carries the user-supplied fields for a new station.
type StationCreatePayload struct {
	Name       string `json:"name"`
	Genre      string `json:"genre"`
	StreamURL  string `json:"stream_url"`
	CoverImage string `json:"cover_image"`
}

// StationUpdatePayload carries a partial station update. Nil fields are
// left unchanged.
type StationUpdatePayload struct {
	Name       *string `json:"name,omitempty"`
	Genre      *string `json:"genre,omitempty"`
	StreamURL  *string `json:"stream_url,omitempty"`
	CoverImage *string `json:"cover_image,omitempty"`
}

// AdminCredential is the single persisted admin credential record.
// Its absence means setup is still required.
type AdminCredential struct {
	ID           string `json:"id"`
	PasswordHash string `json:"-"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// Metadata is the open key-value bag attached to analytics events.
// Values are restricted to JSON primitives by convention.
type Metadata map[string]interface{}

// AnalyticsEvent is one append-only log entry. Events are never mutated
// and never deleted, even when the referenced station is removed.
type AnalyticsEvent struct {
	ID        string    `json:"id"`
	StationID string    `json:"station_id"`
	EventType EventType `json:"event_type"`
	Timestamp int64     `json:"timestamp"`
	Metadata  Metadata  `json:"metadata,omitempty"`
}

// Favorite marks a station as favorited. At most one record exists per
// station.
type Favorite struct {
	StationID string `json:"station_id"`
	AddedAt   int64  `json:"added_at"`
}

// StationStats holds the per-station aggregate counts.
type StationStats struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	Plays       int    `json:"plays"`
	Favorites   int    `json:"favorites"`
}

// AnalyticsSummary is the derived view over the raw event log and the
// favorites set.
type AnalyticsSummary struct {
	TotalPlays     int              `json:"total_plays"`
	TotalFavorites int              `json:"total_favorites"`
	StationStats   []StationStats   `json:"station_stats"`
	RecentEvents   []AnalyticsEvent `json:"recent_events"`
}

// Info describes the running service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}
