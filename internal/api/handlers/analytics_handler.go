// filepath: internal/api/handlers/analytics_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
)

// trackRequest is the JSON body for recording a playback event from the
// client shell.
type trackRequest struct {
	StationID string          `json:"station_id"`
	EventType string          `json:"event_type"`
	Metadata  models.Metadata `json:"metadata,omitempty"`
}

// @Summary Record an analytics event
// @Description Appends one play/pause/favorite/unfavorite event to the log.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body trackRequest true "Event"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Router /analytics/track [post]
func (h *Handlers) TrackEvent(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Analytics.TrackEvent(req.StationID, models.EventType(req.EventType), req.Metadata); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, MessageResponse{Message: "Event recorded."})
}

// @Summary Get analytics summary
// @Description Returns total plays/favorites, per-station stats and the 50 most recent events.
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.AnalyticsSummary
// @Security BearerAuth
// @Router /analytics [get]
func (h *Handlers) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.GetSummary()
	if err != nil {
		logging.Log.Errorf("GetAnalytics failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to build analytics summary")
		return
	}
	if summary.RecentEvents == nil {
		summary.RecentEvents = []models.AnalyticsEvent{}
	}
	respondWithJSON(w, http.StatusOK, summary)
}
