// filepath: internal/api/handlers/station_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
)

// @Summary List stations
// @Description Returns the full station catalog in insertion order.
// @Tags Stations
// @Produce json
// @Success 200 {array} models.Station
// @Router /stations [get]
func (h *Handlers) GetStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Station.GetStations()
	if err != nil {
		logging.Log.Errorf("GetStations failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list stations")
		return
	}
	if stations == nil {
		stations = []models.Station{}
	}
	respondWithJSON(w, http.StatusOK, stations)
}

// @Summary Get a station
// @Tags Stations
// @Produce json
// @Param id query string true "Station ID"
// @Success 200 {object} models.Station
// @Failure 400 {object} ErrorResponse "Missing id"
// @Failure 404 {object} ErrorResponse "Station not found"
// @Router /station [get]
func (h *Handlers) GetStation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing 'id' query parameter")
		return
	}

	station, err := h.Station.GetStation(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, station)
}

// @Summary Create a station
// @Description Creates a station. All fields are required; the HLS flag is derived from the stream URL.
// @Tags Stations
// @Accept json
// @Produce json
// @Param station body models.StationCreatePayload true "Station"
// @Success 201 {object} models.Station
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /station [post]
func (h *Handlers) CreateStation(w http.ResponseWriter, r *http.Request) {
	var payload models.StationCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	station, err := h.Station.CreateStation(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "station.create", "admin", "Station:"+station.ID, map[string]interface{}{
		"name":  station.Name,
		"genre": station.Genre,
	})
	respondWithJSON(w, http.StatusCreated, station)
}

// @Summary Update a station
// @Description Applies a partial update. The station id is immutable.
// @Tags Stations
// @Accept json
// @Produce json
// @Param id query string true "Station ID"
// @Param station body models.StationUpdatePayload true "Fields to update"
// @Success 200 {object} models.Station
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Station not found"
// @Security BearerAuth
// @Router /station [put]
func (h *Handlers) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing 'id' query parameter")
		return
	}

	var updates models.StationUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	station, err := h.Station.UpdateStation(id, updates)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "station.update", "admin", "Station:"+id, nil)
	respondWithJSON(w, http.StatusOK, station)
}

// @Summary Delete a station
// @Description Removes a station and its favorite record. Analytics events are retained.
// @Tags Stations
// @Produce json
// @Param id query string true "Station ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Station not found"
// @Security BearerAuth
// @Router /station [delete]
func (h *Handlers) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing 'id' query parameter")
		return
	}

	if err := h.Station.DeleteStation(id); err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "station.delete", "admin", "Station:"+id, nil)
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Station deleted."})
}
