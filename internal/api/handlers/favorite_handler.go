// filepath: internal/api/handlers/favorite_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/models"
)

// toggleRequest is the JSON body for the favorite toggle endpoint.
type toggleRequest struct {
	StationID string `json:"station_id"`
}

// toggleResponse reports the favorite state after a toggle.
type toggleResponse struct {
	StationID string `json:"station_id"`
	Favorited bool   `json:"favorited"`
}

// @Summary List favorites
// @Tags Favorites
// @Produce json
// @Success 200 {array} models.Favorite
// @Router /favorites [get]
func (h *Handlers) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Favorite.GetFavorites()
	if err != nil {
		logging.Log.Errorf("GetFavorites failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list favorites")
		return
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	respondWithJSON(w, http.StatusOK, favorites)
}

// @Summary Toggle a favorite
// @Description Flips the favorite state of a station and records a favorite/unfavorite event.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body toggleRequest true "Station to toggle"
// @Success 200 {object} toggleResponse
// @Failure 400 {object} ErrorResponse "Missing station id"
// @Router /favorites/toggle [post]
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	favorited, err := h.Favorite.ToggleFavorite(req.StationID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toggleResponse{
		StationID: req.StationID,
		Favorited: favorited,
	})
}
