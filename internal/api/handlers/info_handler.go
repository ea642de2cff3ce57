// filepath: internal/api/handlers/info_handler.go
package handlers

import "net/http"

// @Summary Get service info
// @Description Returns the service name, version and uptime start.
// @Tags Info
// @Produce json
// @Success 200 {object} models.Info
// @Router /info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Info.GetInfo())
}
