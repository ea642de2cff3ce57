// Package relay implements the stateless stream relay: it maps a station
// key to a fixed upstream playlist URL and forwards the response with
// permissive CORS headers, working around cross-origin restrictions on
// the upstream origin.
package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"fastfitbeat/internal/logging"
)

// playlistContentType is the adaptive-streaming playlist MIME type.
const playlistContentType = "application/x-mpegurl"

// streamTable maps lowercase station keys to upstream playlist URLs. The
// table is fixed; unknown keys are rejected.
var streamTable = map[string]string{
	"mainstage": "http://72.62.61.67/hls/fastfit_mainstage/live.m3u8",
	"afro":      "http://72.62.61.67/hls/fastfit_afro/live.m3u8",
	"classics":  "http://72.62.61.67/hls/fastfit_classics/live.m3u8",
	"chill":     "http://72.62.61.67/hls/fastfit_chill/live.m3u8",
	"organic":   "http://72.62.61.67/hls/fastfit_organic/live.m3u8",
	"house":     "http://72.62.61.67/hls/fastfit_house/live.m3u8",
}

// Handler is the relay endpoint. It holds no state between requests and
// never retries a failed upstream fetch.
type Handler struct {
	client  *http.Client
	streams map[string]string
}

// NewHandler creates a relay handler. The timeout bounds the upstream
// fetch; the relay has no other protection against a stalled origin.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		client:  &http.Client{Timeout: timeout},
		streams: streamTable,
	}
}

// writeError sends a structured JSON error body.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ServeHTTP handles GET /relay?station=<key>. The key match is
// case-insensitive.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	station := r.URL.Query().Get("station")
	if station == "" {
		writeError(w, http.StatusBadRequest, "Station parameter required")
		return
	}

	upstream, ok := h.streams[strings.ToLower(station)]
	if !ok {
		writeError(w, http.StatusNotFound, "Station not found")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		logging.Log.Errorf("relay: failed to build upstream request for %s: %v", station, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stream")
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logging.Log.Errorf("relay: upstream fetch for %s failed: %v", station, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stream")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Log.Errorf("relay: upstream for %s returned status %d", station, resp.StatusCode)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stream")
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Log.Errorf("relay: failed to read upstream body for %s: %v", station, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stream")
		return
	}

	w.Header().Set("Content-Type", playlistContentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
