// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"fastfitbeat/internal/logging"
)

// setupRequest is the JSON body for the first-run password set.
type setupRequest struct {
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// loginRequest is the JSON body for admin login.
type loginRequest struct {
	Password string `json:"password"`
}

// tokenRequest is the JSON body for refresh and logout endpoints.
type tokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// tokenResponse is the JSON body returned on successful token generation.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// setupStatusResponse reports whether first-run setup is still pending.
type setupStatusResponse struct {
	SetupRequired bool `json:"setup_required"`
}

// @Summary Get setup status
// @Description Reports whether the admin credential still has to be created.
// @Tags Auth
// @Produce json
// @Success 200 {object} setupStatusResponse
// @Router /setup [get]
func (h *Handlers) GetSetupStatus(w http.ResponseWriter, r *http.Request) {
	required, err := h.Gate.SetupRequired()
	if err != nil {
		logging.Log.Errorf("GetSetupStatus failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to read setup state")
		return
	}
	respondWithJSON(w, http.StatusOK, setupStatusResponse{SetupRequired: required})
}

// @Summary First-run admin setup
// @Description Sets the admin password once and returns a logged-in token pair. Rejected once setup is complete.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body setupRequest true "Password and confirmation"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Setup already completed"
// @Router /setup [post]
func (h *Handlers) Setup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Gate.Setup(req.Password, req.Confirm); err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "admin.setup", "admin", "AdminCredential", nil)

	// First-run setup logs the session in directly.
	accessToken, refreshToken, err := h.Token.GenerateTokens()
	if err != nil {
		logging.Log.Errorf("Token generation after setup failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	respondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary Admin login
// @Description Verifies the admin password and returns a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Password"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} ErrorResponse "Authentication failed"
// @Router /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Gate.Verify(req.Password); err != nil {
		// Avoid revealing whether setup has run or the password was wrong.
		respondWithServiceError(w, err)
		return
	}

	accessToken, refreshToken, err := h.Token.GenerateTokens()
	if err != nil {
		logging.Log.Errorf("Token generation failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	respondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary Refresh JWT access token
// @Description Provide a valid refresh token to receive a new token pair. The old refresh token is revoked.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body tokenRequest true "Refresh Token"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} ErrorResponse "Invalid or expired token"
// @Router /token/refresh [post]
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Token.ValidateRefreshToken(req.RefreshToken); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	// Token rotation: invalidate the old refresh token immediately.
	if err := h.Token.Logout(req.RefreshToken); err != nil {
		logging.Log.Warnf("Failed to invalidate old refresh token during refresh: %v", err)
	}

	accessToken, refreshToken, err := h.Token.GenerateTokens()
	if err != nil {
		logging.Log.Errorf("Token refresh failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate tokens")
		return
	}

	respondWithJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary Logout
// @Description Invalidates a refresh token. The persisted admin credential is untouched.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body tokenRequest true "Refresh Token to invalidate"
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Token.Logout(req.RefreshToken); err != nil {
		logging.Log.Errorf("Logout failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to logout")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully."})
}
