// filepath: internal/api/handlers/auth_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastfitbeat/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthHandlers(t *testing.T) (*Handlers, *MockCredentialGate, *MockTokenService) {
	t.Helper()
	mockGate := new(MockCredentialGate)
	mockToken := new(MockTokenService)
	h := NewHandlers(nil, nil, nil, nil, mockGate, mockToken, noopAuditor{}, nil)
	return h, mockGate, mockToken
}

func TestGetSetupStatus(t *testing.T) {
	h, mockGate, _ := setupAuthHandlers(t)

	mockGate.On("SetupRequired").Return(true, nil)

	rec := httptest.NewRecorder()
	h.GetSetupStatus(rec, httptest.NewRequest("GET", "/api/setup", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"setup_required":true}`, rec.Body.String())
}

func TestSetupSuccessReturnsTokens(t *testing.T) {
	h, mockGate, mockToken := setupAuthHandlers(t)

	mockGate.On("Setup", "secret1", "secret1").Return(nil)
	mockToken.On("GenerateTokens").Return("access-token", "refresh-token", nil)

	body, _ := json.Marshal(map[string]string{"password": "secret1", "confirm": "secret1"})
	rec := httptest.NewRecorder()
	h.Setup(rec, httptest.NewRequest("POST", "/api/setup", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	mockGate.AssertExpectations(t)
}

func TestSetupAlreadyCompleted(t *testing.T) {
	h, mockGate, _ := setupAuthHandlers(t)

	mockGate.On("Setup", mock.Anything, mock.Anything).Return(services.ErrSetupComplete)

	body, _ := json.Marshal(map[string]string{"password": "secret1", "confirm": "secret1"})
	rec := httptest.NewRecorder()
	h.Setup(rec, httptest.NewRequest("POST", "/api/setup", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSetupValidationError(t *testing.T) {
	h, mockGate, _ := setupAuthHandlers(t)

	mockGate.On("Setup", "short", "short").Return(services.ErrValidation)

	body, _ := json.Marshal(map[string]string{"password": "short", "confirm": "short"})
	rec := httptest.NewRecorder()
	h.Setup(rec, httptest.NewRequest("POST", "/api/setup", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSuccess(t *testing.T) {
	h, mockGate, mockToken := setupAuthHandlers(t)

	mockGate.On("Verify", "secret1").Return(nil)
	mockToken.On("GenerateTokens").Return("access-token", "refresh-token", nil)

	body, _ := json.Marshal(map[string]string{"password": "secret1"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/api/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "access-token", resp.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	h, mockGate, mockToken := setupAuthHandlers(t)

	mockGate.On("Verify", "wrong").Return(services.ErrInvalidCredential)

	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/api/login", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockToken.AssertNotCalled(t, "GenerateTokens")
}

func TestRefreshTokenRotates(t *testing.T) {
	h, _, mockToken := setupAuthHandlers(t)

	mockToken.On("ValidateRefreshToken", "old-refresh").Return(nil)
	mockToken.On("Logout", "old-refresh").Return(nil)
	mockToken.On("GenerateTokens").Return("new-access", "new-refresh", nil)

	body, _ := json.Marshal(map[string]string{"refresh_token": "old-refresh"})
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest("POST", "/api/token/refresh", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new-refresh", resp.RefreshToken)
	mockToken.AssertExpectations(t)
}

func TestRefreshTokenInvalid(t *testing.T) {
	h, _, mockToken := setupAuthHandlers(t)

	mockToken.On("ValidateRefreshToken", "bad-token").Return(errors.New("refresh token revoked or expired"))

	body, _ := json.Marshal(map[string]string{"refresh_token": "bad-token"})
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, httptest.NewRequest("POST", "/api/token/refresh", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockToken.AssertNotCalled(t, "GenerateTokens")
}

func TestLogout(t *testing.T) {
	h, _, mockToken := setupAuthHandlers(t)

	mockToken.On("Logout", "refresh-token").Return(nil)

	body, _ := json.Marshal(map[string]string{"refresh_token": "refresh-token"})
	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest("POST", "/api/logout", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	mockToken.AssertExpectations(t)
}
