// filepath: internal/api/handlers/info_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fastfitbeat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	mockInfo := new(MockInfoService)
	h := NewHandlers(mockInfo, nil, nil, nil, nil, nil, noopAuditor{}, nil)

	mockInfo.On("GetInfo").Return(models.Info{
		ServiceName: "FastFit Beat API",
		Version:     "1.0.0",
		UptimeSince: time.Now(),
	})

	rec := httptest.NewRecorder()
	h.GetInfo(rec, httptest.NewRequest("GET", "/api/info", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var info models.Info
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "FastFit Beat API", info.ServiceName)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestHealthCheck(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil, nil, nil, noopAuditor{}, nil)

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}
