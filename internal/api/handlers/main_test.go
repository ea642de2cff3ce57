// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"
	"time"

	"fastfitbeat/internal/models"
	"fastfitbeat/internal/services"
	"fastfitbeat/internal/services/auth"

	"github.com/stretchr/testify/mock"
)

// --- MOCK AUDITOR ---
type MockAuditor struct {
	mock.Mock
}

var _ services.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}

// noopAuditor swallows audit calls for tests that do not assert on them.
type noopAuditor struct{}

func (noopAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
}

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}

// --- MOCK STATION SERVICE ---
type MockStationService struct {
	mock.Mock
}

var _ services.StationService = (*MockStationService)(nil)

func (m *MockStationService) GetStation(id string) (*models.Station, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Station), args.Error(1)
}

func (m *MockStationService) GetStations() ([]models.Station, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Station), args.Error(1)
}

func (m *MockStationService) CreateStation(payload models.StationCreatePayload) (*models.Station, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Station), args.Error(1)
}

func (m *MockStationService) UpdateStation(id string, updates models.StationUpdatePayload) (*models.Station, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Station), args.Error(1)
}

func (m *MockStationService) DeleteStation(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStationService) SeedDefaultStations() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// --- MOCK ANALYTICS SERVICE ---
type MockAnalyticsService struct {
	mock.Mock
}

var _ services.AnalyticsService = (*MockAnalyticsService)(nil)

func (m *MockAnalyticsService) TrackEvent(stationID string, eventType models.EventType, metadata models.Metadata) error {
	args := m.Called(stationID, eventType, metadata)
	return args.Error(0)
}

func (m *MockAnalyticsService) GetSummary() (*models.AnalyticsSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsSummary), args.Error(1)
}

// --- MOCK FAVORITE SERVICE ---
type MockFavoriteService struct {
	mock.Mock
}

var _ services.FavoriteService = (*MockFavoriteService)(nil)

func (m *MockFavoriteService) ToggleFavorite(stationID string) (bool, error) {
	args := m.Called(stationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) IsFavorite(stationID string) (bool, error) {
	args := m.Called(stationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) GetFavorites() ([]models.Favorite, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

// --- MOCK CREDENTIAL GATE ---
type MockCredentialGate struct {
	mock.Mock
}

var _ auth.CredentialGate = (*MockCredentialGate)(nil)

func (m *MockCredentialGate) SetupRequired() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialGate) Setup(password, confirm string) error {
	args := m.Called(password, confirm)
	return args.Error(0)
}

func (m *MockCredentialGate) Verify(password string) error {
	args := m.Called(password)
	return args.Error(0)
}

// --- MOCK TOKEN SERVICE ---
type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateTokens() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) error {
	args := m.Called(tokenString)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) error {
	args := m.Called(tokenString)
	return args.Error(0)
}

func (m *MockTokenService) Logout(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

// testStation builds a fully populated catalog record.
func testStation(id string) *models.Station {
	return &models.Station{
		ID:         id,
		Name:       "Test Station",
		Genre:      "Deep House",
		StreamURL:  "https://stream.example.com/live.m3u8",
		CoverImage: "/covers/test.svg",
		IsHLS:      true,
		CreatedAt:  time.Now().UnixMilli(),
		UpdatedAt:  time.Now().UnixMilli(),
	}
}
