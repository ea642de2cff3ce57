// filepath: internal/services/auth/tokenservice.go
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"fastfitbeat/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

// sessionClaims defines the claims shared by access and refresh tokens.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

// tokenService signs and validates admin session tokens. The refresh
// allow-list lives in an in-memory cache, which keeps sessions ephemeral:
// a process restart invalidates every refresh token.
type tokenService struct {
	cfg      *config.Config
	sessions *cache.Cache
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		cfg:      cfg,
		sessions: cache.New(time.Hour*time.Duration(cfg.JWT.RefreshDurationHours), 10*time.Minute),
	}
}

// hashToken hashes a token string (SHA-256) for allow-list storage.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// GenerateTokens creates, signs, and stores a new token pair for the
// admin session.
func (s *tokenService) GenerateTokens() (string, string, error) {
	// 1. Access token (short-lived, stateless)
	accessExpiry := time.Now().Add(time.Minute * time.Duration(s.cfg.JWT.AccessDurationMin))
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			Issuer:    "fastfitbeat",
			Subject:   "admin",
		},
	})
	signedAccess, err := access.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	// 2. Refresh token (long-lived, stateful via the in-memory allow-list)
	refreshExpiry := time.Now().Add(time.Hour * time.Duration(s.cfg.JWT.RefreshDurationHours))
	jtiBytes := make([]byte, 16)
	if _, err := rand.Read(jtiBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate token id: %w", err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			Issuer:    "fastfitbeat",
			Subject:   "admin",
			ID:        hex.EncodeToString(jtiBytes),
		},
	})
	signedRefresh, err := refresh.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	s.sessions.Set(hashToken(signedRefresh), true, time.Until(refreshExpiry))

	return signedAccess, signedRefresh, nil
}

// parse verifies the signature and claims of a token.
func (s *tokenService) parse(tokenString string) error {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return err // Handles expired tokens as well
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}

// ValidateAccessToken checks an access token (stateless).
func (s *tokenService) ValidateAccessToken(tokenString string) error {
	return s.parse(tokenString)
}

// ValidateRefreshToken checks a refresh token's signature AND its presence
// in the allow-list, so logged-out tokens stay dead.
func (s *tokenService) ValidateRefreshToken(tokenString string) error {
	if err := s.parse(tokenString); err != nil {
		return err
	}
	if _, found := s.sessions.Get(hashToken(tokenString)); !found {
		return errors.New("refresh token revoked or expired")
	}
	return nil
}

// Logout invalidates a refresh token by removing it from the allow-list.
// The persisted admin credential is untouched.
func (s *tokenService) Logout(refreshToken string) error {
	s.sessions.Delete(hashToken(refreshToken))
	return nil
}
