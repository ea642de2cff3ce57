// filepath: internal/services/auth/interfaces.go
package auth

// CredentialGate defines the contract for the single-admin credential
// lifecycle.
type CredentialGate interface {
	SetupRequired() (bool, error)
	Setup(password, confirm string) error
	Verify(password string) error
}

// TokenService defines the contract for JWT session operations. Session
// state is held in process memory only; restarting the service logs every
// session out without touching the persisted credential.
type TokenService interface {
	GenerateTokens() (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) error
	ValidateRefreshToken(tokenString string) error
	Logout(refreshToken string) error
}
