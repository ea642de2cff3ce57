// filepath: internal/services/auth/gate.go
package auth

import (
	"errors"
	"fmt"

	"fastfitbeat/internal/config"
	"fastfitbeat/internal/logging"
	"fastfitbeat/internal/repository"
	"fastfitbeat/internal/services"

	"golang.org/x/crypto/bcrypt"
)

var _ CredentialGate = (*credentialGate)(nil)

// credentialGate implements the single-admin credential lifecycle: one
// first-run setup, then verify-only. There is no rotation path.
type credentialGate struct {
	repo        *repository.Repository
	cost        int
	minPassword int
}

// NewCredentialGate creates a new CredentialGate.
func NewCredentialGate(cfg *config.Config, repo *repository.Repository) *credentialGate {
	return &credentialGate{
		repo:        repo,
		cost:        cfg.Auth.BcryptCost,
		minPassword: cfg.Auth.MinPasswordLength,
	}
}

// SetupRequired reports whether the admin credential still has to be
// created.
func (g *credentialGate) SetupRequired() (bool, error) {
	_, err := g.repo.GetCredential()
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Setup performs the first-run password set. It validates length and
// confirmation, then persists a bcrypt hash. A second setup attempt fails
// with ErrSetupComplete regardless of input.
func (g *credentialGate) Setup(password, confirm string) error {
	required, err := g.SetupRequired()
	if err != nil {
		return err
	}
	if !required {
		return services.ErrSetupComplete
	}

	if len(password) < g.minPassword {
		return fmt.Errorf("%w: password must be at least %d characters", services.ErrValidation, g.minPassword)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", services.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return err
	}

	if _, err := g.repo.CreateCredential(string(hash)); err != nil {
		if errors.Is(err, repository.ErrCredentialExists) {
			return services.ErrSetupComplete
		}
		return err
	}

	logging.Log.Info("Admin credential created.")
	return nil
}

// Verify checks a password against the stored hash. Any failure, including
// a missing credential, surfaces as ErrInvalidCredential without detail.
func (g *credentialGate) Verify(password string) error {
	cred, err := g.repo.GetCredential()
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return services.ErrInvalidCredential
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return services.ErrInvalidCredential
	}
	return nil
}
