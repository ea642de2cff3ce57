// filepath: internal/repository/credential_repo.go
package repository

import (
	"database/sql"
	"errors"
	"strings"

	"fastfitbeat/internal/models"
)

// credentialID is the well-known key of the single admin credential record.
const credentialID = "admin"

// ErrCredentialExists is returned when the admin credential is already set.
var ErrCredentialExists = errors.New("admin credential already exists")

// ErrCredentialNotFound is returned when no admin credential has been
// created yet ("setup required").
var ErrCredentialNotFound = errors.New("admin credential not found")

// GetCredential returns the admin credential record, or
// ErrCredentialNotFound when setup has not run.
func (s *Repository) GetCredential() (*models.AdminCredential, error) {
	var cred models.AdminCredential
	query := "SELECT id, password_hash, created_at, updated_at FROM admin_credential WHERE id = ?"
	err := s.DB.QueryRow(query, credentialID).Scan(&cred.ID, &cred.PasswordHash, &cred.CreatedAt, &cred.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}
	return &cred, nil
}

// CreateCredential persists the salted password hash as the single admin
// record. A second insert fails with ErrCredentialExists.
func (s *Repository) CreateCredential(passwordHash string) (*models.AdminCredential, error) {
	now := nowMillis()
	cred := &models.AdminCredential{
		ID:           credentialID,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := "INSERT INTO admin_credential (id, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?)"
	_, err := s.DB.Exec(query, cred.ID, cred.PasswordHash, cred.CreatedAt, cred.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: admin_credential.id") {
			return nil, ErrCredentialExists
		}
		return nil, err
	}
	return cred, nil
}
