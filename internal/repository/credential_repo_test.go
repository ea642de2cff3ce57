// filepath: internal/repository/credential_repo_test.go
package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCredentialNotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetCredential()
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCreateAndGetCredential(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateCredential("$2a$10$fakehash")
	assert.NoError(t, err)
	assert.Equal(t, "admin", created.ID)
	assert.NotZero(t, created.CreatedAt)

	read, err := repo.GetCredential()
	assert.NoError(t, err)
	assert.Equal(t, "$2a$10$fakehash", read.PasswordHash)
}

func TestCreateCredentialTwice(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateCredential("hash-one")
	assert.NoError(t, err)

	_, err = repo.CreateCredential("hash-two")
	assert.ErrorIs(t, err, ErrCredentialExists)

	// The original hash survives the failed second insert.
	read, err := repo.GetCredential()
	assert.NoError(t, err)
	assert.Equal(t, "hash-one", read.PasswordHash)
}
