package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/repository/postgres"
	"github.com/karanvir-s/employee-directory-api/internal/testutil"
)

func TestAccountRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account := &domain.Account{
		SequenceID:   1,
		Username:     "alice",
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfake",
	}
	require.NoError(t, repo.Create(ctx, account))

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Account{
			SequenceID:   2,
			Username:     "alice",
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("duplicate sequence id", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Account{
			SequenceID:   1,
			Username:     "bob",
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})
}

func TestAccountRepository_GetByUsername(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	created, _ := testutil.NewAccountBuilder().
		WithUsername("findme").
		Build(t, testDB.DB)

	account, err := repo.GetByUsername(ctx, "findme")
	require.NoError(t, err)
	assert.Equal(t, created.SequenceID, account.SequenceID)
	assert.Equal(t, created.PasswordHash, account.PasswordHash)

	// Usernames are case-sensitive.
	_, err = repo.GetByUsername(ctx, "FindMe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	created, _ := testutil.NewAccountBuilder().
		WithSequenceID(77).
		Build(t, testDB.DB)

	account, err := repo.GetByID(ctx, 77)
	require.NoError(t, err)
	assert.Equal(t, created.Username, account.Username)

	_, err = repo.GetByID(ctx, 78)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
