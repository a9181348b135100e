package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecocollect-backend/internal/models"
)

func createTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, OpenInMemory())
	t.Cleanup(func() { Close() })
}

func TestUserRepoCreateAndGet(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	user := &models.User{Email: "u@example.com", Name: "Ursula", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "u@example.com", byID.Email)
	require.Equal(t, "Ursula", byID.Name)
	require.Equal(t, "hash", byID.PasswordHash)
	require.False(t, byID.CreatedAt.IsZero())
	require.True(t, byID.LastLogin.IsZero())

	byEmail, err := repo.GetByEmail("u@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepoGetNotFound(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	_, err := repo.GetByID(999)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByEmail("nobody@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepoEmailIsCaseSensitive(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	require.NoError(t, repo.Create(&models.User{Email: "u@example.com"}))

	_, err := repo.GetByEmail("U@Example.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	require.NoError(t, repo.Create(&models.User{Email: "u@example.com"}))
	require.Error(t, repo.Create(&models.User{Email: "u@example.com"}))
}

func TestUserRepoNoPasswordSet(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	// External sign-on accounts are stored without a password hash
	user := &models.User{Email: "sso@example.com", Name: "SSO"}
	require.NoError(t, repo.Create(user))

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.PasswordHash)
}

func TestUserRepoUpdatePassword(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	user := &models.User{Email: "u@example.com", PasswordHash: "old"}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdatePassword(user.ID, "new"))

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "new", loaded.PasswordHash)

	require.ErrorIs(t, repo.UpdatePassword(999, "x"), ErrUserNotFound)
}

func TestUserRepoUpdateLastLogin(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	user := &models.User{Email: "u@example.com"}
	require.NoError(t, repo.Create(user))
	require.NoError(t, repo.UpdateLastLogin(user.ID))

	loaded, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.False(t, loaded.LastLogin.IsZero())
}

func TestUserRepoExistsAndCount(t *testing.T) {
	createTestDB(t)
	repo := NewUserRepo()

	exists, err := repo.ExistsByEmail("u@example.com")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, repo.Create(&models.User{Email: "u@example.com"}))

	exists, err = repo.ExistsByEmail("u@example.com")
	require.NoError(t, err)
	require.True(t, exists)

	count, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
