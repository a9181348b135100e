package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ecocollect-backend/internal/models"
)

func TestAuditRepoLogAndList(t *testing.T) {
	createTestDB(t)
	repo := NewAuditRepo()

	err := repo.Log(models.PrincipalUser, "u@example.com", models.ActionLoginFailed, "192.0.2.1", map[string]string{"reason": "bad password"})
	require.NoError(t, err)
	err = repo.Log(models.PrincipalAdmin, "admin@example.com", models.ActionAdminLogin, "192.0.2.2", nil)
	require.NoError(t, err)

	logs, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Newest first
	require.Equal(t, models.ActionAdminLogin, logs[0].Action)
	require.Equal(t, "admin@example.com", logs[0].Subject)
	require.Empty(t, logs[0].Details)

	require.Equal(t, models.ActionLoginFailed, logs[1].Action)
	require.Contains(t, logs[1].Details, "bad password")
}

func TestAuditRepoListDefaultLimit(t *testing.T) {
	createTestDB(t)
	repo := NewAuditRepo()

	require.NoError(t, repo.Log(models.PrincipalUser, "s", models.ActionLogin, "", nil))

	logs, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}
