package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresTokenSecret(t *testing.T) {
	t.Setenv("ECOCOLLECT_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ECOCOLLECT_TOKEN_SECRET", "s3cret")
	t.Setenv("ECOCOLLECT_ADMINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.Production())
	require.Empty(t, cfg.Admins)
	require.False(t, cfg.TLS)
}

func TestLoadProduction(t *testing.T) {
	t.Setenv("ECOCOLLECT_TOKEN_SECRET", "s3cret")
	t.Setenv("ECOCOLLECT_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Production())
}

func TestParseAdmins(t *testing.T) {
	admins, err := parseAdmins(`[{"id":1,"email":"ops@example.com","password":"pw","name":"Ops"}]`)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, "ops@example.com", admins[0].Email)
	require.Equal(t, "pw", admins[0].Password)

	// Empty value means no admins, not an error
	admins, err = parseAdmins("")
	require.NoError(t, err)
	require.Empty(t, admins)
}

func TestParseAdminsRejectsBadEntries(t *testing.T) {
	_, err := parseAdmins("not json")
	require.Error(t, err)

	_, err = parseAdmins(`[{"email":"ops@example.com"}]`)
	require.Error(t, err)

	_, err = parseAdmins(`[{"password":"pw"}]`)
	require.Error(t, err)
}
