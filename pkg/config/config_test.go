package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("DATABASE_URL", "postgres://localhost/users")
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "secret", cfg.JWTSecret)
	require.Equal(t, 15, cfg.JWTExpirationMinutes)
	require.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_MissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_NonNumericExpirationFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "soon")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_EXPIRATION_MINUTES")
}
