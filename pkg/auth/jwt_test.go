package auth

import (
	"testing"
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("Admin", "admin@gmail.com", "12345678")
	require.NoError(t, err)
	return u
}

func TestJWTService(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")

	t.Run("emite y valida un token con las claims del usuario", func(t *testing.T) {
		svc, err := NewJWTService()
		require.NoError(t, err)

		u := newTestUser(t)
		token, err := svc.GenerateToken(u)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.UserID)
		assert.Equal(t, "Admin", claims.Username)
		assert.Equal(t, u.ID, claims.Subject)
		// expira en 24 horas por defecto
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("rechaza tokens mal formados", func(t *testing.T) {
		svc, err := NewJWTService()
		require.NoError(t, err)

		_, err = svc.ValidateToken("no-es-un-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rechaza tokens firmados con otra clave", func(t *testing.T) {
		svc, err := NewJWTService()
		require.NoError(t, err)
		token, err := svc.GenerateToken(newTestUser(t))
		require.NoError(t, err)

		t.Setenv("JWT_SECRET_KEY", "otra-clave")
		other, err := NewJWTService()
		require.NoError(t, err)

		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTServiceSinClave(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}
