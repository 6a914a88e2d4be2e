package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Run("crea un usuario válido con la contraseña en hash", func(t *testing.T) {
		u, err := NewUser("Admin", "admin@gmail.com", "admin123")

		assert.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "Admin", u.Username)
		assert.Equal(t, "admin@gmail.com", u.Email)
		assert.NotEqual(t, "admin123", u.Password)
	})

	t.Run("rechaza un nombre de usuario muy corto", func(t *testing.T) {
		_, err := NewUser("ab", "admin@gmail.com", "admin123")

		assert.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("rechaza un correo vacío", func(t *testing.T) {
		_, err := NewUser("Admin", "  ", "admin123")

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rechaza una contraseña muy corta", func(t *testing.T) {
		_, err := NewUser("Admin", "admin@gmail.com", "1234567")

		assert.ErrorIs(t, err, ErrShortPassword)
	})
}

func TestCheckPassword(t *testing.T) {
	u, err := NewUser("Admin", "admin@gmail.com", "admin123")
	assert.NoError(t, err)

	assert.True(t, u.CheckPassword("admin123"))
	assert.False(t, u.CheckPassword("otra-clave"))
}
