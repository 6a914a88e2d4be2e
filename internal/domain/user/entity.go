package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidUsername = errors.New("el usuario debe tener entre 3 y 20 caracteres")
	ErrInvalidEmail    = errors.New("el correo electrónico es requerido")
	ErrShortPassword   = errors.New("la contraseña debe tener al menos 8 caracteres")
)

// User representa un usuario del sistema. Sólo se usa para autenticación.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // hash bcrypt, nunca se serializa
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser crea un nuevo usuario con la contraseña ya en hash
func NewUser(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 {
		return nil, ErrInvalidUsername
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	if len(strings.TrimSpace(password)) < 8 {
		return nil, ErrShortPassword
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword guarda la contraseña como hash bcrypt
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword verifica la contraseña contra el hash almacenado
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
