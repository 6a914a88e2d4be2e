package dto

import (
	"time"

	"github.com/davidmorac/asadero-pos/internal/domain/user"
)

// SignInRequest representa las credenciales de inicio de sesión
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInResponse representa la respuesta de inicio de sesión
type SignInResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse representa la respuesta de usuario, sin la contraseña
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse convierte la entidad en respuesta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
