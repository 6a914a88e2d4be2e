package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/dto"
	"github.com/davidmorac/asadero-pos/internal/adapter/repository"
	userdomain "github.com/davidmorac/asadero-pos/internal/domain/user"
	"github.com/davidmorac/asadero-pos/pkg/auth"
	"github.com/davidmorac/asadero-pos/pkg/logger"
)

// AuthController gestiona la autenticación de usuarios
type AuthController struct {
	userRepo   userdomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(userRepo userdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// SignIn autentica un usuario y emite un token de acceso
// @Summary Iniciar sesión
// @Description Valida las credenciales y devuelve un token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignInRequest true "Credenciales"
// @Success 200 {object} dto.SignInResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signin [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
			return
		}
		c.logger.Error("error al buscar el usuario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al iniciar sesión", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales inválidas", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("error al generar el token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al iniciar sesión", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SignInResponse{AccessToken: token})
}

// Profile devuelve el perfil del usuario autenticado
// @Summary Perfil del usuario
// @Description Devuelve los datos del usuario dueño del token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "autenticación requerida", ""))
		return
	}

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuario no encontrado", ""))
			return
		}
		c.logger.Error("error al buscar el usuario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al obtener el perfil", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
