package route

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/controller"
	"github.com/davidmorac/asadero-pos/pkg/auth"
)

// SetupAuthRoutes configura las rutas de autenticación
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := router.Group("/auth")
	{
		// El inicio de sesión es la única ruta pública de la API
		authRouter.POST("/signin", authController.SignIn)

		// El perfil requiere un token válido
		authRouter.GET("/profile", auth.JWTAuthMiddleware(), authController.Profile)
	}
}
