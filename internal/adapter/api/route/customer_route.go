package route

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/controller"
)

// SetupCustomerRoutes configura las rutas del directorio de clientes
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customerRouter := router.Group("/customers")
	{
		customerRouter.POST("", customerController.Create)
		customerRouter.GET("", customerController.List)
		customerRouter.GET("/:id", customerController.Get)
		customerRouter.PATCH("/:id", customerController.Update)
		customerRouter.DELETE("/:id", customerController.Delete)
	}
}
