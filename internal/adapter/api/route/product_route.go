package route

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/controller"
)

// SetupProductRoutes configura las rutas del catálogo de productos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.POST("", productController.Create)
		productRouter.GET("", productController.List)
		productRouter.GET("/:id", productController.Get)
		productRouter.PATCH("/:id", productController.Update)
		productRouter.PATCH("/:id/stock", productController.AdjustStock)
		productRouter.DELETE("/:id", productController.Delete)
	}
}
