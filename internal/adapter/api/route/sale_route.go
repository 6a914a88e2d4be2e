package route

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/controller"
)

// SetupSaleRoutes configura las rutas del registro de ventas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	saleRouter := router.Group("/sales")
	{
		saleRouter.POST("", saleController.Create)
		saleRouter.GET("", saleController.List)

		// Las rutas fijas van antes que /:id para que gin no las capture
		saleRouter.GET("/today", saleController.Today)
		saleRouter.GET("/debts", saleController.Debts)
		saleRouter.GET("/customer/:id", saleController.ByCustomer)

		saleRouter.GET("/:id", saleController.Get)
		saleRouter.PATCH("/:id", saleController.Update)
		saleRouter.DELETE("/:id", saleController.Delete)
	}
}
