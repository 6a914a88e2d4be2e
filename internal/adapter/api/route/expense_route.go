package route

import (
	"github.com/gin-gonic/gin"

	"github.com/davidmorac/asadero-pos/internal/adapter/api/controller"
)

// SetupExpenseRoutes configura las rutas del registro de gastos
func SetupExpenseRoutes(router *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenseRouter := router.Group("/expenses")
	{
		expenseRouter.POST("", expenseController.Create)
		expenseRouter.GET("", expenseController.List)

		// Las rutas fijas van antes que /:id para que gin no las capture
		expenseRouter.GET("/today/list", expenseController.Today)
		expenseRouter.GET("/range/list", expenseController.ByDateRange)
		expenseRouter.GET("/stats/total", expenseController.Total)
		expenseRouter.GET("/stats/by-category", expenseController.TotalByCategory)

		expenseRouter.GET("/:id", expenseController.Get)
		expenseRouter.PATCH("/:id", expenseController.Update)
		expenseRouter.DELETE("/:id", expenseController.Delete)
	}
}
