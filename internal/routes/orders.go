package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/handlers"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
)

func RegisterOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", middleware.OrderRateLimit(), handlers.CreateOrder)
		orders.GET("", handlers.GetUserOrders)
		orders.GET("/:id", handlers.GetOrderByID)
	}
}
