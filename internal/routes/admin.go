package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/handlers"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())

	// Event management
	admin.GET("/events", handlers.AdminGetEvents)
	admin.POST("/events", handlers.AdminCreateEvent)
	admin.POST("/events/upload-logo", handlers.UploadEventLogo)
	admin.PUT("/events/:id", handlers.AdminUpdateEvent)
	admin.DELETE("/events/:id", handlers.AdminDeleteEvent)
	admin.PUT("/events/:id/toggle-active", handlers.AdminToggleEventActive)

	// Order verification
	admin.GET("/orders", handlers.AdminGetOrders)
	admin.GET("/orders/:id", handlers.AdminGetOrderByID)
	admin.PUT("/orders/:id/verify", handlers.AdminVerifyOrder)
	admin.PUT("/orders/:id/reject", handlers.AdminRejectOrder)

	// User management
	admin.GET("/users", handlers.AdminGetUsers)
	admin.GET("/users/:id", handlers.AdminGetUserByID)
	admin.PUT("/users/:id/toggle-admin", handlers.AdminToggleAdmin)

	// Dashboard
	admin.GET("/stats", handlers.AdminGetStats)
}
