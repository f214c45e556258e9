package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/handlers"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
)

func RegisterProfileRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handlers.GetProfile)
		profile.PUT("", handlers.UpdateProfile)
	}
}
