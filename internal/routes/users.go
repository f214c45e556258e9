package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/handlers"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
)

// RegisterUserRoutes wires the teammate directory used by the registration
// form's member picker.
func RegisterUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("/search", handlers.SearchUserByEmail)
		users.GET("/search/autocomplete", handlers.AutocompleteUsers)
		users.GET("/:id", handlers.GetUserByID)
	}
}
