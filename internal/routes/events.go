package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/handlers"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
)

// RegisterEventRoutes wires the public event catalog. Responses are cached;
// the admin mutation handlers invalidate on change.
func RegisterEventRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/public/events")
	events.Use(middleware.Cache(5 * time.Minute))
	{
		events.GET("", handlers.GetEvents)
		events.GET("/search", handlers.SearchEvents)
		events.GET("/categories/list", handlers.GetEventCategories)
		events.GET("/category/:category", handlers.GetEventsByCategory)
		events.GET("/:id", handlers.GetEventByID)
		events.GET("/:id/domains", handlers.GetEventDomains)
	}
}
