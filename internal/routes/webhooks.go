package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/handlers"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
)

// RegisterWebhookRoutes wires identity-provider callbacks. These sit outside
// /api because Clerk is configured with the bare path.
func RegisterWebhookRoutes(r gin.IRouter) {
	webhooks := r.Group("/webhooks")
	webhooks.Use(middleware.WebhookRateLimit())
	{
		webhooks.POST("/clerk", handlers.ClerkWebhook)
	}
}
