package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the X-Clerk-Id header to a user record and stores
// it in the request context. The identity provider has already authenticated
// the caller; this only maps the external ID onto our user directory.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clerkID := c.GetHeader("X-Clerk-Id")
		if clerkID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized - Missing clerk ID"})
			c.Abort()
			return
		}

		var user models.User
		if err := database.DB.First(&user, "clerk_id = ?", clerkID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found. Please sync your profile first"})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// AdminMiddleware requires the resolved user to carry the admin flag.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden - Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
