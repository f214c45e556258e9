package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
	"gorm.io/gorm"
)

// AdminGetUsers handles GET /api/admin/users with an optional q filter over
// name and email.
func AdminGetUsers(c *gin.Context) {
	query := database.DB.Model(&models.User{})

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		pattern := "%" + q + "%"
		query = query.Where(
			"LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

// AdminGetUserByID handles GET /api/admin/users/:id. Includes the user's
// orders for the support view.
func AdminGetUserByID(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		respondError(c, err)
		return
	}

	var orders []models.Order
	if err := database.DB.
		Preload("Registrations").
		Preload("Registrations.Event").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "orders": orders})
}

// AdminToggleAdmin handles PUT /api/admin/users/:id/toggle-admin. Admins
// cannot revoke their own access.
func AdminToggleAdmin(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user ID"})
		return
	}

	if id == admin.ID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "You cannot change your own admin access"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		respondError(c, err)
		return
	}

	user.IsAdmin = !user.IsAdmin
	if err := database.DB.Model(&user).Update("is_admin", user.IsAdmin).Error; err != nil {
		respondError(c, err)
		return
	}

	logAdminAction(admin, models.ActionToggleAdmin, "user", user.ID, "")

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
