package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
	"github.com/xenia-tech/xenia-backend/internal/models"
)

// GetProfile handles GET /api/profile
func GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var orderCount int64
	if err := database.DB.Model(&models.Order{}).
		Where("user_id = ?", user.ID).
		Count(&orderCount).Error; err != nil {
		respondError(c, err)
		return
	}

	var registrationCount int64
	if err := database.DB.Table("registration_members").
		Joins("JOIN registrations ON registrations.id = registration_members.registration_id").
		Joins("JOIN orders ON orders.id = registrations.order_id").
		Where("registration_members.user_id = ?", user.ID).
		Where("orders.status <> ?", models.OrderStatusRejected).
		Count(&registrationCount).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"stats": gin.H{
			"ordersPlaced":  orderCount,
			"registrations": registrationCount,
		},
	})
}

type updateProfileInput struct {
	College     string `json:"college"`
	Year        string `json:"year"`
	Branch      string `json:"branch"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateProfile handles PUT /api/profile. Identity fields (name, email) come
// from the webhook sync and cannot be edited here.
func UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var input updateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	user.College = strings.TrimSpace(input.College)
	user.Year = strings.TrimSpace(input.Year)
	user.Branch = strings.TrimSpace(input.Branch)
	user.PhoneNumber = strings.TrimSpace(input.PhoneNumber)

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"college":      user.College,
			"year":         user.Year,
			"branch":       user.Branch,
			"phone_number": user.PhoneNumber,
		}).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}
