package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
)

// AdminGetStats handles GET /api/admin/stats. Dashboard aggregates: totals,
// revenue, the most registered events, and the latest submissions.
func AdminGetStats(c *gin.Context) {
	var userCount, eventCount, activeEventCount int64
	if err := database.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := database.DB.Model(&models.Event{}).Count(&eventCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := database.DB.Model(&models.Event{}).
		Where("is_active = ?", true).
		Count(&activeEventCount).Error; err != nil {
		respondError(c, err)
		return
	}

	orders, err := orderBookSummary()
	if err != nil {
		respondError(c, err)
		return
	}

	type popularEvent struct {
		EventID       string `json:"eventId"`
		Name          string `json:"name"`
		Registrations int64  `json:"registrations"`
	}
	var popular []popularEvent
	if err := database.DB.Model(&models.Registration{}).
		Select("registrations.event_id, events.name, COUNT(*) as registrations").
		Joins("JOIN events ON events.id = registrations.event_id").
		Joins("JOIN orders ON orders.id = registrations.order_id").
		Where("orders.status <> ?", models.OrderStatusRejected).
		Group("registrations.event_id, events.name").
		Order("registrations DESC").
		Limit(5).
		Scan(&popular).Error; err != nil {
		respondError(c, err)
		return
	}

	var recentOrders []models.Order
	if err := database.DB.
		Preload("User").
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"users": gin.H{
				"total": userCount,
			},
			"events": gin.H{
				"total":  eventCount,
				"active": activeEventCount,
			},
			"orders":        orders,
			"popularEvents": popular,
			"recentOrders":  recentOrders,
		},
	})
}
