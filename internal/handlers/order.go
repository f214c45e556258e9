package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/internal/services"
)

// CreateOrder handles POST /api/orders
func CreateOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	order, err := services.CreateOrder(user, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully. Your registrations will be confirmed after payment verification.",
		"order": gin.H{
			"orderId":            order.OrderID,
			"totalAmount":        order.TotalAmount,
			"status":             order.Status,
			"transactionId":      order.TransactionID,
			"createdAt":          order.CreatedAt,
			"registrationsCount": len(order.Registrations),
		},
	})
}

// GetUserOrders handles GET /api/orders. Returns orders the caller placed as
// team leader plus orders where they appear on someone else's roster.
func GetUserOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var leaderOrders []models.Order
	if err := database.DB.
		Preload("Registrations").
		Preload("Registrations.Event").
		Preload("Registrations.TeamMembers").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&leaderOrders).Error; err != nil {
		respondError(c, err)
		return
	}

	var memberOrderIDs []string
	if err := database.DB.Table("registration_members").
		Joins("JOIN registrations ON registrations.id = registration_members.registration_id").
		Joins("JOIN orders ON orders.id = registrations.order_id").
		Where("registration_members.user_id = ?", user.ID).
		Where("orders.user_id <> ?", user.ID).
		Distinct().
		Pluck("orders.id", &memberOrderIDs).Error; err != nil {
		respondError(c, err)
		return
	}

	var memberOrders []models.Order
	if len(memberOrderIDs) > 0 {
		if err := database.DB.
			Preload("User").
			Preload("Registrations").
			Preload("Registrations.Event").
			Preload("Registrations.TeamMembers").
			Where("id IN ?", memberOrderIDs).
			Order("created_at DESC").
			Find(&memberOrders).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	summary := gin.H{
		"total":    len(leaderOrders),
		"pending":  0,
		"verified": 0,
		"rejected": 0,
	}
	for _, o := range leaderOrders {
		switch o.Status {
		case models.OrderStatusPending:
			summary["pending"] = summary["pending"].(int) + 1
		case models.OrderStatusVerified:
			summary["verified"] = summary["verified"].(int) + 1
		case models.OrderStatusRejected:
			summary["rejected"] = summary["rejected"].(int) + 1
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"summary":      summary,
		"orders":       leaderOrders,
		"memberOrders": memberOrders,
	})
}

// GetOrderByID handles GET /api/orders/:id. Only the team leader or a listed
// team member may view an order.
func GetOrderByID(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	order, err := services.FindOrderByAnyID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !canViewOrder(user, order) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You do not have access to this order"})
		return
	}

	role := "member"
	if order.UserID == user.ID {
		role = "leader"
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "role": role, "order": order})
}

func canViewOrder(user models.User, order *models.Order) bool {
	if order.UserID == user.ID {
		return true
	}
	for _, reg := range order.Registrations {
		for _, member := range reg.TeamMembers {
			if member.ID == user.ID {
				return true
			}
		}
	}
	return false
}
