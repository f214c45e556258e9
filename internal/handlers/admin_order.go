package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/internal/services"
)

// AdminGetOrders handles GET /api/admin/orders with optional status/eventId
// filters and a revenue summary over the whole (unfiltered) order book.
func AdminGetOrders(c *gin.Context) {
	query := database.DB.
		Preload("User").
		Preload("Registrations").
		Preload("Registrations.Event").
		Preload("Registrations.TeamMembers")

	if status := c.Query("status"); status != "" {
		query = query.Where("orders.status = ?", status)
	}
	if eventID := c.Query("eventId"); eventID != "" {
		query = query.
			Joins("JOIN registrations ON registrations.order_id = orders.id").
			Where("registrations.event_id = ?", eventID).
			Distinct("orders.*")
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	var orders []models.Order
	if err := query.Order("orders.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		respondError(c, err)
		return
	}

	summary, err := orderBookSummary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"summary": summary,
		"orders":  orders,
	})
}

func orderBookSummary() (gin.H, error) {
	type statusRow struct {
		Status models.OrderStatus
		Count  int64
		Amount float64
	}
	var rows []statusRow
	if err := database.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_amount), 0) as amount").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := gin.H{
		"total":           int64(0),
		"pending":         int64(0),
		"verified":        int64(0),
		"rejected":        int64(0),
		"verifiedRevenue": float64(0),
		"pendingRevenue":  float64(0),
	}
	for _, row := range rows {
		summary["total"] = summary["total"].(int64) + row.Count
		switch row.Status {
		case models.OrderStatusPending:
			summary["pending"] = row.Count
			summary["pendingRevenue"] = row.Amount
		case models.OrderStatusVerified:
			summary["verified"] = row.Count
			summary["verifiedRevenue"] = row.Amount
		case models.OrderStatusRejected:
			summary["rejected"] = row.Count
		}
	}
	return summary, nil
}

// AdminGetOrderByID handles GET /api/admin/orders/:id
func AdminGetOrderByID(c *gin.Context) {
	order, err := services.FindOrderByAnyID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// AdminVerifyOrder handles PUT /api/admin/orders/:id/verify
func AdminVerifyOrder(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	order, err := services.VerifyOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	logAdminAction(admin, models.ActionVerifyOrder, "order", order.ID, "")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order verified successfully",
		"order":   order,
	})
}

// AdminRejectOrder handles PUT /api/admin/orders/:id/reject
func AdminRejectOrder(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	order, err := services.RejectOrder(c.Param("id"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	logAdminAction(admin, models.ActionRejectOrder, "order", order.ID, order.RejectionReason)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order rejected",
		"order":   order,
	})
}
