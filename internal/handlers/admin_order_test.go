package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
)

func placeOrder(t *testing.T, leader models.User, event models.Event, txnID string) string {
	c, w := testContext(t, "POST", "/api/orders", gin.H{
		"registrations": []gin.H{
			{"eventId": event.ID, "teamMembers": []string{leader.ID}},
		},
		"transactionId": txnID,
	}, &leader)
	CreateOrder(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to place order: %s", w.Body.String())
	}
	return decodeBody(t, w)["order"].(map[string]interface{})["orderId"].(string)
}

func TestAdminVerifyOrderHandler(t *testing.T) {
	setupTestDB(t)
	admin := makeUser(t, "admin@test.dev", true)
	leader := makeUser(t, "leader@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)
	orderID := placeOrder(t, leader, event, "TXN123")

	c, w := testContext(t, "PUT", "/api/admin/orders/"+orderID+"/verify", nil, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	AdminVerifyOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "VERIFIED", resp["order"].(map[string]interface{})["status"])

	// Audit trail row is written for the mutation.
	var actions int64
	database.DB.Model(&models.AdminAction{}).
		Where("action = ?", models.ActionVerifyOrder).
		Count(&actions)
	assert.Equal(t, int64(1), actions)

	// Second verify is a conflict, rendered as 400.
	c, w = testContext(t, "PUT", "/api/admin/orders/"+orderID+"/verify", nil, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	AdminVerifyOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order is already verified", decodeBody(t, w)["error"])
}

func TestAdminRejectOrderHandler(t *testing.T) {
	setupTestDB(t)
	admin := makeUser(t, "admin@test.dev", true)
	leader := makeUser(t, "leader@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)
	orderID := placeOrder(t, leader, event, "TXN123")

	c, w := testContext(t, "PUT", "/api/admin/orders/"+orderID+"/reject", gin.H{}, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	AdminRejectOrder(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rejection reason is required", decodeBody(t, w)["error"])

	c, w = testContext(t, "PUT", "/api/admin/orders/"+orderID+"/reject", gin.H{
		"reason": "Transaction not found",
	}, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	AdminRejectOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	order := decodeBody(t, w)["order"].(map[string]interface{})
	assert.Equal(t, "REJECTED", order["status"])
	assert.Equal(t, "Transaction not found", order["rejectionReason"])
}

func TestAdminRejectVerifiedOrderHandler(t *testing.T) {
	setupTestDB(t)
	admin := makeUser(t, "admin@test.dev", true)
	leader := makeUser(t, "leader@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)
	orderID := placeOrder(t, leader, event, "TXN123")

	c, _ := testContext(t, "PUT", "/api/admin/orders/"+orderID+"/verify", nil, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	AdminVerifyOrder(c)

	c, w := testContext(t, "PUT", "/api/admin/orders/"+orderID+"/reject", gin.H{
		"reason": "changed my mind",
	}, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	AdminRejectOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot reject a verified order", decodeBody(t, w)["error"])
}

func TestAdminGetOrders_FiltersAndSummary(t *testing.T) {
	setupTestDB(t)
	admin := makeUser(t, "admin@test.dev", true)
	leaderA := makeUser(t, "a@test.dev", false)
	leaderB := makeUser(t, "b@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)

	orderA := placeOrder(t, leaderA, event, "TXN-A")
	placeOrder(t, leaderB, event, "TXN-B")

	c, _ := testContext(t, "PUT", "/api/admin/orders/"+orderA+"/verify", nil, &admin)
	c.Params = gin.Params{{Key: "id", Value: orderA}}
	AdminVerifyOrder(c)

	c, w := testContext(t, "GET", "/api/admin/orders?status=VERIFIED", nil, &admin)
	AdminGetOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Len(t, resp["orders"], 1)

	summary := resp["summary"].(map[string]interface{})
	assert.Equal(t, 2.0, summary["total"])
	assert.Equal(t, 1.0, summary["verified"])
	assert.Equal(t, 1.0, summary["pending"])
	assert.Equal(t, 500.0, summary["verifiedRevenue"])
}

func TestAdminGetOrderByID_NotFound(t *testing.T) {
	setupTestDB(t)
	admin := makeUser(t, "admin@test.dev", true)

	c, w := testContext(t, "GET", "/api/admin/orders/ORD999999", nil, &admin)
	c.Params = gin.Params{{Key: "id", Value: "ORD999999"}}
	AdminGetOrderByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decodeBody(t, w)["error"])
}
