package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateOrderHandler_Success(t *testing.T) {
	setupTestDB(t)
	leader := makeUser(t, "leader@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)

	c, w := testContext(t, "POST", "/api/orders", gin.H{
		"registrations": []gin.H{
			{"eventId": event.ID, "teamMembers": []string{leader.ID}},
		},
		"transactionId": "TXN123",
	}, &leader)

	CreateOrder(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])

	order := resp["order"].(map[string]interface{})
	assert.Equal(t, "ORD000001", order["orderId"])
	assert.Equal(t, "PENDING", order["status"])
	assert.Equal(t, 500.0, order["totalAmount"])
	assert.Equal(t, 1.0, order["registrationsCount"])
}

func TestCreateOrderHandler_ValidationErrorIs400(t *testing.T) {
	setupTestDB(t)
	leader := makeUser(t, "leader@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)

	c, w := testContext(t, "POST", "/api/orders", gin.H{
		"registrations": []gin.H{
			{"eventId": event.ID, "teamMembers": []string{leader.ID}},
		},
	}, &leader)

	CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Transaction ID is required", resp["error"])
}

func TestCreateOrderHandler_InvalidBody(t *testing.T) {
	setupTestDB(t)
	leader := makeUser(t, "leader@test.dev", false)

	c, w := testContext(t, "POST", "/api/orders", "not-an-object", &leader)

	CreateOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserOrders(t *testing.T) {
	setupTestDB(t)
	leader := makeUser(t, "leader@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)

	c, _ := testContext(t, "POST", "/api/orders", gin.H{
		"registrations": []gin.H{
			{"eventId": event.ID, "teamMembers": []string{leader.ID}},
		},
		"transactionId": "TXN123",
	}, &leader)
	CreateOrder(c)

	c, w := testContext(t, "GET", "/api/orders", nil, &leader)
	GetUserOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["orders"], 1)

	summary := resp["summary"].(map[string]interface{})
	assert.Equal(t, 1.0, summary["total"])
	assert.Equal(t, 1.0, summary["pending"])
}

func TestGetUserOrders_IncludesMemberOrders(t *testing.T) {
	setupTestDB(t)
	leader := makeUser(t, "leader@test.dev", false)
	mate := makeUser(t, "mate@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)

	c, _ := testContext(t, "POST", "/api/orders", gin.H{
		"registrations": []gin.H{
			{"eventId": event.ID, "teamMembers": []string{leader.ID, mate.ID}},
		},
		"transactionId": "TXN123",
	}, &leader)
	CreateOrder(c)

	c, w := testContext(t, "GET", "/api/orders", nil, &mate)
	GetUserOrders(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Len(t, resp["orders"], 0)
	assert.Len(t, resp["memberOrders"], 1)
}

func TestGetOrderByID_AccessControl(t *testing.T) {
	setupTestDB(t)
	leader := makeUser(t, "leader@test.dev", false)
	mate := makeUser(t, "mate@test.dev", false)
	stranger := makeUser(t, "stranger@test.dev", false)
	event := makeEvent(t, "RoboWars", 500, true)

	c, w := testContext(t, "POST", "/api/orders", gin.H{
		"registrations": []gin.H{
			{"eventId": event.ID, "teamMembers": []string{leader.ID, mate.ID}},
		},
		"transactionId": "TXN123",
	}, &leader)
	CreateOrder(c)
	orderID := decodeBody(t, w)["order"].(map[string]interface{})["orderId"].(string)

	c, w = testContext(t, "GET", "/api/orders/"+orderID, nil, &leader)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	GetOrderByID(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "leader", decodeBody(t, w)["role"])

	c, w = testContext(t, "GET", "/api/orders/"+orderID, nil, &mate)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	GetOrderByID(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "member", decodeBody(t, w)["role"])

	c, w = testContext(t, "GET", "/api/orders/"+orderID, nil, &stranger)
	c.Params = gin.Params{{Key: "id", Value: orderID}}
	GetOrderByID(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
