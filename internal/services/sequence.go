package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xenia-tech/xenia-backend/internal/models"
	"gorm.io/gorm"
)

const (
	orderIDPrefix  = "ORD"
	orderCounterID = 1
)

// FormatOrderNumber renders a sequence value as a human-readable order ID.
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("%s%06d", orderIDPrefix, n)
}

// ParseOrderNumber extracts the numeric part of an order ID.
func ParseOrderNumber(orderID string) (int64, error) {
	if !strings.HasPrefix(orderID, orderIDPrefix) {
		return 0, fmt.Errorf("malformed order ID %q", orderID)
	}
	return strconv.ParseInt(strings.TrimPrefix(orderID, orderIDPrefix), 10, 64)
}

// EnsureOrderCounter seeds the counter row if it does not exist yet. The seed
// value comes from the most recently created order so numbering continues
// across deployments that predate the counter table.
func EnsureOrderCounter(db *gorm.DB) error {
	var counter models.OrderCounter
	err := db.First(&counter, "id = ?", orderCounterID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	counter = models.OrderCounter{ID: orderCounterID, Value: lastIssuedOrderNumber(db)}
	if err := db.Create(&counter).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

// NextOrderNumber increments and returns the order sequence within tx. The
// guarded UPDATE takes a row lock, so two concurrent creations cannot be
// issued the same number.
func NextOrderNumber(tx *gorm.DB) (int64, error) {
	res := tx.Model(&models.OrderCounter{}).
		Where("id = ?", orderCounterID).
		Update("value", gorm.Expr("value + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		// Counter was never seeded (fresh database); start from the last
		// issued order, or at 1 when none exists.
		counter := models.OrderCounter{ID: orderCounterID, Value: lastIssuedOrderNumber(tx) + 1}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
		return counter.Value, nil
	}

	var counter models.OrderCounter
	if err := tx.First(&counter, "id = ?", orderCounterID).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// lastIssuedOrderNumber derives the highest issued number from the most
// recently created order. Returns 0 (numbering restarts at 1) when no order
// exists or its ID is malformed.
func lastIssuedOrderNumber(tx *gorm.DB) int64 {
	var order models.Order
	err := tx.Where("order_id IS NOT NULL AND order_id <> ''").
		Order("created_at DESC").
		First(&order).Error
	if err != nil {
		return 0
	}

	n, err := ParseOrderNumber(order.OrderID)
	if err != nil {
		return 0
	}
	return n
}
