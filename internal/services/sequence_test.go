package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD000001", FormatOrderNumber(1))
	assert.Equal(t, "ORD000042", FormatOrderNumber(42))
	assert.Equal(t, "ORD123456", FormatOrderNumber(123456))
	// Counters past six digits widen rather than wrap.
	assert.Equal(t, "ORD1000000", FormatOrderNumber(1000000))
}

func TestParseOrderNumber(t *testing.T) {
	n, err := ParseOrderNumber("ORD000042")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = ParseOrderNumber("XYZ000042")
	assert.Error(t, err)

	_, err = ParseOrderNumber("ORDabc")
	assert.Error(t, err)
}

func TestNextOrderNumber_FreshDatabaseStartsAtOne(t *testing.T) {
	setupTestDB(t)

	n, err := NextOrderNumber(database.DB)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = NextOrderNumber(database.DB)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestEnsureOrderCounter_SeedsFromLastOrder(t *testing.T) {
	setupTestDB(t)

	order := models.Order{
		ID:          utils.GenerateID(),
		OrderID:     "ORD000042",
		UserID:      utils.GenerateID(),
		TotalAmount: 100,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	assert.NoError(t, database.DB.Create(&order).Error)

	assert.NoError(t, EnsureOrderCounter(database.DB))

	n, err := NextOrderNumber(database.DB)
	assert.NoError(t, err)
	assert.Equal(t, int64(43), n)
}

func TestEnsureOrderCounter_MalformedLastOrderRestartsAtOne(t *testing.T) {
	setupTestDB(t)

	order := models.Order{
		ID:          utils.GenerateID(),
		OrderID:     "LEGACY-7",
		UserID:      utils.GenerateID(),
		TotalAmount: 100,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	assert.NoError(t, database.DB.Create(&order).Error)

	assert.NoError(t, EnsureOrderCounter(database.DB))

	n, err := NextOrderNumber(database.DB)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEnsureOrderCounter_Idempotent(t *testing.T) {
	setupTestDB(t)

	assert.NoError(t, EnsureOrderCounter(database.DB))
	_, err := NextOrderNumber(database.DB)
	assert.NoError(t, err)

	// A second call must not reset the running counter.
	assert.NoError(t, EnsureOrderCounter(database.DB))

	n, err := NextOrderNumber(database.DB)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
