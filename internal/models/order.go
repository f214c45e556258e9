package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusVerified OrderStatus = "VERIFIED"
	OrderStatusRejected OrderStatus = "REJECTED"
)

// Order is a team leader's submission covering one or more event
// registrations and a single payment transaction. Orders are never deleted.
type Order struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Human-readable sequential ID, ORD + 6-digit zero-padded counter
	OrderID string `gorm:"uniqueIndex" json:"orderId"`

	// Team leader
	UserID string `gorm:"index;index:idx_orders_user_status,priority:1" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// NULL for zero-fee orders; unique across all paid orders
	TransactionID *string `gorm:"uniqueIndex" json:"transactionId,omitempty"`

	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `gorm:"type:text;default:'PENDING';index;index:idx_orders_user_status,priority:2" json:"status"`

	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`

	Registrations []Registration `gorm:"foreignKey:OrderID" json:"registrations"`
}

// Registration is one event entry within an order: the event, the team
// roster, and (for hackathons) the selected domain/problem statement.
type Registration struct {
	ID      string `gorm:"primaryKey;type:text" json:"id"`
	OrderID string `gorm:"index" json:"-"`

	EventID string `gorm:"index" json:"eventId"`
	Event   Event  `gorm:"foreignKey:EventID" json:"event,omitempty"`

	TeamMembers []User `gorm:"many2many:registration_members" json:"teamMembers"`

	SelectedDomain string `json:"selectedDomain,omitempty"`
	SelectedPS     string `json:"selectedPS,omitempty"`
}

// OrderCounter is the single-row atomic sequence behind order numbering.
// Incremented with a guarded UPDATE inside the order-creation transaction so
// concurrent creations cannot issue the same number.
type OrderCounter struct {
	ID    int   `gorm:"primaryKey" json:"id"`
	Value int64 `json:"value"`
}
