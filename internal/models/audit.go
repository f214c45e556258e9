package models

import "time"

type ActionType string

const (
	ActionCreateEvent ActionType = "CREATE_EVENT"
	ActionUpdateEvent ActionType = "UPDATE_EVENT"
	ActionDeleteEvent ActionType = "DELETE_EVENT"
	ActionToggleEvent ActionType = "TOGGLE_EVENT"
	ActionVerifyOrder ActionType = "VERIFY_ORDER"
	ActionRejectOrder ActionType = "REJECT_ORDER"
	ActionToggleAdmin ActionType = "TOGGLE_ADMIN"
)

// AdminAction is an audit row recorded for every admin mutation.
type AdminAction struct {
	ID         string     `gorm:"primaryKey;type:text" json:"id"`
	AdminID    string     `json:"adminId"`
	Action     ActionType `json:"action"`
	TargetID   string     `json:"targetId"`
	TargetType string     `json:"targetType"` // "event", "order", "user"
	Reason     string     `json:"reason"`
	CreatedAt  time.Time  `json:"createdAt"`

	Admin User `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}
