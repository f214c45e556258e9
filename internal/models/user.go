package models

import (
	"time"
)

// User is a fest participant, created and kept in sync by the Clerk webhook.
type User struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ClerkID   string `gorm:"uniqueIndex" json:"clerkId"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Optional profile fields, filled in via profile update
	College     string `json:"college"`
	Year        string `json:"year"`
	Branch      string `json:"branch"`
	PhoneNumber string `json:"phoneNumber"`

	IsAdmin bool `gorm:"default:false" json:"isAdmin"`
}

// FullName is used when naming conflicting team members in error messages.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
