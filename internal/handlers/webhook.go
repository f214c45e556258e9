package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"github.com/xenia-tech/xenia-backend/internal/config"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

type clerkEmailAddress struct {
	EmailAddress string `json:"email_address"`
	Verification struct {
		Status string `json:"status"`
	} `json:"verification"`
}

type clerkWebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string              `json:"id"`
		EmailAddresses []clerkEmailAddress `json:"email_addresses"`
		FirstName      string              `json:"first_name"`
		LastName       string              `json:"last_name"`
		UnsafeMetadata struct {
			College     string `json:"college"`
			Year        string `json:"year"`
			Branch      string `json:"branch"`
			PhoneNumber string `json:"phoneNumber"`
		} `json:"unsafe_metadata"`
	} `json:"data"`
}

func (e *clerkWebhookEvent) verifiedEmail() string {
	for _, addr := range e.Data.EmailAddresses {
		if addr.Verification.Status == "verified" {
			return strings.ToLower(addr.EmailAddress)
		}
	}
	return ""
}

// ClerkWebhook handles POST /webhooks/clerk. Clerk signs payloads with Svix;
// anything that fails verification is rejected before touching the directory.
func ClerkWebhook(c *gin.Context) {
	secret := config.AppConfig.ClerkWebhookSecret
	if secret == "" {
		logger.Error().Msg("CLERK_WEBHOOK_SECRET is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Webhook secret not configured"})
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid webhook secret")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Webhook secret not configured"})
		return
	}

	if err := wh.Verify(payload, c.Request.Header); err != nil {
		logger.Warn().Err(err).Msg("Webhook signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid signature"})
		return
	}

	var evt clerkWebhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	logger.Info().Str("type", evt.Type).Str("clerk_id", evt.Data.ID).Msg("Webhook event received")

	switch evt.Type {
	case "user.created":
		err = handleUserCreated(&evt)
	case "user.updated":
		err = handleUserUpdated(&evt)
	case "user.deleted":
		err = database.DB.Delete(&models.User{}, "clerk_id = ?", evt.Data.ID).Error
	default:
		// Unknown event types are acknowledged so Clerk stops retrying.
	}

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Webhook processed"})
}

func handleUserCreated(evt *clerkWebhookEvent) error {
	email := evt.verifiedEmail()
	if email == "" {
		logger.Warn().Str("clerk_id", evt.Data.ID).Msg("No verified email on user.created event")
		return nil
	}

	// Retried deliveries must not create duplicate users.
	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("clerk_id = ?", evt.Data.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return handleUserUpdated(evt)
	}

	user := models.User{
		ID:          utils.GenerateID(),
		ClerkID:     evt.Data.ID,
		Email:       email,
		FirstName:   evt.Data.FirstName,
		LastName:    evt.Data.LastName,
		College:     evt.Data.UnsafeMetadata.College,
		Year:        evt.Data.UnsafeMetadata.Year,
		Branch:      evt.Data.UnsafeMetadata.Branch,
		PhoneNumber: evt.Data.UnsafeMetadata.PhoneNumber,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return err
	}

	logger.Info().Str("email", user.Email).Str("clerk_id", user.ClerkID).Msg("User created from webhook")
	return nil
}

func handleUserUpdated(evt *clerkWebhookEvent) error {
	updates := map[string]interface{}{
		"first_name":   evt.Data.FirstName,
		"last_name":    evt.Data.LastName,
		"college":      evt.Data.UnsafeMetadata.College,
		"year":         evt.Data.UnsafeMetadata.Year,
		"branch":       evt.Data.UnsafeMetadata.Branch,
		"phone_number": evt.Data.UnsafeMetadata.PhoneNumber,
	}
	if email := evt.verifiedEmail(); email != "" {
		updates["email"] = email
	}

	return database.DB.Model(&models.User{}).
		Where("clerk_id = ?", evt.Data.ID).
		Updates(updates).Error
}
