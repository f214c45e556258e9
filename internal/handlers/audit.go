package handlers

import (
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

// logAdminAction records an audit row for an admin mutation. Audit failures
// are logged but never fail the mutation itself.
func logAdminAction(admin models.User, action models.ActionType, targetType, targetID, reason string) {
	entry := models.AdminAction{
		ID:         utils.GenerateID(),
		AdminID:    admin.ID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     reason,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error().Err(err).
			Str("action", string(action)).
			Str("target", targetID).
			Msg("Failed to record admin action")
	}
}
