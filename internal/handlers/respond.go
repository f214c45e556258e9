package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/xenia-tech/xenia-backend/pkg/errors"
	"github.com/xenia-tech/xenia-backend/pkg/logger"
)

// respondError renders a service error as the standard envelope. Unknown
// errors are logged and masked as a 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}
