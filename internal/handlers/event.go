package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
	"gorm.io/gorm"
)

// GetEvents handles GET /api/public/events
func GetEvents(c *gin.Context) {
	var events []models.Event
	if err := database.DB.
		Where("is_active = ?", true).
		Order("category ASC, name ASC").
		Find(&events).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(events),
		"events":  events,
	})
}

// GetEventByID handles GET /api/public/events/:id. Inactive events still
// resolve so detail pages can show a "registrations closed" state.
func GetEventByID(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// GetEventDomains handles GET /api/public/events/:id/domains
func GetEventDomains(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := database.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Event not found"})
			return
		}
		respondError(c, err)
		return
	}

	if !event.IsHackathon {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Event is not a hackathon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"eventId":   event.ID,
		"eventName": event.Name,
		"domains":   event.Domains,
	})
}

// GetEventsByCategory handles GET /api/public/events/category/:category
func GetEventsByCategory(c *gin.Context) {
	category := c.Param("category")

	var events []models.Event
	if err := database.DB.
		Where("is_active = ? AND LOWER(category) = LOWER(?)", true, category).
		Order("name ASC").
		Find(&events).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"count":    len(events),
		"events":   events,
	})
}

// SearchEvents handles GET /api/public/events/search?q=
func SearchEvents(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Search query is required"})
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var events []models.Event
	if err := database.DB.
		Where("is_active = ? AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", true, pattern, pattern).
		Order("name ASC").
		Find(&events).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   q,
		"count":   len(events),
		"events":  events,
	})
}

// GetEventCategories handles GET /api/public/events/categories/list
func GetEventCategories(c *gin.Context) {
	var categories []string
	if err := database.DB.Model(&models.Event{}).
		Where("is_active = ?", true).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}
