package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/xenia-tech/xenia-backend/internal/database"
	"github.com/xenia-tech/xenia-backend/internal/middleware"
	"github.com/xenia-tech/xenia-backend/internal/models"
	"github.com/xenia-tech/xenia-backend/pkg/utils"
)

type eventInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Introduction string  `json:"introduction"`
	Fees         float64 `json:"fees"`
	Category     string  `json:"category"`
	Venue        string  `json:"venue"`
	Logo         string  `json:"logo"`
	TeamSizeMin  int     `json:"teamSizeMin"`
	TeamSizeMax  int     `json:"teamSizeMax"`
	IsActive     *bool   `json:"isActive"`

	Contact   []string              `json:"contact"`
	Prizes    []models.Prize        `json:"prizes"`
	Schedule  []models.ScheduleItem `json:"schedule"`
	Rules     []models.Rule         `json:"rules"`
	Platforms []models.Platform     `json:"platforms"`

	IsHackathon bool                     `json:"isHackathon"`
	Domains     []models.HackathonDomain `json:"domains"`
}

func (in *eventInput) validate() string {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)

	switch {
	case in.Name == "":
		return "Event name is required"
	case in.Category == "":
		return "Event category is required"
	case in.Fees < 0:
		return "Fees cannot be negative"
	case in.TeamSizeMin < 1:
		return "Minimum team size must be at least 1"
	case in.TeamSizeMax < in.TeamSizeMin:
		return "Maximum team size cannot be smaller than minimum team size"
	}

	if in.IsHackathon {
		if len(in.Domains) == 0 {
			return "Hackathon events require at least one domain"
		}
		seen := make(map[string]bool, len(in.Domains))
		for _, d := range in.Domains {
			if d.DomainID == "" || d.Name == "" {
				return "Each hackathon domain needs an ID and a name"
			}
			if seen[d.DomainID] {
				return "Duplicate hackathon domain ID: " + d.DomainID
			}
			seen[d.DomainID] = true
			if len(d.ProblemStatements) == 0 {
				return "Domain " + d.Name + " needs at least one problem statement"
			}
			psSeen := make(map[string]bool, len(d.ProblemStatements))
			for _, ps := range d.ProblemStatements {
				if ps.PSID == "" || ps.Title == "" {
					return "Each problem statement needs an ID and a title"
				}
				if psSeen[ps.PSID] {
					return "Duplicate problem statement ID: " + ps.PSID
				}
				psSeen[ps.PSID] = true
			}
		}
	}

	return ""
}

func (in *eventInput) apply(event *models.Event) {
	event.Name = in.Name
	event.Description = in.Description
	event.Introduction = in.Introduction
	event.Fees = in.Fees
	event.Category = in.Category
	event.Venue = in.Venue
	event.Logo = in.Logo
	event.TeamSizeMin = in.TeamSizeMin
	event.TeamSizeMax = in.TeamSizeMax
	if in.IsActive != nil {
		event.IsActive = *in.IsActive
	}
	event.Contact = datatypes.NewJSONSlice(in.Contact)
	event.Prizes = datatypes.NewJSONSlice(in.Prizes)
	event.Schedule = datatypes.NewJSONSlice(in.Schedule)
	event.Rules = datatypes.NewJSONSlice(in.Rules)
	event.Platforms = datatypes.NewJSONSlice(in.Platforms)
	event.IsHackathon = in.IsHackathon
	event.Domains = datatypes.NewJSONSlice(in.Domains)
}

// AdminCreateEvent handles POST /api/admin/events
func AdminCreateEvent(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	event := models.Event{ID: utils.GenerateID(), IsActive: true}
	input.apply(&event)

	if err := database.DB.Create(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "An event with this name already exists"})
			return
		}
		respondError(c, err)
		return
	}

	middleware.InvalidateEventCache()
	logAdminAction(admin, models.ActionCreateEvent, "event", event.ID, "")

	c.JSON(http.StatusCreated, gin.H{"success": true, "event": event})
}

// AdminUpdateEvent handles PUT /api/admin/events/:id
func AdminUpdateEvent(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

	id := c.Param("id")
	if !utils.IsUUID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event ID"})
		return
	}

	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
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

	input.apply(&event)

	if err := database.DB.Save(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "An event with this name already exists"})
			return
		}
		respondError(c, err)
		return
	}

	middleware.InvalidateEventCache()
	logAdminAction(admin, models.ActionUpdateEvent, "event", event.ID, "")

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// AdminDeleteEvent handles DELETE /api/admin/events/:id. Events with
// registrations cannot be deleted, only deactivated.
func AdminDeleteEvent(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

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

	var regCount int64
	if err := database.DB.Model(&models.Registration{}).
		Where("event_id = ?", id).
		Count(&regCount).Error; err != nil {
		respondError(c, err)
		return
	}
	if regCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Cannot delete an event with registrations. Deactivate it instead.",
		})
		return
	}

	if err := database.DB.Delete(&event).Error; err != nil {
		respondError(c, err)
		return
	}

	middleware.InvalidateEventCache()
	logAdminAction(admin, models.ActionDeleteEvent, "event", event.ID, "")

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event deleted successfully"})
}

// AdminToggleEventActive handles PUT /api/admin/events/:id/toggle-active
func AdminToggleEventActive(c *gin.Context) {
	admin, _ := middleware.CurrentUser(c)

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

	event.IsActive = !event.IsActive
	if err := database.DB.Model(&event).Update("is_active", event.IsActive).Error; err != nil {
		respondError(c, err)
		return
	}

	middleware.InvalidateEventCache()
	logAdminAction(admin, models.ActionToggleEvent, "event", event.ID, "")

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// AdminGetEvents handles GET /api/admin/events. Unlike the public catalog it
// includes inactive events and registration counts.
func AdminGetEvents(c *gin.Context) {
	var events []models.Event
	if err := database.DB.Order("category ASC, name ASC").Find(&events).Error; err != nil {
		respondError(c, err)
		return
	}

	type eventRegCount struct {
		EventID string
		Count   int64
	}
	var counts []eventRegCount
	if err := database.DB.Model(&models.Registration{}).
		Select("event_id, COUNT(*) as count").
		Group("event_id").
		Scan(&counts).Error; err != nil {
		respondError(c, err)
		return
	}
	countByEvent := make(map[string]int64, len(counts))
	for _, ec := range counts {
		countByEvent[ec.EventID] = ec.Count
	}

	results := make([]gin.H, 0, len(events))
	for _, e := range events {
		results = append(results, gin.H{
			"event":         e,
			"registrations": countByEvent[e.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(events), "events": results})
}
